//go:build unit

package calendar

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"salon-backend/internal/domain/schedule"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile(t *testing.T) {
	branchID := uuid.MustParse("4b8f7c1e-3f0a-4a56-9a3e-0d6f1f0f2a11")
	path := filepath.Join(t.TempDir(), "holidays.toml")
	content := `
[[holiday]]
date = "2026-01-01"
name = "New Year's Day"

[[holiday]]
date = "2026-02-17"
name = "Stocktake"
branch_id = "` + branchID.String() + `"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	got, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, got, 2)

	newYear, _ := schedule.ParseDate("2026-01-01")
	assert.Equal(t, newYear, got[0].Date)
	assert.Nil(t, got[0].BranchID)
	assert.Equal(t, "New Year's Day", got[0].Name)

	require.NotNil(t, got[1].BranchID)
	assert.Equal(t, branchID, *got[1].BranchID)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "bad date", input: "[[holiday]]\ndate = \"2026-13-01\"\nname = \"x\"\n", want: "holiday 1"},
		{name: "bad branch", input: "[[holiday]]\ndate = \"2026-01-01\"\nname = \"x\"\nbranch_id = \"nope\"\n", want: "branch_id"},
		{name: "not toml", input: "[[holiday", want: "decode holiday calendar"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input))
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
