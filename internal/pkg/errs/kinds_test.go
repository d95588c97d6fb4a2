//go:build unit

package errs_test

import (
	"testing"

	"salon-backend/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

type publicErr struct{ msg string }

func (e publicErr) Error() string         { return "repo: " + e.msg + ": pq: boom" }
func (e publicErr) PublicMessage() string { return e.msg }

func TestKindOf(t *testing.T) {
	sentinel := errs.Conflict("slot already taken")

	cases := []struct {
		name string
		err  error
		want errs.Kind
	}{
		{name: "nil", err: nil, want: ""},
		{name: "validation", err: errs.Validation("bad date"), want: errs.KindValidation},
		{name: "unauthorized", err: errs.Unauthorized("no token"), want: errs.KindUnauthorized},
		{name: "forbidden", err: errs.Forbidden("not yours"), want: errs.KindForbidden},
		{name: "not found", err: errs.NotFound("missing"), want: errs.KindNotFound},
		{name: "conflict", err: sentinel, want: errs.KindConflict},
		{name: "wrapped keeps kind", err: errs.Wrap(sentinel, "book appointment"), want: errs.KindConflict},
		{name: "mark applied later", err: errs.Mark(errs.New("db down"), errs.ErrNotFound), want: errs.KindNotFound},
		{name: "unmarked is internal", err: errs.New("boom"), want: errs.KindInternal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, errs.KindOf(tc.err))
		})
	}
}

func TestMessage(t *testing.T) {
	t.Run("plain error uses Error()", func(t *testing.T) {
		assert.Equal(t, "bad date", errs.Message(errs.Validation("bad date")))
	})

	t.Run("public error hides driver detail", func(t *testing.T) {
		err := errs.Mark(publicErr{msg: "branch not found"}, errs.ErrNotFound)
		assert.Equal(t, "branch not found", errs.Message(err))
	})

	t.Run("sentinel identity survives wrapping", func(t *testing.T) {
		sentinel := errs.Conflict("already approved")
		wrapped := errs.Wrap(sentinel, "approve leave")
		assert.ErrorIs(t, wrapped, sentinel)
	})
}
