package calendar

import (
	"io"
	"os"

	"salon-backend/internal/domain/schedule"
	"salon-backend/internal/pkg/errs"
	"salon-backend/internal/usecase/commands"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
)

// File is the on-disk holiday calendar:
//
//	[[holiday]]
//	date = "2026-01-01"
//	name = "New Year's Day"
//	branch_id = "..." # omitted for a company-wide closure
type File struct {
	Holidays []Entry `toml:"holiday"`
}

type Entry struct {
	Date     string `toml:"date"`
	Name     string `toml:"name"`
	BranchID string `toml:"branch_id"`
}

func LoadFile(path string) ([]commands.HolidayInput, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.Wrapf(err, "open holiday calendar %s", path)
	}
	defer f.Close()
	return Decode(f)
}

func Decode(r io.Reader) ([]commands.HolidayInput, error) {
	var file File
	if _, err := toml.NewDecoder(r).Decode(&file); err != nil {
		return nil, errs.Wrap(err, "decode holiday calendar")
	}

	out := make([]commands.HolidayInput, 0, len(file.Holidays))
	for i, e := range file.Holidays {
		date, err := schedule.ParseDate(e.Date)
		if err != nil {
			return nil, errs.Wrapf(err, "holiday %d", i+1)
		}
		in := commands.HolidayInput{Date: date, Name: e.Name}
		if e.BranchID != "" {
			id, err := uuid.Parse(e.BranchID)
			if err != nil {
				return nil, errs.Wrapf(err, "holiday %d: branch_id", i+1)
			}
			in.BranchID = &id
		}
		out = append(out, in)
	}
	return out, nil
}
