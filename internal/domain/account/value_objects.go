package account

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"salon-backend/internal/pkg/errs"
)

var (
	ErrInvalidEmail    = errs.Validation("invalid email format")
	ErrInvalidUsername = errs.Validation("username must be 3-32 characters of a-z, 0-9, '_' or '.'")
	ErrInvalidRole     = errs.Validation("invalid role")
	ErrPasswordTooWeak = errs.Validation("password must be at least 8 characters long")
	ErrInvalidPhone    = errs.Validation("invalid phone number")
	ErrInvalidName     = errs.Validation("name must be 1-100 characters")
)

var (
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	usernameRegex = regexp.MustCompile(`^[a-z0-9_.]{3,32}$`)
	phoneRegex    = regexp.MustCompile(`^\+?[0-9][0-9 \-]{5,19}$`)
)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Username struct {
	value string
}

func NewUsername(s string) (Username, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !usernameRegex.MatchString(s) {
		return Username{}, ErrInvalidUsername
	}
	return Username{value: s}, nil
}

func (u Username) Value() string {
	return u.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < 8 {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}

// Phone is optional; the zero value means "not provided".
type Phone struct {
	value string
}

func NewPhone(s string) (Phone, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Phone{}, nil
	}
	if !phoneRegex.MatchString(s) {
		return Phone{}, ErrInvalidPhone
	}
	return Phone{value: s}, nil
}

func (p Phone) Value() string {
	return p.value
}

func (p Phone) IsZero() bool {
	return p.value == ""
}

func NewName(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" || utf8.RuneCountInString(s) > 100 {
		return "", ErrInvalidName
	}
	return s, nil
}
