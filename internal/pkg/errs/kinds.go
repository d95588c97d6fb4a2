package errs

import cr "github.com/cockroachdb/errors"

// Kind marks. Every error crossing the usecase boundary should carry at most one of these;
// anything unmarked is treated as internal.
var (
	ErrValidation   = cr.New("kind: validation")
	ErrUnauthorized = cr.New("kind: unauthorized")
	ErrForbidden    = cr.New("kind: forbidden")
	ErrNotFound     = cr.New("kind: not found")
	ErrConflict     = cr.New("kind: conflict")
)

type Kind string

const (
	KindValidation   Kind = "validation"
	KindUnauthorized Kind = "unauthorized"
	KindForbidden    Kind = "forbidden"
	KindNotFound     Kind = "not_found"
	KindConflict     Kind = "conflict"
	KindInternal     Kind = "internal"
)

func Validation(msg string) error   { return cr.Mark(cr.NewWithDepth(1, msg), ErrValidation) }
func Unauthorized(msg string) error { return cr.Mark(cr.NewWithDepth(1, msg), ErrUnauthorized) }
func Forbidden(msg string) error    { return cr.Mark(cr.NewWithDepth(1, msg), ErrForbidden) }
func NotFound(msg string) error     { return cr.Mark(cr.NewWithDepth(1, msg), ErrNotFound) }
func Conflict(msg string) error     { return cr.Mark(cr.NewWithDepth(1, msg), ErrConflict) }

func Validationf(format string, args ...any) error {
	return cr.Mark(cr.NewWithDepthf(1, format, args...), ErrValidation)
}

func KindOf(err error) Kind {
	switch {
	case err == nil:
		return ""
	case cr.Is(err, ErrValidation):
		return KindValidation
	case cr.Is(err, ErrUnauthorized):
		return KindUnauthorized
	case cr.Is(err, ErrForbidden):
		return KindForbidden
	case cr.Is(err, ErrNotFound):
		return KindNotFound
	case cr.Is(err, ErrConflict):
		return KindConflict
	default:
		return KindInternal
	}
}

// PublicError lets lower layers expose a message that is safe to show to clients
// while keeping driver details in the wrapped chain.
type PublicError interface {
	error
	PublicMessage() string
}

// Message returns the client-facing text of err.
func Message(err error) string {
	var pe PublicError
	if cr.As(err, &pe) {
		return pe.PublicMessage()
	}
	return err.Error()
}
