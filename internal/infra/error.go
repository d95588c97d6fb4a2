package infra

import (
	"database/sql"
	"errors"

	"salon-backend/internal/infra/db"
	"salon-backend/internal/pkg/errs"
)

type RepositoryErrorKind string

// Infrastructure-specific error kinds
const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
)

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// PublicMessage hides driver details from clients.
func (e RepositoryError) PublicMessage() string {
	switch e.Kind {
	case KindNotFound, KindDuplicateKey, KindForeignKeyViolated:
		return e.msg
	default:
		return "Internal server error"
	}
}

// WrapRepoErr classifies err from the driver unless a kind is given explicitly.
// The result also carries the matching errs kind so the HTTP layer can map it.
func WrapRepoErr(msg string, err error, kind ...RepositoryErrorKind) error {
	k := classify(err)
	if len(kind) > 0 {
		k = kind[0]
	}
	if err != nil {
		err = errs.Wrap(err, msg)
	}
	repoErr := RepositoryError{Kind: k, msg: msg, err: err}

	switch k {
	case KindNotFound:
		return errs.Mark(repoErr, errs.ErrNotFound)
	case KindDuplicateKey, KindForeignKeyViolated:
		return errs.Mark(repoErr, errs.ErrConflict)
	default:
		return repoErr
	}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

func classify(err error) RepositoryErrorKind {
	if errors.Is(err, sql.ErrNoRows) {
		return KindNotFound
	}
	switch db.Code(err) {
	case db.CodeUniqueViolation:
		return KindDuplicateKey
	case db.CodeForeignKeyViolation:
		return KindForeignKeyViolated
	default:
		return KindDBFailure
	}
}
