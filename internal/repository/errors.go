package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Kind classifies a data-layer failure for callers that must not inspect
// driver errors themselves.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindConflict
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindValidation:
		return "validation"
	default:
		return "internal"
	}
}

// Error is a translated data-layer error. Constraint names the violated
// unique index or column when the driver reports one.
type Error struct {
	Kind       Kind
	Constraint string
	Err        error
}

func (e *Error) Error() string {
	return e.Kind.String() + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ErrNotFound is returned when a by-id lookup, update or delete matches no row.
var ErrNotFound = &Error{Kind: KindNotFound, Err: gorm.ErrRecordNotFound}

// Translate maps gorm, Postgres and SQLite errors onto Kind. It is the only
// place in the code base that looks at driver error codes or texts.
func Translate(err error) error {
	if err == nil {
		return nil
	}
	var translated *Error
	if errors.As(err, &translated) {
		return err
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return &Error{Kind: KindNotFound, Err: err}
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return &Error{Kind: KindConflict, Err: err}
	case errors.Is(err, gorm.ErrForeignKeyViolated), errors.Is(err, gorm.ErrCheckConstraintViolated):
		return &Error{Kind: KindValidation, Err: err}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch strings.TrimSpace(pgErr.Code) {
		case "23505": // unique_violation
			return &Error{Kind: KindConflict, Constraint: pgErr.ConstraintName, Err: err}
		case "23503", "23502", "23514", "22P02": // fk, not null, check, invalid text representation
			return &Error{Kind: KindValidation, Constraint: pgErr.ConstraintName, Err: err}
		}
		return &Error{Kind: KindInternal, Err: err}
	}

	msg := err.Error()
	if idx := strings.Index(msg, "UNIQUE constraint failed: "); idx >= 0 {
		return &Error{Kind: KindConflict, Constraint: strings.TrimSpace(msg[idx+len("UNIQUE constraint failed: "):]), Err: err}
	}
	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(lower, "duplicate key"):
		return &Error{Kind: KindConflict, Err: err}
	case strings.Contains(lower, "foreign key constraint failed"), strings.Contains(lower, "not null constraint failed"):
		return &Error{Kind: KindValidation, Err: err}
	}
	return &Error{Kind: KindInternal, Err: err}
}

// KindOf reports the Kind of a translated error; untranslated errors are internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

func IsNotFound(err error) bool {
	return err != nil && KindOf(err) == KindNotFound
}

func IsConflict(err error) bool {
	return err != nil && KindOf(err) == KindConflict
}

// ConstraintOf returns the violated constraint of a translated error, if known.
func ConstraintOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Constraint
	}
	return ""
}
