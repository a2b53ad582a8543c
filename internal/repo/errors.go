package repo

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Sentinel errors surfaced by the repositories. Callers match them with
// errors.Is and translate them at the request boundary.
var (
	ErrGarmentNotFound  = errors.New("garment not found")
	ErrSupplierNotFound = errors.New("supplier not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrSettingNotFound  = errors.New("setting not found")

	// ErrDuplicatedValueUnique reports a unique-constraint violation,
	// e.g. registering a username that already exists.
	ErrDuplicatedValueUnique = errors.New("duplicated value violates unique constraint")

	// ErrSupplierInUse is returned when deleting a supplier still
	// referenced by garments. Deletes are restricted rather than
	// cascaded or nullified.
	ErrSupplierInUse = errors.New("supplier is referenced by garments")

	// ErrInvalidQuantityChange is returned when an adjustment would take
	// a garment quantity below zero.
	ErrInvalidQuantityChange = errors.New("quantity change would make quantity negative")
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation
}
