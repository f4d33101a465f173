package errors

// Postgres-specific helpers for mapping pgx errors to project ErrorCode

import (
	stderrs "errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Common SQLSTATE codes we care about
const (
	pgErrUniqueViolation     = "23505"
	pgErrForeignKeyViolation = "23503"
	pgErrNotNullViolation    = "23502"
	pgErrCheckViolation      = "23514"

	pgErrSerializationFailure = "40001"
	pgErrDeadlockDetected     = "40P01"
	pgErrCannotConnectNow     = "57P03" // i.e. startup in progress
)

// ExtractPgError returns (*pgconn.PgError, true) if the root cause is a PgError.
func ExtractPgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if stderrs.As(Root(err), &pgErr) {
		return pgErr, true
	}
	return nil, false
}

// IsSQLState reports whether the error is a Postgres error with the given SQLSTATE code
func IsSQLState(err error, code string) bool {
	pgErr, ok := ExtractPgError(err)
	return ok && pgErr.Code == code
}

// IsDuplicateKey reports whether the error is a unique constraint violation
func IsDuplicateKey(err error) bool { return IsSQLState(err, pgErrUniqueViolation) }

// IsForeignKeyViolation reports whether the error is a foreign key constraint violation
func IsForeignKeyViolation(err error) bool { return IsSQLState(err, pgErrForeignKeyViolation) }

// IsNoRows reports whether the error is pgx.ErrNoRows at any depth
func IsNoRows(err error) bool { return stderrs.Is(err, pgx.ErrNoRows) }

// IsRetryable reports whether a retry of the statement may succeed
func IsRetryable(err error) bool {
	return IsSQLState(err, pgErrSerializationFailure) ||
		IsSQLState(err, pgErrDeadlockDetected) ||
		IsSQLState(err, pgErrCannotConnectNow)
}

// FromPg maps a Postgres error to a coded project error, passing nil through
func FromPg(err error) error {
	switch {
	case err == nil:
		return nil
	case IsNoRows(err):
		return Wrap(err, ErrorCodeNotFound, "row not found")
	case IsDuplicateKey(err):
		return Wrap(err, ErrorCodeDuplicateKey, "duplicate key")
	case IsSQLState(err, pgErrNotNullViolation), IsSQLState(err, pgErrCheckViolation):
		return Wrap(err, ErrorCodeInvalidArgument, "constraint violation")
	default:
		return Wrap(err, ErrorCodeDB, "database error")
	}
}
