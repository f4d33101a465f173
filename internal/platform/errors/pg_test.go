package errors_test

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	perr "recordkeeper/internal/platform/errors"
)

func TestFromPgNoRows(t *testing.T) {
	err := perr.FromPg(pgx.ErrNoRows)
	if !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestFromPgDuplicateKey(t *testing.T) {
	cause := &pgconn.PgError{Code: "23505"}
	err := perr.FromPg(fmt.Errorf("exec: %w", cause))
	if !perr.IsCode(err, perr.ErrorCodeDuplicateKey) {
		t.Fatalf("expected duplicate key, got %v", err)
	}
	if !perr.IsDuplicateKey(err) {
		t.Fatalf("IsDuplicateKey should see through wrapping")
	}
}

func TestFromPgUnknownSQLState(t *testing.T) {
	cause := &pgconn.PgError{Code: "42P01"} // undefined table
	err := perr.FromPg(cause)
	if !perr.IsCode(err, perr.ErrorCodeDB) {
		t.Fatalf("expected db error, got %v", err)
	}
}

func TestFromPgNil(t *testing.T) {
	if perr.FromPg(nil) != nil {
		t.Fatalf("nil should pass through")
	}
}

func TestIsRetryable(t *testing.T) {
	if !perr.IsRetryable(&pgconn.PgError{Code: "40001"}) {
		t.Fatalf("serialization failure should be retryable")
	}
	if perr.IsRetryable(&pgconn.PgError{Code: "23505"}) {
		t.Fatalf("duplicate key should not be retryable")
	}
}
