package errors_test

import (
	stderrs "errors"
	"net/http"
	"testing"

	perr "recordkeeper/internal/platform/errors"
)

func TestCodeToHTTPStatus(t *testing.T) {
	cases := []struct {
		code perr.ErrorCode
		want int
	}{
		{perr.ErrorCodeNotFound, http.StatusNotFound},
		{perr.ErrorCodeValidation, http.StatusBadRequest},
		{perr.ErrorCodeJSON, http.StatusBadRequest},
		{perr.ErrorCodeInvalidArgument, http.StatusBadRequest},
		{perr.ErrorCodeDuplicateKey, http.StatusConflict},
		{perr.ErrorCodeConflict, http.StatusConflict},
		{perr.ErrorCodeUnavailable, http.StatusServiceUnavailable},
		{perr.ErrorCodeDB, http.StatusInternalServerError},
		{perr.ErrorCodePanic, http.StatusInternalServerError},
		{perr.ErrorCodeUnknown, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := perr.HTTPStatusCode(tc.code); got != tc.want {
			t.Fatalf("HTTPStatusCode(%d) = %d, want %d", tc.code, got, tc.want)
		}
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrs.New("boom")
	err := perr.Wrap(cause, perr.ErrorCodeDB, "query failed")

	if !stderrs.Is(err, cause) {
		t.Fatalf("wrapped cause lost")
	}
	if perr.CodeOf(err) != perr.ErrorCodeDB {
		t.Fatalf("code = %d", perr.CodeOf(err))
	}
	if perr.Root(err) != cause {
		t.Fatalf("Root = %v", perr.Root(err))
	}
}

func TestValidationfCarriesField(t *testing.T) {
	err := perr.Validationf("email", "Invalid email format")
	e, ok := perr.As(err)
	if !ok {
		t.Fatalf("not a project error")
	}
	if e.Field() != "email" || e.Message() != "Invalid email format" {
		t.Fatalf("field = %q msg = %q", e.Field(), e.Message())
	}
	if perr.HTTPStatus(err) != http.StatusBadRequest {
		t.Fatalf("status = %d", perr.HTTPStatus(err))
	}
}

func TestWithFieldCopyOnWrite(t *testing.T) {
	orig := perr.NotFoundf("nope")
	tagged := perr.WithField(orig, "id")

	oe, _ := perr.As(orig)
	te, _ := perr.As(tagged)
	if oe.Field() != "" {
		t.Fatalf("original mutated: %q", oe.Field())
	}
	if te.Field() != "id" {
		t.Fatalf("field = %q", te.Field())
	}
}

func TestCodeOfForeignError(t *testing.T) {
	if perr.CodeOf(stderrs.New("plain")) != perr.ErrorCodeUnknown {
		t.Fatalf("foreign errors should map to unknown")
	}
	if perr.HTTPStatus(stderrs.New("plain")) != http.StatusInternalServerError {
		t.Fatalf("foreign errors should map to 500")
	}
}
