package raw_test

import (
	"testing"

	"recordkeeper/internal/platform/config/raw"
)

func TestGetWithPrefix(t *testing.T) {
	t.Setenv("LOG_LEVEL", " info ")
	rc := raw.New().Prefix("LOG_")

	if got := rc.Get("LEVEL", "debug"); got != "info" {
		t.Fatalf("Get = %q", got)
	}
	if got := rc.Get("MISSING", "fallback"); got != "fallback" {
		t.Fatalf("default = %q", got)
	}
}

func TestGetBool(t *testing.T) {
	t.Setenv("X_A", "yes")
	t.Setenv("X_B", "0")
	rc := raw.New().Prefix("X_")

	if !rc.GetBool("A", false) {
		t.Fatalf("yes should be true")
	}
	if rc.GetBool("B", true) {
		t.Fatalf("0 should be false")
	}
	if !rc.GetBool("C", true) {
		t.Fatalf("missing should default")
	}
}

func TestGetInt(t *testing.T) {
	t.Setenv("X_N", "42")
	t.Setenv("X_BAD", "4x2")
	rc := raw.New().Prefix("X_")

	if got := rc.GetInt("N", 7); got != 42 {
		t.Fatalf("GetInt = %d", got)
	}
	if got := rc.GetInt("BAD", 7); got != 7 {
		t.Fatalf("non-numeric should default, got %d", got)
	}
	if got := rc.GetInt("MISSING", 7); got != 7 {
		t.Fatalf("missing should default, got %d", got)
	}
}
