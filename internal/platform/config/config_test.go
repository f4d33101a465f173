package config_test

import (
	"testing"
	"time"

	"recordkeeper/internal/platform/config"
)

func TestMayAccessors(t *testing.T) {
	t.Setenv("RECORDS_PROCESS_WORKERS", "3")
	t.Setenv("RECORDS_PROCESS_DELAY", "250ms")
	t.Setenv("RECORDS_FLAG", "true")
	cfg := config.New().Prefix("RECORDS_")

	if got := cfg.MayInt("PROCESS_WORKERS", 10); got != 3 {
		t.Fatalf("MayInt = %d", got)
	}
	if got := cfg.MayInt("MISSING", 10); got != 10 {
		t.Fatalf("MayInt default = %d", got)
	}
	if got := cfg.MayDuration("PROCESS_DELAY", time.Second); got != 250*time.Millisecond {
		t.Fatalf("MayDuration = %v", got)
	}
	if !cfg.MayBool("FLAG", false) {
		t.Fatalf("MayBool should read true")
	}
	if got := cfg.MayString("MISSING", "x"); got != "x" {
		t.Fatalf("MayString default = %q", got)
	}
}

func TestInvalidValuesFallBack(t *testing.T) {
	t.Setenv("RECORDS_PROCESS_WORKERS", "lots")
	t.Setenv("RECORDS_PROCESS_DELAY", "soon")
	cfg := config.New().Prefix("RECORDS_")

	if got := cfg.MayInt("PROCESS_WORKERS", 10); got != 10 {
		t.Fatalf("invalid int should default, got %d", got)
	}
	if got := cfg.MayDuration("PROCESS_DELAY", time.Second); got != time.Second {
		t.Fatalf("invalid duration should default, got %v", got)
	}
}

func TestPrefixComposes(t *testing.T) {
	t.Setenv("A_B_KEY", "v")
	cfg := config.New().Prefix("A_").Prefix("B_")
	if got := cfg.MayString("KEY", ""); got != "v" {
		t.Fatalf("composed prefix = %q", got)
	}
}
