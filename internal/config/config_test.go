package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("FIXGEN_OUT_DIR", "")
	t.Setenv("FIXGEN_ROWS", "")
	t.Setenv("FIXGEN_BATCH_SIZE", "")
	t.Setenv("FIXGEN_LOG_LEVEL", "")

	cfg := Load()
	if cfg.OutDir != "." {
		t.Fatalf("OutDir default: got %q", cfg.OutDir)
	}
	if cfg.Rows != 90000 {
		t.Fatalf("Rows default: got %d", cfg.Rows)
	}
	if cfg.BatchSize != 1000 {
		t.Fatalf("BatchSize default: got %d", cfg.BatchSize)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("LogLevel default: got %q", cfg.LogLevel)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("FIXGEN_OUT_DIR", "fixtures")
	t.Setenv("FIXGEN_ROWS", "1234")
	t.Setenv("FIXGEN_BATCH_SIZE", "50")
	t.Setenv("FIXGEN_LOG_LEVEL", "debug")

	cfg := Load()
	if cfg.OutDir != "fixtures" {
		t.Fatalf("OutDir: got %q", cfg.OutDir)
	}
	if cfg.Rows != 1234 {
		t.Fatalf("Rows: got %d", cfg.Rows)
	}
	if cfg.BatchSize != 50 {
		t.Fatalf("BatchSize: got %d", cfg.BatchSize)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("LogLevel: got %q", cfg.LogLevel)
	}
}

func TestLoadBadNumbersFallBack(t *testing.T) {
	t.Setenv("FIXGEN_ROWS", "many")
	t.Setenv("FIXGEN_BATCH_SIZE", "a few")

	cfg := Load()
	if cfg.Rows != 90000 {
		t.Fatalf("Rows: got %d", cfg.Rows)
	}
	if cfg.BatchSize != 1000 {
		t.Fatalf("BatchSize: got %d", cfg.BatchSize)
	}
}
