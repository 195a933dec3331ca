package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sloppy/catchmap/internal/testutil"
)

// unset clears key for the duration of the test and restores it afterwards.
func unset(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"CATCHMAP_PORT", "CATCHMAP_METRICS", "CATCHMAP_MAX_BODY_BYTES", "CATCHMAP_READ_TIMEOUT_SECONDS"} {
		unset(t, key)
	}
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != 8080 || !cfg.MetricsEnabled || cfg.MaxBodyBytes != 1<<20 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.ReadTimeout != 15*time.Second {
		t.Fatalf("unexpected read timeout: %v", cfg.ReadTimeout)
	}
}

func TestLoadEnvFile(t *testing.T) {
	unset(t, "CATCHMAP_PORT")
	unset(t, "CATCHMAP_METRICS")
	t.Setenv("CATCHMAP_MAX_BODY_BYTES", "4096")

	path := testutil.WriteFixture(t, ".env", "CATCHMAP_PORT=9191\nCATCHMAP_METRICS=false\nCATCHMAP_MAX_BODY_BYTES=1\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != 9191 || cfg.MetricsEnabled {
		t.Fatalf("env file not applied: %+v", cfg)
	}
	if cfg.MaxBodyBytes != 4096 {
		t.Fatalf("environment should win over env file, got %d", cfg.MaxBodyBytes)
	}
}

func TestLoadMissingEnvFile(t *testing.T) {
	unset(t, "CATCHMAP_PORT")
	if _, err := Load(filepath.Join(testutil.TempDir(t), "missing.env")); err != nil {
		t.Fatalf("missing env file should be ignored: %v", err)
	}
}

func TestLoadInvalidPort(t *testing.T) {
	t.Setenv("CATCHMAP_PORT", "70000")
	if _, err := Load(""); err == nil {
		t.Fatalf("expected invalid port error")
	}
}
