package testutil

import (
	"os"
	"testing"
)

func TestTempDir(t *testing.T) {
	dir := TempDir(t)
	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("temp dir not created: %v", err)
	}
	if !info.IsDir() {
		t.Fatalf("temp dir is not a directory: %s", dir)
	}
}

func TestWriteFixture(t *testing.T) {
	path := WriteFixture(t, "trip.json", `{"catch_kg":1}`)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	if string(data) != `{"catch_kg":1}` {
		t.Fatalf("unexpected fixture content: %q", data)
	}
}
