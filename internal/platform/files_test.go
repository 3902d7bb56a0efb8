package platform

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	base := t.TempDir()
	target := filepath.Join(base, "nested", "dir")

	if err := CreateDirectoryIfNotExists(target); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	info, err := os.Stat(target)
	if err != nil {
		t.Fatalf("directory should exist: %v", err)
	}
	if !info.IsDir() {
		t.Error("created path should be a directory")
	}

	// Idempotent on an existing directory
	if err := CreateDirectoryIfNotExists(target); err != nil {
		t.Errorf("expected no error for existing directory, got %v", err)
	}
}

func TestGetHomeDownloadsDir(t *testing.T) {
	dir, err := GetHomeDownloadsDir()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if filepath.Base(dir) != "Downloads" {
		t.Errorf("expected a Downloads directory, got %q", dir)
	}
}
