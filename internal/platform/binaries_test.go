package platform

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/Silica96/yt-dlp-tauri/internal/model"
)

func TestResolveCreatesBinDir(t *testing.T) {
	baseDir := t.TempDir()
	locator := NewLocator(baseDir)

	location, err := locator.Resolve()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	expectedBinDir := filepath.Join(baseDir, BinDirName)
	if location.BinDir != expectedBinDir {
		t.Errorf("expected bin dir %q, got %q", expectedBinDir, location.BinDir)
	}

	info, err := os.Stat(expectedBinDir)
	if err != nil {
		t.Fatalf("bin dir should exist after resolve: %v", err)
	}
	if !info.IsDir() {
		t.Error("bin dir should be a directory")
	}

	if location.YtDlpInstalled || location.FFmpegInstalled {
		t.Error("nothing should be installed in a fresh base dir")
	}
}

func TestPathIsDeterministic(t *testing.T) {
	locator := NewLocator("/some/base")

	first := locator.Path(model.BinaryYtDlp)
	second := locator.Path(model.BinaryYtDlp)
	if first != second {
		t.Errorf("path should be deterministic, got %q and %q", first, second)
	}

	if !strings.HasPrefix(first, filepath.Join("/some/base", BinDirName)) {
		t.Errorf("path %q should live under the bin dir", first)
	}

	if runtime.GOOS == OSWindows {
		if !strings.HasSuffix(first, WindowsExeSuffix) {
			t.Errorf("windows path %q should carry %s", first, WindowsExeSuffix)
		}
	} else {
		if strings.HasSuffix(first, WindowsExeSuffix) {
			t.Errorf("non-windows path %q should not carry %s", first, WindowsExeSuffix)
		}
	}
}

func TestIsInstalledReChecksFilesystem(t *testing.T) {
	locator := NewLocator(t.TempDir())
	if _, err := locator.Resolve(); err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	if locator.IsInstalled(model.BinaryYtDlp) {
		t.Fatal("binary should not be installed yet")
	}

	// Simulate an out-of-band install
	if err := os.WriteFile(locator.YtDlpPath(), []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatalf("failed to write stub binary: %v", err)
	}

	if !locator.IsInstalled(model.BinaryYtDlp) {
		t.Error("binary should be reported installed after the file appears")
	}
	if locator.IsInstalled(model.BinaryFFmpeg) {
		t.Error("ffmpeg should still be absent")
	}
}

func TestVersionNotInstalled(t *testing.T) {
	locator := NewLocator(t.TempDir())

	_, err := locator.Version(context.Background(), model.BinaryYtDlp)
	if !errors.Is(err, ErrNotInstalled) {
		t.Errorf("expected ErrNotInstalled, got %v", err)
	}
}

func TestVersionTrimsStdout(t *testing.T) {
	if runtime.GOOS == OSWindows {
		t.Skip("stub binaries are shell scripts")
	}

	locator := NewLocator(t.TempDir())
	if _, err := locator.Resolve(); err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	script := "#!/bin/sh\necho '2024.01.01'\n"
	if err := os.WriteFile(locator.YtDlpPath(), []byte(script), 0o755); err != nil {
		t.Fatalf("failed to write stub binary: %v", err)
	}

	version, err := locator.Version(context.Background(), model.BinaryYtDlp)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if version != "2024.01.01" {
		t.Errorf("expected trimmed version '2024.01.01', got %q", version)
	}
}

func TestVersionExecutionFailed(t *testing.T) {
	if runtime.GOOS == OSWindows {
		t.Skip("stub binaries are shell scripts")
	}

	locator := NewLocator(t.TempDir())
	if _, err := locator.Resolve(); err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	script := "#!/bin/sh\necho 'broken install' >&2\nexit 1\n"
	if err := os.WriteFile(locator.YtDlpPath(), []byte(script), 0o755); err != nil {
		t.Fatalf("failed to write stub binary: %v", err)
	}

	_, err := locator.Version(context.Background(), model.BinaryYtDlp)
	if !errors.Is(err, ErrExecutionFailed) {
		t.Fatalf("expected ErrExecutionFailed, got %v", err)
	}
	if !strings.Contains(err.Error(), "broken install") {
		t.Errorf("error should carry stderr, got %q", err.Error())
	}
}
