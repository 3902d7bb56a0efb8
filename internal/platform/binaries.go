package platform

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/Silica96/yt-dlp-tauri/internal/model"
)

// Operating system constants
const (
	OSWindows = "windows"
)

// Windows executables carry a suffix
const (
	WindowsExeSuffix = ".exe"
)

// Binary directory layout
const (
	AppDirName = "yt-dlp-tauri"
	BinDirName = "bin"
)

// Version probing
const (
	DefaultVersionTimeout = 10 * time.Second

	YtDlpVersionFlag  = "--version"
	FFmpegVersionFlag = "-version"
)

var (
	// ErrDirectoryUnavailable indicates the private binary directory could
	// not be created (e.g. no writable home).
	ErrDirectoryUnavailable = errors.New("binary directory unavailable")
	// ErrNotInstalled indicates the requested binary is absent.
	ErrNotInstalled = errors.New("binary not installed")
	// ErrExecutionFailed indicates the binary was found but exited nonzero.
	ErrExecutionFailed = errors.New("binary execution failed")
)

// Locator resolves filesystem paths for the managed binaries inside an
// application-private directory. Paths never change during process lifetime;
// installed state is re-checked on every query because installation happens
// out-of-band.
type Locator struct {
	baseDir        string
	versionTimeout time.Duration
}

// NewLocator creates a locator rooted at the given base directory. Tests
// point this at an isolated temporary directory.
func NewLocator(baseDir string) *Locator {
	return &Locator{
		baseDir:        baseDir,
		versionTimeout: DefaultVersionTimeout,
	}
}

// DefaultBaseDir returns the application-private data directory for the
// current user.
func DefaultBaseDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDirectoryUnavailable, err)
	}
	return filepath.Join(configDir, AppDirName), nil
}

// SetVersionTimeout sets the timeout for version probing
func (l *Locator) SetVersionTimeout(timeout time.Duration) {
	l.versionTimeout = timeout
}

// BinDir returns the directory holding the managed binaries
func (l *Locator) BinDir() string {
	return filepath.Join(l.baseDir, BinDirName)
}

// BinaryName returns the OS-conventional executable name for a kind
func BinaryName(kind model.BinaryKind) string {
	name := string(kind)
	if runtime.GOOS == OSWindows {
		name += WindowsExeSuffix
	}
	return name
}

// Path returns the absolute path of a managed binary. The path is
// deterministic and computed without touching the filesystem.
func (l *Locator) Path(kind model.BinaryKind) string {
	return filepath.Join(l.BinDir(), BinaryName(kind))
}

// YtDlpPath returns the resolved path of the downloader binary
func (l *Locator) YtDlpPath() string {
	return l.Path(model.BinaryYtDlp)
}

// FFmpegPath returns the resolved path of the muxer binary
func (l *Locator) FFmpegPath() string {
	return l.Path(model.BinaryFFmpeg)
}

// IsInstalled reports whether the binary exists on disk. It never executes
// the binary.
func (l *Locator) IsInstalled(kind model.BinaryKind) bool {
	info, err := os.Stat(l.Path(kind))
	return err == nil && !info.IsDir()
}

// EnsureBinDir creates the private binary directory if absent
func (l *Locator) EnsureBinDir() error {
	if err := os.MkdirAll(l.BinDir(), DefaultDirPermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrDirectoryUnavailable, err)
	}
	return nil
}

// Resolve ensures the binary directory exists and returns the current
// location snapshot. The installed flags are valid only at the moment of the
// call.
func (l *Locator) Resolve() (model.BinaryLocation, error) {
	if err := l.EnsureBinDir(); err != nil {
		return model.BinaryLocation{}, err
	}

	return model.BinaryLocation{
		BinDir:          l.BinDir(),
		YtDlpPath:       l.YtDlpPath(),
		FFmpegPath:      l.FFmpegPath(),
		YtDlpInstalled:  l.IsInstalled(model.BinaryYtDlp),
		FFmpegInstalled: l.IsInstalled(model.BinaryFFmpeg),
	}, nil
}

// Version invokes the binary with its version flag and returns trimmed
// stdout on zero exit.
func (l *Locator) Version(ctx context.Context, kind model.BinaryKind) (string, error) {
	if !l.IsInstalled(kind) {
		return "", ErrNotInstalled
	}

	flag := YtDlpVersionFlag
	if kind == model.BinaryFFmpeg {
		flag = FFmpegVersionFlag
	}

	ctx, cancel := context.WithTimeout(ctx, l.versionTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, l.Path(kind), flag)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%w: %s", ErrExecutionFailed, strings.TrimSpace(stderr.String()))
	}

	return strings.TrimSpace(stdout.String()), nil
}
