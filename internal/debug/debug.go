// Package debug provides opt-in diagnostic logging for emissor.
// Logging is only enabled when the --debug flag (or the debug config key) is
// set. Records go to ~/.emissor/debug.log, truncated on each launch, in slog
// text format.
package debug

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const (
	// LogFileName is the name of the debug log file.
	LogFileName = "debug.log"
	// LogDirName is the name of the directory containing the log file.
	LogDirName = ".emissor"
)

var (
	mu      sync.RWMutex
	enabled bool
	logger  *slog.Logger
	logFile *os.File

	// getLogPath is a function variable to allow overriding in tests.
	getLogPath = defaultGetLogPath
)

// Init initializes the debug logging system.
// If enable is false, all logging operations become no-ops.
func Init(enable bool) error {
	mu.Lock()
	defer mu.Unlock()

	closeLocked()
	enabled = enable
	if !enable {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
		return nil
	}

	logPath, err := getLogPath()
	if err != nil {
		return fmt.Errorf("determine log path: %w", err)
	}

	//nolint:gosec // G301: User config directory needs standard permissions
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}

	//nolint:gosec // G304: Log path is computed from user home, not user input
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	logFile = f

	logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	logger.Info("debug log started", "at", time.Now().Format(time.RFC3339), "pid", os.Getpid())

	return nil
}

// Close closes the debug log file if open.
// Safe to call even if logging is disabled.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
}

func closeLocked() {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}

// Log writes a debug record if debug logging is enabled.
// Arguments are handled in the manner of fmt.Sprint.
func Log(v ...any) {
	if l := active(); l != nil {
		l.Debug(fmt.Sprint(v...))
	}
}

// Logf writes a formatted debug record if debug logging is enabled.
func Logf(format string, v ...any) {
	if l := active(); l != nil {
		l.Debug(fmt.Sprintf(format, v...))
	}
}

// Attrs writes a debug record with structured key/value pairs.
func Attrs(msg string, args ...any) {
	if l := active(); l != nil {
		l.Debug(msg, args...)
	}
}

func active() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	if !enabled || logger == nil {
		return nil
	}
	return logger
}

// Enabled returns whether debug logging is currently enabled.
func Enabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

func defaultGetLogPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determine user home: %w", err)
	}
	return filepath.Join(home, LogDirName, LogFileName), nil
}

// GetLogPath returns the path to the debug log file.
func GetLogPath() (string, error) {
	return getLogPath()
}
