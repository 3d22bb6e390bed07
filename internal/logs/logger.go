package logs

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
)

var (
	Logger  *log.Logger
	logFile *os.File
	mu      sync.Mutex
)

const prefix = "[dvlg] "

// Output goes nowhere until Initialize is given a directory; stdout belongs
// to the rendered journal.
func init() {
	Logger = log.New(io.Discard, prefix, log.LstdFlags|log.Lshortfile)
}

// Initialize points the logger at <logDir>/debug.log. An empty logDir keeps
// logging disabled.
func Initialize(logDir string) error {
	mu.Lock()
	defer mu.Unlock()

	if logDir == "" {
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		return err
	}

	logPath := filepath.Join(logDir, "debug.log")
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return err
	}

	if logFile != nil {
		logFile.Close()
	}

	logFile = f
	Logger = log.New(f, prefix, log.LstdFlags|log.Lshortfile)

	Logger.Printf("Logger initialized at: %s", logPath)

	return nil
}

// Close closes the log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		Logger = log.New(io.Discard, prefix, log.LstdFlags|log.Lshortfile)
		return err
	}
	return nil
}
