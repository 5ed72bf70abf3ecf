// Package sink delivers generated units to their destination. The core
// generator only produces text; a sink decides where it lands and whether
// an external formatter runs over it afterwards.
package sink

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
)

const (
	dirPerm  = 0o750
	filePerm = 0o644
)

// Sink receives one generated unit under a destination key.
type Sink interface {
	Write(name, content string) error
}

// FileSink writes units into Dir and optionally runs an external formatter
// over each written file. A formatter failure is non-fatal: the content is
// already durably written, so it is only surfaced as a warning.
type FileSink struct {
	Dir       string
	Formatter string
	Logger    *slog.Logger
}

// NewFileSink creates a FileSink writing into dir. An empty formatter
// disables the formatting step.
func NewFileSink(dir, formatter string, logger *slog.Logger) *FileSink {
	if logger == nil {
		logger = slog.Default()
	}

	return &FileSink{Dir: dir, Formatter: formatter, Logger: logger}
}

// Write stores content under Dir/name and formats it in place.
func (s *FileSink) Write(name, content string) error {
	mkErr := os.MkdirAll(s.Dir, dirPerm)
	if mkErr != nil {
		return fmt.Errorf("create output dir: %w", mkErr)
	}

	path := filepath.Join(s.Dir, name)

	writeErr := os.WriteFile(path, []byte(content), filePerm)
	if writeErr != nil {
		return fmt.Errorf("write %s: %w", path, writeErr)
	}

	if s.Formatter == "" {
		return nil
	}

	out, fmtErr := exec.Command(s.Formatter, path).CombinedOutput()
	if fmtErr != nil {
		s.Logger.Warn("formatter failed, keeping unformatted output",
			"formatter", s.Formatter, "path", path, "err", fmtErr, "output", string(out))
	}

	return nil
}

// Memory is an in-memory sink for tests and check mode.
type Memory struct {
	Units map[string]string
}

// NewMemory creates an empty in-memory sink.
func NewMemory() *Memory {
	return &Memory{Units: make(map[string]string)}
}

// Write records content under name.
func (m *Memory) Write(name, content string) error {
	m.Units[name] = content

	return nil
}
