// Package logging builds the application's logfmt logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	gokitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// New returns a leveled logfmt logger appending to the file at path, and the
// file so the caller can close it on exit.
func New(path, lvl string) (gokitlog.Logger, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	logger, err := NewWriter(file, lvl)
	if err != nil {
		file.Close()
		return nil, nil, err
	}
	return logger, file, nil
}

// NewWriter returns a leveled logfmt logger writing to w.
func NewWriter(w io.Writer, lvl string) (gokitlog.Logger, error) {
	opt, err := levelOption(lvl)
	if err != nil {
		return nil, err
	}
	logger := gokitlog.NewLogfmtLogger(gokitlog.NewSyncWriter(w))
	logger = level.NewFilter(logger, opt)
	logger = gokitlog.With(logger, "ts", gokitlog.DefaultTimestampUTC, "caller", gokitlog.DefaultCaller)
	return logger, nil
}

func levelOption(lvl string) (level.Option, error) {
	switch strings.ToLower(strings.TrimSpace(lvl)) {
	case "debug":
		return level.AllowDebug(), nil
	case "", "info":
		return level.AllowInfo(), nil
	case "warn", "warning":
		return level.AllowWarn(), nil
	case "error":
		return level.AllowError(), nil
	case "none", "off":
		return level.AllowNone(), nil
	}
	return nil, fmt.Errorf("unknown log level %q", lvl)
}
