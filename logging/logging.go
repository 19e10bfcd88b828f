// Package logging wires the leveled process logger
// The terminal owns stdout, so logs go to a file under logs/ when debugging and are
// discarded otherwise
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	gologging "github.com/op/go-logging"
	"github.com/pkg/errors"
)

const (
	logDir      = "logs"
	logFileName = "vi-maze.log"
	maxLogSize  = 10 * 1024 * 1024
)

// Log is the process logger
var Log = gologging.MustGetLogger("vi-maze")

var format = gologging.MustStringFormatter(
	`%{time:15:04:05.000} %{shortfunc} ▶ %{level:.4s} %{id:03x} %{message}`,
)

// Setup routes Log and the standard logger
// With debug it appends to dir/vi-maze.log, rotating files over 10MB, and returns
// the open file for the caller to close; without debug both loggers discard and
// the file is nil
func Setup(dir string, debug bool) (*os.File, error) {
	if !debug {
		route(io.Discard, gologging.ERROR)
		return nil, nil
	}
	if dir == "" {
		dir = logDir
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		route(io.Discard, gologging.ERROR)
		return nil, errors.Wrap(err, "create log dir")
	}

	path := filepath.Join(dir, logFileName)
	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(dir, fmt.Sprintf("vi-maze-%s.log", time.Now().Format("20060102-150405")))
		if err := os.Rename(path, rotated); err != nil {
			return nil, errors.Wrap(err, "rotate log")
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		route(io.Discard, gologging.ERROR)
		return nil, errors.Wrap(err, "open log")
	}
	route(f, gologging.DEBUG)
	return f, nil
}

func route(w io.Writer, level gologging.Level) {
	backend := gologging.NewLogBackend(w, "", 0)
	leveled := gologging.AddModuleLevel(gologging.NewBackendFormatter(backend, format))
	leveled.SetLevel(level, "")
	gologging.SetBackend(leveled)

	log.SetOutput(w)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
}
