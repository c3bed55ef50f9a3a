package melt

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/grailbio/base/errors"
)

// LogName is the fixed run-log filename inside the run directory.
const LogName = "ayan_melt_wrapper.log"

const logTimeLayout = "2006-01-02 15:04:05"

// RunLog appends timestamped lines to the run-directory log file and echoes
// every line to a console writer. It is append-only, with no rotation, and
// not safe for concurrent use; launches are strictly sequential.
type RunLog struct {
	f       *os.File
	console io.Writer
	now     func() time.Time
	err     errors.Once
}

// OpenRunLog opens the log file at path in append mode, creating it if
// needed. Lines are mirrored to console; a nil console means os.Stdout.
func OpenRunLog(path string, console io.Writer) (*RunLog, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	if console == nil {
		console = os.Stdout
	}
	return &RunLog{f: f, console: console, now: time.Now}, nil
}

// Printf writes one "YYYY-MM-DD HH:MM:SS <message>" line to the log file and
// the console. Write errors are collected and reported by Close.
func (l *RunLog) Printf(format string, args ...interface{}) {
	line := fmt.Sprintf("%s %s\n", l.now().Format(logTimeLayout), fmt.Sprintf(format, args...))
	_, err := l.f.WriteString(line)
	l.err.Set(err)
	_, err = io.WriteString(l.console, line)
	l.err.Set(err)
}

// Close closes the log file and returns the first error seen on any write or
// on the close itself.
func (l *RunLog) Close() error {
	l.err.Set(l.f.Close())
	return l.err.Err()
}
