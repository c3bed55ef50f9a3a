package melt

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// MissingResourceError reports a required file or directory that does not
// exist.
type MissingResourceError struct {
	What string // human description, e.g. "BAM file"
	Path string
}

func (e *MissingResourceError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.What, e.Path)
}

// ParseIntTrunc parses a decimal numeric string, discarding any fractional
// part. The digits before the point are used unchanged, never rounded:
// "30.7" yields 30.
func ParseIntTrunc(s string) (int, error) {
	whole := s
	if i := strings.IndexByte(whole, '.'); i >= 0 {
		whole = whole[:i]
	}
	n, err := strconv.Atoi(whole)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	return n, nil
}

// TrimDirPath strips trailing path separators so that derived paths and log
// lines never carry a doubled separator. The root directory is left intact.
func TrimDirPath(p string) string {
	for len(p) > 1 && p[len(p)-1] == filepath.Separator {
		p = p[:len(p)-1]
	}
	return p
}

// Validate runs the launch preconditions in fixed order and returns the
// first failure. There is no aggregation: one missing resource aborts the
// run before anything is written.
func (o *Opts) Validate() error {
	checks := []struct {
		what string
		path string
		dir  bool
	}{
		{"BAM file", o.BAMPath, false},
		{"BAM index", o.BAMPath + ".bai", false},
		{"reference FASTA", o.RefPath, false},
		{"MELT directory", o.ToolDir, true},
		{"MELT jar", filepath.Join(o.ToolDir, JarName), false},
	}
	for _, c := range checks {
		info, err := os.Stat(c.path)
		if err != nil || (c.dir && !info.IsDir()) {
			return &MissingResourceError{What: c.what, Path: c.path}
		}
	}
	return nil
}
