package melt

import (
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// Opts collects every knob for a single MELT launch. All fields are filled in
// at the CLI boundary; nothing below it reads the environment.
type Opts struct {
	// BAMPath is the aligned, coordinate-sorted input BAM. A sibling
	// <BAMPath>.bai index must exist.
	BAMPath string
	// RefPath is the reference FASTA the BAM was aligned against.
	RefPath string

	// Coverage, ReadLength and MeanInsertSize describe the sequencing
	// library. Decimal CLI inputs are truncated, never rounded.
	Coverage       int
	ReadLength     int
	MeanInsertSize int

	// ToolDir is the MELT installation directory, holding MELT.jar, me_refs/
	// and add_bed_files/. No trailing separator.
	ToolDir string
	// RunDir is the working directory for this run, created if absent. No
	// trailing separator.
	RunDir string
	// RefVersion selects the genome build resource set: "19" or "38".
	RefVersion string

	// JVMMaxMem is handed to the Java runtime as -Xmx<JVMMaxMem>.
	JVMMaxMem string
	// MinChrLength is MELT's minimum contig length filter (its -d flag).
	MinChrLength int

	// JavaPath overrides the Java runtime binary. Empty means look up "java"
	// on PATH.
	JavaPath string
	// Console receives the echo of every run-log line and the child's
	// stdout. Nil means os.Stdout.
	Console io.Writer
}

// DefaultOpts sets the default values of Opts.
var DefaultOpts = Opts{
	JVMMaxMem:    "12G",
	MinChrLength: 40000000,
}

// Environment variables recognized by ApplyEnv.
const (
	JVMMaxMemEnv    = "JVM_MAX_MEM"
	MinChrLengthEnv = "MIN_CHR_LENGTH"
)

// ApplyEnv overlays the JVM_MAX_MEM and MIN_CHR_LENGTH environment overrides
// onto o. Unset or empty variables leave the corresponding field alone.
func (o *Opts) ApplyEnv() error {
	if v := os.Getenv(JVMMaxMemEnv); v != "" {
		o.JVMMaxMem = v
	}
	if v := os.Getenv(MinChrLengthEnv); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Errorf("invalid %s value %q: want an integer", MinChrLengthEnv, v)
		}
		o.MinChrLength = n
	}
	return nil
}
