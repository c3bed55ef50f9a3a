package melt

import (
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"v.io/x/lib/envvar"
	"v.io/x/lib/lookpath"
)

// Run validates opts, prepares the run directory and launches MELT once,
// blocking until it exits. Every step is recorded in the run log, which is
// closed on all return paths. A non-zero exit from MELT comes back as the
// unwrapped *exec.ExitError so callers can propagate the exact exit code.
func Run(ctx context.Context, opts Opts) (err error) {
	if err = opts.Validate(); err != nil {
		return err
	}
	if err = os.MkdirAll(opts.RunDir, 0755); err != nil {
		return errors.Wrapf(err, "create run directory %s", opts.RunDir)
	}
	rlog, err := OpenRunLog(filepath.Join(opts.RunDir, LogName), opts.Console)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := rlog.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	rlog.Printf("starting MELT launch: bam=%s ref=%s coverage=%d read_len=%d mean_insert_size=%d melt_dir=%s run_dir=%s build=%s",
		opts.BAMPath, opts.RefPath, opts.Coverage, opts.ReadLength, opts.MeanInsertSize,
		opts.ToolDir, opts.RunDir, opts.RefVersion)
	rlog.Printf("JVM max heap %s, minimum contig length %d", opts.JVMMaxMem, opts.MinChrLength)

	if total, pass, perr := ProbeBAMHeader(opts.BAMPath, opts.MinChrLength); perr != nil {
		rlog.Printf("warning: could not read BAM header: %v", perr)
	} else {
		rlog.Printf("BAM header: %d contigs, %d at or above %dbp", total, pass, opts.MinChrLength)
	}

	res, err := ResourcesForBuild(opts.ToolDir, opts.RefVersion)
	if err != nil {
		rlog.Printf("%v", err)
		return err
	}
	if _, serr := os.Stat(res.GeneAnnotation); serr != nil {
		err = &MissingResourceError{What: "gene annotation file", Path: res.GeneAnnotation}
		rlog.Printf("%v", err)
		return err
	}
	rlog.Printf("gene annotation: %s", res.GeneAnnotation)

	manifest := filepath.Join(opts.RunDir, ManifestName)
	n, err := WriteTransposonManifest(ctx, manifest, res.MERefsDir)
	if err != nil {
		rlog.Printf("%v", err)
		return err
	}
	rlog.Printf("wrote %d transposon references to %s", n, manifest)

	java := opts.JavaPath
	if java == "" {
		j, lerr := lookpath.Look(envvar.SliceToMap(os.Environ()), "java")
		if lerr != nil {
			err = errors.Wrap(lerr, "java runtime not found")
			rlog.Printf("%v", err)
			return err
		}
		java = j
	}
	argv := []string{
		"-Xmx" + opts.JVMMaxMem,
		"-jar", filepath.Join(opts.ToolDir, JarName),
		"Single",
		"-bamfile", opts.BAMPath,
		"-h", opts.RefPath,
		"-c", strconv.Itoa(opts.Coverage),
		"-r", strconv.Itoa(opts.ReadLength),
		"-e", strconv.Itoa(opts.MeanInsertSize),
		"-d", strconv.Itoa(opts.MinChrLength),
		"-t", manifest,
		"-n", res.GeneAnnotation,
		"-w", opts.RunDir,
	}
	rlog.Printf("invoking %s %s", java, strings.Join(argv, " "))

	var console io.Writer = os.Stdout
	if opts.Console != nil {
		console = opts.Console
	}
	cmd := exec.CommandContext(ctx, java, argv...)
	cmd.Stdout = console
	cmd.Stderr = os.Stderr
	if err = cmd.Run(); err != nil {
		rlog.Printf("MELT failed: %v", err)
		return err
	}
	rlog.Printf("MELT completed successfully")
	return nil
}
