package main

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/ayanlab/bio-melt/melt"
	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
)

const usageText = `Usage:
  bio-melt <bam> <ref.fa> <coverage> <read_len> <mean_insert_size> <melt_dir> <run_dir> <ref_version>

Arguments:
  bam               aligned, coordinate-sorted BAM; <bam>.bai must sit next to it
  ref.fa            reference FASTA the BAM was aligned against
  coverage          mean sequencing coverage (decimals truncated)
  read_len          read length (decimals truncated)
  mean_insert_size  mean library insert size (decimals truncated)
  melt_dir          MELT installation directory (MELT.jar, me_refs/, add_bed_files/)
  run_dir           working directory for this run, created if absent
  ref_version       genome build: 19 or 38

Environment:
  JVM_MAX_MEM       max Java heap for MELT (default 12G)
  MIN_CHR_LENGTH    minimum contig length passed to MELT (default 40000000)
`

func usage() {
	fmt.Print(usageText)
}

// parseArgs maps the eight positional arguments onto melt.Opts. It rejects a
// wrong argument count and empty values, and truncates decimal numerics.
func parseArgs(args []string) (melt.Opts, error) {
	opts := melt.DefaultOpts
	if len(args) != 8 {
		return opts, fmt.Errorf("want 8 arguments, got %d", len(args))
	}
	for i, a := range args {
		if a == "" {
			return opts, fmt.Errorf("argument %d is empty", i+1)
		}
	}
	var err error
	opts.BAMPath = args[0]
	opts.RefPath = args[1]
	if opts.Coverage, err = melt.ParseIntTrunc(args[2]); err != nil {
		return opts, fmt.Errorf("coverage: %v", err)
	}
	if opts.ReadLength, err = melt.ParseIntTrunc(args[3]); err != nil {
		return opts, fmt.Errorf("read_len: %v", err)
	}
	if opts.MeanInsertSize, err = melt.ParseIntTrunc(args[4]); err != nil {
		return opts, fmt.Errorf("mean_insert_size: %v", err)
	}
	opts.ToolDir = melt.TrimDirPath(args[5])
	opts.RunDir = melt.TrimDirPath(args[6])
	opts.RefVersion = args[7]
	return opts, nil
}

func run() int {
	args := flag.Args()
	if len(args) == 0 {
		usage()
		return 0
	}
	opts, err := parseArgs(args)
	if err != nil {
		fmt.Printf("bio-melt %s: %v\n", strings.Join(args, " "), err)
		return 1
	}
	if err := opts.ApplyEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "bio-melt: %v\n", err)
		return 1
	}
	ctx := vcontext.Background()
	if err := melt.Run(ctx, opts); err != nil {
		if ee, ok := err.(*exec.ExitError); ok {
			return ee.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "bio-melt: %v\n", err)
		return 1
	}
	log.Debug.Printf("exiting")
	return 0
}

func main() {
	flag.Usage = usage
	shutdown := grail.Init()
	status := run()
	shutdown()
	if status != 0 {
		os.Exit(status)
	}
}
