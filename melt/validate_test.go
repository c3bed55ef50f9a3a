package melt

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grailbio/testutil"
	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
)

func TestParseIntTrunc(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"30", 30, true},
		{"30.7", 30, true},
		{"30.9", 30, true},
		{"30.999", 30, true},
		{"0.9", 0, true},
		{"150.0", 150, true},
		{"40000000", 40000000, true},
		{"", 0, false},
		{"abc", 0, false},
		{".5", 0, false},
		{"12,5", 0, false},
	}
	for _, tt := range tests {
		got, err := ParseIntTrunc(tt.in)
		if !tt.ok {
			expect.True(t, err != nil, "input %q", tt.in)
			continue
		}
		expect.NoError(t, err, "input %q", tt.in)
		expect.EQ(t, got, tt.want, "input %q", tt.in)
	}
}

func TestTrimDirPath(t *testing.T) {
	expect.EQ(t, TrimDirPath("/data/melt/"), "/data/melt")
	expect.EQ(t, TrimDirPath("/data/melt///"), "/data/melt")
	expect.EQ(t, TrimDirPath("/data/melt"), "/data/melt")
	expect.EQ(t, TrimDirPath("melt/"), "melt")
	expect.EQ(t, TrimDirPath("/"), "/")
}

func touch(t *testing.T, path string) {
	assert.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	assert.NoError(t, ioutil.WriteFile(path, []byte("x"), 0644))
}

// Each precondition is created in turn and the next one must become the
// reported failure: first failure wins, in fixed order.
func TestValidateOrder(t *testing.T) {
	tmpdir, cleanup := testutil.TempDir(t, "", "")
	defer testutil.NoCleanupOnError(t, cleanup, tmpdir)

	opts := DefaultOpts
	opts.BAMPath = filepath.Join(tmpdir, "sample.bam")
	opts.RefPath = filepath.Join(tmpdir, "ref.fa")
	opts.ToolDir = filepath.Join(tmpdir, "MELTv2")
	opts.RunDir = filepath.Join(tmpdir, "run")
	opts.RefVersion = "38"

	steps := []struct {
		missing string
		create  func()
	}{
		{"BAM file", func() { touch(t, opts.BAMPath) }},
		{"BAM index", func() { touch(t, opts.BAMPath+".bai") }},
		{"reference FASTA", func() { touch(t, opts.RefPath) }},
		{"MELT directory", func() { assert.NoError(t, os.MkdirAll(opts.ToolDir, 0755)) }},
		{"MELT jar", func() { touch(t, filepath.Join(opts.ToolDir, JarName)) }},
	}
	for _, step := range steps {
		err := opts.Validate()
		assert.NotNil(t, err)
		expect.True(t, strings.Contains(err.Error(), step.missing),
			"want %q in error %q", step.missing, err.Error())
		step.create()
	}
	assert.NoError(t, opts.Validate())
}

func TestValidateToolDirNotADirectory(t *testing.T) {
	tmpdir, cleanup := testutil.TempDir(t, "", "")
	defer testutil.NoCleanupOnError(t, cleanup, tmpdir)

	opts := DefaultOpts
	opts.BAMPath = filepath.Join(tmpdir, "sample.bam")
	opts.RefPath = filepath.Join(tmpdir, "ref.fa")
	opts.ToolDir = filepath.Join(tmpdir, "melt-is-a-file")
	touch(t, opts.BAMPath)
	touch(t, opts.BAMPath+".bai")
	touch(t, opts.RefPath)
	touch(t, opts.ToolDir)

	err := opts.Validate()
	assert.NotNil(t, err)
	expect.True(t, strings.Contains(err.Error(), "MELT directory"), "got %q", err.Error())
}
