package melt

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/grailbio/base/file"
	"github.com/pkg/errors"
)

const (
	// JarName is MELT's executable archive inside the tool directory.
	JarName = "MELT.jar"
	// ManifestName is the transposon reference manifest written into the run
	// directory on every launch.
	ManifestName = "transposon_reference.list"
)

// BuildResources locates the per-genome-build resources inside a MELT
// installation.
type BuildResources struct {
	// MERefsDir holds the transposon reference archives (*.zip).
	MERefsDir string
	// GeneAnnotation is the gene BED file for the build.
	GeneAnnotation string
}

// Resource locations shipped with MELT, relative to the installation
// directory.
var buildResources = map[string]BuildResources{
	"38": {
		MERefsDir:      "me_refs/Hg38",
		GeneAnnotation: "add_bed_files/Hg38/Hg38.genes.bed",
	},
	"19": {
		MERefsDir:      "me_refs/1KGP_Hg19",
		GeneAnnotation: "add_bed_files/1KGP_Hg19/hg19.genes.bed",
	},
}

// ResourcesForBuild resolves the resource set for refVersion ("19" or "38")
// against the MELT installation at toolDir.
func ResourcesForBuild(toolDir, refVersion string) (BuildResources, error) {
	r, ok := buildResources[refVersion]
	if !ok {
		return BuildResources{}, errors.Errorf("unsupported reference version %q: must be 19 or 38", refVersion)
	}
	return BuildResources{
		MERefsDir:      filepath.Join(toolDir, r.MERefsDir),
		GeneAnnotation: filepath.Join(toolDir, r.GeneAnnotation),
	}, nil
}

// ListTransposonRefs returns the sorted paths of the transposon archive
// files under dir. An empty or missing directory is an error: MELT cannot
// run without mobile element references.
func ListTransposonRefs(ctx context.Context, dir string) ([]string, error) {
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return nil, &MissingResourceError{What: "transposon reference directory", Path: dir}
	}
	var refs []string
	lister := file.List(ctx, dir, true)
	for lister.Scan() {
		if filepath.Ext(lister.Path()) == ".zip" {
			refs = append(refs, lister.Path())
		}
	}
	if err := lister.Err(); err != nil {
		return nil, errors.Wrapf(err, "list %s", dir)
	}
	if len(refs) == 0 {
		return nil, errors.Errorf("no transposon reference archives (*.zip) under %s", dir)
	}
	sort.Strings(refs)
	return refs, nil
}

// WriteTransposonManifest lists the transposon archives under refsDir and
// writes them, one path per line, to path, returning the number of entries.
// The manifest is overwritten on every run; concurrent launches sharing a
// run directory are not coordinated.
func WriteTransposonManifest(ctx context.Context, path, refsDir string) (int, error) {
	refs, err := ListTransposonRefs(ctx, refsDir)
	if err != nil {
		return 0, err
	}
	out, err := file.Create(ctx, path)
	if err != nil {
		return 0, errors.Wrapf(err, "create manifest %s", path)
	}
	w := out.Writer(ctx)
	for _, r := range refs {
		if _, werr := io.WriteString(w, r+"\n"); werr != nil {
			_ = out.Close(ctx)
			return 0, errors.Wrapf(werr, "write manifest %s", path)
		}
	}
	if cerr := out.Close(ctx); cerr != nil {
		return 0, errors.Wrapf(cerr, "write manifest %s", path)
	}
	return len(refs), nil
}
