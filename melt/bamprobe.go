package melt

import (
	"os"

	"github.com/grailbio/hts/bam"
	"github.com/pkg/errors"
)

// ProbeBAMHeader reads the header of the BAM at path and reports how many
// reference contigs it declares and how many are at least minLength bases
// long. MELT skips contigs shorter than its -d threshold, so the pass count
// is what the detector will actually scan.
func ProbeBAMHeader(path string, minLength int) (total, pass int, err error) {
	in, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer in.Close() // nolint: errcheck
	r, err := bam.NewReader(in, 1)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "read BAM header %s", path)
	}
	defer r.Close() // nolint: errcheck
	for _, ref := range r.Header().Refs() {
		total++
		if ref.Len() >= minLength {
			pass++
		}
	}
	return total, pass, nil
}
