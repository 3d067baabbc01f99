package nanopipe

// BAM file operations.

import (
	"io"
	"os"

	"github.com/biogo/hts/bam"
	"github.com/pkg/errors"
)

// CountBamRecords reads a BAM file and returns the number of alignment
// records in it. Records are not retained.
func CountBamRecords(fileName string) (int, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return 0, errors.Wrap(err, "open bam")
	}
	defer f.Close()

	reader, err := bam.NewReader(f, 1)
	if err != nil {
		return 0, errors.Wrapf(err, "read bam header of %s", fileName)
	}
	defer reader.Close()

	n := 0
	for {
		if _, err := reader.Read(); err != nil {
			if err != io.EOF {
				return 0, errors.Wrapf(err, "read bam record of %s", fileName)
			}
			break
		}
		n++
	}
	return n, nil
}
