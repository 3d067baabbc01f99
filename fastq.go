package nanopipe

// Conversion of demultiplexed BAM files to compressed fastq.

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/brentp/xopen"
	"github.com/pkg/errors"
	"gopkg.in/cheggaaa/pb.v1"
)

// WriteFastq converts every BAM in the demux directory into a
// gzip-compressed fastq named after its barcode token, written under
// p.FastqDir. An empty demux directory is an error, as is a BAM whose
// name carries no barcode token. On success the final contents of the
// fastq directory are logged.
func (p *Pipeline) WriteFastq() error {
	Info.Printf("▶ converting bams in %s\n", p.DemuxDir)

	if err := os.MkdirAll(p.FastqDir, 0755); err != nil {
		return errors.Wrap(err, "create fastq dir")
	}

	bams, err := listBamFiles(p.DemuxDir)
	if err != nil {
		return err
	}
	if len(bams) == 0 {
		return errors.Errorf("no bam files found in %s", p.DemuxDir)
	}

	var bar *pb.ProgressBar
	if p.ShowProgress {
		bar = pb.StartNew(len(bams))
	}
	for _, name := range bams {
		bc, ok := ParseBarcode(name)
		if !ok {
			return errors.Errorf("no barcode token in file name %s", name)
		}
		bamFile := filepath.Join(p.DemuxDir, name)
		count, err := CountBamRecords(bamFile)
		if err != nil {
			return err
		}
		dest := filepath.Join(p.FastqDir, bc.Label+".fastq.gz")
		Info.Printf("▶ %s: %d reads -> %s\n", bc.Label, count, dest)
		if err := p.bamToFastq(bamFile, dest); err != nil {
			return err
		}
		if bar != nil {
			bar.Increment()
		}
	}
	if bar != nil {
		bar.Finish()
	}

	return p.listResults()
}

// listBamFiles returns the names of the .bam files in dir, in directory
// order.
func listBamFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "list %s", dir)
	}
	var bams []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".bam") {
			continue
		}
		bams = append(bams, e.Name())
	}
	return bams, nil
}

// bamToFastq streams samtools fastq output of one BAM through a gzip
// writer. A failure on either side aborts the run and leaves the partial
// file on disk.
func (p *Pipeline) bamToFastq(bamFile, dest string) error {
	w, err := xopen.Wopen(dest)
	if err != nil {
		return errors.Wrapf(err, "create %s", dest)
	}

	cmd := exec.Command(p.Samtools, "fastq", bamFile)
	cmd.Stdout = w
	if err := runCmd(cmd); err != nil {
		w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return errors.Wrapf(err, "close %s", dest)
	}
	return nil
}

// listResults logs the final contents of the fastq directory.
func (p *Pipeline) listResults() error {
	entries, err := os.ReadDir(p.FastqDir)
	if err != nil {
		return errors.Wrapf(err, "list %s", p.FastqDir)
	}
	Info.Printf("✓ %d fastq files in %s\n", len(entries), p.FastqDir)
	for _, e := range entries {
		info, err := e.Info()
		if err != nil {
			return errors.Wrapf(err, "stat %s", e.Name())
		}
		if info.Size() == 0 {
			Warn.Printf("%s is empty\n", e.Name())
		}
		Info.Printf("  %s\t%d bytes\n", e.Name(), info.Size())
	}
	return nil
}
