package nanopipe

import (
	"os"
	"os/exec"

	"github.com/pkg/errors"
)

// Demux splits the combined BAM into one BAM per detected barcode,
// written under p.DemuxDir. Classification is disabled; reads keep the
// barcode calls made during basecalling. The directory is created
// idempotently, so a repeated run reuses it.
func (p *Pipeline) Demux() error {
	Info.Printf("▶ demultiplexing %s\n", p.Combined)

	if err := os.MkdirAll(p.DemuxDir, 0755); err != nil {
		return errors.Wrap(err, "create demux dir")
	}

	cmd := exec.Command(p.Basecaller, "demux", "--no-classify", "--output-dir", p.DemuxDir, p.Combined)
	if err := runCmd(cmd); err != nil {
		return err
	}

	Info.Printf("✓ per-barcode bams in %s\n", p.DemuxDir)
	return nil
}
