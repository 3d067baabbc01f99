package nanopipe

import (
	"os"
	"os/exec"

	"github.com/pkg/errors"
)

// Basecaller options:
//
//	basecaller <model> <dir> : basecall every signal file under dir,
//	                           writing a combined BAM to standard output.
//	--kit-name <kit> : barcoding kit; reads are tagged with their barcode
//	                   classification so the demux stage can split without
//	                   re-classifying.
//	--device <spec>  : accelerator selection, "cuda:all" uses every device.
func (p *Pipeline) basecallOptions() []string {
	options := []string{"basecaller", p.Model, p.InputDir}
	options = append(options, []string{"--kit-name", p.Kit}...)
	options = append(options, []string{"--device", p.Device}...)
	return options
}

// Basecall runs the basecaller in high-accuracy mode over the raw signal
// directory, streaming the combined BAM to p.Combined. The output file is
// created up front and overwritten on a repeated run; after a failure it
// must be treated as invalid.
func (p *Pipeline) Basecall() error {
	Info.Printf("▶ basecalling %s (kit %s)\n", p.InputDir, p.Kit)

	out, err := os.Create(p.Combined)
	if err != nil {
		return errors.Wrap(err, "create combined bam")
	}
	defer out.Close()

	cmd := exec.Command(p.Basecaller, p.basecallOptions()...)
	cmd.Stdout = out
	if err := runCmd(cmd); err != nil {
		return err
	}

	Info.Printf("✓ combined calls written to %s\n", p.Combined)
	return nil
}
