package main

import (
	"flag"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"nanopipe"

	"github.com/pkg/errors"
)

func TestParseRunArgs(t *testing.T) {
	tests := []struct {
		args []string
		kit  string
		err  bool
	}{
		{nil, "", true},
		{[]string{"dorado"}, "", true},
		{[]string{"dorado", "signals"}, "", true},
		{[]string{"dorado", "signals", "combined.bam"}, "", false},
		{[]string{"dorado", "signals", "combined.bam", "SQK-LSK114"}, "SQK-LSK114", false},
	}
	for _, tt := range tests {
		basecaller, inputDir, outFile, kit, err := parseRunArgs(tt.args)
		if (err != nil) != tt.err {
			t.Errorf("parseRunArgs(%v) err = %v", tt.args, err)
			continue
		}
		if err != nil {
			if !strings.Contains(err.Error(), "usage:") {
				t.Errorf("parseRunArgs(%v) error is not a usage line: %v", tt.args, err)
			}
			continue
		}
		if basecaller != "dorado" || inputDir != "signals" || outFile != "combined.bam" {
			t.Errorf("parseRunArgs(%v) = %q %q %q", tt.args, basecaller, inputDir, outFile)
		}
		if kit != tt.kit {
			t.Errorf("parseRunArgs(%v) kit = %q, want %q", tt.args, kit, tt.kit)
		}
	}
}

func TestExitCode(t *testing.T) {
	if code := exitCode(errors.New("no bam files found")); code != 1 {
		t.Errorf("exitCode(plain error) = %d, want 1", code)
	}

	err := exec.Command("sh", "-c", "exit 3").Run()
	if err == nil {
		t.Fatal("expected non-zero exit from stub command")
	}
	if code := exitCode(errors.Wrap(err, "demux")); code != 3 {
		t.Errorf("exitCode(wrapped ExitError) = %d, want 3", code)
	}
}

func parseFlags(t *testing.T, cmd *cmdConfig, args []string) {
	t.Helper()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.Flags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatal(err)
	}
}

func TestParseConfigDefaults(t *testing.T) {
	tmp := t.TempDir()
	cmd := new(cmdConfig)
	parseFlags(t, cmd, []string{"-w", tmp})
	cmd.ParseConfig()

	if cmd.kit != nanopipe.DefaultKit {
		t.Errorf("kit = %q, want %q", cmd.kit, nanopipe.DefaultKit)
	}
	if cmd.samtools != nanopipe.DefaultSamtools {
		t.Errorf("samtools = %q, want %q", cmd.samtools, nanopipe.DefaultSamtools)
	}

	p := cmd.pipeline()
	if p.DemuxDir != filepath.Join(tmp, "demux_bams") {
		t.Errorf("DemuxDir = %q", p.DemuxDir)
	}
	if p.FastqDir != filepath.Join(tmp, "results", "fastq") {
		t.Errorf("FastqDir = %q", p.FastqDir)
	}
}

func TestParseConfigFile(t *testing.T) {
	tmp := t.TempDir()
	yaml := `tools:
  samtools: /opt/bin/samtools
out:
  demux: split
  fastq: final
basecall:
  kit: SQK-LSK114
  model: sup
`
	if err := os.WriteFile(filepath.Join(tmp, "config.yaml"), []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}

	cmd := new(cmdConfig)
	parseFlags(t, cmd, []string{"-w", tmp})
	cmd.ParseConfig()

	if cmd.samtools != "/opt/bin/samtools" {
		t.Errorf("samtools = %q", cmd.samtools)
	}
	if cmd.demuxDir != "split" || cmd.fastqDir != "final" {
		t.Errorf("out dirs = %q, %q", cmd.demuxDir, cmd.fastqDir)
	}
	if cmd.kit != "SQK-LSK114" || cmd.model != "sup" {
		t.Errorf("basecall settings = %q, %q", cmd.kit, cmd.model)
	}
	// Keys the file does not set keep their defaults.
	if cmd.device != nanopipe.DefaultDevice {
		t.Errorf("device = %q, want %q", cmd.device, nanopipe.DefaultDevice)
	}
}
