package main

import (
	"flag"
	"os"
	"path/filepath"
	"strings"

	"nanopipe"

	"github.com/jacobstr/confer"
)

// Config to read flags and configure file, shared by all commands.
type cmdConfig struct {
	// Flags.
	workspace *string // workspace.
	config    *string // configure file name.
	progress  *bool   // show a progress bar.

	// Tool paths.
	samtools string

	// Output layout.
	demuxDir string // per-barcode bam folder.
	fastqDir string // compressed fastq folder.

	// Basecalling settings.
	kit    string
	model  string
	device string
}

func (cmd *cmdConfig) Flags(fs *flag.FlagSet) *flag.FlagSet {
	cmd.workspace = fs.String("w", ".", "workspace.")
	cmd.config = fs.String("c", "config.yaml", "configure files in YAML format, which are separated by comma.")
	cmd.progress = fs.Bool("progress", false, "show a progress bar during fastq conversion.")
	return fs
}

// Parse configs. The configure file is optional; missing files fall back
// to the built-in defaults.
func (cmd *cmdConfig) ParseConfig() {
	registerLogger()

	cmd.samtools = nanopipe.DefaultSamtools
	cmd.demuxDir = nanopipe.DefaultDemuxDir
	cmd.fastqDir = nanopipe.DefaultFastqDir
	cmd.kit = nanopipe.DefaultKit
	cmd.model = nanopipe.DefaultModel
	cmd.device = nanopipe.DefaultDevice

	configPaths := strings.Split(*cmd.config, ",")
	for _, p := range configPaths {
		if _, err := os.Stat(filepath.Join(*cmd.workspace, p)); err != nil {
			WARN.Printf("no configure file %s in %s, using defaults\n", p, *cmd.workspace)
			return
		}
	}

	// Use confer package to parse configure files.
	config := confer.NewConfig()
	// Set root path, which contains configure files.
	config.SetRootPath(*cmd.workspace)
	if err := config.ReadPaths(configPaths...); err != nil {
		ERROR.Fatalln(err)
	}
	// Automatic binding.
	config.AutomaticEnv()
	cmd.samtools = getString(config, "tools.samtools", cmd.samtools)
	cmd.demuxDir = getString(config, "out.demux", cmd.demuxDir)
	cmd.fastqDir = getString(config, "out.fastq", cmd.fastqDir)
	cmd.kit = getString(config, "basecall.kit", cmd.kit)
	cmd.model = getString(config, "basecall.model", cmd.model)
	cmd.device = getString(config, "basecall.device", cmd.device)
}

func getString(config *confer.Config, key, def string) string {
	if v := config.GetString(key); v != "" {
		return v
	}
	return def
}

// pipeline builds a Pipeline from the resolved settings.
func (cmd *cmdConfig) pipeline() *nanopipe.Pipeline {
	return &nanopipe.Pipeline{
		Samtools:     cmd.samtools,
		DemuxDir:     filepath.Join(*cmd.workspace, cmd.demuxDir),
		FastqDir:     filepath.Join(*cmd.workspace, cmd.fastqDir),
		Kit:          cmd.kit,
		Model:        cmd.model,
		Device:       cmd.device,
		ShowProgress: *cmd.progress,
	}
}
