package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
)

const runUsage = "usage: nanopipe run <basecaller_path> <input_dir> <output_file> [kit_name]"

// Command running the full pipeline:
// basecalling, demultiplexing and fastq conversion.
type cmdRun struct {
	cmdConfig // embedded cmdConfig.
}

func (cmd *cmdRun) Run(args []string) {
	basecaller, inputDir, outFile, kit, err := parseRunArgs(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cmd.ParseConfig()

	p := cmd.pipeline()
	p.Basecaller = basecaller
	p.InputDir = inputDir
	p.Combined = outFile
	if kit != "" {
		p.Kit = kit
	}

	if err := p.Run(); err != nil {
		ERROR.Println(err)
		os.Exit(exitCode(err))
	}
	INFO.Printf("✓ pipeline complete, results in %s\n", p.FastqDir)
}

// parseRunArgs resolves the positional arguments shared by the run and
// basecall commands. The kit name is optional and returned empty when
// omitted, leaving the configured default in place.
func parseRunArgs(args []string) (basecaller, inputDir, outFile, kit string, err error) {
	if len(args) < 3 {
		err = errors.New(runUsage)
		return
	}
	basecaller, inputDir, outFile = args[0], args[1], args[2]
	if len(args) > 3 {
		kit = args[3]
	}
	return
}
