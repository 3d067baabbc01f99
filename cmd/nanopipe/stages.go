package main

import (
	"fmt"
	"os"
)

// Command for the basecalling stage only.
type cmdBasecall struct {
	cmdConfig // embedded cmdConfig.
}

func (cmd *cmdBasecall) Run(args []string) {
	basecaller, inputDir, outFile, kit, err := parseRunArgs(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, "usage: nanopipe basecall <basecaller_path> <input_dir> <output_file> [kit_name]")
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

	if err := p.Basecall(); err != nil {
		ERROR.Println(err)
		os.Exit(exitCode(err))
	}
}

// Command for the demultiplexing stage only.
type cmdDemux struct {
	cmdConfig // embedded cmdConfig.
}

func (cmd *cmdDemux) Run(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: nanopipe demux <basecaller_path> <combined_bam>")
		os.Exit(1)
	}
	cmd.ParseConfig()

	p := cmd.pipeline()
	p.Basecaller = args[0]
	p.Combined = args[1]

	if err := p.Demux(); err != nil {
		ERROR.Println(err)
		os.Exit(exitCode(err))
	}
}

// Command for the fastq conversion stage only. It reads the demux
// directory resolved from flags and configure file.
type cmdFastq struct {
	cmdConfig // embedded cmdConfig.
}

func (cmd *cmdFastq) Run(args []string) {
	cmd.ParseConfig()

	if err := cmd.pipeline().WriteFastq(); err != nil {
		ERROR.Println(err)
		os.Exit(exitCode(err))
	}
}
