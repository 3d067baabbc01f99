package main

import (
	"log"
	"os"

	"nanopipe"

	"github.com/rakyll/command"
)

var (
	INFO  *log.Logger
	WARN  *log.Logger
	ERROR *log.Logger
)

func main() {
	// Register loggers.
	registerLogger()
	// Register commands.
	command.On("run", "basecall, demultiplex and convert in one go", &cmdRun{}, []string{})
	command.On("basecall", "basecall a raw signal directory into one combined bam", &cmdBasecall{}, []string{})
	command.On("demux", "split a combined bam into per-barcode bams", &cmdDemux{}, []string{})
	command.On("fastq", "convert per-barcode bams to compressed fastq", &cmdFastq{}, []string{})
	// Parse and run commands.
	command.ParseAndRun()
}

func registerLogger() {
	INFO = log.New(os.Stdout, "INFO: ", log.Ldate|log.Ltime)
	WARN = log.New(os.Stdout, "WARN: ", log.Ldate|log.Ltime)
	ERROR = log.New(os.Stderr, "ERROR: ", log.Ldate|log.Ltime)
	nanopipe.Info = log.New(os.Stdout, "INFO: ", log.Ldate|log.Ltime)
	nanopipe.Warn = log.New(os.Stdout, "WARN: ", log.Ldate|log.Ltime)
}
