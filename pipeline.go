// Package nanopipe chains a nanopore basecaller, its demultiplexer and
// samtools into a three-stage post-run pipeline: raw signal basecalling,
// demultiplexing by barcode, and conversion of the per-barcode BAM files
// into compressed fastq files with normalized names.
package nanopipe

import (
	"io"
	"log"
)

// Loggers used by the library. The cmd layer replaces them at startup.
var (
	Info = log.New(io.Discard, "INFO: ", log.Ldate|log.Ltime)
	Warn = log.New(io.Discard, "WARN: ", log.Ldate|log.Ltime)
)

// Default settings for a pipeline run.
const (
	DefaultKit      = "SQK-RBK114-96"
	DefaultModel    = "hac"
	DefaultDevice   = "cuda:all"
	DefaultSamtools = "samtools"
	DefaultDemuxDir = "demux_bams"
	DefaultFastqDir = "results/fastq"
)

// Pipeline drives the three post-run stages. Stages run strictly in
// sequence and the first failure aborts the run; partially written
// output files are left on disk.
type Pipeline struct {
	Basecaller string // path to the basecaller executable.
	Samtools   string // path to the samtools executable.

	InputDir string // directory of raw signal files.
	Combined string // combined BAM written by the basecaller.
	DemuxDir string // per-barcode BAM output directory.
	FastqDir string // final fastq.gz output directory.

	Kit    string // barcoding kit identifier.
	Model  string // basecalling model.
	Device string // accelerator device spec.

	ShowProgress bool // draw a progress bar over the conversion loop.
}

// Run executes basecalling, demultiplexing and fastq conversion.
func (p *Pipeline) Run() error {
	if err := p.Basecall(); err != nil {
		return err
	}
	if err := p.Demux(); err != nil {
		return err
	}
	return p.WriteFastq()
}
