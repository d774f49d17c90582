// Command novelty computes an energy-based novelty curve from a mono WAV
// file and writes it as a two-column CSV (time, novelty).
//
// Usage:
//
//	novelty [flags] input.wav output.csv
//
// The output path must not already exist.
//
// Examples:
//
//	novelty drums.wav drums.csv
//	novelty -window-length 2048 -hop-length 128 drums.wav drums.csv
//	novelty -gamma 0 -norm=false drums.wav drums-raw.csv
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/cwbudde/algo-novelty/dsp/novelty"
	"github.com/cwbudde/algo-novelty/internal/csvout"
	"github.com/cwbudde/algo-novelty/internal/wavio"
)

func main() {
	windowLength := flag.Int("window-length", novelty.DefaultWindowLength, "analysis window length in samples")
	hopLength := flag.Int("hop-length", novelty.DefaultHopLength, "hop length in samples")
	gamma := flag.Float64("gamma", novelty.DefaultGamma, "logarithmic compression factor (0 disables compression)")
	norm := flag.Bool("norm", true, "normalize the novelty curve to a maximum of 1")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: novelty [flags] input.wav output.csv\n\n")
		fmt.Fprintf(os.Stderr, "Computes an energy-based novelty curve from a mono WAV file\n")
		fmt.Fprintf(os.Stderr, "and writes it as time,novelty CSV rows.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  novelty drums.wav drums.csv\n")
		fmt.Fprintf(os.Stderr, "  novelty -window-length 2048 -hop-length 128 drums.wav drums.csv\n")
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}
	pathIn := flag.Arg(0)
	pathOut := flag.Arg(1)

	if _, err := os.Stat(pathOut); err == nil {
		fail(fmt.Sprintf("output path %s already exists", pathOut))
	}

	samples, sampleRate, err := wavio.ReadMono(pathIn)
	if err != nil {
		fail(err.Error())
	}

	curve, featureRate, err := novelty.Energy(samples, sampleRate,
		novelty.WithWindowLength(*windowLength),
		novelty.WithHopLength(*hopLength),
		novelty.WithGamma(*gamma),
		novelty.WithNormalize(*norm),
	)
	if err != nil {
		fail(err.Error())
	}

	if err := csvout.WriteFile(pathOut, curve, featureRate, sampleRate); err != nil {
		fail(err.Error())
	}
}

func fail(msg string) {
	fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	os.Exit(1)
}
