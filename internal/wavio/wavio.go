// Package wavio reads and writes mono WAV files as float64 sample slices.
package wavio

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// ErrNotMono is returned when the input file has more than one channel.
var ErrNotMono = errors.New("wavio: input must be mono")

// ReadMono decodes a mono WAV file into samples scaled to [-1, 1) and
// returns them with the file's sample rate. Multi-channel input is
// rejected, not downmixed.
func ReadMono(path string) ([]float64, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("wavio: %w", err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, 0, fmt.Errorf("wavio: %s is not a valid WAV file", path)
	}

	if dec.NumChans != 1 {
		return nil, 0, fmt.Errorf("%w: %s has %d channels", ErrNotMono, path, dec.NumChans)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("wavio: decode %s: %w", path, err)
	}

	bitDepth := int(dec.BitDepth)
	if bitDepth <= 0 || bitDepth > 32 {
		return nil, 0, fmt.Errorf("wavio: %s: unsupported bit depth %d", path, bitDepth)
	}
	scale := float64(int64(1) << (bitDepth - 1))

	out := make([]float64, len(buf.Data))
	for i, s := range buf.Data {
		out[i] = float64(s) / scale
	}

	return out, int(dec.SampleRate), nil
}

// WriteMono encodes samples as a 16-bit PCM mono WAV file. Samples are
// clipped to [-1, 1].
func WriteMono(path string, samples []float64, sampleRate int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("wavio: %w", err)
	}

	enc := wav.NewEncoder(f, sampleRate, 16, 1, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  sampleRate,
		},
		SourceBitDepth: 16,
		Data:           make([]int, len(samples)),
	}

	for i, v := range samples {
		if v > 1 {
			v = 1
		}
		if v < -1 {
			v = -1
		}
		buf.Data[i] = int(v * 32767)
	}

	if err := enc.Write(buf); err != nil {
		f.Close()
		return fmt.Errorf("wavio: encode %s: %w", path, err)
	}
	if err := enc.Close(); err != nil {
		f.Close()
		return fmt.Errorf("wavio: finalize %s: %w", path, err)
	}

	return f.Close()
}
