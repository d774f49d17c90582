// Package csvout persists novelty curves as two-column CSV files.
//
// The format is fixed: a "time,novelty" header, one row per curve
// sample, both columns with 5 decimal places. Downstream tooling
// compares this output byte for byte, so the formatting must not change.
package csvout

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
)

// ErrOutputExists is returned by WriteFile when the target path exists.
var ErrOutputExists = errors.New("csvout: output file already exists")

// Write emits the curve to w. Each row holds
// time[i] = i * featureRate / sampleRate and the curve value.
func Write(w io.Writer, curve []float64, featureRate float64, sampleRate int) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"time", "novelty"}); err != nil {
		return fmt.Errorf("csvout: write header: %w", err)
	}

	row := make([]string, 2)
	for i, v := range curve {
		t := float64(i) * featureRate / float64(sampleRate)
		row[0] = strconv.FormatFloat(t, 'f', 5, 64)
		row[1] = strconv.FormatFloat(v, 'f', 5, 64)
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("csvout: write row %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteFile writes the curve to a new file at path. An existing file is
// never overwritten.
func WriteFile(path string, curve []float64, featureRate float64, sampleRate int) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %s", ErrOutputExists, path)
		}
		return fmt.Errorf("csvout: %w", err)
	}

	if err := Write(f, curve, featureRate, sampleRate); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
