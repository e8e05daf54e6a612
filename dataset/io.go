// SPDX-License-Identifier: MIT

package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// DefaultWantRows is the expected length of this dataset's predicted-label
// vector.
const DefaultWantRows = 70

// ErrRowCount indicates a label vector whose length differs from the
// expected row count; the write is aborted and no file is produced.
var ErrRowCount = errors.New("dataset: unexpected output row count")

// ReadVector parses a whitespace/newline-delimited numeric file into a
// flat vector. Blank lines are skipped.
func ReadVector(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	defer f.Close()

	var out []float64
	sc := bufio.NewScanner(f)
	for line := 1; sc.Scan(); line++ {
		for _, field := range strings.Fields(sc.Text()) {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("dataset: %s line %d: %w", path, line, err)
			}
			out = append(out, v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("dataset: %s: %w", path, err)
	}

	return out, nil
}

// ReadLines loads a corpus, one document per line, preserving order and
// empty lines (an empty line is an empty document, not a separator).
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("dataset: %s: %w", path, err)
	}

	return out, nil
}

// WriteVector writes one value per line in compact float notation.
func WriteVector(path string, vec []float64) error {
	var b strings.Builder
	for _, v := range vec {
		b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		b.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("dataset: %w", err)
	}

	return nil
}

// WriteLabels writes a predicted-label vector, but only when its length is
// exactly want; otherwise it returns ErrRowCount and writes nothing.
func WriteLabels(path string, vec []float64, want int) error {
	if len(vec) != want {
		return fmt.Errorf("%w: got %d rows, want %d", ErrRowCount, len(vec), want)
	}

	return WriteVector(path, vec)
}
