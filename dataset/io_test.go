// SPDX-License-Identifier: MIT

package dataset_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/svmlab/dataset"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

// TestReadVector parses newline- and whitespace-delimited numbers and skips
// blank lines.
func TestReadVector(t *testing.T) {
	path := writeTemp(t, "labels.txt", "1\n-1\n\n1 -1\n")

	got, err := dataset.ReadVector(path)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, -1, 1, -1}, got)
}

// TestReadVector_BadContent surfaces parse failures with position context.
func TestReadVector_BadContent(t *testing.T) {
	path := writeTemp(t, "labels.txt", "1\nnope\n")

	_, err := dataset.ReadVector(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

// TestReadLines preserves document order and empty documents.
func TestReadLines(t *testing.T) {
	path := writeTemp(t, "tweets.txt", "first doc\n\nthird doc\n")

	got, err := dataset.ReadLines(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"first doc", "", "third doc"}, got)
}

// TestReadMissingFile propagates the underlying open error.
func TestReadMissingFile(t *testing.T) {
	_, err := dataset.ReadVector(filepath.Join(t.TempDir(), "absent"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = dataset.ReadLines(filepath.Join(t.TempDir(), "absent"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// TestWriteLabels_RowGate verifies the row-count gate: a wrong-length
// vector writes nothing, the right length writes exactly want lines.
func TestWriteLabels_RowGate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")

	short := make([]float64, dataset.DefaultWantRows-1)
	err := dataset.WriteLabels(path, short, dataset.DefaultWantRows)
	assert.ErrorIs(t, err, dataset.ErrRowCount)
	_, statErr := os.Stat(path)
	assert.ErrorIs(t, statErr, os.ErrNotExist, "aborted write must leave no file")

	full := make([]float64, dataset.DefaultWantRows)
	for i := range full {
		full[i] = 1
		if i%2 == 0 {
			full[i] = -1
		}
	}
	require.NoError(t, dataset.WriteLabels(path, full, dataset.DefaultWantRows))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(content), "\n"), "\n")
	assert.Len(t, lines, dataset.DefaultWantRows)
}

// TestWriteVector_RoundTrip writes and re-reads a vector unchanged.
func TestWriteVector_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vec.txt")
	want := []float64{1, -1, 0.5, -0.25}

	require.NoError(t, dataset.WriteVector(path, want))
	got, err := dataset.ReadVector(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
