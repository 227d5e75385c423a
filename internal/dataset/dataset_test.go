package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ndt "github.com/jamesainslie/go-ndt"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dataset.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, `
name: validation-run
scores: [0.12, 0.43, 0.55, 0.78, 0.91]
labels: [0, 0, 1, 1, 1]
thresholds: [0.3, 0.5, 0.7]
`)

	ds, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "validation-run", ds.Name)
	assert.Equal(t, []float64{0.12, 0.43, 0.55, 0.78, 0.91}, ds.Scores)
	assert.Equal(t, []int{0, 0, 1, 1, 1}, ds.Labels)
	assert.Equal(t, []float64{0.3, 0.5, 0.7}, ds.Thresholds)
}

func TestLoad_ThresholdsOptional(t *testing.T) {
	path := writeFile(t, `
scores: [0.2, 0.7]
labels: [0, 1]
`)

	ds, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, ds.Thresholds)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoad_NonIntegerLabels(t *testing.T) {
	path := writeFile(t, `
scores: [0.2, 0.7]
labels: [0, 0.5]
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ndt.ErrNonIntegerLabel), "got: %v", err)
	assert.Contains(t, err.Error(), "labels[1]")
}

func TestLoad_LengthMismatch(t *testing.T) {
	path := writeFile(t, `
scores: [0.2, 0.7, 0.9]
labels: [0, 1]
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ndt.ErrLengthMismatch), "got: %v", err)
}

func TestLoad_Empty(t *testing.T) {
	path := writeFile(t, `
scores: []
labels: []
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestLoad_Malformed(t *testing.T) {
	path := writeFile(t, "scores: [0.2\n")

	_, err := Load(path)
	require.Error(t, err)
}
