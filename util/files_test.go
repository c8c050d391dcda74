package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocateFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "temporal.yaml"), []byte("{}"), 0o644))

	location, found := LocateFile("temporal.yaml", []string{filepath.Join(dir, "missing"), dir})
	assert.True(t, found)
	assert.Equal(t, filepath.Join(dir, "temporal.yaml"), location)

	_, found = LocateFile("other.yaml", []string{dir})
	assert.False(t, found)
	_, found = LocateFile("", []string{dir})
	assert.False(t, found)
}
