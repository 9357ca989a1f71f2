package series

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirChecker(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, DirChecker{Dir: dir}.CheckReadiness(context.Background()))

	err := DirChecker{Dir: filepath.Join(dir, "missing")}.CheckReadiness(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "data directory")

	file := filepath.Join(dir, "file.csv")
	require.NoError(t, os.WriteFile(file, nil, 0o600))
	err = DirChecker{Dir: file}.CheckReadiness(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}
