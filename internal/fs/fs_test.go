package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalFS(t *testing.T) {
	fpath := filepath.Join(t.TempDir(), "dev")
	require.NoError(t, os.WriteFile(fpath, []byte("x"), 0o644))

	f, err := LocalFS{}.OpenFile(fpath, os.O_RDWR, 0)
	require.NoError(t, err)
	assert.Equal(t, fpath, f.Name())
	assert.NotZero(t, f.Fd())
	assert.NoError(t, f.Close())

	_, err = LocalFS{}.OpenFile(filepath.Join(t.TempDir(), "missing"), os.O_RDWR, 0)
	assert.True(t, os.IsNotExist(err))
}

func TestFaultyFS_OpenFailure(t *testing.T) {
	ffs := NewFaultyFS(LocalFS{})
	ffs.AddRule("mem", Fault{FailOnOpen: true})

	_, err := ffs.OpenFile("/dev/mem", os.O_RDWR, 0)
	assert.Error(t, err)
	assert.Equal(t, 0, ffs.Open())
}

func TestFaultyFS_CloseFailure(t *testing.T) {
	fpath := filepath.Join(t.TempDir(), "gpiomem")
	require.NoError(t, os.WriteFile(fpath, nil, 0o644))

	ffs := NewFaultyFS(nil)
	ffs.AddRule("gpiomem", Fault{FailOnClose: true})

	f, err := ffs.OpenFile(fpath, os.O_RDONLY, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, ffs.Open())

	assert.Error(t, f.Close())
	assert.Equal(t, 0, ffs.Open())
}
