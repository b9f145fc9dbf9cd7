//go:build unix

package mmio

import (
	"testing"

	"github.com/hupe1980/periphery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestAtomicSetClear32_Concurrent(t *testing.T) {
	path := backing(t, 1)
	s := openTest(t, 0, 0x10, WithDevice(path))

	var g errgroup.Group
	for bit := 0; bit < 32; bit++ {
		g.Go(func() error {
			for i := 0; i < 100; i++ {
				if _, err := s.AtomicSet32(0x4, 1<<bit); err != nil {
					return err
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	v, err := s.Read32(0x4)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xffffffff), v)

	for bit := 0; bit < 32; bit += 2 {
		g.Go(func() error {
			_, err := s.AtomicClear32(0x4, 1<<bit)
			return err
		})
	}
	require.NoError(t, g.Wait())

	v, err = s.Read32(0x4)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xaaaaaaaa), v)
}

func TestAtomicSet32_ReturnsPrevious(t *testing.T) {
	path := backing(t, 1)
	s := openTest(t, 0, 0x10, WithDevice(path))

	require.NoError(t, s.Write32(0x8, 0x0f))
	old, err := s.AtomicSet32(0x8, 0xf0)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x0f), old)

	old, err = s.AtomicClear32(0x8, 0x0f)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xff), old)

	v, err := s.Read32(0x8)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xf0), v)
}

func TestAtomicSet32_RejectsUnaligned(t *testing.T) {
	path := backing(t, 1)
	s := openTest(t, 0, 0x10, WithDevice(path))

	_, err := s.AtomicSet32(0x2, 1)
	assert.ErrorIs(t, err, periphery.ErrInvalidArgument)
	_, err = s.AtomicClear32(0x1, 1)
	assert.ErrorIs(t, err, periphery.ErrInvalidArgument)
	_, err = s.AtomicSet32(0x10, 1)
	assert.ErrorIs(t, err, periphery.ErrOutOfBounds)
}
