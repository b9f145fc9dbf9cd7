package buffer

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/periphery"
)

func TestOf_Bytes(t *testing.T) {
	data := []byte{1, 2, 3}
	v := Of(data)
	assert.Equal(t, 3, v.Len())
	assert.Equal(t, unsafe.Pointer(&data[0]), v.Data())
}

func TestOf_WiderElements(t *testing.T) {
	var words [4]uint32
	v := Of(words[:])
	assert.Equal(t, 16, v.Len())

	v.Bytes()[0] = 0xff
	assert.NotZero(t, words[0])

	floats := []float64{1, 2}
	assert.Equal(t, 16, ConstOf(floats).Len())
}

func TestOf_Empty(t *testing.T) {
	var nilSlice []uint16
	empty := make([]byte, 0, 32)

	assert.Equal(t, 0, Of(nilSlice).Len())
	assert.Nil(t, Of(nilSlice).Data())
	assert.Equal(t, 0, Of(empty).Len())
	assert.Nil(t, Of(empty).Data())
	assert.Nil(t, ConstOf(empty).Data())
	assert.Nil(t, String("").Data())

	for _, limit := range []int{0, 1, 1024} {
		v, err := OfN(empty, limit)
		require.NoError(t, err)
		assert.Equal(t, 0, v.Len())

		c, err := ConstOfN(nilSlice, limit)
		require.NoError(t, err)
		assert.Equal(t, 0, c.Len())

		s, err := StringN("", limit)
		require.NoError(t, err)
		assert.Equal(t, 0, s.Len())
	}
}

func TestOfN_Clamps(t *testing.T) {
	data := make([]uint16, 8) // 16 bytes

	v, err := OfN(data, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, v.Len())

	v, err = OfN(data, 64)
	require.NoError(t, err)
	assert.Equal(t, 16, v.Len())

	c, err := ConstOfN(data, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
}

func TestOfN_NegativeSize(t *testing.T) {
	_, err := OfN([]byte{1}, -1)
	assert.ErrorIs(t, err, periphery.ErrInvalidArgument)

	_, err = ConstOfN([]byte{1}, -1)
	assert.ErrorIs(t, err, periphery.ErrInvalidArgument)

	_, err = StringN("x", -3)
	assert.ErrorIs(t, err, periphery.ErrInvalidArgument)
}

func TestString(t *testing.T) {
	s := "hello world"
	c := String(s)
	assert.Equal(t, len(s), c.Len())
	assert.Equal(t, unsafe.Pointer(unsafe.StringData(s)), c.Data())
	assert.Equal(t, "world", c.Advance(6).String())

	c, err := StringN(s, 5)
	require.NoError(t, err)
	assert.Equal(t, "hello", c.String())
}
