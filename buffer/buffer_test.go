package buffer

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/periphery/testutil"
)

func TestMutable_Advance(t *testing.T) {
	data := []byte("0123456789")
	v := NewMutable(data)

	w := v.Advance(3)
	assert.Equal(t, 7, w.Len())
	assert.Equal(t, "3456789", string(w.Bytes()))
	assert.Equal(t, unsafe.Pointer(&data[3]), w.Data())

	// The original view is unchanged.
	assert.Equal(t, 10, v.Len())
}

func TestMutable_AdvanceSaturates(t *testing.T) {
	v := NewMutable(make([]byte, 8))

	assert.Equal(t, 0, v.Advance(v.Len()).Len())
	assert.Nil(t, v.Advance(v.Len()).Data())

	for k := 1; k < 4; k++ {
		w := v.Advance(v.Len() + k)
		assert.Equal(t, 0, w.Len())
		assert.Nil(t, w.Data())
	}

	// Negative counts are a no-op.
	assert.Equal(t, v.Data(), v.Advance(-5).Data())
	assert.Equal(t, 8, v.Advance(-5).Len())
}

func TestMutable_AdvanceAssociative(t *testing.T) {
	rng := testutil.NewRNG(4711)

	for range 500 {
		size := rng.Intn(64)
		v := NewMutable(make([]byte, size))
		a := rng.Intn(80)
		b := rng.Intn(80)

		got := v.Advance(a).Advance(b)
		want := v.Advance(min(a+b, v.Len()))

		require.Equal(t, want.Len(), got.Len(), "size=%d a=%d b=%d", size, a, b)
		require.Equal(t, want.Data(), got.Data(), "size=%d a=%d b=%d", size, a, b)
	}
}

func TestMutable_ZeroValue(t *testing.T) {
	var v Mutable
	assert.Equal(t, 0, v.Len())
	assert.Nil(t, v.Data())
	assert.Equal(t, 0, v.Advance(10).Len())
	assert.Equal(t, 0, v.Clamp(10).Len())
}

func TestMutable_Clamp(t *testing.T) {
	data := []byte("abcdef")
	v := NewMutable(data)

	assert.Equal(t, "abc", string(v.Clamp(3).Bytes()))
	assert.Equal(t, "abcdef", string(v.Clamp(100).Bytes()))
	assert.Equal(t, 0, v.Clamp(-1).Len())
}

func TestMutable_WritesThrough(t *testing.T) {
	data := make([]byte, 4)
	v := NewMutable(data).Advance(1)
	v.Bytes()[0] = 0xaa
	assert.Equal(t, []byte{0, 0xaa, 0, 0}, data)
}

func TestMutable_Const(t *testing.T) {
	data := []byte("hello")
	v := NewMutable(data).Advance(1)
	c := v.Const()

	assert.Equal(t, v.Data(), c.Data())
	assert.Equal(t, v.Len(), c.Len())
	assert.Equal(t, "ello", c.String())
}

func TestConst_AdvanceAssociative(t *testing.T) {
	c := String("periphery")

	for a := 0; a <= 12; a++ {
		for b := 0; b <= 12; b++ {
			got := c.Advance(a).Advance(b)
			want := c.Advance(min(a+b, c.Len()))
			assert.Equal(t, want.Len(), got.Len())
			assert.Equal(t, want.Data(), got.Data())
		}
	}
}

func TestSkip(t *testing.T) {
	m := NewMutable([]byte("abcdef"))
	assert.Equal(t, "def", string(Skip(m, 3).Bytes()))

	c := NewConst([]byte("abcdef"))
	assert.Equal(t, "ef", Skip(c, 4).String())
	assert.Equal(t, 0, Skip(c, 100).Len())
}
