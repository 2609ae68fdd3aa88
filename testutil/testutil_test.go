package testutil

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRNG_Deterministic(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)
	assert.Equal(t, a.Bytes(64), b.Bytes(64))
	assert.Equal(t, a.Text(64, Lowercase), b.Text(64, Lowercase))

	first := a.Bytes(16)
	a.Reset()
	a.Bytes(64)
	a.Text(64, Lowercase)
	assert.Equal(t, first, a.Bytes(16))
	assert.Equal(t, int64(42), a.Seed())
}

func TestRNG_Text(t *testing.T) {
	text := NewRNG(1).Text(1000, Digits)
	require.Len(t, text, 1000)
	for _, c := range text {
		assert.True(t, strings.IndexByte(Digits, c) >= 0)
	}
}

func TestRNG_Plant(t *testing.T) {
	rng := NewRNG(3)
	dst := rng.Text(100, Lowercase)
	src := []byte("NEEDLE")

	off := rng.PlantRandom(dst, src)
	require.GreaterOrEqual(t, off, 0)
	assert.True(t, bytes.Contains(dst, src))

	assert.Equal(t, -1, rng.PlantRandom(src, dst))

	dst = rng.Plant(dst, []byte("TAIL"), 98)
	assert.Equal(t, "TA", string(dst[98:]))
}
