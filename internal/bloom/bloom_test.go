package bloom

import (
	"math/rand"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	_, err := New(0)
	require.ErrorIs(t, err, ErrTooFewBits)

	tests := []struct {
		bits  uint64
		bytes int
	}{
		{bits: 1, bytes: 1},
		{bits: 8, bytes: 1},
		{bits: 9, bytes: 2},
		{bits: 80, bytes: 10},
		{bits: 81, bytes: 11},
	}
	for _, tt := range tests {
		f, err := New(tt.bits)
		require.NoError(t, err)
		assert.Equal(t, tt.bytes, f.SizeBytes(), "bits=%d", tt.bits)
		assert.Equal(t, tt.bits, f.NumBits())
		assert.Zero(t, f.OnesCount())
	}
}

func TestFilter_AddQuery(t *testing.T) {
	f, err := New(80)
	require.NoError(t, err)

	f.Add(12345)
	require.True(t, f.MayContain(12345))
	require.Equal(t, uint32(1), f.Count())
}

func TestFilter_BitLayout(t *testing.T) {
	f, err := New(80)
	require.NoError(t, err)

	f.Add(12345)

	// Indices for 12345 mod 80: 26 52 0 30 62 16 52 10 50 12.
	for _, b := range []uint64{0, 10, 12, 16, 26, 30, 50, 52, 62} {
		assert.True(t, f.Test(b), "bit %d", b)
	}
	assert.Equal(t, 9, f.OnesCount())
	assert.Equal(t, []byte{0x80, 0x28, 0x80, 0x22, 0x00, 0x00, 0x28, 0x02, 0x00, 0x00}, f.Prefix(160))
	assert.Equal(t, "80 28 80 22 00 00 28 02 00 00 ", f.Format(160))
}

func TestFilter_PrefixBounds(t *testing.T) {
	f, err := New(1024)
	require.NoError(t, err)

	assert.Len(t, f.Prefix(160), 20)
	assert.Len(t, f.Prefix(7), 0)
	assert.Nil(t, f.Prefix(0))

	// A partial trailing byte is not part of the printable prefix.
	small, err := New(12)
	require.NoError(t, err)
	assert.Len(t, small.Prefix(160), 1)
}

func TestFilter_PrefixIsCopy(t *testing.T) {
	f, err := New(64)
	require.NoError(t, err)

	p := f.Prefix(64)
	p[0] = 0xff
	assert.False(t, f.Test(0))
}

func TestFilter_Clear(t *testing.T) {
	f, err := New(256)
	require.NoError(t, err)

	f.Add(1)
	f.Add(2)
	f.Clear()

	assert.Zero(t, f.Count())
	assert.Zero(t, f.OnesCount())
}

func TestHashI(t *testing.T) {
	assert.Equal(t, uint64(12346), HashI(0, 12345))
	// Values above both primes are reduced before combining.
	x := H1*3 + 5
	assert.Equal(t, uint64(5)+2*(x%H2)+1+4, HashI(2, x))
}

func TestFilter_FalsePositiveRate(t *testing.T) {
	n := 1000
	f, err := New(uint64(n * BitsPerChunk))
	require.NoError(t, err)

	r := rand.New(rand.NewSource(1))
	for i := 0; i < n; i++ {
		f.Add(r.Uint64())
	}

	fpr := f.EstimatedFalsePositiveRate()
	assert.Greater(t, fpr, 0.0)
	assert.Less(t, fpr, 0.5)
}

func TestNoFalseNegatives(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("every added value is reported", prop.ForAll(
		func(numBits uint64, values []uint64) bool {
			f, err := New(numBits)
			if err != nil {
				return false
			}
			for _, v := range values {
				f.Add(v)
			}
			for _, v := range values {
				if !f.MayContain(v) {
					return false
				}
			}
			return true
		},
		gen.UInt64Range(NumHashes, 4096),
		gen.SliceOf(gen.UInt64()),
	))

	properties.TestingRun(t)
}

func TestBitsFor(t *testing.T) {
	tests := []struct {
		queryLen, k int
		want        uint64
	}{
		{queryLen: 1000, k: 100, want: 96},
		{queryLen: 8000, k: 100, want: 800},
		{queryLen: 10, k: 100, want: MinBits},
		{queryLen: 0, k: 100, want: MinBits},
		{queryLen: 100, k: 0, want: MinBits},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BitsFor(tt.queryLen, tt.k), "queryLen=%d k=%d", tt.queryLen, tt.k)
	}
}

func TestStats(t *testing.T) {
	var s Stats
	assert.Zero(t, s.Effectiveness())

	s.Update(false, false)
	s.Update(false, false)
	s.Update(true, true)
	s.Update(true, false)

	assert.Equal(t, uint64(4), s.Queries)
	assert.Equal(t, uint64(2), s.DefiniteNos)
	assert.Equal(t, uint64(2), s.MaybeYes)
	assert.Equal(t, uint64(1), s.ConfirmedFPs)
	assert.InDelta(t, 0.5, s.ObservedFPRate, 1e-9)
	assert.InDelta(t, 50.0, s.Effectiveness(), 1e-9)
}

func BenchmarkAdd(b *testing.B) {
	f, err := New(1 << 16)
	require.NoError(b, err)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.Add(5003943032159)
	}
}

func BenchmarkMayContain(b *testing.B) {
	f, err := New(1 << 16)
	require.NoError(b, err)
	f.Add(42)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.MayContain(43)
	}
}
