package rollinghash

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/rkmatch/internal/modular"
)

func newHasher(t testing.TB, p uint64, k int) *Hasher {
	t.Helper()
	h, err := New(modular.MustNew(p), k)
	require.NoError(t, err)
	return h
}

func TestNew_InvalidWindow(t *testing.T) {
	for _, k := range []int{0, -1} {
		_, err := New(modular.MustNew(modular.DefaultPrime), k)
		require.ErrorIs(t, err, ErrInvalidWindow)
	}
}

func TestHash_KnownValues(t *testing.T) {
	h := newHasher(t, modular.DefaultPrime, 3)

	// 'a'*256^2 + 'b'*256 + 'c'
	want := uint64('a')*65536 + uint64('b')*256 + uint64('c')
	assert.Equal(t, want, h.Hash([]byte("abc")))
	assert.Equal(t, uint64(65536), h.HighPower())
	assert.Equal(t, 3, h.K())
}

func TestHash_OnlyFirstK(t *testing.T) {
	h := newHasher(t, modular.DefaultPrime, 4)
	assert.Equal(t, h.Hash([]byte("abcd")), h.Hash([]byte("abcdefgh")))
	assert.Equal(t, h.Hash([]byte("cdef")), h.HashAt([]byte("abcdefgh"), 2))
}

func TestRoll_MatchesDirect(t *testing.T) {
	text := []byte("the quick brown fox jumps over the lazy dog")
	for _, k := range []int{1, 2, 5, 16, len(text)} {
		h := newHasher(t, modular.DefaultPrime, k)
		v := h.Hash(text)
		for i := 1; i+k <= len(text); i++ {
			v = h.Roll(v, text[i-1], text[i+k-1])
			require.Equal(t, h.HashAt(text, i), v, "k=%d i=%d", k, i)
		}
	}
}

func TestRoll_SmallModulus(t *testing.T) {
	// Byte values exceed the modulus, so every digit must be reduced first.
	h := newHasher(t, 7, 3)
	text := []byte{255, 254, 0, 1, 200, 13, 7}
	v := h.Hash(text)
	for i := 1; i+3 <= len(text); i++ {
		v = h.Roll(v, text[i-1], text[i+2])
		require.Equal(t, h.HashAt(text, i), v, "i=%d", i)
		require.Less(t, v, uint64(7))
	}
}

func TestWindows(t *testing.T) {
	h := newHasher(t, modular.DefaultPrime, 4)
	assert.Equal(t, 0, h.Windows(0))
	assert.Equal(t, 0, h.Windows(3))
	assert.Equal(t, 1, h.Windows(4))
	assert.Equal(t, 9, h.Windows(12))
}

func TestScan(t *testing.T) {
	h := newHasher(t, modular.DefaultPrime, 4)
	text := []byte("xxaaaabbbbyy")

	var offsets []int
	h.Scan(text, func(offset int, hash uint64) bool {
		require.Equal(t, h.HashAt(text, offset), hash)
		offsets = append(offsets, offset)
		return true
	})
	// Every window including the last one (offset n-k).
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}, offsets)
}

func TestScan_StopsEarly(t *testing.T) {
	h := newHasher(t, modular.DefaultPrime, 2)

	calls := 0
	h.Scan([]byte("abcdef"), func(offset int, _ uint64) bool {
		calls++
		return offset < 2
	})
	assert.Equal(t, 3, calls)
}

func TestScan_ShortText(t *testing.T) {
	h := newHasher(t, modular.DefaultPrime, 8)
	h.Scan([]byte("short"), func(int, uint64) bool {
		t.Fatal("no window expected")
		return false
	})
}

func TestRollProperties(t *testing.T) {
	h5 := newHasher(t, modular.DefaultPrime, 5)

	properties := gopter.NewProperties(nil)

	properties.Property("roll of a 5-byte window equals direct hash", prop.ForAll(
		func(window []uint8, entering uint8) bool {
			next := append(append([]byte{}, window[1:]...), entering)
			return h5.Roll(h5.Hash(window), window[0], entering) == h5.Hash(next)
		},
		gen.SliceOfN(5, gen.UInt8()),
		gen.UInt8(),
	))

	properties.Property("incremental scan equals direct hash at every shift", prop.ForAll(
		func(text []uint8, k int) bool {
			h, err := New(modular.MustNew(modular.DefaultPrime), k)
			if err != nil {
				return false
			}
			ok := true
			h.Scan(text, func(offset int, hash uint64) bool {
				ok = hash == h.HashAt(text, offset)
				return ok
			})
			return ok
		},
		gen.SliceOfN(64, gen.UInt8()),
		gen.IntRange(1, 64),
	))

	properties.TestingRun(t)
}

func BenchmarkRoll(b *testing.B) {
	h := newHasher(b, modular.DefaultPrime, 100)
	v := uint64(12345)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v = h.Roll(v, 'a', 'b')
	}
}
