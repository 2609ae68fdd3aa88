package modular

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		p    uint64
		err  error
	}{
		{name: "default", p: DefaultPrime},
		{name: "two", p: 2},
		{name: "largest", p: maxModulus},
		{name: "zero", p: 0, err: ErrModulusTooSmall},
		{name: "one", p: 1, err: ErrModulusTooSmall},
		{name: "overflow", p: maxModulus + 1, err: ErrModulusTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(tt.p)
			require.ErrorIs(t, err, tt.err)
			if tt.err == nil {
				require.Equal(t, tt.p, m.P())
			}
		})
	}
}

func TestMustNewPanics(t *testing.T) {
	require.Panics(t, func() { MustNew(0) })
	require.NotPanics(t, func() { MustNew(DefaultPrime) })
}

func TestAddSubWrap(t *testing.T) {
	m := MustNew(7)

	require.Equal(t, uint64(5), m.Add(2, 3))
	require.Equal(t, uint64(0), m.Add(3, 4))
	require.Equal(t, uint64(5), m.Add(6, 6))

	require.Equal(t, uint64(1), m.Sub(3, 2))
	require.Equal(t, uint64(0), m.Sub(4, 4))
	require.Equal(t, uint64(6), m.Sub(2, 3))
}

func TestMulLargeOperands(t *testing.T) {
	m := MustNew(DefaultPrime)
	a, b := DefaultPrime-1, DefaultPrime-2

	want := new(big.Int).Mul(new(big.Int).SetUint64(a), new(big.Int).SetUint64(b))
	want.Mod(want, new(big.Int).SetUint64(DefaultPrime))

	require.Equal(t, want.Uint64(), m.Mul(a, b))
}

func TestPow(t *testing.T) {
	m := MustNew(DefaultPrime)

	require.Equal(t, uint64(1), m.Pow(256, 0))
	require.Equal(t, uint64(256), m.Pow(256, 1))
	require.Equal(t, uint64(65536), m.Pow(256, 2))

	want := uint64(1)
	for i := 0; i < 99; i++ {
		want = m.Mul(want, 256)
	}
	require.Equal(t, want, m.Pow(256, 99))
}

func TestArithmeticProperties(t *testing.T) {
	m := MustNew(DefaultPrime)
	bp := new(big.Int).SetUint64(DefaultPrime)

	residue := gen.UInt64Range(0, DefaultPrime-1)

	properties := gopter.NewProperties(nil)

	properties.Property("add matches big.Int", prop.ForAll(
		func(a, b uint64) bool {
			want := new(big.Int).Add(new(big.Int).SetUint64(a), new(big.Int).SetUint64(b))
			return want.Mod(want, bp).Uint64() == m.Add(a, b)
		},
		residue, residue,
	))

	properties.Property("sub matches big.Int", prop.ForAll(
		func(a, b uint64) bool {
			want := new(big.Int).Sub(new(big.Int).SetUint64(a), new(big.Int).SetUint64(b))
			return want.Mod(want, bp).Uint64() == m.Sub(a, b)
		},
		residue, residue,
	))

	properties.Property("mul matches big.Int", prop.ForAll(
		func(a, b uint64) bool {
			want := new(big.Int).Mul(new(big.Int).SetUint64(a), new(big.Int).SetUint64(b))
			return want.Mod(want, bp).Uint64() == m.Mul(a, b)
		},
		residue, residue,
	))

	properties.Property("sub inverts add", prop.ForAll(
		func(a, b uint64) bool {
			return m.Sub(m.Add(a, b), b) == a
		},
		residue, residue,
	))

	properties.TestingRun(t)
}
