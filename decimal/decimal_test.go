package decimal

import (
	"fmt"
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/radix/trace"
)

func TestBlockString(t *testing.T) {
	type TC struct {
		name string
		blk  Block
	}

	tcs := []TC{
		{name: "0", blk: Block{}},
		{name: "0", blk: New(nil, 0, true)},
		{name: "255", blk: New(big.NewInt(255), 0, false)},
		{name: "-255", blk: New(big.NewInt(255), 0, true)},
		{name: "0.5", blk: New(nil, 0.5, false)},
		{name: "-0.5", blk: New(nil, 0.5, true)},
		{name: "12.375", blk: New(big.NewInt(12), 0.375, false)},
		{name: "13", blk: New(big.NewInt(12), 1, false)},
		{name: "14.25", blk: New(big.NewInt(12), 2.25, false)},
		{name: "0.00000000000000000001", blk: New(nil, 1e-20, false)},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			require.Equal(t, tc.name, tc.blk.String())
		})
	}
}

func TestFromFloat(t *testing.T) {
	type TC struct {
		v   float64
		blk Block
	}

	tcs := []TC{
		{v: 0, blk: New(nil, 0, false)},
		{v: 255, blk: New(big.NewInt(255), 0, false)},
		{v: 10.5, blk: New(big.NewInt(10), 0.5, false)},
		{v: -10.5, blk: New(big.NewInt(10), 0.5, true)},
		{v: math.Pow(2, 70), blk: New(new(big.Int).Lsh(big.NewInt(1), 70), 0, false)},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%v", i, tc.v), func(t *testing.T) {
			blk := FromFloat(tc.v)
			require.Equal(t, 0, tc.blk.Integer.Cmp(blk.Integer))
			require.Equal(t, tc.blk.Fraction, blk.Fraction)
			require.Equal(t, tc.blk.Negative, blk.Negative)
			require.Equal(t, tc.v, blk.Float64())
		})
	}
}

func TestFormatFraction(t *testing.T) {
	type TC struct {
		fraction float64
		base     int
		limit    int
		digits   string
	}

	tcs := []TC{
		{fraction: 0, base: 2, limit: 5, digits: ""},
		{fraction: 0.5, base: 2, limit: 5, digits: "1"},
		{fraction: 0.375, base: 2, limit: 5, digits: "011"},
		{fraction: 0.5, base: 2, limit: 0, digits: ""},
		{fraction: 1.0 / 3.0, base: 10, limit: 4, digits: "3333"},
		{fraction: 1.0 / 3.0, base: 3, limit: 4, digits: "1"},
		{fraction: 0.1, base: 2, limit: 8, digits: "00011001"},
		{fraction: 0.9375, base: 16, limit: 5, digits: "F"},
		{fraction: 0.5, base: 36, limit: 5, digits: "I"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%v/%d", i, tc.fraction, tc.base), func(t *testing.T) {
			digits := FormatFraction(tc.fraction, tc.base, tc.limit, nil)
			require.Equal(t, tc.digits, digits)
			require.LessOrEqual(t, len(digits), tc.limit)
		})
	}
}

func TestParseFraction(t *testing.T) {
	type TC struct {
		digits   string
		base     int
		fraction float64
	}

	tcs := []TC{
		{digits: "", base: 10, fraction: 0},
		{digits: "1", base: 2, fraction: 0.5},
		{digits: "011", base: 2, fraction: 0.375},
		{digits: "12", base: 10, fraction: 0.12},
		{digits: "8", base: 16, fraction: 0.5},
		{digits: "f", base: 16, fraction: 0.9375},
		{digits: "I", base: 36, fraction: 0.5},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s/%d", i, tc.digits, tc.base), func(t *testing.T) {
			require.Equal(t, tc.fraction, ParseFraction(tc.digits, tc.base, nil))
		})
	}
}

func TestFractionTrace(t *testing.T) {
	r := &trace.Recorder{}

	require.Equal(t, "011", FormatFraction(0.375, 2, 5, r))
	require.Equal(t, []string{
		"0.375000 * 2 = 0.750000",
		"0.750000 * 2 = 1.500000",
		"0.500000 * 2 = 1.000000",
		"Answer Decimal: 011",
	}, r.Lines())

	r.Reset()

	require.Equal(t, 0.375, ParseFraction("011", 2, r))
	require.Equal(t, []string{
		"0 * 2^-1 = 0.000000",
		"1 * 2^-2 = 0.250000",
		"1 * 2^-3 = 0.125000",
		"Answer Decimal: 0.375000",
	}, r.Lines())
}

func TestFormatFractionEveryDigit(t *testing.T) {
	for v := 0; v < 64; v++ {
		fraction := float64(v) / 64

		digits := FormatFraction(fraction, 32, 5, nil)
		require.Equal(t, fraction, ParseFraction(digits, 32, nil), "v=%d digits=%s", v, digits)
	}

	require.Equal(t, "Z", FormatFraction(35.0/36.0, 36, 1, nil))
}

func TestParseFractionZeroTrace(t *testing.T) {
	type TC struct {
		digits string
		base   int
	}

	tcs := []TC{
		{digits: "0", base: 10},
		{digits: "000", base: 2},
		{digits: "00", base: 36},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s/%d", i, tc.digits, tc.base), func(t *testing.T) {
			r := &trace.Recorder{}

			require.Equal(t, 0.0, ParseFraction(tc.digits, tc.base, r))
			require.Empty(t, r.Lines())
		})
	}
}
