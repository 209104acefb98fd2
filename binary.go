package radix

import (
	"math/big"
	"math/bits"
	"strings"

	"github.com/calebcase/radix/decimal"
	"github.com/calebcase/radix/digit"
	"github.com/calebcase/radix/trace"
)

// GroupSize returns log2(base): the number of bits that make up one digit in
// base. ok is false if base is not a power of two within [2, 36].
func GroupSize(base int) (size int, ok bool) {
	if !digit.Valid(base) || bits.OnesCount(uint(base)) != 1 {
		return 0, false
	}

	return bits.TrailingZeros(uint(base)), true
}

// BinaryToBase converts the binary value to base by grouping bits. ok is
// false if base is not a power of two.
//
// Integer bits are grouped starting from the least significant bit, so the
// most significant group may be short. Fraction bits are grouped starting
// from the radix point and a short final group is padded on the right.
func (c *Converter) BinaryToBase(value string, base int) (_ string, ok bool) {
	size, ok := GroupSize(base)
	if !ok {
		return "", false
	}

	sink := c.schema.Trace

	negative, body := splitSign(value)
	whole, fraction, _ := strings.Cut(body, ".")

	// Groups are processed least significant first and reversed afterwards.
	digits := group(reversed(whole), size, sink, func(i int) int {
		return 1 << i
	})
	reverse(digits)

	if len(digits) == 0 {
		digits = []byte{'0'}
	}

	trace.Println(sink, "Answer Int: "+string(digits))

	var fdigits []byte
	if fraction != "" {
		fdigits = group(fraction, size, sink, func(i int) int {
			return 1 << (size - 1 - i)
		})

		trace.Println(sink, "Answer Decimal: "+string(fdigits))
	}

	sink.Separator()

	return join(negative, string(digits), string(fdigits)), true
}

// group converts each run of size bits from in into one digit. weight returns the
// multiplier of the bit at position i within its group.
func group(in string, size int, sink trace.Sink, weight func(i int) int) []byte {
	var out []byte

	for start := 0; start < len(in); start += size {
		end := start + size
		if end > len(in) {
			end = len(in)
		}

		total := 0

		for i := 0; i < end-start; i++ {
			v := digit.Value(in[start+i])
			w := weight(i)
			total += v * w

			trace.Printf(sink, "%d * %d = %d", v, w, v*w)
		}

		d := digit.Encode(total)
		out = append(out, d)

		trace.Println(sink, "="+string(d))
		trace.Println(sink, "------")
	}

	return out
}

// BaseToBinary converts value in base to binary by expanding each digit into
// log2(base) bits. ok is false if base is not a power of two.
//
// Leading zeros of the integer part are removed (keeping at least one digit).
// Trailing zeros of the fraction are kept.
func (c *Converter) BaseToBinary(value string, base int) (_ string, ok bool) {
	size, ok := GroupSize(base)
	if !ok {
		return "", false
	}

	sink := c.schema.Trace

	negative, body := splitSign(value)
	whole, fraction, _ := strings.Cut(body, ".")

	sb := &strings.Builder{}

	for i := 0; i < len(whole); i++ {
		v := digit.Value(whole[i])

		blk := decimal.New(big.NewInt(int64(v)), 0, false)
		bin := pad(fromDecimal(blk, 2, 0, trace.Nop), size)

		trace.Printf(sink, "%s - %d", bin, v)

		sb.WriteString(bin)
	}

	wbits := strings.TrimLeft(sb.String(), "0")
	if wbits == "" {
		wbits = "0"
	}

	sb.Reset()

	if fraction != "" {
		trace.Println(sink, ".")

		for i := 0; i < len(fraction); i++ {
			d := fraction[i : i+1]

			blk := toDecimal(d, base, trace.Nop)
			bin := pad(fromDecimal(blk, 2, 0, trace.Nop), size)

			trace.Printf(sink, "%s - %d", bin, digit.Value(d[0]))

			sb.WriteString(bin)
		}
	}

	sink.Separator()

	return join(negative, wbits, sb.String()), true
}

// pad left pads bin with zeros to size bits.
func pad(bin string, size int) string {
	if len(bin) >= size {
		return bin
	}

	return strings.Repeat("0", size-len(bin)) + bin
}

func reversed(s string) string {
	buf := []byte(s)
	reverse(buf)

	return string(buf)
}

func reverse(buf []byte) {
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
}
