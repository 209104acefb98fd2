package decimal

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"fortio.org/safecast"

	"github.com/calebcase/radix/digit"
	"github.com/calebcase/radix/trace"
)

// Block is a signed real number with an exact integer part.
type Block struct {
	Integer  *big.Int
	Fraction float64
	Negative bool
}

// New returns a normalized block. A nil integer is zero, integer is stored as
// a magnitude and a fraction of one or more is carried into the integer.
func New(integer *big.Int, fraction float64, negative bool) Block {
	i := new(big.Int)
	if integer != nil {
		i.Abs(integer)
	}

	if fraction >= 1 {
		whole := math.Floor(fraction)
		carry, _ := big.NewFloat(whole).Int(nil)
		i.Add(i, carry)
		fraction -= whole
	}

	return Block{
		Integer:  i,
		Fraction: fraction,
		Negative: negative,
	}
}

// FromFloat splits v into a block. v must be finite.
func FromFloat(v float64) Block {
	negative := v < 0
	v = math.Abs(v)

	whole := math.Floor(v)
	i, _ := big.NewFloat(whole).Int(nil)

	return New(i, v-whole, negative)
}

// IsZero returns true if the block is zero.
func (b Block) IsZero() bool {
	return (b.Integer == nil || b.Integer.Sign() == 0) && b.Fraction == 0
}

// Float64 returns the nearest float64 to the block.
func (b Block) Float64() float64 {
	var v float64
	if b.Integer != nil {
		v, _ = new(big.Float).SetInt(b.Integer).Float64()
	}

	v += b.Fraction
	if b.Negative {
		v = -v
	}

	return v
}

// String formats the block as a plain base 10 numeral. The radix point is
// omitted when the fraction is zero.
func (b Block) String() string {
	sb := &strings.Builder{}

	if b.Negative && !b.IsZero() {
		sb.WriteString("-")
	}

	if b.Integer == nil {
		sb.WriteString("0")
	} else {
		sb.WriteString(b.Integer.String())
	}

	if b.Fraction != 0 {
		f := strconv.FormatFloat(b.Fraction, 'f', -1, 64)
		sb.WriteString(strings.TrimPrefix(f, "0"))
	}

	return sb.String()
}

// FormatFraction returns up to limit digits of fraction in base.
//
// fraction must be in [0, 1). The expansion stops early once the remaining
// fraction reaches zero.
func FormatFraction(fraction float64, base, limit int, sink trace.Sink) string {
	sink = trace.OrNop(sink)

	b := float64(base)

	var buf []byte

	for fraction != 0 && len(buf) < limit {
		product := fraction * b
		whole := math.Floor(product)

		v, err := safecast.Convert[int](whole)
		if err != nil {
			v = -1
		}

		buf = append(buf, digit.Encode(v))

		trace.Printf(sink, "%f * %d = %f", fraction, base, product)

		fraction = product - whole
	}

	answer := string(buf)
	trace.Println(sink, "Answer Decimal: "+answer)

	return answer
}

// ParseFraction returns the value of the digits following a radix point in
// base. Digits are not validated.
//
// Nothing is traced when the fraction is zero.
func ParseFraction(digits string, base int, sink trace.Sink) float64 {
	sink = trace.OrNop(sink)

	total := new(big.Rat)
	weight := big.NewInt(1)
	b := big.NewInt(int64(base))

	var steps []string

	for i := 0; i < len(digits); i++ {
		v := digit.Value(digits[i])

		weight.Mul(weight, b)
		contribution := new(big.Rat).SetFrac(big.NewInt(int64(v)), weight)
		total.Add(total, contribution)

		if sink.Enabled() {
			f, _ := contribution.Float64()
			steps = append(steps, fmt.Sprintf("%d * %d^%d = %f", v, base, -(i + 1), f))
		}
	}

	f, _ := total.Float64()

	if total.Sign() == 0 {
		return f
	}

	for _, step := range steps {
		trace.Println(sink, step)
	}

	trace.Printf(sink, "Answer Decimal: %f", f)

	return f
}
