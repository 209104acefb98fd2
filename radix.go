package radix

import (
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/calebcase/radix/decimal"
	"github.com/calebcase/radix/integer"
	"github.com/calebcase/radix/trace"
)

// DefaultFractionalLimit is the number of fractional digits Convert produces
// when the schema does not set one.
const DefaultFractionalLimit = 10

// Output receives trace output from the package level functions when verbose
// is set. It is read on every verbose call and must not be changed while
// conversions are running. Concurrent callers that need their own output
// should use a Converter with a trace.Writer instead.
var Output io.Writer = os.Stdout

// Schema configures a Converter.
type Schema struct {
	// Trace receives the steps of every conversion. Nil disables tracing.
	Trace trace.Sink

	// FractionalLimit caps the fractional digits produced by Convert. Zero
	// selects DefaultFractionalLimit.
	FractionalLimit int
}

// Converter converts values between bases.
type Converter struct {
	schema Schema
}

// NewConverter returns a new converter.
func NewConverter(schema Schema) *Converter {
	schema.Trace = trace.OrNop(schema.Trace)

	if schema.FractionalLimit <= 0 {
		schema.FractionalLimit = DefaultFractionalLimit
	}

	return &Converter{
		schema: schema,
	}
}

// DecimalToBase returns value in base with at most fractionalLimit digits
// after the radix point. The radix point is omitted if there are none.
//
// NaN and infinities are returned as formatted by strconv.
func (c *Converter) DecimalToBase(value float64, base, fractionalLimit int) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return strconv.FormatFloat(value, 'f', -1, 64)
	}

	return fromDecimal(decimal.FromFloat(value), base, fractionalLimit, c.schema.Trace)
}

// BaseToDecimal returns value, written in base, as a base 10 numeral.
func (c *Converter) BaseToDecimal(value string, base int) string {
	return toDecimal(value, base, c.schema.Trace).String()
}

// fromDecimal formats blk in base.
func fromDecimal(blk decimal.Block, base, limit int, sink trace.Sink) string {
	whole := integer.Format(blk.Integer, base, sink)
	fraction := decimal.FormatFraction(blk.Fraction, base, limit, sink)
	sink.Separator()

	return join(blk.Negative, whole, fraction)
}

// toDecimal parses value in base.
func toDecimal(value string, base int, sink trace.Sink) decimal.Block {
	negative, body := splitSign(value)
	whole, fraction, _ := strings.Cut(body, ".")

	i := integer.Parse(whole, base, sink)

	var f float64
	if fraction != "" {
		f = decimal.ParseFraction(fraction, base, sink)
	}

	sink.Separator()

	return decimal.New(i, f, negative)
}

// splitSign removes a leading '-'.
func splitSign(value string) (negative bool, body string) {
	if strings.HasPrefix(value, "-") {
		return true, value[1:]
	}

	return false, value
}

// join assembles a signed numeral. The sign is dropped when every digit is
// zero.
func join(negative bool, whole, fraction string) string {
	sb := &strings.Builder{}

	if negative && strings.Trim(whole+fraction, "0") != "" {
		sb.WriteString("-")
	}

	sb.WriteString(whole)

	if fraction != "" {
		sb.WriteString(".")
		sb.WriteString(fraction)
	}

	return sb.String()
}

var quiet = NewConverter(Schema{})

func converter(verbose bool) *Converter {
	if verbose {
		return NewConverter(Schema{
			Trace: trace.NewWriter(Output),
		})
	}

	return quiet
}

// DecimalToBase converts value to base. See Converter.DecimalToBase.
func DecimalToBase(value float64, base, fractionalLimit int, verbose bool) string {
	return converter(verbose).DecimalToBase(value, base, fractionalLimit)
}

// BaseToDecimal converts value from base to base 10. See
// Converter.BaseToDecimal.
func BaseToDecimal(value string, base int, verbose bool) string {
	return converter(verbose).BaseToDecimal(value, base)
}

// BinaryToBase converts binary value to base. See Converter.BinaryToBase.
func BinaryToBase(value string, base int, verbose bool) (string, bool) {
	return converter(verbose).BinaryToBase(value, base)
}

// BaseToBinary converts value from base to binary. See
// Converter.BaseToBinary.
func BaseToBinary(value string, base int, verbose bool) (string, bool) {
	return converter(verbose).BaseToBinary(value, base)
}
