package integer

import (
	"math/big"
	"strconv"

	"fortio.org/safecast"

	"github.com/calebcase/radix/digit"
	"github.com/calebcase/radix/trace"
)

// Format returns the digits of |n| in base, most significant first.
//
// Digits are produced by repeated division. The loop always runs at least
// once so zero formats as "0".
func Format(n *big.Int, base int, sink trace.Sink) string {
	sink = trace.OrNop(sink)

	q := new(big.Int).Abs(n)
	b := big.NewInt(int64(base))
	r := new(big.Int)

	// Least significant digit first.
	var buf []byte

	for {
		if sink.Enabled() {
			sink.Emit(fmtStep(base, q), false)
		}

		q.QuoRem(q, b, r)

		// r < base <= 36
		v, err := safecast.Conv[int](r.Int64())
		if err != nil {
			panic(err)
		}

		c := digit.Encode(v)
		buf = append(buf, c)
		sink.Emit(string(c), true)

		if q.Sign() == 0 {
			break
		}
	}

	reverse(buf)

	answer := string(buf)
	trace.Println(sink, "Answer Int: "+answer)

	return answer
}

// Parse returns the value of digits in base. The last digit is the least
// significant. An empty string is zero.
//
// Digits are not validated: a byte outside of the alphabet contributes an
// undefined amount.
func Parse(digits string, base int, sink trace.Sink) *big.Int {
	sink = trace.OrNop(sink)

	total := new(big.Int)
	b := big.NewInt(int64(base))
	weight := big.NewInt(1)
	contribution := new(big.Int)

	for i := 0; i < len(digits); i++ {
		v := digit.Value(digits[len(digits)-1-i])

		contribution.Mul(big.NewInt(int64(v)), weight)
		total.Add(total, contribution)

		trace.Printf(sink, "%d * %d^%d = %s", v, base, i, contribution)

		weight.Mul(weight, b)
	}

	trace.Println(sink, "Answer Int: "+total.String())

	return total
}

func fmtStep(base int, q *big.Int) string {
	return strconv.Itoa(base) + "|" + q.String() + " - "
}

func reverse(buf []byte) {
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
}
