// Package radix converts numbers between positional numeral bases.
//
// Bases from 2 to 36 are supported using the digits 0-9 followed by A-Z.
// Letters are accepted in either case and always produced in upper case. A
// value may carry a leading '-' and a single '.' radix point.
//
// There are four conversions:
//
//  DecimalToBase   float64 -> digits in base N
//  BaseToDecimal   digits in base N -> base 10 digits
//  BinaryToBase    base 2 digits -> digits in base 2^k
//  BaseToBinary    digits in base 2^k -> base 2 digits
//
// The binary conversions work on groups of k bits and only accept bases that
// are powers of two. For any other base they return ok == false and the
// caller is expected to bridge through base 10 instead. Convert does this
// automatically and validates its input first.
//
// Tracing
//
// Every conversion can report its arithmetic step by step. A Converter sends
// its steps to the trace.Sink in its Schema. The package level functions take
// a verbose flag and write to Output when it is set:
//
//  radix.DecimalToBase(10, 2, 5, true)
//
//  2|10 - 0
//  2|5 - 1
//  2|2 - 0
//  2|1 - 1
//  Answer Int: 1010
//  Answer Decimal:
//  ====================================
//
// Precision
//
// Integer parts are converted exactly regardless of size. Fractional parts
// are float64 and expansions that do not terminate are cut off after a fixed
// number of digits.
package radix
