// Package decimal provides the base 10 intermediate form shared by all
// conversions.
//
// A Block is a signed real number split into two parts:
//
//  number = ±(integer + fraction)
//
// Where integer is an exact, arbitrarily large magnitude and fraction is a
// float64 in [0, 1). For example:
//
//  -12.375 = -(12 + 0.375)
//
// Integer arithmetic is exact. Fraction arithmetic is not: expansions that do
// not terminate are truncated at a caller supplied number of digits and long
// expansions accumulate rounding error.
//
// Fraction Expansion
//
// FormatFraction produces the digits after the radix point by repeated
// multiplication. Each step multiplies the remaining fraction by the base,
// takes the whole part as the next digit and keeps the rest:
//
//  0.375 * 2 = 0.75  -> 0
//  0.75  * 2 = 1.5   -> 1
//  0.5   * 2 = 1.0   -> 1
//
//  0.375 = 0.011 (base 2)
//
// ParseFraction is the inverse: digit i (counting from 1 after the radix
// point) contributes digit * base^-i. The sum is computed exactly and rounded
// to a float64 once.
package decimal
