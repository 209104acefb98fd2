package radix

import (
	"strings"

	"github.com/calebcase/radix/digit"
)

// Validate returns an error unless value is a well formed numeral in base:
// an optional leading '-', at least one digit, at most one radix point and
// only digits below base.
func Validate(value string, base int) (err error) {
	if !digit.Valid(base) {
		return InvalidBaseError.New("%d not in [%d, %d]", base, digit.MinBase, digit.MaxBase)
	}

	negative, body := splitSign(value)

	offset := 0
	if negative {
		offset = 1
	}

	point := -1
	digits := 0

	for i := 0; i < len(body); i++ {
		c := body[i]

		if c == '.' {
			if point >= 0 {
				return InvalidDigitError.New(
					"multiple radix points: positions %d and %d",
					point+offset,
					i+offset,
				)
			}

			point = i

			continue
		}

		_, err = digit.Check(c, base)
		if err != nil {
			return InvalidDigitError.New("position %d: %v", i+offset, err)
		}

		digits++
	}

	if digits == 0 {
		return InvalidDigitError.New("no digits in %q", value)
	}

	return nil
}

// Convert validates value in base from and converts it to base to.
//
// Conversions between binary and another power of two base use bit grouping.
// Everything else is bridged through base 10 and the fraction is cut off
// after the schema's FractionalLimit digits.
func (c *Converter) Convert(value string, from, to int) (_ string, err error) {
	defer Error.WrapP(&err)

	err = Validate(value, from)
	if err != nil {
		return "", err
	}

	if !digit.Valid(to) {
		return "", InvalidBaseError.New("%d not in [%d, %d]", to, digit.MinBase, digit.MaxBase)
	}

	switch {
	case from == to:
		return canonical(value), nil
	case from == 2:
		if s, ok := c.BinaryToBase(value, to); ok {
			return s, nil
		}
	case to == 2:
		if s, ok := c.BaseToBinary(value, from); ok {
			return s, nil
		}
	}

	sink := c.schema.Trace
	blk := toDecimal(value, from, sink)

	return fromDecimal(blk, to, c.schema.FractionalLimit, sink), nil
}

// Convert validates value and converts it without tracing. See
// Converter.Convert.
func Convert(value string, from, to int) (string, error) {
	return quiet.Convert(value, from, to)
}

// canonical upper cases the digits of a validated value.
func canonical(value string) string {
	return strings.Map(func(r rune) rune {
		if r == '-' || r == '.' {
			return r
		}

		return rune(digit.Encode(digit.Value(byte(r))))
	}, value)
}
