package digit

import "github.com/zeebo/errs"

// Error is the class of digit errors.
var Error = errs.Class("digit")

// Alphabet holds every digit in value order.
const Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Base bounds supported by the alphabet.
const (
	MinBase = 2
	MaxBase = len(Alphabet)
)

// Value returns the value of the digit c. Letters are accepted in either
// case. Bytes outside of the alphabet return -1.
func Value(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'A' <= c && c <= 'Z':
		return int(c-'A') + 10
	case 'a' <= c && c <= 'z':
		return int(c-'a') + 10
	}

	return -1
}

// Encode returns the digit for the value v. Values outside of [0, MaxBase)
// encode as '?'.
func Encode(v int) byte {
	if v < 0 || v >= MaxBase {
		return '?'
	}

	return Alphabet[v]
}

// Check returns the value of c and fails if c is not a valid digit in base.
func Check(c byte, base int) (v int, err error) {
	if base < MinBase || base > MaxBase {
		return 0, Error.New("base %d out of range [%d, %d]", base, MinBase, MaxBase)
	}

	v = Value(c)
	if v < 0 {
		return 0, Error.New("%q is not a digit", c)
	}

	if v >= base {
		return 0, Error.New("%q out of range: got %d - expected 0..%d", c, v, base-1)
	}

	return v, nil
}

// Valid reports whether base is within [MinBase, MaxBase].
func Valid(base int) bool {
	return base >= MinBase && base <= MaxBase
}
