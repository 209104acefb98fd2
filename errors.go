package radix

import "github.com/zeebo/errs"

// Error classes.
var (
	// Error is the class of all conversion failures.
	Error = errs.Class("radix")

	// InvalidBaseError is returned for bases outside of [2, 36].
	InvalidBaseError = errs.Class("invalid base")

	// InvalidDigitError is returned for values that are not well formed in
	// the claimed base.
	InvalidDigitError = errs.Class("invalid digit for base")
)
