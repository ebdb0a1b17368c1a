package cube

import "errors"

// Sentinel errors for the cube package. All are fatal-precondition failures
// in the sense of spec.md §7.1: malformed input that the caller must not
// silently ignore. Library callers get an error value instead of the
// original C implementation's fatal(msg)+exit(1).
var (
	// ErrBadPartSize indicates a variable's declared part size is invalid
	// (less than 1), or a negative binary-variable or output-part count.
	ErrBadPartSize = errors.New("cube: invalid part size")

	// ErrSizeMismatch indicates a cube's word array does not match the
	// Descriptor's Size/WordCount.
	ErrSizeMismatch = errors.New("cube: cube size does not match descriptor")

	// ErrVarOutOfRange indicates a variable index outside [0, NVars).
	ErrVarOutOfRange = errors.New("cube: variable index out of range")

	// ErrEmptyRange indicates a cube that is the empty set in some
	// variable (an inconsistent product term) where a non-empty range was
	// required by the caller.
	ErrEmptyRange = errors.New("cube: empty range on variable")

	// ErrUnravelOverflow indicates an UnravelRange expansion would exceed
	// the 1e6-cube fatal guard of spec.md §4.1.
	ErrUnravelOverflow = errors.New("cube: unravel expansion exceeds 1,000,000 cubes")

	// ErrNilDescriptor indicates an operation was attempted against a nil
	// *Descriptor.
	ErrNilDescriptor = errors.New("cube: nil descriptor")

	// ErrTempIndexOutOfRange indicates Descriptor.Temp was called with an
	// index outside [0, TempPoolSize).
	ErrTempIndexOutOfRange = errors.New("cube: scratch cube index out of range")
)
