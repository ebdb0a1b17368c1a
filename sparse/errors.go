package sparse

import "errors"

// ErrOutOfRange is returned when a row or column number falls outside the
// matrix's current bounds.
var ErrOutOfRange = errors.New("sparse: index out of range")
