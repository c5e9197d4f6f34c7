package grid

import "errors"

// ErrInvalidSize indicates a lattice side below one cell.
var ErrInvalidSize = errors.New("grid: side must be at least 1")
