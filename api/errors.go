// File: api/errors.go
// Author: momentics <momentics@gmail.com>
//
// Common error values used across the library.

package api

import "fmt"

// Sentinel errors. ErrBufFull and ErrBufEmpty are the error-typed mirrors of
// the BufFull and BufEmpty codes; the rest are construction-time failures.
var (
	ErrBufFull         = fmt.Errorf("ring buffer full")
	ErrBufEmpty        = fmt.Errorf("ring buffer empty")
	ErrInvalidCapacity = fmt.Errorf("ring capacity must be in [1, 2^31-1]")
	ErrInvalidItemSize = fmt.Errorf("item size must be at least one byte")
	ErrStorageTooSmall = fmt.Errorf("backing storage smaller than capacity*itemSize")
	ErrAlreadySplit    = fmt.Errorf("ring already split into producer and consumer")
)
