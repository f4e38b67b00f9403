package signature

import (
	"errors"
	"fmt"
)

var (
	ErrDifferentlySizedSignatures = errors.New("differently sized signatures")
	ErrListTooLarge               = errors.New("signature list exceeds 4GiB")
	ErrNoKind                     = errors.New("signature list has no kind")
)

// SizeMismatchError reports an entry whose size differs from the first entry
// of the list. It matches ErrDifferentlySizedSignatures with errors.Is.
type SizeMismatchError struct {
	Index    int
	Expected int
	Actual   int
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("%s: entry %d is %d bytes, wanted: %d", ErrDifferentlySizedSignatures, e.Index, e.Actual, e.Expected)
}

func (e *SizeMismatchError) Unwrap() error {
	return ErrDifferentlySizedSignatures
}

func (e *SizeMismatchError) Name() string {
	return "DifferentlySizedSignatures"
}
