package store

import "errors"

// Sentinel errors for the two non-I/O load outcomes. Anything else coming out
// of the store is a wrapped platform I/O error.
var (
	// ErrNotFound indicates the store file does not exist yet. Expected on
	// first use, not exceptional.
	ErrNotFound = errors.New("memory store not found")

	// ErrCorrupt indicates the store file exists but could not be parsed or
	// is structurally unusable. Treated as "no usable memory".
	ErrCorrupt = errors.New("memory store corrupt")
)

// IsNotFound reports whether err means the store file is absent.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsCorrupt reports whether err means the store file is unreadable.
func IsCorrupt(err error) bool {
	return errors.Is(err, ErrCorrupt)
}
