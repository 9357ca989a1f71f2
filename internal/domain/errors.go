package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingResource reports that a sub-district's backing file does not exist.
	ErrMissingResource = errors.New("series resource not found")

	// ErrLoadFailure is matched by every LoadError via errors.Is.
	ErrLoadFailure = errors.New("series load failed")

	// ErrNotFound reports that a date lies outside a series.
	ErrNotFound = errors.New("no data for date")

	// ErrUnknownSubDistrict reports a selection that is not in the catalog.
	ErrUnknownSubDistrict = errors.New("unknown sub-district")
)

// LoadError carries the underlying cause of a read or parse failure other
// than a missing file.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrLoadFailure) hold for any LoadError.
func (e *LoadError) Is(target error) bool { return target == ErrLoadFailure }
