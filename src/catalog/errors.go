package catalog

import "fmt"

// LoadError wraps any failure while reading or validating the dataset.
// A load that returns one leaves the session without a catalog; callers
// stop rendering rather than retry.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string { return fmt.Sprintf("load %s: %v", e.Path, e.Err) }

func (e *LoadError) Unwrap() error { return e.Err }
