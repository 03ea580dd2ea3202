package objects

import (
	"errors"
	"fmt"
)

// Kind classifies a storage failure by the operation that produced it.
type Kind string

const (
	KindConnection         Kind = "connection"
	KindBucketProvisioning Kind = "bucket_provisioning"
	KindObjectWrite        Kind = "object_write"
	KindObjectRead         Kind = "object_read"
	KindListing            Kind = "listing"
	KindDelete             Kind = "delete"
)

// Error wraps a lower-level storage failure with its classification and
// the virtual path involved, if any.
type Error struct {
	Kind Kind
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("storage %s error: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("storage %s error at %q: %v", e.Kind, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the classification carried by err, or the empty Kind
// when err is nil or unclassified.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return ""
}
