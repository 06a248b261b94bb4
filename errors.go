package tiercache

import (
	"errors"
	"fmt"
)

// NotFoundError reports a key absent from both cache levels, including
// keys whose persisted record was invalidated by a version mismatch.
type NotFoundError struct {
	Key string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("tiercache: key %q not found", e.Key)
}

// IsNotFound reports whether err is a not-found miss.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
