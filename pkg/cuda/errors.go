// pkg/cuda/errors.go
package cuda

import (
	"errors"
	"fmt"
)

// ErrToolkitNotFound indicates no override was given and no candidate
// directory exists. Nothing was configured; .cu sources cannot be built.
var ErrToolkitNotFound = errors.New("cannot find the CUDA Toolkit path")

// Error wraps an error with additional context
type Error struct {
	Op   string // Operation that failed
	Path string // Path involved if applicable
	Err  error  // Underlying error
}

func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
