// errors.go
package cudatool

import (
	"github.com/arc-language/cudatool/pkg/build"
	"github.com/arc-language/cudatool/pkg/cuda"
)

var (
	// ErrToolkitNotFound indicates no toolkit override was set and no candidate directory exists
	ErrToolkitNotFound = cuda.ErrToolkitNotFound

	// ErrNoAction indicates no build action is registered for a source suffix
	ErrNoAction = build.ErrNoAction
)

// Error wraps an error with additional context
type Error = cuda.Error

// BuildError wraps a failed object build
type BuildError = build.BuildError
