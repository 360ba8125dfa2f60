// pkg/build/errors.go
package build

import (
	"errors"
	"fmt"
)

var (
	// ErrNoAction indicates no builder action is registered for a source suffix
	ErrNoAction = errors.New("no action registered")

	// ErrNoSources indicates a build was requested without sources
	ErrNoSources = errors.New("no sources")

	// ErrNoTargets indicates an emitter produced no targets
	ErrNoTargets = errors.New("no targets")

	// ErrMixedSources indicates sources of a single build have different suffixes
	ErrMixedSources = errors.New("sources have different suffixes")

	// ErrEmptyCommand indicates a command template expanded to nothing
	ErrEmptyCommand = errors.New("empty command")
)

// BuildError wraps a builder failure with the target being built
type BuildError struct {
	Builder string // Builder name (StaticObject, SharedObject)
	Target  string // First target if known
	Err     error  // Underlying error
}

func (e *BuildError) Error() string {
	if e.Target != "" {
		return fmt.Sprintf("%s %s: %v", e.Builder, e.Target, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Builder, e.Err)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}
