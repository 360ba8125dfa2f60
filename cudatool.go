// cudatool.go
package cudatool

import (
	"github.com/arc-language/cudatool/pkg/build"
	"github.com/arc-language/cudatool/pkg/cuda"
)

// Re-export types for convenience
type (
	Environment = build.Environment
	EnvConfig   = build.Config
	Options     = cuda.Options
	Locations   = cuda.Locations
)

// NewEnvironment creates a build environment with platform defaults
func NewEnvironment(cfg *EnvConfig) *Environment {
	return build.NewEnvironment(cfg)
}

// Configure locates the CUDA Toolkit and sets env up to build .cu sources.
// It returns an error wrapping ErrToolkitNotFound when no toolkit is found
// and CUDA_TOOLKIT_PATH was not set; env is unchanged in that case.
// Configure each environment once: list settings are appended to.
func Configure(env *Environment, opts *Options) error {
	return cuda.Generate(env, opts)
}

// Detect reports whether the CUDA compiler can be found on env's PATH
func Detect(env *Environment) bool {
	return cuda.Exists(env)
}

// Candidates returns the toolkit directories probed by Configure, in order
func Candidates(l Locations) []string {
	return cuda.Candidates(l)
}

// LocationsFromEnv reads HOME, PROGRAMFILES and HOMEDRIVE
func LocationsFromEnv() Locations {
	return cuda.LocationsFromEnv()
}
