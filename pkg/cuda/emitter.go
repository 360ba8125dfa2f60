// pkg/cuda/emitter.go
package cuda

import (
	"github.com/arc-language/cudatool/pkg/build"
)

// SideArtifacts lists files the compiler writes next to the object for
// the given sources. They become extra targets so a clean removes them.
type SideArtifacts func(sources []string, env *build.Environment) []string

// noSideArtifacts is the current behavior: nvcc .linkinfo files are not tracked.
func noSideArtifacts(sources []string, env *build.Environment) []string {
	return nil
}

// objectEmitter runs the standard object emitter, then adds side artifacts
func objectEmitter(base build.Emitter, extra SideArtifacts) build.Emitter {
	if extra == nil {
		extra = noSideArtifacts
	}
	return func(targets, sources []string, env *build.Environment) ([]string, []string) {
		targets, sources = base(targets, sources, env)
		return append(targets, extra(sources, env)...), sources
	}
}
