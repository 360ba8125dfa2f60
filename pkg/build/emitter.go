// pkg/build/emitter.go
package build

import (
	"path/filepath"
)

// Emitter computes the targets and sources of a build from the requested
// ones. Emitters may add side artifacts to the target list.
type Emitter func(targets, sources []string, env *Environment) ([]string, []string)

// StaticObjectEmitter is the standard emitter for static objects
func StaticObjectEmitter(targets, sources []string, env *Environment) ([]string, []string) {
	return emitObject(targets, sources, env, "$OBJPREFIX", "$OBJSUFFIX")
}

// SharedObjectEmitter is the standard emitter for shared objects
func SharedObjectEmitter(targets, sources []string, env *Environment) ([]string, []string) {
	return emitObject(targets, sources, env, "$SHOBJPREFIX", "$SHOBJSUFFIX")
}

// emitObject names the object after the first source when no target was
// given and adds the object suffix to a target without one.
func emitObject(targets, sources []string, env *Environment, prefix, suffix string) ([]string, []string) {
	if len(sources) == 0 {
		return targets, sources
	}

	objSuffix := env.Subst(suffix, nil, nil)

	if len(targets) == 0 {
		src := sources[0]
		name := env.Subst(prefix, nil, nil) + stripext(filepath.Base(src)) + objSuffix
		return []string{filepath.Join(filepath.Dir(src), name)}, sources
	}

	out := make([]string, len(targets))
	copy(out, targets)
	if filepath.Ext(out[0]) == "" {
		out[0] += objSuffix
	}
	return out, sources
}

// stripext strips the extension from a filename.
func stripext(path string) string {
	return path[:len(path)-len(filepath.Ext(path))]
}
