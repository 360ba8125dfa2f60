// pkg/build/builder.go
package build

import (
	"context"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

// ObjectBuilder turns sources into object files. Actions and emitters are
// selected by the suffix of the sources.
type ObjectBuilder struct {
	name           string
	defaultEmitter Emitter
	actions        map[string]string
	emitters       map[string]Emitter
}

func newObjectBuilder(name string, defaultEmitter Emitter) *ObjectBuilder {
	return &ObjectBuilder{
		name:           name,
		defaultEmitter: defaultEmitter,
		actions:        make(map[string]string),
		emitters:       make(map[string]Emitter),
	}
}

// Name returns the builder name
func (b *ObjectBuilder) Name() string {
	return b.name
}

// AddAction registers the command template run for sources with suffix
func (b *ObjectBuilder) AddAction(suffix, command string) {
	b.actions[suffix] = command
}

// AddEmitter registers the emitter used for sources with suffix
func (b *ObjectBuilder) AddEmitter(suffix string, emitter Emitter) {
	b.emitters[suffix] = emitter
}

// Action returns the command template registered for suffix
func (b *ObjectBuilder) Action(suffix string) (string, bool) {
	cmd, ok := b.actions[suffix]
	return cmd, ok
}

// Emitter returns the emitter for suffix, falling back to the builder default
func (b *ObjectBuilder) Emitter(suffix string) Emitter {
	if emitter, ok := b.emitters[suffix]; ok {
		return emitter
	}
	return b.defaultEmitter
}

// Suffixes returns the suffixes with a registered action, sorted
func (b *ObjectBuilder) Suffixes() []string {
	suffixes := make([]string, 0, len(b.actions))
	for suffix := range b.actions {
		suffixes = append(suffixes, suffix)
	}
	sort.Strings(suffixes)
	return suffixes
}

// Plan runs the emitter and expands the command without executing it.
// target may be "" to let the emitter name the object.
func (b *ObjectBuilder) Plan(env *Environment, target string, sources ...string) (targets []string, argv []string, err error) {
	if len(sources) == 0 {
		return nil, nil, &BuildError{Builder: b.name, Target: target, Err: ErrNoSources}
	}

	suffix := filepath.Ext(sources[0])
	for _, src := range sources[1:] {
		if filepath.Ext(src) != suffix {
			return nil, nil, &BuildError{Builder: b.name, Target: target, Err: ErrMixedSources}
		}
	}

	command, ok := b.actions[suffix]
	if !ok {
		return nil, nil, &BuildError{Builder: b.name, Target: target, Err: ErrNoAction}
	}

	if target != "" {
		targets = []string{target}
	}
	targets, sources = b.Emitter(suffix)(targets, sources, env)
	if len(targets) == 0 {
		return nil, nil, &BuildError{Builder: b.name, Err: ErrNoTargets}
	}

	argv, err = env.SubstArgs(command, targets, sources)
	if err != nil {
		return nil, nil, &BuildError{Builder: b.name, Target: first(targets), Err: err}
	}
	if len(argv) == 0 {
		return nil, nil, &BuildError{Builder: b.name, Target: first(targets), Err: ErrEmptyCommand}
	}

	// Resolve the program against ENV's PATH rather than the process PATH
	if !strings.ContainsAny(argv[0], `/\`) {
		if path := env.WhereIs(argv[0]); path != "" {
			argv[0] = path
		}
	}

	return targets, argv, nil
}

// Build compiles sources into target by running the registered action and
// returns every target the emitter produced.
func (b *ObjectBuilder) Build(ctx context.Context, env *Environment, target string, sources ...string) ([]string, error) {
	targets, argv, err := b.Plan(env, target, sources...)
	if err != nil {
		return nil, err
	}

	for _, t := range targets {
		if dir := filepath.Dir(t); dir != "." {
			if err := env.Fs().MkdirAll(dir, 0755); err != nil {
				return nil, &BuildError{Builder: b.name, Target: t, Err: err}
			}
		}
	}

	env.Logger().WithFields(logrus.Fields{
		"builder": b.name,
		"target":  targets[0],
	}).Debug(strings.Join(argv, " "))

	if err := env.runner.Run(ctx, argv, env.Environ()); err != nil {
		return nil, &BuildError{Builder: b.name, Target: targets[0], Err: err}
	}

	return targets, nil
}
