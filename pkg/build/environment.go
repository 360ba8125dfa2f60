// pkg/build/environment.go
package build

import (
	"io"
	"os"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/arc-language/cudatool/pkg/platform"
)

// Config configures a new Environment
type Config struct {
	// Fs is the filesystem probed by tools and scanners (default: OS filesystem)
	Fs afero.Fs

	// Runner executes build commands (default: ExecRunner on stdout/stderr)
	Runner Runner

	// Platform selects object suffixes and executable lookup rules
	Platform *platform.Platform

	// ENV is the execution environment for child processes.
	// Defaults to PATH taken from the process environment.
	ENV map[string]string

	// Logger for build output
	Logger *logrus.Logger
}

// setting holds either a scalar or a list value
type setting struct {
	scalar string
	list   []string
	isList bool
}

// Environment is a construction environment: named settings, the
// execution environment, builders and scanners.
type Environment struct {
	settings map[string]*setting

	// ENV is passed to every command a builder runs
	ENV map[string]string

	fs       afero.Fs
	runner   Runner
	platform *platform.Platform
	logger   *logrus.Logger

	staticObj *ObjectBuilder
	sharedObj *ObjectBuilder
	scanners  *ScannerRegistry
}

// NewEnvironment creates an environment with platform defaults
func NewEnvironment(cfg *Config) *Environment {
	if cfg == nil {
		cfg = &Config{}
	}

	e := &Environment{
		settings: make(map[string]*setting),
		ENV:      make(map[string]string),
		fs:       cfg.Fs,
		runner:   cfg.Runner,
		platform: cfg.Platform,
		logger:   cfg.Logger,
	}

	if e.fs == nil {
		e.fs = afero.NewOsFs()
	}
	if e.runner == nil {
		e.runner = &ExecRunner{Stdout: os.Stdout, Stderr: os.Stderr}
	}
	if e.platform == nil {
		e.platform = platform.Detect()
	}
	if e.logger == nil {
		e.logger = logrus.New()
		e.logger.SetOutput(io.Discard)
	}

	if cfg.ENV != nil {
		for k, v := range cfg.ENV {
			e.ENV[k] = v
		}
	} else {
		e.ENV["PATH"] = os.Getenv("PATH")
	}

	static, shared := e.platform.ObjectSuffixes()
	e.Set("OBJPREFIX", "")
	e.Set("OBJSUFFIX", static)
	e.Set("SHOBJPREFIX", "$OBJPREFIX")
	e.Set("SHOBJSUFFIX", shared)

	e.scanners = newScannerRegistry()
	for _, suffix := range CSuffixes {
		e.scanners.AddScanner(suffix, CScanner())
	}

	return e
}

// Fs returns the filesystem tools should probe
func (e *Environment) Fs() afero.Fs {
	return e.fs
}

// Platform returns the target platform
func (e *Environment) Platform() *platform.Platform {
	return e.platform
}

// Runner returns the runner builders execute commands with
func (e *Environment) Runner() Runner {
	return e.runner
}

// Logger returns the environment logger
func (e *Environment) Logger() *logrus.Logger {
	return e.logger
}

// Has reports whether key was assigned, including to an empty value
func (e *Environment) Has(key string) bool {
	_, ok := e.settings[key]
	return ok
}

// Get returns a setting as a string. Lists are joined with spaces.
func (e *Environment) Get(key string) string {
	s, ok := e.settings[key]
	if !ok {
		return ""
	}
	if s.isList {
		return strings.Join(s.list, " ")
	}
	return s.scalar
}

// Set assigns a scalar setting, replacing any previous value
func (e *Environment) Set(key, value string) {
	e.settings[key] = &setting{scalar: value}
}

// SetDefault assigns a scalar setting only if key is not yet assigned
func (e *Environment) SetDefault(key, value string) {
	if !e.Has(key) {
		e.Set(key, value)
	}
}

// List returns a copy of a list setting. A scalar is returned as a
// one-element list, an empty scalar as nil.
func (e *Environment) List(key string) []string {
	s, ok := e.settings[key]
	if !ok {
		return nil
	}
	if !s.isList {
		if s.scalar == "" {
			return nil
		}
		return []string{s.scalar}
	}
	out := make([]string, len(s.list))
	copy(out, s.list)
	return out
}

// Append adds values to the end of a list setting.
// Existing entries are kept, duplicates included.
func (e *Environment) Append(key string, values ...string) {
	list := e.List(key)
	e.settings[key] = &setting{list: append(list, values...), isList: true}
}

// Prepend adds values to the front of a list setting
func (e *Environment) Prepend(key string, values ...string) {
	list := make([]string, 0, len(values)+len(e.List(key)))
	list = append(list, values...)
	list = append(list, e.List(key)...)
	e.settings[key] = &setting{list: list, isList: true}
}

// Keys returns all assigned setting names, sorted
func (e *Environment) Keys() []string {
	keys := make([]string, 0, len(e.settings))
	for k := range e.settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// IsList reports whether key holds a list setting
func (e *Environment) IsList(key string) bool {
	s, ok := e.settings[key]
	return ok && s.isList
}

// ENVPath returns the entries of a path-list variable in ENV
func (e *Environment) ENVPath(name string) []string {
	return platform.SplitPath(e.ENV[name])
}

// PrependENVPath puts dir at the front of the path-list variable name in
// ENV. An existing occurrence of dir moves to the front.
func (e *Environment) PrependENVPath(name, dir string) {
	parts := []string{dir}
	for _, p := range e.ENVPath(name) {
		if p != dir {
			parts = append(parts, p)
		}
	}
	e.ENV[name] = strings.Join(parts, string(os.PathListSeparator))
}

// Environ returns ENV as sorted KEY=VALUE pairs for a child process
func (e *Environment) Environ() []string {
	environ := make([]string, 0, len(e.ENV))
	for k, v := range e.ENV {
		environ = append(environ, k+"="+v)
	}
	sort.Strings(environ)
	return environ
}

// WhereIs returns the full path of prog on ENV's PATH, or ""
func (e *Environment) WhereIs(prog string) string {
	return platform.WhereIs(e.fs, e.platform, prog, e.ENV["PATH"])
}

// Detect returns the first of progs found on ENV's PATH, or ""
func (e *Environment) Detect(progs ...string) string {
	for _, prog := range progs {
		if e.WhereIs(prog) != "" {
			return prog
		}
	}
	return ""
}

// ObjectBuilders returns the static and shared object builders,
// creating them on first use.
func (e *Environment) ObjectBuilders() (static, shared *ObjectBuilder) {
	if e.staticObj == nil {
		e.staticObj = newObjectBuilder("StaticObject", StaticObjectEmitter)
	}
	if e.sharedObj == nil {
		e.sharedObj = newObjectBuilder("SharedObject", SharedObjectEmitter)
	}
	return e.staticObj, e.sharedObj
}

// SourceScanners returns the suffix to scanner registry
func (e *Environment) SourceScanners() *ScannerRegistry {
	return e.scanners
}
