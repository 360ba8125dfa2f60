// pkg/env/environment.go
package env

import (
	"fmt"
	"os"
	"strings"


	"github.com/arc-language/cudatool/pkg/build"
)

// variable is one exported search path
type variable struct {
	name    string
	dirs    []string
	replace bool // Replace instead of prefixing the inherited value
}

// FromBuild snapshots the search paths of a configured build environment
func FromBuild(e *build.Environment) *Environment {
	return &Environment{
		Binaries:         e.ENVPath("PATH"),
		Includes:         e.List("CPPPATH"),
		Libraries:        e.List("LIBPATH"),
		RuntimeLibraries: e.List("RPATH"),
		Libs:             e.List("LIBS"),
		OS:               e.Platform().OS,
		fs:               e.Fs(),
	}
}

// GetCompilerFlags returns -I, -L, -l and rpath flags for the paths
func (e *Environment) GetCompilerFlags() *CompilerFlags {
	flags := &CompilerFlags{}
	for _, dir := range e.Includes {
		flags.IncludeFlags = append(flags.IncludeFlags, "-I"+dir)
	}
	for _, dir := range e.Libraries {
		flags.LibraryFlags = append(flags.LibraryFlags, "-L"+dir)
	}
	for _, lib := range e.Libs {
		flags.LinkFlags = append(flags.LinkFlags, "-l"+lib)
	}
	if e.OS != "windows" {
		for _, dir := range e.RuntimeLibraries {
			flags.RPathFlags = append(flags.RPathFlags, "-Wl,-rpath,"+dir)
		}
	}
	return flags
}

// All returns every flag in compile then link order
func (f *CompilerFlags) All() []string {
	var all []string
	all = append(all, f.IncludeFlags...)
	all = append(all, f.LibraryFlags...)
	all = append(all, f.RPathFlags...)
	all = append(all, f.LinkFlags...)
	return all
}

func (e *Environment) variables() []variable {
	vars := []variable{
		{name: pathVar, dirs: e.Binaries, replace: true},
		{name: includeVar, dirs: e.Includes},
		{name: libraryVar, dirs: e.Libraries},
	}

	rt := runtimeVar(e.OS)
	if rt == pathVar {
		vars[0].dirs = append(append([]string{}, e.Binaries...), e.RuntimeLibraries...)
	} else {
		vars = append(vars, variable{name: rt, dirs: e.RuntimeLibraries})
	}
	return vars
}

func (e *Environment) listSeparator() string {
	if e.OS == "windows" {
		return ";"
	}
	return ":"
}

// BuildEnv returns base (KEY=VALUE pairs, typically os.Environ()) with the
// search path variables set for running the compiler or built programs.
func (e *Environment) BuildEnv(base []string) []string {
	values := make(map[string]string)
	var order []string
	for _, kv := range base {
		k, v, _ := strings.Cut(kv, "=")
		if _, seen := values[k]; !seen {
			order = append(order, k)
		}
		values[k] = v
	}

	sep := e.listSeparator()
	for _, v := range e.variables() {
		if len(v.dirs) == 0 {
			continue
		}
		value := strings.Join(v.dirs, sep)
		if old, ok := values[v.name]; ok && old != "" && !v.replace {
			value += sep + old
		}
		if _, seen := values[v.name]; !seen {
			order = append(order, v.name)
		}
		values[v.name] = value
	}

	environ := make([]string, 0, len(order))
	for _, k := range order {
		environ = append(environ, k+"="+values[k])
	}
	return environ
}

// GenerateActivateScript returns POSIX shell code exporting the search paths
func (e *Environment) GenerateActivateScript() string {
	var b strings.Builder
	b.WriteString("# cudatool environment\n")

	sep := e.listSeparator()
	for _, v := range e.variables() {
		if len(v.dirs) == 0 {
			continue
		}
		value := shellEscape(strings.Join(v.dirs, sep))
		if v.replace {
			fmt.Fprintf(&b, "export %s=\"%s\"\n", v.name, value)
		} else {
			fmt.Fprintf(&b, "export %s=\"%s${%s:+%s$%s}\"\n", v.name, value, v.name, sep, v.name)
		}
	}
	return b.String()
}

// shellEscape escapes characters special inside double quotes
func shellEscape(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`, "$", `\$`, "`", "\\`").Replace(s)
}

// ProcessEnv is BuildEnv over the current process environment
func (e *Environment) ProcessEnv() []string {
	return e.BuildEnv(os.Environ())
}
