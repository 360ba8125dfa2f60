// pkg/env/types.go
package env

import (
	"github.com/spf13/afero"
)

// Library represents a found library file
type Library struct {
	Name     string // Library name (e.g., "cudart")
	Path     string // Absolute path to library file
	Type     string // Extension: ".so", ".a", ".dylib", ".dll", ".lib"
	IsStatic bool   // True for .a files
}

// Environment is a snapshot of the search paths of a build environment
type Environment struct {
	Binaries         []string // Executable search path, in lookup order
	Includes         []string // CPPPATH
	Libraries        []string // LIBPATH
	RuntimeLibraries []string // RPATH
	Libs             []string // LIBS
	OS               string   // Target OS, selects library extensions

	fs afero.Fs
}

// CompilerFlags holds compiler and linker flags
type CompilerFlags struct {
	IncludeFlags []string // -I flags
	LibraryFlags []string // -L flags
	LinkFlags    []string // -l flags
	RPathFlags   []string // -Wl,-rpath, flags
}
