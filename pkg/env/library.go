// pkg/env/library.go
package env

import (
	"path/filepath"

	"github.com/spf13/afero"
)

// FindLibrary searches for a specific library by name
// Returns the first match found in library search paths
func (e *Environment) FindLibrary(name string) *Library {
	return e.findLibrary(name, GetLibraryExtensions(e.OS), true)
}

// FindSharedLibrary searches specifically for shared libraries (.so, .dylib, .dll)
func (e *Environment) FindSharedLibrary(name string) *Library {
	return e.findLibrary(name, GetSharedLibraryExtensions(e.OS), true)
}

// FindStaticLibrary searches specifically for static libraries (.a, .lib)
func (e *Environment) FindStaticLibrary(name string) *Library {
	return e.findLibrary(name, GetStaticLibraryExtensions(e.OS), false)
}

// HasLibrary checks if a library exists in the library paths
func (e *Environment) HasLibrary(name string) bool {
	return e.FindLibrary(name) != nil
}

// MissingLibraries returns the LIBS entries not found in the library paths
func (e *Environment) MissingLibraries() []string {
	var missing []string
	for _, lib := range e.Libs {
		if !e.HasLibrary(lib) {
			missing = append(missing, lib)
		}
	}
	return missing
}

func (e *Environment) findLibrary(name string, extensions []string, versioned bool) *Library {
	fs := e.fs
	if fs == nil {
		fs = afero.NewOsFs()
	}

	for _, dir := range e.Libraries {
		for _, ext := range extensions {
			// Try lib{name}{ext} pattern (e.g., libcudart.so)
			filename := libraryPrefix(e.OS) + name + ext
			fullPath := filepath.Join(dir, filename)

			if fileExists(fs, fullPath) {
				return &Library{
					Name:     name,
					Path:     fullPath,
					Type:     ext,
					IsStatic: isStaticExt(ext),
				}
			}

			if !versioned {
				continue
			}

			// Try versioned: lib{name}{ext}.* (e.g., libcudart.so.12)
			matches, _ := afero.Glob(fs, filepath.Join(dir, filename+".*"))
			if len(matches) > 0 {
				return &Library{
					Name:     name,
					Path:     matches[0],
					Type:     ext,
					IsStatic: isStaticExt(ext),
				}
			}
		}
	}

	return nil
}

func isStaticExt(ext string) bool {
	return ext == ".a" || ext == ".lib"
}

func fileExists(fs afero.Fs, path string) bool {
	info, err := fs.Stat(path)
	return err == nil && !info.IsDir()
}
