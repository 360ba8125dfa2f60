// pkg/env/constants.go
package env

// Variables prefixed by GenerateActivateScript and BuildEnv
const (
	pathVar        = "PATH"
	includeVar     = "CPATH"
	libraryVar     = "LIBRARY_PATH"
	linuxRuntime   = "LD_LIBRARY_PATH"
	darwinRuntime  = "DYLD_LIBRARY_PATH"
	windowsRuntime = "PATH"
)

// GetLibraryExtensions returns file extensions to look for based on OS
func GetLibraryExtensions(goos string) []string {
	switch goos {
	case "darwin":
		return []string{".dylib", ".a"}
	case "windows":
		return []string{".dll", ".lib"}
	default: // linux, etc.
		return []string{".so", ".a"}
	}
}

// GetSharedLibraryExtensions returns only shared library extensions
func GetSharedLibraryExtensions(goos string) []string {
	switch goos {
	case "darwin":
		return []string{".dylib"}
	case "windows":
		return []string{".dll"}
	default:
		return []string{".so"}
	}
}

// GetStaticLibraryExtensions returns only static library extensions
func GetStaticLibraryExtensions(goos string) []string {
	switch goos {
	case "windows":
		return []string{".lib"} // Can be import lib or static lib
	default:
		return []string{".a"}
	}
}

// runtimeVar is the loader search path variable for goos
func runtimeVar(goos string) string {
	switch goos {
	case "darwin":
		return darwinRuntime
	case "windows":
		return windowsRuntime
	default:
		return linuxRuntime
	}
}

// libraryPrefix is the file name prefix of libraries on goos
func libraryPrefix(goos string) string {
	if goos == "windows" {
		return ""
	}
	return "lib"
}
