// pkg/build/scanner.go
package build

import (
	"fmt"
	"path/filepath"
	"regexp"

	"github.com/spf13/afero"
)

// CSuffixes are the C-family suffixes scanned by default
var CSuffixes = []string{".c", ".h", ".cc", ".cpp", ".cxx", ".hpp", ".hh"}

// Scanner finds the files a source depends on
type Scanner interface {
	Scan(env *Environment, path string) ([]string, error)
}

// ScannerFunc adapts a function to the Scanner interface
type ScannerFunc func(env *Environment, path string) ([]string, error)

// Scan calls f(env, path)
func (f ScannerFunc) Scan(env *Environment, path string) ([]string, error) {
	return f(env, path)
}

// ScannerRegistry maps source suffixes to scanners
type ScannerRegistry struct {
	scanners map[string]Scanner
}

func newScannerRegistry() *ScannerRegistry {
	return &ScannerRegistry{scanners: make(map[string]Scanner)}
}

// AddScanner associates suffix with s, replacing any previous scanner
func (r *ScannerRegistry) AddScanner(suffix string, s Scanner) {
	r.scanners[suffix] = s
}

// Lookup returns the scanner for suffix
func (r *ScannerRegistry) Lookup(suffix string) (Scanner, bool) {
	s, ok := r.scanners[suffix]
	return s, ok
}

// ScanFile scans path with the scanner registered for its suffix.
// Files without a scanner have no dependencies.
func (r *ScannerRegistry) ScanFile(env *Environment, path string) ([]string, error) {
	s, ok := r.Lookup(filepath.Ext(path))
	if !ok {
		return nil, nil
	}
	return s.Scan(env, path)
}

// includeRe matches #include "file" and #include <file>
var includeRe = regexp.MustCompile(`(?m)^[ \t]*#[ \t]*include[ \t]*(?:"([^"\n]+)"|<([^>\n]+)>)`)

type cScanner struct{}

// CScanner returns the C-family include scanner. Quoted includes are
// resolved against the including file's directory then CPPPATH, angle
// includes against CPPPATH only. Unresolved includes are skipped and
// found headers are scanned in turn.
func CScanner() Scanner {
	return cScanner{}
}

// Scan returns the headers path includes, directly or transitively
func (cScanner) Scan(env *Environment, path string) ([]string, error) {
	var deps []string
	seen := map[string]bool{path: true}

	var cppPath []string
	for _, dir := range env.List("CPPPATH") {
		cppPath = append(cppPath, env.Subst(dir, nil, nil))
	}

	var scan func(file string) error
	scan = func(file string) error {
		data, err := afero.ReadFile(env.Fs(), file)
		if err != nil {
			return fmt.Errorf("scanning %s: %w", file, err)
		}

		for _, m := range includeRe.FindAllStringSubmatch(string(data), -1) {
			var dirs []string
			name := m[1]
			if name != "" {
				dirs = append([]string{filepath.Dir(file)}, cppPath...)
			} else {
				name = m[2]
				dirs = cppPath
			}

			found := findInclude(env.Fs(), name, dirs)
			if found == "" || seen[found] {
				continue
			}
			seen[found] = true
			deps = append(deps, found)

			if err := scan(found); err != nil {
				return err
			}
		}
		return nil
	}

	if err := scan(path); err != nil {
		return nil, err
	}
	return deps, nil
}

func findInclude(fs afero.Fs, name string, dirs []string) string {
	for _, dir := range dirs {
		candidate := filepath.Join(dir, name)
		if info, err := fs.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return ""
}
