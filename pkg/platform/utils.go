// pkg/platform/utils.go
package platform

import (
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// WhereIs returns the full path of the first executable named prog found
// in the directories of searchPath, or "" if there is none.
func WhereIs(fs afero.Fs, p *Platform, prog, searchPath string) string {
	if prog == "" {
		return ""
	}

	suffixes := p.ExecutableSuffixes()
	if p.IsWindows() && filepath.Ext(prog) != "" {
		suffixes = []string{""}
	}

	for _, dir := range filepath.SplitList(searchPath) {
		if dir == "" {
			continue
		}
		for _, ext := range suffixes {
			candidate := filepath.Join(dir, prog+ext)
			if isExecutable(fs, p, candidate) {
				return candidate
			}
		}
	}

	return ""
}

// isExecutable checks for a regular file; off windows one exec bit must be set.
func isExecutable(fs afero.Fs, p *Platform, path string) bool {
	info, err := fs.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	if p.IsWindows() {
		return true
	}
	return info.Mode().Perm()&0111 != 0
}

// SplitPath splits a search path, dropping empty elements
func SplitPath(searchPath string) []string {
	var dirs []string
	for _, dir := range filepath.SplitList(searchPath) {
		if strings.TrimSpace(dir) != "" {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}
