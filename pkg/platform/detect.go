// pkg/platform/detect.go
package platform

import (
	"fmt"
	"runtime"
)

// Platform represents the detected host platform
type Platform struct {
	OS   string // linux, darwin, windows
	Arch string // amd64, arm64, 386, arm
}

// Detect detects the current platform
func Detect() *Platform {
	return &Platform{
		OS:   runtime.GOOS,
		Arch: runtime.GOARCH,
	}
}

// IsWindows reports whether the platform uses windows conventions
func (p *Platform) IsWindows() bool {
	return p.OS == "windows"
}

// ObjectSuffixes returns the static and shared object file suffixes
func (p *Platform) ObjectSuffixes() (static, shared string) {
	if p.IsWindows() {
		return ".obj", ".obj"
	}
	return ".o", ".os"
}

// ExecutableSuffixes returns the suffixes tried when looking up a program.
// The empty suffix is always last.
func (p *Platform) ExecutableSuffixes() []string {
	if p.IsWindows() {
		return []string{".exe", ".bat", ".cmd", ""}
	}
	return []string{""}
}

// String returns a string representation of the platform
func (p *Platform) String() string {
	return fmt.Sprintf("%s/%s", p.OS, p.Arch)
}
