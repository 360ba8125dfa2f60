// pkg/cuda/locations.go
package cuda

import (
	"os"
)

// Locations holds the host directories interpolated into the candidate list
type Locations struct {
	Home         string // $HOME
	ProgramFiles string // %PROGRAMFILES%
	HomeDrive    string // %HOMEDRIVE%
}

// LocationsFromEnv reads the locations from the process environment.
// Unset variables are empty.
func LocationsFromEnv() Locations {
	return Locations{
		Home:         os.Getenv("HOME"),
		ProgramFiles: os.Getenv("PROGRAMFILES"),
		HomeDrive:    os.Getenv("HOMEDRIVE"),
	}
}

func (l Locations) lookup(name string) string {
	switch name {
	case "HOME":
		return l.Home
	case "PROGRAMFILES":
		return l.ProgramFiles
	case "HOMEDRIVE":
		return l.HomeDrive
	}
	return ""
}

// Candidates returns the toolkit directories probed by discovery, in order
func Candidates(l Locations) []string {
	paths := make([]string, len(candidateTemplates))
	for i, tmpl := range candidateTemplates {
		paths[i] = os.Expand(tmpl, l.lookup)
	}
	return paths
}
