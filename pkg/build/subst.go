// pkg/build/subst.go
package build

import (
	"os"
	"strings"

	"github.com/google/shlex"
)

// maxSubstDepth bounds recursive expansion of self-referencing settings
const maxSubstDepth = 16

// Subst expands $NAME and ${NAME} references in template against the
// environment settings. TARGET, TARGETS, SOURCE and SOURCES name the
// given files. Expansion repeats until the string is stable. Unknown
// names expand to "". File names are taken literally, and $$ in a
// template yields a single $.
func (e *Environment) Subst(template string, targets, sources []string) string {
	lookup := func(name string) string {
		switch name {
		case "$":
			return "$$"
		case "TARGET":
			return literal(first(targets))
		case "TARGETS":
			return literal(joinQuoted(targets))
		case "SOURCE":
			return literal(first(sources))
		case "SOURCES":
			return literal(joinQuoted(sources))
		}
		if e.IsList(name) {
			return joinQuoted(e.List(name))
		}
		return e.Get(name)
	}

	s := template
	for i := 0; i < maxSubstDepth; i++ {
		next := os.Expand(s, lookup)
		if next == s {
			break
		}
		s = next
	}
	return strings.TrimSpace(strings.ReplaceAll(s, "$$", "$"))
}

// SubstArgs expands template and splits the result into arguments
func (e *Environment) SubstArgs(template string, targets, sources []string) ([]string, error) {
	return shlex.Split(e.Subst(template, targets, sources))
}

func first(files []string) string {
	if len(files) == 0 {
		return ""
	}
	return quote(files[0])
}

func joinQuoted(items []string) string {
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = quote(item)
	}
	return strings.Join(quoted, " ")
}

// literal escapes $ so later passes leave it alone
func literal(s string) string {
	return strings.ReplaceAll(s, "$", "$$")
}

// quote protects a file name with whitespace or quotes from splitting
func quote(s string) string {
	if !strings.ContainsAny(s, " \t\n\"'\\") {
		return s
	}
	return `"` + strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s) + `"`
}
