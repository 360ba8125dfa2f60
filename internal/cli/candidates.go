// internal/cli/candidates.go
package cli

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/arc-language/cudatool/pkg/cuda"
)

var candidatesCmd = &cobra.Command{
	Use:   "candidates",
	Short: "List the CUDA Toolkit locations probed by discovery",
	Long:  `List the candidate toolkit directories in probe order. The first existing one is used.`,
	Args:  cobra.NoArgs,
	RunE:  runCandidates,
}

func runCandidates(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	env := newEnvironment()
	selected := false

	if env.Has(cuda.ToolkitPathKey) {
		fmt.Fprintf(out, "Override: %s (discovery skipped)\n\n", env.Get(cuda.ToolkitPathKey))
		selected = true
	}

	fmt.Fprintf(out, "Candidates:\n")
	for _, path := range cuda.Candidates(cuda.LocationsFromEnv()) {
		marker := " "
		if isDir, _ := afero.IsDir(env.Fs(), path); isDir {
			marker = "+"
			if !selected {
				marker = "*"
				selected = true
			}
		}
		fmt.Fprintf(out, "  %s %s\n", marker, path)
	}

	fmt.Fprintf(out, "\n* = selected, + = exists\n")
	return nil
}
