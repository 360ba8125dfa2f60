// internal/cli/shell.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arc-language/cudatool/pkg/env"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Print shell code that activates the CUDA Toolkit",
	Long: `Print export statements for PATH, CPATH, LIBRARY_PATH and the loader path.

Add to your shell:
  eval "$(cudatool shell)"`,
	Args: cobra.NoArgs,
	RunE: runShell,
}

func runShell(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	buildEnv, err := configuredEnvironment()
	if err != nil {
		return err
	}

	// Generate shell code for eval (NOT a .sh file, just stdout)
	fmt.Fprint(out, env.FromBuild(buildEnv).GenerateActivateScript())
	return nil
}
