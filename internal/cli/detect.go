// internal/cli/detect.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arc-language/cudatool/pkg/cuda"
)

var detectConfigured bool

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Check whether nvcc can be found",
	Long: `Check whether the CUDA compiler is on the executable search path.

With --configured the search path includes the discovered toolkit.`,
	Args: cobra.NoArgs,
	RunE: runDetect,
}

func init() {
	detectCmd.Flags().BoolVar(&detectConfigured, "configured", false, "search after configuring the toolkit")
}

func runDetect(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	env := newEnvironment()
	if detectConfigured {
		var err error
		if env, err = configuredEnvironment(); err != nil {
			return err
		}
	}

	name := env.Get(cuda.CompilerKey)
	if name == "" {
		name = cuda.DefaultCompiler
	}

	if !cuda.Exists(env) {
		fmt.Fprintf(out, "%s: not found\n", name)
		return fmt.Errorf("%s not found on PATH", name)
	}

	fmt.Fprintf(out, "%s: %s\n", name, env.WhereIs(name))
	return nil
}
