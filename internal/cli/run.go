// internal/cli/run.go
package cli

import (
	"errors"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/arc-language/cudatool/pkg/env"
)

var runCmd = &cobra.Command{
	Use:   "run <command> [args...]",
	Short: "Run a command with the CUDA Toolkit environment",
	Long: `Run a command with PATH, CPATH, LIBRARY_PATH and the loader path set up
for the configured toolkit. Flags after the command name belong to it.

Examples:
  cudatool run nvcc --version
  cudatool --toolkit-path /opt/cuda run ./build/saxpy --n 1024`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRun,
}

func init() {
	// Stop flag parsing at the command name
	runCmd.Flags().SetInterspersed(false)
}

func runRun(cmd *cobra.Command, args []string) error {
	buildEnv, err := configuredEnvironment()
	if err != nil {
		return err
	}

	argv := append([]string(nil), args...)
	if path := buildEnv.WhereIs(argv[0]); path != "" {
		argv[0] = path
	}

	err = buildEnv.Runner().Run(cmd.Context(), argv, env.FromBuild(buildEnv).ProcessEnv())
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		os.Exit(exitErr.ExitCode())
	}
	return err
}
