// internal/cli/compile.go
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/arc-language/cudatool/pkg/build"
)

var (
	compileShared bool
	compileOutput string
	compileDryRun bool
)

var compileCmd = &cobra.Command{
	Use:   "compile [file.cu...]",
	Short: "Compile CUDA sources into objects",
	Long: `Compile each source into an object file with nvcc.

Examples:
  cudatool compile kernel.cu
  cudatool compile --shared -o build/kernel.os kernel.cu
  cudatool compile --dry-run a.cu b.cu`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCompile,
}

func init() {
	compileCmd.Flags().BoolVar(&compileShared, "shared", false, "build shared (position independent) objects")
	compileCmd.Flags().StringVarP(&compileOutput, "output", "o", "", "object file (single source only)")
	compileCmd.Flags().BoolVar(&compileDryRun, "dry-run", false, "print commands without running them")
}

func runCompile(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if compileOutput != "" && len(args) > 1 {
		return fmt.Errorf("-o cannot be used with %d sources", len(args))
	}

	env, err := configuredEnvironment()
	if err != nil {
		return err
	}

	static, shared := env.ObjectBuilders()
	builder := static
	if compileShared {
		builder = shared
	}

	for _, src := range args {
		if compileDryRun {
			if err := printPlan(out, env, builder, src); err != nil {
				return err
			}
			continue
		}

		targets, err := builder.Build(cmd.Context(), env, compileOutput, src)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "✓ %s -> %s\n", src, targets[0])
	}

	return nil
}

func printPlan(out io.Writer, env *build.Environment, builder *build.ObjectBuilder, src string) error {
	_, argv, err := builder.Plan(env, compileOutput, src)
	if err != nil {
		return err
	}
	for i, arg := range argv {
		if i > 0 {
			fmt.Fprint(out, " ")
		}
		fmt.Fprint(out, arg)
	}
	fmt.Fprintln(out)
	return nil
}
