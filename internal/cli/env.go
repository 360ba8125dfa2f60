// internal/cli/env.go
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arc-language/cudatool/pkg/build"
	"github.com/arc-language/cudatool/pkg/cuda"
	"github.com/arc-language/cudatool/pkg/env"
)

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Show the configured build environment",
	Long:  `Configure the CUDA Toolkit and print the resulting settings, search paths and flags.`,
	Args:  cobra.NoArgs,
	RunE:  runEnv,
}

func runEnv(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	buildEnv, err := configuredEnvironment()
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Toolkit: %s\n", buildEnv.Get(cuda.ToolkitPathKey))
	fmt.Fprintf(out, "Platform: %s\n\n", buildEnv.Platform())

	fmt.Fprintln(out, "Settings:")
	for _, key := range buildEnv.Keys() {
		if buildEnv.IsList(key) {
			fmt.Fprintf(out, "  %s = [%s]\n", key, strings.Join(buildEnv.List(key), ", "))
		} else {
			fmt.Fprintf(out, "  %s = %q\n", key, buildEnv.Get(key))
		}
	}

	if bins := buildEnv.ENVPath("PATH"); len(bins) > 0 {
		fmt.Fprintln(out, "\nBinary paths:")
		for _, p := range bins {
			fmt.Fprintf(out, "  - %s\n", p)
		}
	}

	environment := env.FromBuild(buildEnv)
	fmt.Fprintf(out, "\nFlags: %s\n", strings.Join(environment.GetCompilerFlags().All(), " "))

	if missing := environment.MissingLibraries(); len(missing) > 0 {
		fmt.Fprintf(out, "\nWarning: libraries not found in LIBPATH: %s\n", strings.Join(missing, ", "))
	}

	static, shared := buildEnv.ObjectBuilders()
	fmt.Fprintln(out, "\nBuild rules:")
	for _, b := range []*build.ObjectBuilder{static, shared} {
		for _, suffix := range b.Suffixes() {
			action, _ := b.Action(suffix)
			fmt.Fprintf(out, "  %s %s: %s\n", b.Name(), suffix, buildEnv.Subst(action, []string{"<target>"}, []string{"<sources>"}))
		}
	}

	return nil
}
