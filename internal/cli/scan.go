// internal/cli/scan.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var scanCmd = &cobra.Command{
	Use:   "scan [file...]",
	Short: "List the headers a source file depends on",
	Long:  `Scan sources for #include directives, resolving them against CPPPATH including the toolkit headers.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runScan,
}

func runScan(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	env, err := configuredEnvironment()
	if err != nil {
		return err
	}

	for _, file := range args {
		deps, err := env.SourceScanners().ScanFile(env, file)
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "%s:\n", file)
		for _, dep := range deps {
			fmt.Fprintf(out, "  %s\n", dep)
		}
	}

	return nil
}
