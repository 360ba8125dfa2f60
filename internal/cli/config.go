// internal/cli/config.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arc-language/cudatool/pkg/core"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or write the cudatool configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "toolkit_path: %s\n", config.ToolkitPath)
		fmt.Fprintf(out, "nvcc: %s\n", config.NVCC)
		fmt.Fprintf(out, "nvcc_flags: %s\n", config.NVCCFlags)
		fmt.Fprintf(out, "static_flags: %s\n", config.StaticFlags)
		fmt.Fprintf(out, "shared_flags: %s\n", config.SharedFlags)
		fmt.Fprintf(out, "debug: %t\n", config.Debug)
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the effective configuration to the config file",
	Long: `Write the effective configuration (defaults, config file and flags) to
--config, or $HOME/.config/cudatool/config.yaml. A .toml path writes TOML.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		path := cfgFile
		if path == "" {
			var err error
			if path, err = core.DefaultConfigPath(); err != nil {
				return err
			}
		}
		if err := core.SaveConfig(config, path); err != nil {
			return err
		}
		fmt.Fprintf(out, "✓ Wrote %s\n", path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}
