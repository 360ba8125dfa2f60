// internal/cli/root.go
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/arc-language/cudatool/pkg/build"
	"github.com/arc-language/cudatool/pkg/core"
	"github.com/arc-language/cudatool/pkg/cuda"
)

var (
	cfgFile     string
	toolkitPath string
	debug       bool
	config      *core.Config
	logger      *logrus.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "cudatool",
	Short: "CUDA toolchain configuration for builds",
	Long: `cudatool - CUDA toolchain configuration

Locates an installed CUDA Toolkit, wires its include, library and binary
paths into a build environment and compiles .cu sources with nvcc.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute executes the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/cudatool/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&toolkitPath, "toolkit-path", "", "CUDA Toolkit root, skips discovery")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	// Add commands
	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(candidatesCmd)
	rootCmd.AddCommand(envCmd)
	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(compileCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	var err error
	config, err = core.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		config = core.DefaultConfig()
	}

	// Override config with flags
	if toolkitPath != "" {
		config.ToolkitPath = toolkitPath
	}
	if debug {
		config.Debug = true
	}

	logger = logrus.New()
	logger.SetOutput(rootCmd.ErrOrStderr())
	if config.Debug {
		logger.SetLevel(logrus.DebugLevel)
	}
}

// environmentDefaults supplies the filesystem, ENV and runner of every
// environment the commands create
var environmentDefaults = func() build.Config {
	return build.Config{
		Runner: &build.ExecRunner{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr},
	}
}

// newEnvironment returns a build environment with the config overrides applied
func newEnvironment() *build.Environment {
	cfg := environmentDefaults()
	cfg.Logger = logger
	env := build.NewEnvironment(&cfg)
	config.Apply(env)
	return env
}

// configuredEnvironment returns an environment set up for .cu builds
func configuredEnvironment() (*build.Environment, error) {
	env := newEnvironment()

	if err := cuda.Generate(env, &cuda.Options{Logger: logger}); err != nil {
		if errors.Is(err, cuda.ErrToolkitNotFound) {
			return nil, fmt.Errorf("%w. Please set toolkit_path in your config or pass --toolkit-path", err)
		}
		return nil, err
	}
	config.ApplyFlags(env)

	return env, nil
}
