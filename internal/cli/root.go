// internal/cli/root.go
package cli

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/arc-language/linkbridge/pkg/core"
)

var (
	cfgFile string
	debug   bool
	config  *core.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "linkbridge",
	Short: "Turn CMake library lists into Cargo link directives",
	Long: `linkbridge - CMake to Cargo link bridge

Reads the list of library artifacts exported by a CMake build and prints
the cargo:rustc-link-search and cargo:rustc-link-lib lines a build script
needs, in the order CMake listed them.`,
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
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/linkbridge/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	// Add commands
	rootCmd.AddCommand(emitCmd)
	rootCmd.AddCommand(classifyCmd)
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
	if debug {
		config.Debug = true
	}
}

// newLogger logs to stderr, stdout carries the directives
func newLogger(w io.Writer) *log.Logger {
	if !config.Debug {
		return log.New(io.Discard, "", 0)
	}
	return log.New(w, "[linkbridge] ", log.LstdFlags)
}
