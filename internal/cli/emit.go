// internal/cli/emit.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arc-language/linkbridge/pkg/directive"
	"github.com/arc-language/linkbridge/pkg/input"
)

var (
	emitLibs            string
	emitSystemRoot      string
	emitPlain           bool
	emitFrameworkSearch bool
)

var emitCmd = &cobra.Command{
	Use:   "emit [file]",
	Short: "Print link directives for a generated library list",
	Long: `Print link directives for the library list written by CMake.

The list is read from file, from stdin when file is "-", or from --libs.
Files ending in .xz or .gz are decompressed.

Examples:
  linkbridge emit build/cmake_generated_rust_wrapper_libs
  linkbridge emit --libs "/some/libA.a /some/libB.so"
  cat libs.txt | linkbridge emit - --plain`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEmit,
}

func init() {
	emitCmd.Flags().StringVar(&emitLibs, "libs", "", "library list given inline")
	emitCmd.Flags().StringVar(&emitSystemRoot, "system-root", "", "system library root (default from config, /usr/lib/)")
	emitCmd.Flags().BoolVar(&emitPlain, "plain", false, "use search=/link= keys instead of the cargo: ones")
	emitCmd.Flags().BoolVar(&emitFrameworkSearch, "framework-search", false, "emit framework search paths for non-system frameworks")
}

func runEmit(cmd *cobra.Command, args []string) error {
	libs, err := emitInput(cmd, args)
	if err != nil {
		return err
	}

	cfg := config.EmitterConfig(newLogger(cmd.ErrOrStderr()))
	if emitSystemRoot != "" {
		cfg.SystemRoot = emitSystemRoot
	}
	if emitPlain {
		cfg.Markers = directive.PlainMarkers
	}
	if emitFrameworkSearch {
		cfg.FrameworkSearch = true
	}

	if err := directive.New(cfg).Emit(libs, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("emitting directives: %w", err)
	}

	return nil
}

func emitInput(cmd *cobra.Command, args []string) (string, error) {
	switch {
	case len(args) == 1 && cmd.Flags().Changed("libs"):
		return "", fmt.Errorf("give either a file or --libs, not both")
	case len(args) == 1:
		if args[0] == input.Stdin {
			return input.ReadFrom(cmd.InOrStdin(), "")
		}
		return input.Read(args[0])
	case cmd.Flags().Changed("libs"):
		return emitLibs, nil
	default:
		return "", fmt.Errorf("no library list: give a file, \"-\" or --libs")
	}
}
