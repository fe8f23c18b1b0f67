// internal/cli/config.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/arc-language/linkbridge/pkg/core"
	"github.com/arc-language/linkbridge/pkg/directive"
)

var (
	configSystemRoot      string
	configPlain           bool
	configFrameworkSearch bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or save configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the configuration in effect",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Write the configuration to the config file",
	Long: `Write the configuration in effect, with any flags applied, to the file
given by --config (default $HOME/.config/linkbridge/config.yaml).

Examples:
  linkbridge config save --system-root /usr/lib64/
  linkbridge config save --plain --config ./linkbridge.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfigSave,
}

func init() {
	configSaveCmd.Flags().StringVar(&configSystemRoot, "system-root", "", "system library root to store")
	configSaveCmd.Flags().BoolVar(&configPlain, "plain", false, "store search=/link= keys instead of the cargo: ones")
	configSaveCmd.Flags().BoolVar(&configFrameworkSearch, "framework-search", false, "store framework search paths for non-system frameworks")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSaveCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func runConfigSave(cmd *cobra.Command, args []string) error {
	if configSystemRoot != "" {
		config.SystemRoot = configSystemRoot
	}
	if configPlain {
		config.Markers = core.Markers{Search: directive.PlainMarkers.Search, Link: directive.PlainMarkers.Link}
	}
	if configFrameworkSearch {
		config.FrameworkSearch = true
	}

	if err := core.SaveConfig(config, cfgFile); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Saved configuration to %s\n", savedPath())
	return nil
}

func savedPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	if p, err := core.DefaultPath(); err == nil {
		return p
	}
	return "default location"
}
