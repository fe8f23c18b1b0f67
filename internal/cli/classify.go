// internal/cli/classify.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arc-language/linkbridge/pkg/directive"
	"github.com/arc-language/linkbridge/pkg/libpath"
)

var classifySystemRoot string

var classifyCmd = &cobra.Command{
	Use:   "classify [path...]",
	Short: "Show how library paths are classified",
	Long:  `Display the directory, link name and kind derived for each library path, and the directives it produces.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runClassify,
}

func init() {
	classifyCmd.Flags().StringVar(&classifySystemRoot, "system-root", "", "system library root (default from config, /usr/lib/)")
}

func runClassify(cmd *cobra.Command, args []string) error {
	root := config.SystemRoot
	if classifySystemRoot != "" {
		root = classifySystemRoot
	}
	classifier := libpath.Classifier{SystemRoot: root}
	markers := directive.Markers{Search: config.Markers.Search, Link: config.Markers.Link}
	out := cmd.OutOrStdout()

	for i, path := range args {
		c, err := classifier.Classify(path)
		if err != nil {
			return fmt.Errorf("classifying: %w", err)
		}

		if i > 0 {
			fmt.Fprintln(out)
		}

		// Display classification
		fmt.Fprintf(out, "Path: %s\n", path)
		fmt.Fprintf(out, "Directory: %s\n", c.Dir)
		fmt.Fprintf(out, "Name: %s\n", c.Name)
		fmt.Fprintf(out, "Kind: %s\n", directive.KindOf(c))
		fmt.Fprintf(out, "System: %t\n", c.IsSystem)
		if c.Ext != "" {
			fmt.Fprintf(out, "Extension: %s\n", c.Ext)
		}
		if c.Version != "" {
			fmt.Fprintf(out, "Version: %s\n", libpath.CanonicalVersion(c.Version))
		}
		if info, ok := libpath.StoreObject(path); ok {
			fmt.Fprintf(out, "Store object: %s\n", info.Name)
		}
		for _, d := range directive.Plan(c, config.FrameworkSearch) {
			fmt.Fprintf(out, "  %s\n", d.Format(markers))
		}
	}

	return nil
}
