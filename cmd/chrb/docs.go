// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

//go:embed manual.md
var manualMarkdown string

var docCmd = &cobra.Command{
	Use:   "doc",
	Short: "Read the chrb manual in the terminal",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		rendered, err := glamour.Render(manualMarkdown, "auto")
		if err != nil {
			// Unrenderable markdown still beats no manual.
			fmt.Fprint(cmd.OutOrStdout(), manualMarkdown)
			return nil
		}
		fmt.Fprint(cmd.OutOrStdout(), rendered)
		return nil
	},
}
