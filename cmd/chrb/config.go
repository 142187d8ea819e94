// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"path/filepath"

	"chrb-cli/internal/config"

	"github.com/spf13/cobra"
)

var (
	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Inspect and manage chrb configuration",
	}

	configShowCmd = &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE:  runConfigShow,
	}

	configInitCmd = &cobra.Command{
		Use:   "init",
		Short: "Create a default config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigInit,
	}
)

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, TitleStyle.Render("chrb configuration"))
	fmt.Fprintf(out, "  rubies_dir: %s\n", ValueStyle.Render(cfg.RubiesDir))
	fmt.Fprintf(out, "  gems_dir:   %s\n", ValueStyle.Render(cfg.GemsDir))

	if cfgDir, dirErr := config.ConfigDir(); dirErr == nil {
		fmt.Fprintln(out)
		fmt.Fprintln(out, SubtitleStyle.Render("config file: "+filepath.Join(cfgDir, config.ConfigFileName+".cue")))
	}

	return nil
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	if err := config.CreateDefaultConfig(); err != nil {
		return err
	}

	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), SuccessStyle.Render("✓ ")+
		"config ready at "+ValueStyle.Render(filepath.Join(cfgDir, config.ConfigFileName+".cue")))
	return nil
}
