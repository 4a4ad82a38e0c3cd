package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"focuscycle/internal/settings"
	"focuscycle/internal/storage"

	"github.com/spf13/cobra"
)

func newSettingsCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show the effective settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			prefs, path, err := opts.loadSettings()
			if err != nil {
				return err
			}
			printSettings(cmd, path, prefs)
			return nil
		},
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default settings file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := opts.settingsPath()
			if err != nil {
				return err
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("settings file %s already exists (use --force to overwrite)", path)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("stat settings file: %w", err)
			}
			if err := storage.SaveSettingsFile(path, settings.DefaultSettings()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing settings file")
	cmd.AddCommand(initCmd)

	return cmd
}

func printSettings(cmd *cobra.Command, path string, prefs settings.Settings) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "file:             %s\n", path)
	fmt.Fprintf(out, "default minutes:  %d\n", prefs.DefaultMinutes)
	fmt.Fprintf(out, "minutes step:     %d\n", prefs.MinutesStep)
	fmt.Fprintf(out, "tick interval:    %s\n", prefs.TickInterval)
	fmt.Fprintf(out, "task suggestions: %s\n", strings.Join(prefs.TaskSuggestions, ", "))
	fmt.Fprintf(out, "log level:        %s\n", prefs.LogLevel)
}
