package main

import (
	"fmt"
	"os"

	"focuscycle/internal/settings"
	"focuscycle/internal/storage"

	"github.com/spf13/cobra"
)

const appName = "FocusCycle"

type rootOptions struct {
	configPath string
	logLevel   string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "focuscycle",
		Short:         "Count down a single focus cycle for a named task",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDesktop(opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "settings file (default: user config dir)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")

	cmd.AddCommand(newRunCmd(opts))
	cmd.AddCommand(newSettingsCmd(opts))
	return cmd
}

func (opts *rootOptions) settingsPath() (string, error) {
	if opts.configPath != "" {
		return opts.configPath, nil
	}
	return storage.SettingsPath(appName)
}

// loadSettings reads the settings file and applies flag overrides.
func (opts *rootOptions) loadSettings() (settings.Settings, string, error) {
	path, err := opts.settingsPath()
	if err != nil {
		return settings.DefaultSettings(), "", err
	}
	prefs, err := storage.LoadSettingsFile(path)
	if err != nil {
		return prefs, path, err
	}
	if opts.logLevel != "" {
		prefs.LogLevel = opts.logLevel
	}
	return prefs, path, nil
}
