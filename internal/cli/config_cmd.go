package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/CodexForgeBR/sysupdate/internal/config"
	"github.com/CodexForgeBR/sysupdate/internal/logging"
)

func newConfigCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Read and change the update script's settings",
	}
	cmd.AddCommand(
		newConfigListCommand(a),
		newConfigGetCommand(a),
		newConfigSetCommand(a),
		newConfigInitCommand(a),
		newConfigPathCommand(a),
	)
	return cmd
}

func newConfigListCommand(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the effective settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format, formatText, formatJSON, formatYAML); err != nil {
				return err
			}
			cfg := a.store.Load(false)
			out := cmd.OutOrStdout()
			switch format {
			case formatJSON:
				return writeJSON(out, cfg)
			case formatYAML:
				return writeConfigYAML(out, cfg)
			default:
				writeConfigText(out, cfg)
				return nil
			}
		},
	}
	cmd.Flags().StringVarP(&format, "output", "o", formatText, "Output format: text, json or yaml")
	return cmd
}

func newConfigGetCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <KEY>",
		Short: "Print one setting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, ok := a.store.Load(false)[args[0]]
			if !ok {
				return fmt.Errorf("%s is not set", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}
}

func newConfigSetCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set <KEY> <VALUE>",
		Short: "Change one setting, keeping comments and order",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]
			if err := config.Validate(key, value); err != nil {
				return err
			}
			if err := a.store.Set(key, value); err != nil {
				return fmt.Errorf("save settings: %w", err)
			}
			if _, known := config.Lookup(key); !known && key != config.KeyRepo {
				logging.Warn(fmt.Sprintf("%s is not a known setting", key))
			}
			logging.Success(fmt.Sprintf("%s=%s saved to %s", key, value, a.store.Path()))
			return nil
		},
	}
}

func newConfigInitCommand(a *app) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default settings to the settings file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := os.Stat(a.store.Path())
			switch {
			case err == nil && !force:
				return fmt.Errorf("%s already exists (use --force to reset it)", a.store.Path())
			case err != nil && !errors.Is(err, os.ErrNotExist):
				return fmt.Errorf("stat settings file: %w", err)
			}

			// Extra keys such as GITHUB_REPO survive a reset.
			cfg := a.store.Load(true)
			for key, value := range config.Defaults() {
				cfg[key] = value
			}
			if err := a.store.Save(cfg); err != nil {
				return fmt.Errorf("save settings: %w", err)
			}
			logging.Success("Settings written to " + a.store.Path())
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Reset every known setting to its default")
	return cmd
}

func newConfigPathCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the settings file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), a.store.Path())
			return nil
		},
	}
}
