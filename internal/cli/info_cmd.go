package cli

import (
	"github.com/spf13/cobra"

	"github.com/CodexForgeBR/sysupdate/internal/banner"
	"github.com/CodexForgeBR/sysupdate/internal/config"
	"github.com/CodexForgeBR/sysupdate/internal/locale"
)

func newInfoCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Summarise versions, paths and language",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := a.probe()
			cfg := a.store.Load(false)
			lang := locale.Resolve(cfg[config.KeyLanguage], a.deps.Locale)

			banner.PrintStatusTable(cmd.OutOrStdout(), "sysupdate "+a.deps.Version, []banner.Row{
				{Label: "Installed", Value: p.LocalVersion()},
				{Label: "Repository", Value: p.ResolveRepoIdentifier()},
				{Label: "Settings", Value: a.store.Path()},
				{Label: "Script dir", Value: a.opts.ScriptDir},
				{Label: "Language", Value: lang.String() + " (" + cfg[config.KeyLanguage] + ")"},
				{Label: "Theme", Value: cfg[config.KeyTheme]},
				{Label: "System update", Value: enabled(a.store.Bool(config.KeySystemUpdate))},
				{Label: "AUR update", Value: enabled(a.store.Bool(config.KeyAURUpdate))},
			})
			return nil
		},
	}
}

func enabled(on bool) string {
	if on {
		return "enabled"
	}
	return "disabled"
}
