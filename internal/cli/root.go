package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CodexForgeBR/sysupdate/internal/config"
	"github.com/CodexForgeBR/sysupdate/internal/github"
	"github.com/CodexForgeBR/sysupdate/internal/locale"
	"github.com/CodexForgeBR/sysupdate/internal/logging"
	"github.com/CodexForgeBR/sysupdate/internal/version"
)

// Deps carries the build information and external sources the commands use.
// Zero values are replaced with production defaults.
type Deps struct {
	Version string
	Commit  string
	Date    string

	// Client overrides the GitHub client, e.g. to point at a test server.
	Client *github.Client
	// Locale reports the user's locale for GUI_LANGUAGE=auto.
	Locale locale.Source
}

// app is the state shared by the commands of one invocation.
type app struct {
	deps  Deps
	opts  Options
	store *config.Store
}

// NewRootCommand builds the sysupdate command tree.
func NewRootCommand(deps Deps) *cobra.Command {
	if deps.Version == "" {
		deps.Version = "dev"
	}
	if deps.Client == nil {
		deps.Client = github.NewClient("sysupdate/" + deps.Version)
	}
	if deps.Locale == nil {
		deps.Locale = locale.EnvSource
	}
	a := &app{deps: deps}

	rootCmd := &cobra.Command{
		Use:     "sysupdate",
		Short:   "Settings and release checks for the system/AUR update script",
		Long:    "sysupdate manages the update script's settings file and checks whether a newer release has been published.",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", deps.Version, orUnknown(deps.Commit), orUnknown(deps.Date)),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := ValidateFlags(cmd, &a.opts); err != nil {
				return err
			}
			logging.SetVerbose(a.opts.Verbose)
			a.store = config.NewStore(a.opts.ConfigFile)
			logging.Debugf("settings file: %s", a.opts.ConfigFile)
			logging.Debugf("script dir: %s", a.opts.ScriptDir)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	BindFlags(rootCmd, &a.opts)
	SetCustomHelp(rootCmd)

	rootCmd.AddCommand(
		newConfigCommand(a),
		newVersionCommand(a),
		newCheckCommand(a),
		newInfoCommand(a),
	)
	return rootCmd
}

// probe builds a version probe whose repository override follows --repo,
// then GITHUB_REPO from the settings file.
func (a *app) probe() *version.Probe {
	return version.New(version.Options{
		ScriptDir:   a.opts.ScriptDir,
		DefaultRepo: DefaultRepo,
		RepoOverride: func() (string, error) {
			if a.opts.Repo != "" {
				return a.opts.Repo, nil
			}
			return a.store.Get(config.KeyRepo, ""), nil
		},
		Client: a.deps.Client,
	})
}

func newVersionCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the installed script version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), a.probe().LocalVersion())
			return nil
		},
	}
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
