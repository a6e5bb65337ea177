package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CodexForgeBR/sysupdate/internal/banner"
	"github.com/CodexForgeBR/sysupdate/internal/exitcode"
	"github.com/CodexForgeBR/sysupdate/internal/logging"
	"github.com/CodexForgeBR/sysupdate/internal/signal"
	"github.com/CodexForgeBR/sysupdate/internal/version"
)

// checkResult is the -o json payload of check.
type checkResult struct {
	Local           string `json:"local"`
	Latest          string `json:"latest,omitempty"`
	URL             string `json:"url,omitempty"`
	Repository      string `json:"repository"`
	UpdateAvailable *bool  `json:"update_available"`
	Error           string `json:"error,omitempty"`
}

func newCheckCommand(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check the release API for a newer version",
		Long: "check compares the installed script version with the latest published release.\n" +
			"It exits 2 when an update is available and 3 when the release API cannot be queried.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format, formatText, formatJSON); err != nil {
				return err
			}

			p := a.probe()
			repo := p.ResolveRepoIdentifier()
			logging.Debugf("checking %s for releases newer than %s", repo, p.LocalVersion())

			w := signal.Watch(cmd.Context(), func() {
				logging.Warn("Interrupted, abandoning release check")
			})
			available, err := p.IsUpdateAvailable(w.Context())
			w.Stop()
			if w.Interrupted() {
				return &ExitError{Code: exitcode.Interrupted}
			}

			info := p.Info()
			result := checkResult{Local: info.Local, Latest: info.Latest, URL: info.URL, Repository: repo}
			if err == nil {
				result.UpdateAvailable = &available
			} else {
				result.Error = err.Error()
			}

			out := cmd.OutOrStdout()
			if format == formatJSON {
				if werr := writeJSON(out, result); werr != nil {
					return werr
				}
			} else {
				switch {
				case err != nil:
					banner.PrintCheckFailedBanner(out, info.Local, err.Error())
				case available:
					banner.PrintUpdateBanner(out, info.Local, info.Latest, repo, info.URL)
				default:
					banner.PrintUpToDateBanner(out, info.Local, info.Latest)
				}
			}

			switch {
			case err != nil:
				return &ExitError{Code: exitcode.CheckFailed, Err: fmt.Errorf("check for updates: %w", err)}
			case available:
				return &ExitError{Code: exitcode.UpdateAvailable}
			case info.Local == version.Unknown:
				logging.Warn("Installed version is unknown; use --script-dir to point at the update script")
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "output", "o", formatText, "Output format: text or json")
	return cmd
}
