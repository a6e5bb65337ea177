// Package cli builds the sysupdate command tree and binds its flags.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/CodexForgeBR/sysupdate/internal/config"
	"github.com/CodexForgeBR/sysupdate/internal/github"
)

// DefaultRepo is the repository checked for new releases unless GITHUB_REPO
// or --repo says otherwise.
const DefaultRepo = "CodexForgeBR/sysupdate"

// Options holds the global flags shared by every subcommand.
type Options struct {
	ConfigFile string
	ScriptDir  string
	Repo       string
	Verbose    bool
}

// BindFlags registers the global flags as persistent flags on cmd.
// Call ValidateFlags after parsing to fill in defaults and check values.
func BindFlags(cmd *cobra.Command, opts *Options) {
	flags := cmd.PersistentFlags()

	flags.StringVar(&opts.ConfigFile, "config", "", "Path to the settings file (default: $XDG_CONFIG_HOME/sysupdate/config)")
	flags.StringVar(&opts.ScriptDir, "script-dir", "", "Directory holding the update script and VERSION file (default: next to the binary)")
	flags.StringVar(&opts.Repo, "repo", "", "Repository to check for releases, owner/repo (overrides GITHUB_REPO)")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "Print debug output")
}

// ValidateFlags fills unset paths with their defaults and rejects values that
// cannot work. Must be called after flags are parsed.
func ValidateFlags(cmd *cobra.Command, opts *Options) error {
	if opts.ConfigFile == "" {
		path, err := config.DefaultPath()
		if err != nil {
			return fmt.Errorf("--config: %w", err)
		}
		opts.ConfigFile = path
	}

	// --script-dir must exist if provided
	if cmd.Flags().Changed("script-dir") {
		info, err := os.Stat(opts.ScriptDir)
		if err != nil {
			return fmt.Errorf("--script-dir: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("--script-dir: %s is not a directory", opts.ScriptDir)
		}
	} else if opts.ScriptDir == "" {
		opts.ScriptDir = executableDir()
	}

	if cmd.Flags().Changed("repo") {
		if _, _, err := github.ParseRepoRef(opts.Repo); err != nil {
			return fmt.Errorf("--repo: %w", err)
		}
	}

	return nil
}

func executableDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
}
