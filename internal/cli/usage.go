package cli

import (
	"github.com/spf13/cobra"
)

// helpTemplate renders the hand-written overview for the root command and
// cobra's default help for subcommands.
const helpTemplate = `{{if .HasParent}}{{with (or .Long .Short)}}{{. | trimTrailingWhitespaces}}

{{end}}{{.UsageString}}{{else}}sysupdate - Settings and release checks for the system/AUR update script

USAGE
  sysupdate <command> [flags]

COMMANDS
  config list [-o text|json|yaml]       Show the effective settings
  config get <KEY>                      Print one setting
  config set <KEY> <VALUE>              Change one setting, keeping comments
  config init [--force]                 Write the defaults to the settings file
  config path                           Print the settings file location
  version                               Print the installed script version
  check [-o text|json]                  Check the release API for a newer version
  info                                  Summarise versions, paths and language

GLOBAL FLAGS
  --config <path>                       Settings file (default: $XDG_CONFIG_HOME/sysupdate/config)
  --script-dir <dir>                    Update script directory (default: next to the binary)
  --repo <owner/repo>                   Release repository (overrides GITHUB_REPO)
  -v, --verbose                         Print debug output
  -h, --help                            Show this help text

SETTINGS
  ENABLE_SYSTEM_UPDATE   true|false     Run the pacman update step (default: true)
  ENABLE_AUR_UPDATE      true|false     Run the AUR helper step (default: true)
  ENABLE_CACHE_CLEAN     true|false     Clean the package cache afterwards (default: true)
  ENABLE_ORPHAN_REMOVAL  true|false     Remove orphaned packages (default: false)
  ENABLE_NOTIFICATIONS   true|false     Show desktop notifications (default: true)
  AUR_HELPER             string         yay, paru or auto (default: auto)
  GUI_LANGUAGE           string         Language code or auto (default: auto)
  GUI_THEME              string         light, dark or auto (default: auto)
  LOG_DIR                string         Log directory (default: script default)
  MAX_LOG_FILES          integer        Log files to keep (default: 10)
  GITHUB_REPO            owner/repo     Release repository override

EXIT CODES
  0   Success              Command completed; no update pending
  1   Error                Invalid arguments or unwritable settings file
  2   UpdateAvailable      check found a newer release
  3   CheckFailed          check could not reach or parse the release API
  130 Interrupted          SIGINT or SIGTERM received

EXAMPLES
  # Disable the AUR step
  sysupdate config set ENABLE_AUR_UPDATE false

  # Check for a new release from a fork
  sysupdate check --repo someone/sysupdate

  # Machine-readable check for the desktop front-end
  sysupdate check -o json

For more information, see: https://github.com/CodexForgeBR/sysupdate
{{end}}`

// SetCustomHelp configures the cobra command to use our custom help template.
func SetCustomHelp(cmd *cobra.Command) {
	cmd.SetHelpTemplate(helpTemplate)
}
