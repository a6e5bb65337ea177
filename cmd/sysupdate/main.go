package main

import (
	"os"

	"github.com/CodexForgeBR/sysupdate/internal/cli"
	"github.com/CodexForgeBR/sysupdate/internal/exitcode"
	"github.com/CodexForgeBR/sysupdate/internal/locale"
	"github.com/CodexForgeBR/sysupdate/internal/logging"
)

// version vars injected via ldflags at build time
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	rootCmd := cli.NewRootCommand(cli.Deps{
		Version: version,
		Commit:  commit,
		Date:    date,
		Locale:  locale.EnvSource,
	})

	if err := rootCmd.Execute(); err != nil {
		if ee, ok := cli.IsExitError(err); ok {
			if ee.Err != nil {
				logging.Error(ee.Err.Error())
			}
			os.Exit(ee.Code)
		}
		logging.Error(err.Error())
		os.Exit(exitcode.Error)
	}
}
