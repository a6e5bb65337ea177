// Package banner provides colored banner display functions for the sysupdate CLI.
//
// Banners summarise the outcome of a release check in the same framed layout
// the desktop front-end uses for its "update available" notice.
package banner

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	headerColor  = color.New(color.FgCyan, color.Bold).SprintFunc()
	successColor = color.New(color.FgGreen, color.Bold).SprintFunc()
	errorColor   = color.New(color.FgRed, color.Bold).SprintFunc()
	warnColor    = color.New(color.FgYellow, color.Bold).SprintFunc()
)

const rule = "═══════════════════════════════════════════════════"

// PrintUpdateBanner announces a newer release.
//
// Example output:
//
//	═══════════════════════════════════════════════════
//	  ⚠ Update available
//	═══════════════════════════════════════════════════
//	  Installed:  1.0.0
//	  Latest:     1.1.0
//	  Repository: CodexForgeBR/sysupdate
//	  Release:    https://github.com/CodexForgeBR/sysupdate/releases/tag/v1.1.0
//	═══════════════════════════════════════════════════
//
// The Release line is omitted when url is empty.
func PrintUpdateBanner(w io.Writer, local, latest, repo, url string) {
	sep := warnColor(rule)
	fmt.Fprintln(w, sep)
	fmt.Fprintln(w, warnColor("  ⚠ Update available"))
	fmt.Fprintln(w, sep)
	fmt.Fprintf(w, "  Installed:  %s\n", local)
	fmt.Fprintf(w, "  Latest:     %s\n", latest)
	fmt.Fprintf(w, "  Repository: %s\n", repo)
	if url != "" {
		fmt.Fprintf(w, "  Release:    %s\n", url)
	}
	fmt.Fprintln(w, sep)
}

// PrintUpToDateBanner reports that the installed version is current.
func PrintUpToDateBanner(w io.Writer, local, latest string) {
	sep := successColor(rule)
	fmt.Fprintln(w, sep)
	fmt.Fprintln(w, successColor("  ✓ sysupdate is up to date"))
	fmt.Fprintf(w, "  Installed:  %s\n", local)
	fmt.Fprintf(w, "  Latest:     %s\n", latest)
	fmt.Fprintln(w, sep)
}

// PrintCheckFailedBanner reports that the release API could not be queried.
func PrintCheckFailedBanner(w io.Writer, local string, reason string) {
	sep := errorColor(rule)
	fmt.Fprintln(w, sep)
	fmt.Fprintln(w, errorColor("  ✗ Could not check for updates"))
	fmt.Fprintln(w, sep)
	fmt.Fprintf(w, "  Installed:  %s\n", local)
	fmt.Fprintln(w, "  Reason:")
	fmt.Fprintf(w, "  %s\n", reason)
	fmt.Fprintln(w, sep)
}

// Row is one label/value line of a status table.
type Row struct {
	Label string
	Value string
}

// PrintStatusTable prints rows under a titled header, aligning values.
//
// Example output:
//
//	──────────────────────────────────────────────────
//	  sysupdate
//	──────────────────────────────────────────────────
//	  Version:    1.0.0
//	  Repository: CodexForgeBR/sysupdate
//	──────────────────────────────────────────────────
func PrintStatusTable(w io.Writer, title string, rows []Row) {
	width := 0
	for _, r := range rows {
		if len(r.Label) > width {
			width = len(r.Label)
		}
	}

	sep := strings.Repeat("─", 50)
	fmt.Fprintln(w, sep)
	fmt.Fprintln(w, headerColor("  "+title))
	fmt.Fprintln(w, sep)
	for _, r := range rows {
		fmt.Fprintf(w, "  %-*s %s\n", width+1, r.Label+":", r.Value)
	}
	fmt.Fprintln(w, sep)
}
