package banner

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func init() {
	color.NoColor = true
}

// TestPrintUpdateBanner verifies the update banner includes both versions and the repository.
func TestPrintUpdateBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintUpdateBanner(&buf, "1.0.0", "1.1.0", "owner/repo", "https://example.com/v1.1.0")
	out := buf.String()

	assert.Contains(t, out, "Update available")
	assert.Contains(t, out, "Installed:  1.0.0")
	assert.Contains(t, out, "Latest:     1.1.0")
	assert.Contains(t, out, "Repository: owner/repo")
	assert.Contains(t, out, "Release:    https://example.com/v1.1.0")
	assert.Equal(t, 3, strings.Count(out, rule))
}

// TestPrintUpdateBannerWithoutURL verifies the release line is left out when
// the version came from a tag.
func TestPrintUpdateBannerWithoutURL(t *testing.T) {
	var buf bytes.Buffer
	PrintUpdateBanner(&buf, "1.0.0", "1.1.0", "owner/repo", "")

	assert.NotContains(t, buf.String(), "Release:")
}

// TestPrintUpToDateBanner verifies the up-to-date banner.
func TestPrintUpToDateBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintUpToDateBanner(&buf, "1.1.0", "1.1.0")
	out := buf.String()

	assert.Contains(t, out, "✓ sysupdate is up to date")
	assert.Contains(t, out, "Installed:  1.1.0")
	assert.NotContains(t, out, "Update available")
}

// TestPrintCheckFailedBanner verifies the failure banner carries the reason.
func TestPrintCheckFailedBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintCheckFailedBanner(&buf, "unknown", "connection refused")
	out := buf.String()

	assert.Contains(t, out, "✗ Could not check for updates")
	assert.Contains(t, out, "Installed:  unknown")
	assert.Contains(t, out, "  connection refused\n")
}

// TestPrintStatusTable verifies labels are aligned on the widest one.
func TestPrintStatusTable(t *testing.T) {
	var buf bytes.Buffer
	PrintStatusTable(&buf, "sysupdate", []Row{
		{Label: "Version", Value: "1.0.0"},
		{Label: "Repository", Value: "owner/repo"},
	})
	out := buf.String()

	assert.Contains(t, out, "  sysupdate\n")
	assert.Contains(t, out, "  Version:    1.0.0\n")
	assert.Contains(t, out, "  Repository: owner/repo\n")
	assert.Equal(t, 3, strings.Count(out, strings.Repeat("─", 50)))
}

// TestPrintStatusTableEmpty verifies an empty table still prints its frame.
func TestPrintStatusTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	PrintStatusTable(&buf, "empty", nil)

	assert.Equal(t, 3, strings.Count(buf.String(), strings.Repeat("─", 50)))
}
