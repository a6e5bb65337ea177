// Package github provides a minimal client for the GitHub REST endpoints
// sysupdate reads release information from.
package github

import (
	"fmt"
	"strings"
)

// ParseRepoRef parses a repository reference of the form "owner/repo".
// A leading "https://github.com/" and a trailing ".git" are tolerated so that
// clone URLs pasted into the config file still work.
//
// Examples:
//   - "CodexForgeBR/sysupdate" → ("CodexForgeBR", "sysupdate", nil)
//   - "https://github.com/owner/repo.git" → ("owner", "repo", nil)
//   - "owner" → ("", "", error)
func ParseRepoRef(ref string) (owner, repo string, err error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", "", fmt.Errorf("empty repository reference")
	}

	path := ref
	for _, prefix := range []string{"https://github.com/", "http://github.com/", "github.com/"} {
		if strings.HasPrefix(path, prefix) {
			path = strings.TrimPrefix(path, prefix)
			break
		}
	}
	path = strings.TrimSuffix(strings.TrimSuffix(path, "/"), ".git")

	parts := strings.Split(path, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid repository reference: expected 'owner/repo', got %q", ref)
	}
	if strings.ContainsAny(path, " \t#?") {
		return "", "", fmt.Errorf("invalid characters in repository reference %q", ref)
	}

	return parts[0], parts[1], nil
}
