// Package version determines which release of the update script is installed
// and whether a newer one has been published.
package version

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/CodexForgeBR/sysupdate/internal/github"
	"github.com/CodexForgeBR/sysupdate/internal/logging"
)

// Unknown is reported when no local version source is available.
const Unknown = "unknown"

// Default file names looked up in Options.ScriptDir.
const (
	DefaultScriptName = "sysupdate.sh"
	DefaultMarkerFile = "VERSION"
)

// scriptVersionLine matches declarations such as VERSION="1.2.3" or
// readonly SCRIPT_VERSION='1.2'.
var scriptVersionLine = regexp.MustCompile(`(?m)^[ \t]*(?:(?:readonly|export|local|declare(?:[ \t]+-r)?)[ \t]+)?[A-Z_]*VERSION=["']([0-9]+(?:\.[0-9]+)*)["']`)

// tagVersion extracts the trailing version from refs/tags/v1.2.3.
var tagVersion = regexp.MustCompile(`(?:^|/)v?([0-9]+(?:\.[0-9]+)*)$`)

// Options configures a Probe.
type Options struct {
	// ScriptDir holds the update script and its version marker file.
	ScriptDir  string
	ScriptName string
	MarkerFile string

	// DefaultRepo is the owner/repo queried when RepoOverride yields nothing.
	DefaultRepo  string
	RepoOverride Resolver

	Client *github.Client
}

// Info is a snapshot of what the probe knows.
type Info struct {
	Local  string
	Latest string
	// URL is the release page of Latest. It is empty when Latest came from
	// the tag list.
	URL string
	// Err is the text of the last failed remote check.
	Err string
}

// Probe resolves local and remote versions. It is not safe for concurrent use.
type Probe struct {
	opts   Options
	local  string
	latest string
	url    string
	err    string
}

// New returns a Probe and resolves the installed version immediately.
func New(opts Options) *Probe {
	if opts.ScriptName == "" {
		opts.ScriptName = DefaultScriptName
	}
	if opts.MarkerFile == "" {
		opts.MarkerFile = DefaultMarkerFile
	}
	if opts.Client == nil {
		opts.Client = github.NewClient("sysupdate")
	}
	p := &Probe{opts: opts}
	p.local = p.ResolveLocalVersion()
	return p
}

// LocalVersion returns the version resolved when the probe was created.
func (p *Probe) LocalVersion() string {
	return p.local
}

// Info returns the local version with the outcome of the last remote check.
func (p *Probe) Info() Info {
	return Info{Local: p.local, Latest: p.latest, URL: p.url, Err: p.err}
}

// ResolveLocalVersion reads the marker file, then the version declaration in
// the update script, and returns Unknown when neither yields a version.
func (p *Probe) ResolveLocalVersion() string {
	v, ok := FirstOf(p.markerVersion, p.scriptVersion)
	if !ok {
		return Unknown
	}
	return v
}

func (p *Probe) markerVersion() (string, error) {
	data, err := os.ReadFile(filepath.Join(p.opts.ScriptDir, p.opts.MarkerFile))
	if err != nil {
		logging.Debugf("version: marker file: %v", err)
		return "", err
	}
	v := strings.TrimSpace(string(data))
	if !IsDotted(v) {
		return "", fmt.Errorf("marker file holds %q, not a version", v)
	}
	return v, nil
}

func (p *Probe) scriptVersion() (string, error) {
	data, err := os.ReadFile(filepath.Join(p.opts.ScriptDir, p.opts.ScriptName))
	if err != nil {
		logging.Debugf("version: update script: %v", err)
		return "", err
	}
	m := scriptVersionLine.FindSubmatch(data)
	if m == nil {
		return "", fmt.Errorf("no version declaration in %s", p.opts.ScriptName)
	}
	return string(m[1]), nil
}

// ResolveRepoIdentifier returns the owner/repo to query: the override when it
// is a valid reference, otherwise DefaultRepo.
func (p *Probe) ResolveRepoIdentifier() string {
	override := func() (string, error) {
		if p.opts.RepoOverride == nil {
			return "", nil
		}
		ref, err := p.opts.RepoOverride()
		if err != nil || ref == "" {
			return "", err
		}
		owner, repo, err := github.ParseRepoRef(ref)
		if err != nil {
			logging.Debugf("version: ignoring repository override: %v", err)
			return "", err
		}
		return owner + "/" + repo, nil
	}
	fallback := func() (string, error) { return p.opts.DefaultRepo, nil }

	v, _ := FirstOf(override, fallback)
	return v
}

// CheckLatestVersion asks the release API for the newest published version.
//
// The latest release's tag is tried first. If that request fails for any
// reason the tag list is fetched instead and the highest version tag wins.
// Each call hits the network; nothing is cached between calls.
func (p *Probe) CheckLatestVersion(ctx context.Context) (string, error) {
	repo := p.ResolveRepoIdentifier()
	if repo == "" {
		err := errors.New("no repository configured")
		p.err = err.Error()
		return "", err
	}

	v, url, err := p.latestRelease(ctx, repo)
	if err != nil {
		logging.Debugf("version: latest release: %v; falling back to tags", err)
		v, err = p.highestTag(ctx, repo)
	}
	if err != nil {
		p.err = err.Error()
		return "", err
	}

	p.latest = v
	p.url = url
	p.err = ""
	return v, nil
}

func (p *Probe) latestRelease(ctx context.Context, repo string) (v, url string, err error) {
	rel, err := p.opts.Client.LatestRelease(ctx, repo)
	if err != nil {
		return "", "", err
	}
	return strings.TrimPrefix(rel.TagName, "v"), rel.HTMLURL, nil
}

func (p *Probe) highestTag(ctx context.Context, repo string) (string, error) {
	refs, err := p.opts.Client.TagRefs(ctx, repo)
	if err != nil {
		return "", err
	}

	best := ""
	for _, r := range refs {
		m := tagVersion.FindStringSubmatch(r.Ref)
		if m == nil {
			continue
		}
		if best == "" || CompareVersions(m[1], best) > 0 {
			best = m[1]
		}
	}
	if best == "" {
		return "", fmt.Errorf("no version tags found for %s", repo)
	}
	return best, nil
}

// IsUpdateAvailable reports whether the latest published version is newer
// than the installed one. A non-nil error means the answer is unknown.
func (p *Probe) IsUpdateAvailable(ctx context.Context) (bool, error) {
	latest, err := p.CheckLatestVersion(ctx)
	if err != nil {
		return false, err
	}
	return CompareVersions(p.local, latest) < 0, nil
}
