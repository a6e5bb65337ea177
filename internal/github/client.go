package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// DefaultBaseURL is the public GitHub REST API root.
const DefaultBaseURL = "https://api.github.com"

// RequestTimeout bounds every request made by a Client built with NewClient.
const RequestTimeout = 5 * time.Second

// Release is the subset of a GitHub release sysupdate uses.
type Release struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

// Ref is one entry of the git refs listing.
type Ref struct {
	Ref string `json:"ref"`
}

// StatusError reports a non-200 response.
type StatusError struct {
	StatusCode int
	URL        string
	// RateLimit is set when the API rejected the request for quota reasons.
	RateLimit *RateLimit
}

func (e *StatusError) Error() string {
	if e.RateLimit != nil {
		return fmt.Sprintf("GET %s: unexpected status %d (%s)", e.URL, e.StatusCode, e.RateLimit.describe(time.Now()))
	}
	return fmt.Sprintf("GET %s: unexpected status %d", e.URL, e.StatusCode)
}

// Client talks to the GitHub REST API.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	UserAgent  string
}

// NewClient returns a Client for the public API with a short request timeout.
func NewClient(userAgent string) *Client {
	return &Client{
		BaseURL:    DefaultBaseURL,
		HTTPClient: &http.Client{Timeout: RequestTimeout},
		UserAgent:  userAgent,
	}
}

// LatestRelease fetches GET /repos/{repo}/releases/latest.
func (c *Client) LatestRelease(ctx context.Context, repo string) (Release, error) {
	var rel Release
	if err := c.getJSON(ctx, "/repos/"+repo+"/releases/latest", &rel); err != nil {
		return Release{}, err
	}
	if rel.TagName == "" {
		return Release{}, fmt.Errorf("latest release of %s has no tag_name", repo)
	}
	return rel, nil
}

// TagRefs fetches GET /repos/{repo}/git/refs/tags.
func (c *Client) TagRefs(ctx context.Context, repo string) ([]Ref, error) {
	var refs []Ref
	if err := c.getJSON(ctx, "/repos/"+repo+"/git/refs/tags", &refs); err != nil {
		return nil, err
	}
	return refs, nil
}

func (c *Client) getJSON(ctx context.Context, path string, v any) error {
	url := strings.TrimRight(c.BaseURL, "/") + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", "2022-11-28")
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: RequestTimeout}
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("requesting %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &StatusError{StatusCode: resp.StatusCode, URL: url, RateLimit: parseRateLimit(resp)}
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decoding %s: %w", url, err)
	}
	return nil
}
