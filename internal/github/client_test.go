package github

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(srv *httptest.Server) *Client {
	c := NewClient("sysupdate-test/1.0")
	c.BaseURL = srv.URL
	return c
}

func TestNewClientDefaults(t *testing.T) {
	c := NewClient("agent")
	assert.Equal(t, DefaultBaseURL, c.BaseURL)
	assert.Equal(t, RequestTimeout, c.HTTPClient.Timeout)
	assert.Equal(t, "agent", c.UserAgent)
}

func TestLatestRelease(t *testing.T) {
	var gotPath, gotAgent, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAgent = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		w.Write([]byte(`{"tag_name":"v1.0.1","name":"1.0.1","html_url":"https://example.com/r"}`))
	}))
	defer srv.Close()

	rel, err := newTestClient(srv).LatestRelease(context.Background(), "owner/repo")
	require.NoError(t, err)

	assert.Equal(t, "v1.0.1", rel.TagName)
	assert.Equal(t, "https://example.com/r", rel.HTMLURL)
	assert.Equal(t, "/repos/owner/repo/releases/latest", gotPath)
	assert.Equal(t, "sysupdate-test/1.0", gotAgent)
	assert.Equal(t, "application/vnd.github+json", gotAccept)
}

func TestLatestReleaseMissingTag(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"name":"untagged"}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv).LatestRelease(context.Background(), "owner/repo")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no tag_name")
}

func TestLatestReleaseStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := newTestClient(srv).LatestRelease(context.Background(), "owner/repo")
	require.Error(t, err)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	assert.Contains(t, err.Error(), "unexpected status 404")
}

func TestLatestReleaseBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>rate limited</html>`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv).LatestRelease(context.Background(), "owner/repo")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding")
}

func TestLatestReleaseConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	c := newTestClient(srv)
	srv.Close()

	_, err := c.LatestRelease(context.Background(), "owner/repo")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requesting")
}

func TestTagRefs(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`[{"ref":"refs/tags/v1.0.0"},{"ref":"refs/tags/v1.2.0"}]`))
	}))
	defer srv.Close()

	refs, err := newTestClient(srv).TagRefs(context.Background(), "owner/repo")
	require.NoError(t, err)

	assert.Equal(t, "/repos/owner/repo/git/refs/tags", gotPath)
	assert.Equal(t, []Ref{{Ref: "refs/tags/v1.0.0"}, {Ref: "refs/tags/v1.2.0"}}, refs)
}

func TestRequestHonoursContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestClient(srv).TagRefs(ctx, "owner/repo")
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}
