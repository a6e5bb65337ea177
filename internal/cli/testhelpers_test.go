package cli

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"github.com/CodexForgeBR/sysupdate/internal/github"
	"github.com/CodexForgeBR/sysupdate/internal/locale"
	"github.com/CodexForgeBR/sysupdate/internal/logging"
)

func init() {
	color.NoColor = true
}

// fixture is an isolated settings file and script directory.
type fixture struct {
	dir        string
	configPath string
	scriptDir  string
	client     *github.Client
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dir := t.TempDir()
	scriptDir := filepath.Join(dir, "script")
	require.NoError(t, os.MkdirAll(scriptDir, 0755))
	return &fixture{
		dir:        dir,
		configPath: filepath.Join(dir, "config"),
		scriptDir:  scriptDir,
		client:     github.NewClient("sysupdate-test"),
	}
}

// serveRelease points the fixture's client at a server answering every
// request with status and body.
func (f *fixture) serveRelease(t *testing.T, status int, body string) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	f.client.BaseURL = srv.URL
}

func (f *fixture) writeScriptFile(t *testing.T, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(f.scriptDir, name), []byte(content), 0644))
}

func (f *fixture) readConfig(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(f.configPath)
	require.NoError(t, err)
	return string(data)
}

// run executes the command tree with args, returning stdout and log output.
func (f *fixture) run(t *testing.T, args ...string) (stdout, logs string, err error) {
	t.Helper()

	var out, logBuf bytes.Buffer
	logging.SetOutput(&logBuf)
	defer logging.SetOutput(nil)
	defer logging.SetVerbose(false)

	cmd := NewRootCommand(Deps{
		Version: "1.2.3",
		Client:  f.client,
		Locale:  locale.Fixed("de_DE.UTF-8"),
	})
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", f.configPath, "--script-dir", f.scriptDir}, args...))

	err = cmd.Execute()
	return out.String(), logBuf.String(), err
}
