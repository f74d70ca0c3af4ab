package cmd

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chanomhub/desktop/internal/domain/entity"
)

func isolateXDG(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(root, "cache"))

	dir := filepath.Join(root, "config", "chanomhub")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	content := "[downloads]\npath = \"" + filepath.Join(root, "downloads") + "\"\n" +
		"[update]\nenable_on_startup = false\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644))
	return root
}

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags()

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func resetFlags() {
	logLevel = ""
	versionJSON = false
	configJSON, configWriteSchema = false, false
	historySince, historyOutcome, historyLimit, historyJSON = "", "", 50, false
	pruneOlderThan = "720h"
	fetchDir, fetchName, fetchPlain = "", "", false
	updateForce, updateCheckOnly = false, false
	doctorPrefix = ""
}

func TestVersionJSON(t *testing.T) {
	SetBuildInfo(buildInfo)
	out, err := execute(t, "version", "--json")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "https://github.com/chanomhub/desktop", got["Repository"])
}

func TestConfigPath(t *testing.T) {
	root := isolateXDG(t)
	out, err := execute(t, "config", "path")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "config", "chanomhub", "config.toml"), strings.TrimSpace(out))
}

func TestConfigShowJSON(t *testing.T) {
	root := isolateXDG(t)
	out, err := execute(t, "config", "show", "--json")
	require.NoError(t, err)

	var got struct {
		Downloads struct {
			Path string `json:"path"`
		} `json:"downloads"`
		Shell struct {
			HomeURL string `json:"home_url"`
		} `json:"shell"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, filepath.Join(root, "downloads"), got.Downloads.Path)
	assert.Equal(t, "https://chanomhub.xyz/", got.Shell.HomeURL)
}

func TestConfigShowTOML(t *testing.T) {
	isolateXDG(t)
	out, err := execute(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "home_url")
	assert.Contains(t, out, "https://chanomhub.xyz/")
}

func TestConfigSchema(t *testing.T) {
	out, err := execute(t, "config", "schema")
	require.NoError(t, err)
	assert.Contains(t, out, "Chanomhub Desktop Configuration")
}

func TestDownloadsHistoryJSON_Empty(t *testing.T) {
	isolateXDG(t)
	out, err := execute(t, "downloads", "history", "--json")
	require.NoError(t, err)
	assert.JSONEq(t, "[]", out)
}

func TestDownloadsHistory_BadOutcome(t *testing.T) {
	isolateXDG(t)
	_, err := execute(t, "downloads", "history", "--outcome", "exploded")
	assert.ErrorContains(t, err, "unknown outcome")
}

func TestFetchPlain_RecordsOutcome(t *testing.T) {
	root := isolateXDG(t)
	body := strings.Repeat("x", 4096)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	dir := filepath.Join(root, "games")
	out, err := execute(t, "fetch", "--plain", "--dir", dir, srv.URL+"/game.zip")
	require.NoError(t, err)
	assert.Contains(t, out, "completed\t"+srv.URL+"/game.zip")

	data, err := os.ReadFile(filepath.Join(dir, "game.zip"))
	require.NoError(t, err)
	assert.Equal(t, body, string(data))

	out, err = execute(t, "downloads", "history", "--json")
	require.NoError(t, err)
	var records []entity.DownloadRecord
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	require.Len(t, records, 1)
	assert.Equal(t, entity.DownloadOutcomeCompleted, records[0].Outcome)
}

func TestFetch_FailedDownloadIsAnError(t *testing.T) {
	root := isolateXDG(t)
	srv := httptest.NewServer(http.NotFoundHandler())
	t.Cleanup(srv.Close)

	out, err := execute(t, "fetch", "--plain", "--dir", filepath.Join(root, "games"), srv.URL+"/missing.zip")
	assert.ErrorContains(t, err, "1 of 1 downloads did not complete")
	assert.Contains(t, out, "failed\t")
}

func TestFetch_OutputNeedsOneURL(t *testing.T) {
	_, err := execute(t, "fetch", "-o", "x.zip", "https://a.test/1", "https://a.test/2")
	assert.ErrorContains(t, err, "--output needs exactly one URL")
}

func TestDoctorWithoutPkgConfig(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	out, err := execute(t, "doctor", "--prefix", "/opt/gnome")

	require.ErrorIs(t, err, errRuntimeMissing)
	assert.Contains(t, out, "Needs attention")
	assert.Contains(t, out, "WebKitGTK 6.0")
	assert.Contains(t, out, "pkg-config missing")
	assert.Contains(t, out, "/opt/gnome")
}
