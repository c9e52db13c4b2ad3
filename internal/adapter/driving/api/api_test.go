package api

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Okramjimmy/EnvVault/internal/adapter/driven/sqlite"
	"github.com/Okramjimmy/EnvVault/internal/application"
	"github.com/Okramjimmy/EnvVault/internal/shell"
)

// newTestAPI wires a real SQLite store and shell syncer against temp
// directories, mirroring the production composition in cmd/envvault.
func newTestAPI(t *testing.T) (*API, string) {
	t.Helper()

	db, err := sqlite.Open(filepath.Join(t.TempDir(), "vault.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	home := t.TempDir()
	repo := sqlite.NewSecretRepo(db, nil)
	svc := application.NewService(repo, shell.NewSyncer(home), nil)
	a := New(svc, nil)

	require.True(t, a.Init())
	return a, home
}

func TestAPI_InitIdempotent(t *testing.T) {
	a, _ := newTestAPI(t)
	assert.True(t, a.Init(), "second init must still succeed")
}

func TestAPI_AddThenListShowsMaskedValue(t *testing.T) {
	a, _ := newTestAPI(t)

	require.True(t, a.Add("API_KEY", "abcdef1234567890"))

	summaries := a.ListAll()
	require.Len(t, summaries, 1)
	assert.Equal(t, "API_KEY", summaries[0].Key)
	assert.Equal(t, "abcd...7890", summaries[0].MaskedValue)
}

func TestAPI_AddEmptyKeyFails(t *testing.T) {
	a, _ := newTestAPI(t)
	assert.False(t, a.Add("", "value"))
}

func TestAPI_UpsertKeepsSingleRecord(t *testing.T) {
	a, _ := newTestAPI(t)

	require.True(t, a.Add("K", "v1"))
	require.True(t, a.Add("K", "v2"))

	summaries := a.ListAll()
	require.Len(t, summaries, 1)
	assert.Equal(t, "**", summaries[0].MaskedValue)
}

func TestAPI_GetFullReturnsRawValue(t *testing.T) {
	a, _ := newTestAPI(t)

	require.True(t, a.Add("K", "raw-secret-value"))
	id := a.ListAll()[0].ID

	val, ok := a.GetFull(id)
	require.True(t, ok)
	assert.Equal(t, "raw-secret-value", val)
}

func TestAPI_DeleteThenGetFullAbsent(t *testing.T) {
	a, _ := newTestAPI(t)

	require.True(t, a.Add("K", "v"))
	id := a.ListAll()[0].ID

	require.True(t, a.Delete(id))

	val, ok := a.GetFull(id)
	assert.False(t, ok)
	assert.Empty(t, val)
}

func TestAPI_MissingIDCollapsesToFalse(t *testing.T) {
	a, _ := newTestAPI(t)

	assert.False(t, a.Update(9999, "v"), "no-such-id is indistinguishable from failure")
	assert.False(t, a.Delete(9999))
	_, ok := a.GetFull(9999)
	assert.False(t, ok)
}

func TestAPI_SearchCaseInsensitive(t *testing.T) {
	a, _ := newTestAPI(t)

	require.True(t, a.Add("MY_KEY_1", "value-here"))

	summaries := a.Search("key")
	require.Len(t, summaries, 1)
	assert.Equal(t, "MY_KEY_1", summaries[0].Key)
}

func TestAPI_ImportThenExport(t *testing.T) {
	a, _ := newTestAPI(t)

	n := a.ImportFromEnvText("FOO=bar\n# comment\nBAZ=\"qux\"\n")
	assert.Equal(t, 2, n)

	assert.Equal(t, "BAZ=\"qux\"\nFOO=\"bar\"", a.ExportToEnvText())
}

func TestAPI_SyncToShellIdempotent(t *testing.T) {
	a, home := newTestAPI(t)

	profile := filepath.Join(home, ".zshrc")
	require.NoError(t, os.WriteFile(profile, []byte("# init\n"), 0o644))

	require.True(t, a.Add("FOO", "bar"))

	require.True(t, a.SyncToShell())
	first, err := os.ReadFile(filepath.Join(home, ".envvault"))
	require.NoError(t, err)

	require.True(t, a.SyncToShell())
	second, err := os.ReadFile(filepath.Join(home, ".envvault"))
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second), "dotfile content identical across syncs")

	patched, err := os.ReadFile(profile)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(patched), "# EnvVault secrets"))
}

func TestAPI_EnvvaultFilePath(t *testing.T) {
	a, home := newTestAPI(t)
	assert.Equal(t, filepath.Join(home, ".envvault"), a.EnvvaultFilePath())
}
