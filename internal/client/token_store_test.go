package client_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/client"
)

func TestFileTokenStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "explorer", "token")
	s := client.NewFileTokenStore(path)

	token, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, s.Save("abc.def.ghi"))
	token, err = s.Load()
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	require.NoError(t, s.Save("second"))
	token, err = client.NewFileTokenStore(path).Load()
	require.NoError(t, err)
	assert.Equal(t, "second", token)

	require.NoError(t, s.Clear())
	require.NoError(t, s.Clear())
	token, err = s.Load()
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestFileTokenStore_Load_directory(t *testing.T) {
	_, err := client.NewFileTokenStore(t.TempDir()).Load()
	assert.Error(t, err)
}

func TestFileTokenStore_withSession(t *testing.T) {
	ts := newTestServer(t)
	path := filepath.Join(t.TempDir(), "token")

	s := client.NewSession(ts.client(t), client.NewFileTokenStore(path))
	require.NoError(t, s.Register(t.Context(), "alice", "alice@example.com", "secret1"))

	restored := client.NewSession(ts.client(t), client.NewFileTokenStore(path))
	require.NoError(t, restored.Hydrate(t.Context()))
	assert.Equal(t, client.StateAuthenticated, restored.State())
	assert.Equal(t, s.Token(), restored.Token())
}
