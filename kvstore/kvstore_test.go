package kvstore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "kv.db"))
	require.NoError(t, err)
	return s
}

func TestPutGetDelete(t *testing.T) {
	s := openTemp(t)

	_, err := s.Get("missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Put("token", "abc"))
	v, err := s.Get("token")
	require.NoError(t, err)
	assert.Equal(t, "abc", v)

	// overwrite
	require.NoError(t, s.Put("token", "def"))
	v, _ = s.Get("token")
	assert.Equal(t, "def", v)

	require.NoError(t, s.Delete("token"))
	_, err = s.Get("token")
	assert.ErrorIs(t, err, ErrNotFound)

	// deleting a missing key is fine
	assert.NoError(t, s.Delete("token"))
}

func TestJSONRoundtrip(t *testing.T) {
	s := openTemp(t)

	type profile struct {
		ID    string `json:"id"`
		Phone string `json:"phone"`
	}
	require.NoError(t, s.PutJSON("profile", profile{ID: "usr-1", Phone: "0912"}))

	var out profile
	require.NoError(t, s.GetJSON("profile", &out))
	assert.Equal(t, "usr-1", out.ID)

	assert.ErrorIs(t, s.GetJSON("missing", &out), ErrNotFound)
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kv.db")
	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Put("device_id", "dev-1"))

	reopened, err := Open(path)
	require.NoError(t, err)
	v, err := reopened.Get("device_id")
	require.NoError(t, err)
	assert.Equal(t, "dev-1", v)
}
