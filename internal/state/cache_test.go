package state

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCache_StoreAndMatch(t *testing.T) {
	c, err := Open(":memory:")
	require.NoError(t, err)
	defer c.Close()

	require.False(t, c.Unchanged("src", "abc"))
	require.NoError(t, c.Store("src", "abc"))
	require.True(t, c.Unchanged("src", "abc"))
	require.False(t, c.Unchanged("src", "def"))

	require.NoError(t, c.Store("src", "def"))
	require.True(t, c.Unchanged("src", "def"))
}

func TestCache_Reset(t *testing.T) {
	c, err := Open(":memory:")
	require.NoError(t, err)
	defer c.Close()

	require.NoError(t, c.Store("src", "abc"))
	require.NoError(t, c.Reset())
	require.False(t, c.Unchanged("src", "abc"))
}

func TestCache_PersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")

	c, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, c.Store("src", "abc"))
	require.NoError(t, c.Close())

	c2, err := Open(path)
	require.NoError(t, err)
	defer c2.Close()
	require.True(t, c2.Unchanged("src", "abc"))
}
