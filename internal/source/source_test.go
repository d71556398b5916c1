package source

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolve_LocalRootPassesThrough(t *testing.T) {
	dir, cleanup, err := Resolve(context.Background(), "/some/local/path", "")
	require.NoError(t, err)
	defer cleanup()
	require.Equal(t, "/some/local/path", dir)
}

func TestFetch_InvalidURLFails(t *testing.T) {
	_, _, err := Fetch(context.Background(), "file:///nonexistent/repo/path")
	require.Error(t, err)
}
