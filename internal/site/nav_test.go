package site

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAssembleNav_SortsLexicographically(t *testing.T) {
	nav := AssembleNav([]NavPage{
		{Slug: "zeta", Title: "Zeta", Link: "/zeta/"},
		{Slug: "alpha", Title: "Alpha", Link: "/alpha/"},
	})
	require.Len(t, nav, 2)
	require.Equal(t, "alpha", nav[0].ID)
	require.Equal(t, "zeta", nav[1].ID)
}

func TestAssembleNav_NestsUnderPrefixAncestor(t *testing.T) {
	nav := AssembleNav([]NavPage{
		{Slug: "src", Title: "src", Link: "/src/"},
		{Slug: "src/utils", Title: "utils", Link: "/src/utils/"},
		{Slug: "src/render", Title: "render", Link: "/src/render/"},
		{Slug: "other", Title: "other", Link: "/other/"},
	})
	require.Len(t, nav, 2)
	require.Equal(t, "other", nav[0].ID)
	require.Equal(t, "src", nav[1].ID)
	require.Len(t, nav[1].Children, 2)
	require.Equal(t, "src/render", nav[1].Children[0].ID)
	require.Equal(t, "src/utils", nav[1].Children[1].ID)
}

func TestAssembleNav_NoFalsePrefixMatch(t *testing.T) {
	// "src-extra" shares a string prefix with "src" but not a path prefix.
	nav := AssembleNav([]NavPage{
		{Slug: "src", Title: "src"},
		{Slug: "src-extra", Title: "src-extra"},
	})
	require.Len(t, nav, 2)
}

func TestDirSlug(t *testing.T) {
	require.Equal(t, "", DirSlug(""))
	require.Equal(t, "src/my-utils", DirSlug("src/My Utils"))
}
