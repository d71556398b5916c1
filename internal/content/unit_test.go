package content

import (
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/codedoc/internal/model"
)

func TestBuildUnit_EmptyDirectoryYieldsNil(t *testing.T) {
	reader := model.NewRegistry().Freeze()
	require.Nil(t, BuildUnit(reader, "empty", UnitOptions{Format: FormatMarkdown}))
}

func TestBuildUnit_SingleEntityIsPageH1(t *testing.T) {
	reg := model.NewRegistry()
	reg.AddFunction(&model.Function{Name: "convert", Dir: "src"})

	unit := BuildUnit(reg.Freeze(), "src", UnitOptions{Format: FormatMarkdown})
	require.NotNil(t, unit)
	require.Equal(t, "convert", unit.Title)
	require.Equal(t, "h1", unit.Tree[0].Tag)
	require.Equal(t, "convert", unit.Tree[0].Text)
}

func TestBuildUnit_MultiEntityPageHasDirectoryH1(t *testing.T) {
	reg := model.NewRegistry()
	reg.AddFunction(&model.Function{Name: "a", Dir: "src/utils"})
	reg.AddFunction(&model.Function{Name: "b", Dir: "src/utils"})

	unit := BuildUnit(reg.Freeze(), "src/utils", UnitOptions{Format: FormatMarkdown})
	require.Equal(t, "utils", unit.Title)
	require.Equal(t, "h1", unit.Tree[0].Tag)
	require.Equal(t, "utils", unit.Tree[0].Text)

	var h1s, h2s int
	for _, n := range unit.Tree {
		switch n.Tag {
		case "h1":
			h1s++
		case "h2":
			h2s++
		}
	}
	require.Equal(t, 1, h1s)
	require.Equal(t, 2, h2s)
}

func TestBuildUnit_ReferencedTypesTrailInTypesSection(t *testing.T) {
	reg := model.NewRegistry()
	opts := model.NewType("Options", "src")
	opts.Properties = []model.Field{{Name: "depth", Expr: []string{"number"}}}
	reg.AddType(opts)
	reg.AddFunction(&model.Function{
		Name:   "convert",
		Dir:    "src",
		Params: []model.Field{{Name: "opts", Expr: []string{"Options"}}},
	})

	unit := BuildUnit(reg.Freeze(), "src", UnitOptions{Format: FormatMarkdown})

	// Options entered the registry as a loose member, not a typedef, so
	// it is primary page content and must not re-materialize into a
	// Types section.
	for _, n := range unit.Tree {
		require.NotEqual(t, "Types", n.Text)
	}
}

func TestBuildUnit_TypedefOnlyDirectory(t *testing.T) {
	reg := model.NewRegistry()
	foo := model.NewType("Foo", "types")
	foo.Typedef = true
	foo.Properties = []model.Field{{Name: "bar", Expr: []string{"Bar"}}}
	bar := model.NewType("Bar", "types")
	bar.Typedef = true
	bar.Properties = []model.Field{{Name: "foo", Expr: []string{"Foo"}}}
	reg.AddType(foo)
	reg.AddType(bar)

	unit := BuildUnit(reg.Freeze(), "types", UnitOptions{Format: FormatMarkdown})
	require.Equal(t, "types", unit.Title)

	var typesSections, fooHeadings, barHeadings int
	for _, n := range unit.Tree {
		switch {
		case n.Text == "Types" && n.Tag == "h2":
			typesSections++
		case n.Text == "Foo" && n.Tag == "h3":
			fooHeadings++
		case n.Text == "Bar" && n.Tag == "h3":
			barHeadings++
		}
	}
	require.Equal(t, 1, typesSections)
	require.Equal(t, 1, fooHeadings)
	require.Equal(t, 1, barHeadings)
}

func TestBuildUnit_CrossDirectoryReferenceMaterializes(t *testing.T) {
	reg := model.NewRegistry()
	opts := model.NewType("Options", "other")
	reg.AddType(opts)
	reg.AddFunction(&model.Function{
		Name:   "convert",
		Dir:    "src",
		Params: []model.Field{{Name: "opts", Expr: []string{"Options"}}},
	})

	unit := BuildUnit(reg.Freeze(), "src", UnitOptions{Format: FormatMarkdown})

	var sawTypes, sawOptions bool
	for _, n := range unit.Tree {
		if n.Text == "Types" {
			sawTypes = true
		}
		if n.Text == "Options" && n.Tag == "h3" {
			sawOptions = true
		}
	}
	require.True(t, sawTypes)
	require.True(t, sawOptions)
}

func TestDirTitle(t *testing.T) {
	require.Equal(t, "Reference", DirTitle(""))
	require.Equal(t, "utils", DirTitle("src/utils"))
}
