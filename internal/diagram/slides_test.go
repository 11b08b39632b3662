package diagram

import (
	"fmt"
	"io"
	"testing"

	"github.com/olehluchkiv/gosolid/internal/catalog"
	"github.com/olehluchkiv/gosolid/internal/diagram/split"
	"github.com/olehluchkiv/gosolid/internal/inspect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoPackageResult() *inspect.Result {
	r := &inspect.Result{
		Contracts: []inspect.Contract{
			{Name: "Flyer", PkgPath: "mod/lsp", PkgName: "lsp"},
			{Name: "Printer", PkgPath: "mod/isp", PkgName: "isp"},
		},
		Implementations: []inspect.Implementation{
			{Name: "Sparrow", PkgPath: "mod/lsp", PkgName: "lsp"},
			{Name: "InkjetPrinter", PkgPath: "mod/isp", PkgName: "isp"},
		},
	}
	r.Relations = []inspect.Relation{
		{Impl: &r.Implementations[0], Contract: &r.Contracts[0]},
		{Impl: &r.Implementations[1], Contract: &r.Contracts[1]},
	}
	return r
}

func TestBuildSlides_OverviewThenGroups(t *testing.T) {
	slides := BuildSlides(twoPackageResult(), DefaultDiagramOptions(), split.NewByPackage("mod/lsp", "mod/isp"), nil)
	require.Len(t, slides, 3)

	assert.Equal(t, "Overview", slides[0].Title)
	assert.Contains(t, slides[0].Mermaid, "class lsp_Flyer")
	assert.Contains(t, slides[0].Mermaid, "class isp_Printer")
	// Overview shows contracts only.
	assert.NotContains(t, slides[0].Mermaid, "Sparrow")

	assert.Equal(t, "lsp", slides[1].Title)
	assert.Contains(t, slides[1].Mermaid, "lsp_Sparrow --|> lsp_Flyer")
	assert.NotContains(t, slides[1].Mermaid, "isp_Printer")

	assert.Equal(t, "isp", slides[2].Title)
	assert.Contains(t, slides[2].Mermaid, "isp_InkjetPrinter --|> isp_Printer")
}

func TestBuildSlides_MergesCatalogProseAndDemoOutput(t *testing.T) {
	examples := []catalog.Example{{
		Slug:       "lsp",
		Letter:     "L",
		Title:      "Liskov Substitution",
		Definition: "Subtypes must be usable wherever their contract is expected.",
		Summary:    "Penguin stands in for Sparrow.",
		PkgPath:    "mod/lsp",
		Run: func(w io.Writer) {
			fmt.Fprintln(w, "this bird can fly")
		},
	}}

	slides := BuildSlides(twoPackageResult(), DefaultDiagramOptions(), split.NewByPackage("mod/lsp", "mod/isp"), examples)
	require.Len(t, slides, 3)

	lspSlide := slides[1]
	assert.Equal(t, "lsp", lspSlide.Slug)
	assert.Equal(t, "L", lspSlide.Letter)
	assert.Equal(t, "L — Liskov Substitution", lspSlide.Title)
	assert.Equal(t, "Penguin stands in for Sparrow.", lspSlide.Summary)
	assert.Equal(t, "this bird can fly\n", lspSlide.DemoOutput)

	// No catalog entry for isp: package name stands in, no demo output.
	assert.Equal(t, "isp", slides[2].Title)
	assert.Empty(t, slides[2].DemoOutput)
}

func TestSubResultForGroup_DropsCrossGroupRelations(t *testing.T) {
	full := twoPackageResult()
	g := split.Group{
		Title:        "lsp",
		PkgPath:      "mod/lsp",
		ContractKeys: []string{"mod/lsp.Flyer"},
		ImplKeys:     []string{"mod/lsp.Sparrow"},
	}

	sub := subResultForGroup(full, g)
	require.Len(t, sub.Contracts, 1)
	require.Len(t, sub.Implementations, 1)
	require.Len(t, sub.Relations, 1)
	assert.Equal(t, "Sparrow", sub.Relations[0].Impl.Name)
}
