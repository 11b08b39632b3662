package diagram

import (
	"fmt"
	"go/types"
	"sort"
	"strings"

	"github.com/olehluchkiv/gosolid/internal/catalog"
	"github.com/olehluchkiv/gosolid/internal/diagram/split"
	"github.com/olehluchkiv/gosolid/internal/inspect"
)

// Slide represents one navigable page in the tour.
type Slide struct {
	Slug       string
	Letter     string
	Title      string
	Definition string
	Summary    string
	Mermaid    string
	DemoOutput string
}

// BuildSlides assembles the tour deck: an overview slide showing every
// capability contract, then one slide per catalog example in tour order,
// then any splitter group no example claimed. An example keeps its slide
// even when its package declares no contracts (SRP is all concrete types);
// it just gets an empty diagram next to its demo output.
func BuildSlides(result *inspect.Result, diagOpts DiagramOptions, splitter split.Splitter, examples []catalog.Example) []Slide {
	groups := splitter.Split(result)
	groupByPkg := make(map[string]split.Group, len(groups))
	for _, g := range groups {
		groupByPkg[g.PkgPath] = g
	}

	slides := []Slide{{
		Slug:    "overview",
		Title:   "Overview",
		Mermaid: generateOverviewMermaid(result, diagOpts),
	}}

	claimed := make(map[string]bool, len(examples))
	for _, ex := range examples {
		slide := Slide{
			Slug:       ex.Slug,
			Letter:     ex.Letter,
			Title:      fmt.Sprintf("%s — %s", ex.Letter, ex.Title),
			Definition: ex.Definition,
			Summary:    ex.Summary,
			DemoOutput: catalog.CaptureOutput(ex),
		}
		if g, ok := groupByPkg[ex.PkgPath]; ok {
			claimed[ex.PkgPath] = true
			slide.Mermaid = GenerateMermaid(subResultForGroup(result, g), diagOpts)
		} else {
			slide.Mermaid = GenerateMermaid(&inspect.Result{}, diagOpts)
		}
		slides = append(slides, slide)
	}

	for _, g := range groups {
		if claimed[g.PkgPath] {
			continue
		}
		slides = append(slides, Slide{
			Slug:    g.Title,
			Title:   g.Title,
			Mermaid: GenerateMermaid(subResultForGroup(result, g), diagOpts),
		})
	}

	return slides
}

// subResultForGroup filters a Result to only nodes in a split.Group, plus
// matching relations.
func subResultForGroup(full *inspect.Result, g split.Group) *inspect.Result {
	contractKeys := make(map[string]bool, len(g.ContractKeys))
	for _, k := range g.ContractKeys {
		contractKeys[k] = true
	}
	implKeys := make(map[string]bool, len(g.ImplKeys))
	for _, k := range g.ImplKeys {
		implKeys[k] = true
	}

	sub := &inspect.Result{}

	for i := range full.Contracts {
		key := full.Contracts[i].PkgPath + "." + full.Contracts[i].Name
		if contractKeys[key] {
			sub.Contracts = append(sub.Contracts, full.Contracts[i])
		}
	}

	for i := range full.Implementations {
		key := full.Implementations[i].PkgPath + "." + full.Implementations[i].Name
		if implKeys[key] {
			sub.Implementations = append(sub.Implementations, full.Implementations[i])
		}
	}

	for _, rel := range full.Relations {
		ck := rel.Contract.PkgPath + "." + rel.Contract.Name
		ik := rel.Impl.PkgPath + "." + rel.Impl.Name
		if contractKeys[ck] && implKeys[ik] {
			sub.Relations = append(sub.Relations, rel)
		}
	}

	return sub
}

// generateOverviewMermaid produces a Mermaid classDiagram showing only
// contract nodes and contract-embedding arrows (--|>). No implementation
// blocks and no method bodies: a clean architectural map of the tour.
func generateOverviewMermaid(result *inspect.Result, opts DiagramOptions) string {
	var b strings.Builder

	// Sort contracts deterministically
	contracts := make([]inspect.Contract, len(result.Contracts))
	copy(contracts, result.Contracts)
	sort.Slice(contracts, func(i, j int) bool {
		if contracts[i].PkgName != contracts[j].PkgName {
			return contracts[i].PkgName < contracts[j].PkgName
		}
		return contracts[i].Name < contracts[j].Name
	})

	// Header + style definitions
	if opts.IncludeInit {
		b.WriteString("%%{init: {'theme': 'base', 'themeVariables': {'primaryColor': '#ffffff', 'primaryBorderColor': '#cccccc', 'primaryTextColor': '#000000', 'lineColor': '#555555'}}%%\n")
	}
	b.WriteString("classDiagram")
	if len(contracts) > 0 {
		b.WriteString("\n")
		b.WriteString("    direction LR\n")
		b.WriteString("    classDef contractStyle fill:#2374ab,stroke:#1a5a8a,color:#fff,stroke-width:2px,font-weight:bold")
	}

	// Contract blocks — empty bodies with only the <<interface>> tag
	for _, c := range contracts {
		id := NodeID(c.PkgName, c.Name)
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("    class %s {\n", id))
		b.WriteString("        <<interface>>\n")
		b.WriteString("    }")
	}

	// Contract embedding arrows (--|>)
	embeddings := collectEmbeddingArrows(contracts)
	if len(contracts) > 0 && len(embeddings) > 0 {
		b.WriteString("\n")
	}
	for _, arrow := range embeddings {
		b.WriteString("\n")
		b.WriteString(arrow)
	}

	// Style assignments — contracts only
	if len(contracts) > 0 {
		b.WriteString("\n")
		for _, c := range contracts {
			id := NodeID(c.PkgName, c.Name)
			b.WriteString(fmt.Sprintf("\n    cssClass \"%s\" contractStyle", id))
		}
	}

	return b.String()
}

// collectEmbeddingArrows detects interface embedding between contracts in the
// result set and returns sorted arrow lines.
func collectEmbeddingArrows(contracts []inspect.Contract) []string {
	lookup := make(map[string]inspect.Contract, len(contracts))
	for _, c := range contracts {
		lookup[c.PkgPath+"."+c.Name] = c
	}

	var arrows []string
	for _, child := range contracts {
		if child.TypeObj == nil {
			continue
		}
		for i := 0; i < child.TypeObj.NumEmbeddeds(); i++ {
			embedded := child.TypeObj.EmbeddedType(i)
			named, ok := embedded.(*types.Named)
			if !ok {
				continue
			}
			obj := named.Obj()
			if obj.Pkg() == nil {
				// Universe-scope type (e.g., error) — skip
				continue
			}
			parentKey := obj.Pkg().Path() + "." + obj.Name()
			if parent, exists := lookup[parentKey]; exists {
				childID := NodeID(child.PkgName, child.Name)
				parentID := NodeID(parent.PkgName, parent.Name)
				if childID != parentID {
					arrows = append(arrows, fmt.Sprintf("    %s --|> %s", childID, parentID))
				}
			}
		}
	}

	sort.Strings(arrows)
	return arrows
}
