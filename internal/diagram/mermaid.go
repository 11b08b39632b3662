// Package diagram renders inspection results as Mermaid class diagrams and
// assembles the per-principle slide deck the tour displays.
package diagram

import (
	"fmt"
	"sort"
	"strings"

	"github.com/olehluchkiv/gosolid/internal/inspect"
)

// DiagramOptions controls Mermaid diagram generation.
type DiagramOptions struct {
	MaxMethodsPerBox int  // default 5, 0 means unlimited
	IncludeInit      bool // include %%{init:}%% directive (for standalone .mmd files)
}

// DefaultDiagramOptions returns sensible defaults for diagram generation.
func DefaultDiagramOptions() DiagramOptions {
	return DiagramOptions{MaxMethodsPerBox: 5}
}

// GenerateMermaid produces a Mermaid classDiagram string from an inspection
// result. Output ordering is deterministic.
func GenerateMermaid(result *inspect.Result, opts DiagramOptions) string {
	var b strings.Builder

	// Sort contracts deterministically by (pkgName, name).
	contracts := make([]inspect.Contract, len(result.Contracts))
	copy(contracts, result.Contracts)
	sort.Slice(contracts, func(i, j int) bool {
		if contracts[i].PkgName != contracts[j].PkgName {
			return contracts[i].PkgName < contracts[j].PkgName
		}
		return contracts[i].Name < contracts[j].Name
	})

	// Sort implementations deterministically by (pkgName, name).
	impls := make([]inspect.Implementation, len(result.Implementations))
	copy(impls, result.Implementations)
	sort.Slice(impls, func(i, j int) bool {
		if impls[i].PkgName != impls[j].PkgName {
			return impls[i].PkgName < impls[j].PkgName
		}
		return impls[i].Name < impls[j].Name
	})

	// Sort relations deterministically by (implementation name, contract name).
	rels := make([]inspect.Relation, len(result.Relations))
	copy(rels, result.Relations)
	sort.Slice(rels, func(i, j int) bool {
		implKeyI := rels[i].Impl.PkgName + "_" + rels[i].Impl.Name
		implKeyJ := rels[j].Impl.PkgName + "_" + rels[j].Impl.Name
		if implKeyI != implKeyJ {
			return implKeyI < implKeyJ
		}
		cKeyI := rels[i].Contract.PkgName + "_" + rels[i].Contract.Name
		cKeyJ := rels[j].Contract.PkgName + "_" + rels[j].Contract.Name
		return cKeyI < cKeyJ
	})

	// Header + style definitions.
	if opts.IncludeInit {
		b.WriteString("%%{init: {'theme': 'base', 'themeVariables': {'primaryColor': '#ffffff', 'primaryBorderColor': '#cccccc', 'primaryTextColor': '#000000', 'lineColor': '#555555'}}%%\n")
	}
	b.WriteString("classDiagram")
	if len(contracts) > 0 || len(impls) > 0 {
		b.WriteString("\n")
		b.WriteString("    direction LR\n")
		b.WriteString("    classDef contractStyle fill:#2374ab,stroke:#1a5a8a,color:#fff,stroke-width:2px,font-weight:bold\n")
		b.WriteString("    classDef implStyle fill:#4a9c6d,stroke:#357a50,color:#fff,stroke-width:2px")
	}

	// Contracts section.
	for _, c := range contracts {
		b.WriteString("\n")
		writeContractBlock(&b, c, opts)
	}

	// Implementations section (separated by blank line from contracts if both exist).
	if len(contracts) > 0 && len(impls) > 0 {
		b.WriteString("\n")
	}
	for _, impl := range impls {
		b.WriteString("\n")
		writeImplBlock(&b, impl)
	}

	// Relations section (separated by blank line from implementations if both exist).
	if (len(contracts) > 0 || len(impls) > 0) && len(rels) > 0 {
		b.WriteString("\n")
	}
	for _, rel := range rels {
		b.WriteString("\n")
		writeRelation(&b, rel)
	}

	// Style assignments section.
	if len(contracts) > 0 || len(impls) > 0 {
		b.WriteString("\n")
		for _, c := range contracts {
			id := NodeID(c.PkgName, c.Name)
			b.WriteString(fmt.Sprintf("\n    cssClass \"%s\" contractStyle", id))
		}
		for _, impl := range impls {
			id := NodeID(impl.PkgName, impl.Name)
			b.WriteString(fmt.Sprintf("\n    cssClass \"%s\" implStyle", id))
		}
	}

	return b.String()
}

// SanitizeSignature removes characters in method signatures that break Mermaid
// syntax. Mermaid treats {}, <>, and ~ as special in class diagram labels.
func SanitizeSignature(sig string) string {
	// Replace <-chan with chan (drop direction indicator — Mermaid can't handle <).
	sig = strings.ReplaceAll(sig, "<-chan", "chan")
	// Replace interface{} with "any" BEFORE stripping braces — bare "interface"
	// is a reserved keyword in browser Mermaid.js (<<interface>> tag parsing).
	sig = strings.ReplaceAll(sig, "interface{}", "any")
	// Strip remaining empty braces — in Go signatures these are empty type
	// literals like struct{}, map[K]struct{}.
	sig = strings.ReplaceAll(sig, "{}", "")
	return sig
}

// sanitizeID replaces /, ., - with _ in node identifiers.
func sanitizeID(s string) string {
	r := strings.NewReplacer("/", "_", ".", "_", "-", "_")
	return r.Replace(s)
}

// NodeID builds a sanitized node ID from pkgName and contract/type name.
func NodeID(pkgName, name string) string {
	return sanitizeID(pkgName + "_" + name)
}

// writeContractBlock writes a Mermaid class block for a capability contract.
func writeContractBlock(b *strings.Builder, c inspect.Contract, opts DiagramOptions) {
	id := NodeID(c.PkgName, c.Name)
	b.WriteString(fmt.Sprintf("    class %s {\n", id))
	b.WriteString("        <<interface>>\n")
	if c.SourceFile != "" {
		b.WriteString("        %% file: " + c.SourceFile + "\n")
	}
	writeMethodLines(b, c.Methods, opts)
	b.WriteString("    }")
}

// writeImplBlock writes a Mermaid class block for a concrete type.
// Only the type name is shown — its methods are already listed in the
// contract blocks the type satisfies.
func writeImplBlock(b *strings.Builder, impl inspect.Implementation) {
	id := NodeID(impl.PkgName, impl.Name)
	b.WriteString(fmt.Sprintf("    class %s {\n", id))
	if impl.SourceFile != "" {
		b.WriteString("        %% file: " + impl.SourceFile + "\n")
	}
	b.WriteString("    }")
}

// writeMethodLines writes method lines with optional truncation.
func writeMethodLines(b *strings.Builder, methods []inspect.MethodSig, opts DiagramOptions) {
	limit := len(methods)
	truncated := false
	if opts.MaxMethodsPerBox > 0 && limit > opts.MaxMethodsPerBox {
		limit = opts.MaxMethodsPerBox
		truncated = true
	}

	for i := 0; i < limit; i++ {
		b.WriteString(fmt.Sprintf("        +%s\n", SanitizeSignature(methods[i].Signature)))
	}
	if truncated {
		b.WriteString("        ...\n")
	}
}

// writeRelation writes a single Mermaid realization line.
func writeRelation(b *strings.Builder, rel inspect.Relation) {
	implID := NodeID(rel.Impl.PkgName, rel.Impl.Name)
	contractID := NodeID(rel.Contract.PkgName, rel.Contract.Name)
	b.WriteString(fmt.Sprintf("    %s --|> %s", implID, contractID))
}
