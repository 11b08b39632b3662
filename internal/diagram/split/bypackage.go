package split

import (
	"sort"

	"github.com/olehluchkiv/gosolid/internal/inspect"
)

// ByPackage groups nodes by the package that declares them: each example
// package becomes one group. Groups are ordered by package path unless an
// explicit order is supplied.
type ByPackage struct {
	// Order lists package paths in desired group order. Packages not listed
	// sort alphabetically after the listed ones.
	Order []string
}

// NewByPackage creates a by-package splitter with an optional explicit
// package order.
func NewByPackage(order ...string) *ByPackage {
	return &ByPackage{Order: order}
}

// Split implements Splitter.
func (s *ByPackage) Split(result *inspect.Result) []Group {
	groups := make(map[string]*Group)

	groupFor := func(pkgPath, pkgName string) *Group {
		g, ok := groups[pkgPath]
		if !ok {
			g = &Group{Title: pkgName, PkgPath: pkgPath}
			groups[pkgPath] = g
		}
		return g
	}

	for _, c := range result.Contracts {
		g := groupFor(c.PkgPath, c.PkgName)
		g.ContractKeys = append(g.ContractKeys, c.PkgPath+"."+c.Name)
	}
	for _, impl := range result.Implementations {
		g := groupFor(impl.PkgPath, impl.PkgName)
		g.ImplKeys = append(g.ImplKeys, impl.PkgPath+"."+impl.Name)
	}

	out := make([]Group, 0, len(groups))
	for _, g := range groups {
		sort.Strings(g.ContractKeys)
		sort.Strings(g.ImplKeys)
		out = append(out, *g)
	}

	rank := make(map[string]int, len(s.Order))
	for i, p := range s.Order {
		rank[p] = i
	}
	sort.Slice(out, func(i, j int) bool {
		ri, iOK := rank[out[i].PkgPath]
		rj, jOK := rank[out[j].PkgPath]
		switch {
		case iOK && jOK:
			return ri < rj
		case iOK:
			return true
		case jOK:
			return false
		default:
			return out[i].PkgPath < out[j].PkgPath
		}
	})

	return out
}
