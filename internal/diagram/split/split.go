// Package split divides an inspection result into groups, one per slide.
package split

import "github.com/olehluchkiv/gosolid/internal/inspect"

// Group represents one slide's content: node keys (pkgPath.Name) belonging
// to a single package.
type Group struct {
	Title        string
	PkgPath      string
	ContractKeys []string
	ImplKeys     []string
}

// Splitter splits an inspection result into groups for slide generation.
type Splitter interface {
	Split(result *inspect.Result) []Group
}
