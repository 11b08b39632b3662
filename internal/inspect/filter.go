package inspect

import (
	"strings"
	"unicode"
)

// Filter applies the options to a result: package-prefix restriction,
// unexported pruning, and orphan pruning. Only contracts and implementations
// that participate in at least one surviving relation are kept.
func Filter(result *Result, opts Options) *Result {
	filtered := &Result{}

	contractSet := make(map[string]bool)
	implSet := make(map[string]bool)

	for _, rel := range result.Relations {
		c := rel.Contract
		impl := rel.Impl

		if !opts.IncludeUnexported {
			if isUnexported(c.Name) || isUnexported(impl.Name) {
				continue
			}
		}

		if opts.PkgPrefix != "" {
			contractMatch := strings.HasPrefix(c.PkgPath, opts.PkgPrefix)
			implMatch := strings.HasPrefix(impl.PkgPath, opts.PkgPrefix)
			if !contractMatch || !implMatch {
				continue
			}
		}

		filtered.Relations = append(filtered.Relations, rel)
		contractSet[contractKey(c)] = true
		implSet[implKey(impl)] = true
	}

	for i := range result.Contracts {
		c := &result.Contracts[i]
		if contractSet[contractKey(c)] {
			filtered.Contracts = append(filtered.Contracts, *c)
		}
	}

	for i := range result.Implementations {
		impl := &result.Implementations[i]
		if implSet[implKey(impl)] {
			filtered.Implementations = append(filtered.Implementations, *impl)
		}
	}

	return filtered
}

func isUnexported(name string) bool {
	if name == "" {
		return true
	}
	return unicode.IsLower(rune(name[0]))
}

func contractKey(c *Contract) string {
	return c.PkgPath + "." + c.Name
}

func implKey(impl *Implementation) string {
	return impl.PkgPath + "." + impl.Name
}
