// Package inspect statically analyzes this module's example packages and
// reports every capability contract, every concrete type, and which types
// satisfy which contracts. The diagram layer turns that into the per-
// principle class diagrams the tour displays.
package inspect

import (
	"context"
	"fmt"
	"go/token"
	"go/types"
	"log/slog"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/packages"
	"golang.org/x/tools/go/types/typeutil"
)

// Inspect loads Go packages from dir and finds all contract-implementation
// relations.
func Inspect(ctx context.Context, dir string, opts Options, logger *slog.Logger) (*Result, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedTypes | packages.NeedSyntax |
			packages.NeedTypesInfo | packages.NeedImports,
		Dir:     dir,
		Context: ctx,
	}

	pkgs, err := packages.Load(cfg, "./...")
	if err != nil {
		return nil, fmt.Errorf("loading packages: %w", err)
	}

	logger.Info("packages loaded", "packages_count", len(pkgs))

	// Log packages with errors but continue
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			logger.Warn("package load error", "package", pkg.PkgPath, "error", e.Msg)
		}
	}

	var contracts []Contract
	var impls []Implementation
	seen := make(map[string]bool) // pkgPath.Name dedup

	for _, pkg := range pkgs {
		if pkg.Types == nil {
			continue
		}

		scope := pkg.Types.Scope()
		for _, name := range scope.Names() {
			obj := scope.Lookup(name)
			tn, ok := obj.(*types.TypeName)
			if !ok {
				continue
			}
			named, ok := tn.Type().(*types.Named)
			if !ok {
				continue
			}

			key := pkg.PkgPath + "." + tn.Name()
			if seen[key] {
				continue
			}
			seen[key] = true

			if iface, ok := named.Underlying().(*types.Interface); ok {
				contracts = append(contracts, Contract{
					Name:       tn.Name(),
					PkgPath:    pkg.PkgPath,
					PkgName:    pkg.Name,
					Methods:    contractMethods(iface),
					TypeObj:    iface,
					SourceFile: resolveSourceFile(pkg.Fset, tn.Pos(), dir),
				})
				logger.Debug("found contract", "name", tn.Name(), "package", pkg.PkgPath, "methods", iface.NumMethods())
				continue
			}

			methods := implMethods(named)
			impls = append(impls, Implementation{
				Name:       tn.Name(),
				PkgPath:    pkg.PkgPath,
				PkgName:    pkg.Name,
				IsStruct:   isStruct(named),
				Methods:    methods,
				TypeObj:    named,
				SourceFile: resolveSourceFile(pkg.Fset, tn.Pos(), dir),
			})
			logger.Debug("found implementation", "name", tn.Name(), "package", pkg.PkgPath, "methods", len(methods))
		}
	}

	logger.Info("types collected", "contracts", len(contracts), "implementations", len(impls))

	// Match implementations against contracts.
	var methodSetCache typeutil.MethodSetCache
	var relations []Relation

	for i := range impls {
		impl := &impls[i]
		for j := range contracts {
			c := &contracts[j]

			// Skip empty interfaces — everything satisfies them.
			if c.TypeObj.NumMethods() == 0 {
				continue
			}

			valType := impl.TypeObj
			ptrType := types.NewPointer(valType)
			valMethodSet := methodSetCache.MethodSet(valType)
			ptrMethodSet := methodSetCache.MethodSet(ptrType)

			if types.Implements(valType, c.TypeObj) || matchesMethodSet(valMethodSet, c.TypeObj) {
				relations = append(relations, Relation{Impl: impl, Contract: c, ViaPointer: false})
				logger.Debug("match found", "implementation", impl.Name, "contract", c.Name, "via_pointer", false)
			} else if types.Implements(ptrType, c.TypeObj) || matchesMethodSet(ptrMethodSet, c.TypeObj) {
				relations = append(relations, Relation{Impl: impl, Contract: c, ViaPointer: true})
				logger.Debug("match found", "implementation", impl.Name, "contract", c.Name, "via_pointer", true)
			}
		}
	}

	logger.Info("inspection complete", "relations", len(relations))

	return &Result{
		Contracts:       contracts,
		Implementations: impls,
		Relations:       relations,
	}, nil
}

func contractMethods(iface *types.Interface) []MethodSig {
	methods := make([]MethodSig, iface.NumMethods())
	for i := 0; i < iface.NumMethods(); i++ {
		m := iface.Method(i)
		methods[i] = MethodSig{
			Name:      m.Name(),
			Signature: formatSignature(m),
		}
	}
	return methods
}

func implMethods(named *types.Named) []MethodSig {
	methods := make([]MethodSig, named.NumMethods())
	for i := 0; i < named.NumMethods(); i++ {
		m := named.Method(i)
		methods[i] = MethodSig{
			Name:      m.Name(),
			Signature: formatSignature(m),
		}
	}
	return methods
}

// formatSignature renders "Name(params) results" without the func keyword.
func formatSignature(fn *types.Func) string {
	sig, ok := fn.Type().(*types.Signature)
	if !ok {
		return fn.Name() + "()"
	}
	s := types.TypeString(sig, types.RelativeTo(fn.Pkg()))
	return fn.Name() + strings.TrimPrefix(s, "func")
}

func isStruct(named *types.Named) bool {
	_, ok := named.Underlying().(*types.Struct)
	return ok
}

// matchesMethodSet reports whether mset carries every method the contract
// names. types.Implements already covers identical signatures; this catches
// promoted methods picked up through embedding.
func matchesMethodSet(mset *types.MethodSet, iface *types.Interface) bool {
	for i := 0; i < iface.NumMethods(); i++ {
		m := iface.Method(i)
		if mset.Lookup(m.Pkg(), m.Name()) == nil {
			return false
		}
	}
	return true
}

// resolveSourceFile returns the file declaring pos, relative to moduleRoot
// when possible.
func resolveSourceFile(fset *token.FileSet, pos token.Pos, moduleRoot string) string {
	if fset == nil || !pos.IsValid() {
		return ""
	}
	file := fset.Position(pos).Filename
	if file == "" {
		return ""
	}
	if rel, err := filepath.Rel(moduleRoot, file); err == nil && !strings.HasPrefix(rel, "..") {
		return filepath.ToSlash(rel)
	}
	return filepath.ToSlash(file)
}
