package inspect

import "go/types"

// Contract represents a discovered capability contract (a Go interface).
type Contract struct {
	Name       string
	PkgPath    string
	PkgName    string
	Methods    []MethodSig
	TypeObj    *types.Interface
	SourceFile string
}

// Implementation represents a discovered concrete type.
type Implementation struct {
	Name       string
	PkgPath    string
	PkgName    string
	IsStruct   bool
	Methods    []MethodSig
	TypeObj    *types.Named
	SourceFile string
}

// MethodSig captures a method name and its signature string.
type MethodSig struct {
	Name      string
	Signature string
}

// Relation captures that an implementation satisfies a contract.
type Relation struct {
	Impl       *Implementation
	Contract   *Contract
	ViaPointer bool // true if only *T (not T) satisfies the contract
}

// Result holds the complete inspection output.
type Result struct {
	Contracts       []Contract
	Implementations []Implementation
	Relations       []Relation
}

// Options controls inspection behavior.
type Options struct {
	// PkgPrefix restricts results to packages whose import path starts
	// with this prefix. Empty means no restriction.
	PkgPrefix string
	// IncludeUnexported keeps unexported contracts and implementations.
	IncludeUnexported bool
}

// PrinciplesPrefix is the default package prefix: the five example packages.
const PrinciplesPrefix = "github.com/olehluchkiv/gosolid/internal/principles"
