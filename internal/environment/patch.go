package environment

import (
	"github.com/agrafix/elm-compiler/internal/ast"
	"github.com/agrafix/elm-compiler/internal/canonical"
)

// Patch is one atomic "introduce this short name into scope" fact.
// Patches are gathered from builtins, local declarations, effect
// bindings and imports, then folded into an Env. Folding is additive:
// a later patch for the same name adds a candidate, it never
// overwrites an earlier one.
type Patch interface {
	patchNode()
}

// ValuePatch binds a short name in the value namespace.
type ValuePatch struct {
	Name      string
	Canonical canonical.Name
}

func (*ValuePatch) patchNode() {}

// UnionPatch binds a short name in the type namespace.
type UnionPatch struct {
	Name      string
	Canonical canonical.Name
}

func (*UnionPatch) patchNode() {}

// AliasPatch binds a short name in the alias namespace, carrying the
// alias's type parameters and already-canonical body.
type AliasPatch struct {
	Name      string
	Canonical canonical.Name
	Vars      []string
	Type      canonical.Type
}

func (*AliasPatch) patchNode() {}

// PatternPatch binds a constructor in the pattern namespace together
// with its arity, so pattern matches can be checked for saturation.
type PatternPatch struct {
	Name      string
	Canonical canonical.Name
	Arity     int
}

func (*PatternPatch) patchNode() {}

// InfixPatch declares an operator's fixity. Operators are always
// introduced unqualified.
type InfixPatch struct {
	Op         string
	Canonical  canonical.Name
	Assoc      ast.Assoc
	Precedence int
}

func (*InfixPatch) patchNode() {}
