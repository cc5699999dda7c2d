// Package environment builds the canonical environment of one module:
// the table mapping every short name visible inside the module to the
// fully-qualified symbols it may denote. The environment is the
// prerequisite input to expression/pattern canonicalization and type
// checking.
package environment

import (
	"github.com/agrafix/elm-compiler/internal/ast"
	"github.com/agrafix/elm-compiler/internal/canonical"
)

// AliasInfo is one alias candidate: its canonical name, type
// parameters and already-canonical body.
type AliasInfo struct {
	Name canonical.Name
	Vars []string
	Type canonical.Type
}

// PatternInfo is one constructor candidate usable in patterns.
type PatternInfo struct {
	Name  canonical.Name
	Arity int
}

// InfixInfo is one operator fixity candidate.
type InfixInfo struct {
	Name       canonical.Name
	Assoc      ast.Assoc
	Precedence int
}

// Env holds five independent namespaces, each mapping a short name to
// its candidates in insertion order. Multiple candidates are kept on
// purpose: shadowing and ambiguity are resolved by the consuming
// stage, not here. An Env is built once per module and read-only
// afterwards.
type Env struct {
	Home     canonical.ModuleName
	Values   map[string][]canonical.Name
	Unions   map[string][]canonical.Name
	Aliases  map[string][]AliasInfo
	Patterns map[string][]PatternInfo
	Infixes  map[string][]InfixInfo
}

func newEnv(home canonical.ModuleName) *Env {
	return &Env{
		Home:     home,
		Values:   make(map[string][]canonical.Name),
		Unions:   make(map[string][]canonical.Name),
		Aliases:  make(map[string][]AliasInfo),
		Patterns: make(map[string][]PatternInfo),
		Infixes:  make(map[string][]InfixInfo),
	}
}

// apply folds one patch into the environment. Exact duplicates (same
// namespace, short name and canonical name) collapse; distinct
// candidates accumulate.
func (e *Env) apply(patch Patch) {
	switch p := patch.(type) {
	case *ValuePatch:
		if !containsName(e.Values[p.Name], p.Canonical) {
			e.Values[p.Name] = append(e.Values[p.Name], p.Canonical)
		}
	case *UnionPatch:
		if !containsName(e.Unions[p.Name], p.Canonical) {
			e.Unions[p.Name] = append(e.Unions[p.Name], p.Canonical)
		}
	case *AliasPatch:
		for _, info := range e.Aliases[p.Name] {
			if info.Name == p.Canonical {
				return
			}
		}
		e.Aliases[p.Name] = append(e.Aliases[p.Name], AliasInfo{
			Name: p.Canonical,
			Vars: p.Vars,
			Type: p.Type,
		})
	case *PatternPatch:
		for _, info := range e.Patterns[p.Name] {
			if info.Name == p.Canonical {
				return
			}
		}
		e.Patterns[p.Name] = append(e.Patterns[p.Name], PatternInfo{
			Name:  p.Canonical,
			Arity: p.Arity,
		})
	case *InfixPatch:
		for _, info := range e.Infixes[p.Op] {
			if info.Name == p.Canonical {
				return
			}
		}
		e.Infixes[p.Op] = append(e.Infixes[p.Op], InfixInfo{
			Name:       p.Canonical,
			Assoc:      p.Assoc,
			Precedence: p.Precedence,
		})
	}
}

func containsName(names []canonical.Name, name canonical.Name) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
