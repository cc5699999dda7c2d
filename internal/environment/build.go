package environment

import (
	"github.com/agrafix/elm-compiler/internal/ast"
	"github.com/agrafix/elm-compiler/internal/canonical"
	"github.com/agrafix/elm-compiler/internal/interfaces"
)

// Build constructs the canonical environment for one module. It folds
// four patch groups into a fresh environment: the builtin table,
// local declarations, effect bindings and per-import contributions,
// then resolves local type aliases against the result.
//
// The call is fail-fast: the first failing import entry or alias
// cycle aborts the whole build and no partially built environment
// escapes. Inputs are read-only; the returned Env is immutable once
// returned and is consumed by expression canonicalization and type
// checking.
func Build(
	importDict map[string]canonical.ModuleName,
	ifaces map[canonical.ModuleName]*interfaces.Interface,
	builtin []Patch,
	module *ast.Module,
) (*Env, error) {
	home := canonical.ModuleName{Package: module.Package, Module: module.Name}

	patches := make([]Patch, 0, len(builtin))
	patches = append(patches, builtin...)

	declared, aliasNodes := declarationPatches(home, module)
	patches = append(patches, declared...)
	patches = append(patches, effectPatches(home, module.Effects)...)

	for _, imp := range module.Imports {
		contributed, err := importPatches(importDict, ifaces, imp)
		if err != nil {
			return nil, err
		}
		patches = append(patches, contributed...)
	}

	env := newEnv(home)
	for _, patch := range patches {
		env.apply(patch)
	}

	if err := resolveAliases(home, aliasNodes, env); err != nil {
		return nil, err
	}
	return env, nil
}
