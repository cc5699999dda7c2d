package environment

import (
	"sort"
	"strings"

	"github.com/agrafix/elm-compiler/internal/ast"
	"github.com/agrafix/elm-compiler/internal/canonical"
	"github.com/agrafix/elm-compiler/internal/interfaces"
)

// nativePrefix marks runtime-supplied modules. Importing one that the
// dependency dictionary does not know is allowed and contributes no
// patches; the runtime wires those names directly.
const nativePrefix = "Native."

// importPatches builds everything one import statement contributes:
// operator fixities, qualified names under the alias (or raw name),
// and whatever the exposing listing pulls in unqualified.
func importPatches(
	importDict map[string]canonical.ModuleName,
	ifaces map[canonical.ModuleName]*interfaces.Interface,
	imp *ast.Import,
) ([]Patch, error) {
	home, ok := importDict[imp.Name]
	if !ok {
		if strings.HasPrefix(imp.Name, nativePrefix) {
			return nil, nil
		}
		return nil, &ModuleNotFoundError{
			Region:      imp.Region,
			Name:        imp.Name,
			Suggestions: nearbyNames(imp.Name, sortedModuleNames(importDict)),
		}
	}
	iface, ok := ifaces[home]
	if !ok {
		// A dictionary entry without an interface means the build
		// scheduler violated its ordering contract; report it the
		// same way as an unknown module.
		return nil, &ModuleNotFoundError{
			Region:      imp.Region,
			Name:        imp.Name,
			Suggestions: nil,
		}
	}
	restricted := interfaces.Restrict(iface)

	prefix := imp.Name
	if imp.Alias != "" {
		prefix = imp.Alias
	}

	patches := fixityPatches(home, restricted)
	patches = append(patches, exposurePatches(prefix, home, restricted)...)

	switch {
	case imp.Exposing == nil:
		// Qualified access only.
	case imp.Exposing.Open:
		patches = append(patches, exposurePatches("", home, restricted)...)
	default:
		for _, exposed := range imp.Exposing.Explicit {
			resolved, err := resolveExposed(home, restricted, exposed)
			if err != nil {
				return nil, err
			}
			patches = append(patches, resolved...)
		}
	}
	return patches, nil
}

// fixityPatches introduces every operator fixity the interface
// declares, always unqualified.
func fixityPatches(home canonical.ModuleName, iface *interfaces.Interface) []Patch {
	patches := make([]Patch, 0, len(iface.Binops))
	for _, op := range interfaces.SortedNames(iface.Binops) {
		binop := iface.Binops[op]
		patches = append(patches, &InfixPatch{
			Op:         op,
			Canonical:  canonical.Name{Module: home, Ident: op},
			Assoc:      binop.Assoc,
			Precedence: binop.Precedence,
		})
	}
	return patches
}

// exposurePatches introduces every exported name of a restricted
// interface. With a prefix it builds the qualified patch group; with
// an empty prefix it is the open-listing (wildcard) group.
func exposurePatches(prefix string, home canonical.ModuleName, iface *interfaces.Interface) []Patch {
	qualify := func(name string) string {
		if prefix == "" {
			return name
		}
		return prefix + "." + name
	}

	var patches []Patch
	for _, name := range interfaces.SortedNames(iface.Values) {
		patches = append(patches, &ValuePatch{
			Name:      qualify(name),
			Canonical: canonical.Name{Module: home, Ident: name},
		})
	}
	for _, name := range interfaces.SortedNames(iface.Unions) {
		patches = append(patches, &UnionPatch{
			Name:      qualify(name),
			Canonical: canonical.Name{Module: home, Ident: name},
		})
		for _, ctor := range iface.Unions[name].Ctors {
			patches = append(patches, ctorPatches(prefix, home, ctor)...)
		}
	}
	for _, name := range interfaces.SortedNames(iface.Aliases) {
		alias := iface.Aliases[name]
		patches = append(patches, &AliasPatch{
			Name:      qualify(name),
			Canonical: canonical.Name{Module: home, Ident: name},
			Vars:      alias.Vars,
			Type:      alias.Type,
		})
	}
	return patches
}

func sortedModuleNames(importDict map[string]canonical.ModuleName) []string {
	names := make([]string, 0, len(importDict))
	for name := range importDict {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
