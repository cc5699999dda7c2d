package environment

import (
	"github.com/agrafix/elm-compiler/internal/ast"
	"github.com/agrafix/elm-compiler/internal/canonical"
	"github.com/agrafix/elm-compiler/internal/interfaces"
)

// resolveExposed resolves one explicit exposing entry against a
// restricted interface, returning the patches it introduces.
func resolveExposed(home canonical.ModuleName, iface *interfaces.Interface, exposed ast.Exposed) ([]Patch, error) {
	switch exposed.Kind {
	case ast.ExposedValue:
		return resolveExposedValue(home, iface, exposed)
	case ast.ExposedAlias:
		return resolveExposedAlias(home, iface, exposed)
	case ast.ExposedUnion:
		return resolveExposedUnion(home, iface, exposed)
	}
	return nil, nil
}

func resolveExposedValue(home canonical.ModuleName, iface *interfaces.Interface, exposed ast.Exposed) ([]Patch, error) {
	if _, ok := iface.Values[exposed.Name]; !ok {
		return nil, &ValueNotFoundError{
			Region:      exposed.Region,
			Name:        exposed.Name,
			Module:      home.String(),
			Suggestions: nearbyNames(exposed.Name, interfaces.SortedNames(iface.Values)),
		}
	}
	return []Patch{
		&ValuePatch{Name: exposed.Name, Canonical: canonical.Name{Module: home, Ident: exposed.Name}},
	}, nil
}

func resolveExposedAlias(home canonical.ModuleName, iface *interfaces.Interface, exposed ast.Exposed) ([]Patch, error) {
	name := canonical.Name{Module: home, Ident: exposed.Name}
	if alias, ok := iface.Aliases[exposed.Name]; ok {
		patches := []Patch{
			&AliasPatch{Name: exposed.Name, Canonical: name, Vars: alias.Vars, Type: alias.Type},
		}
		// A record alias is also its constructor function.
		if _, ok := iface.Values[exposed.Name]; ok {
			patches = append(patches, &ValuePatch{Name: exposed.Name, Canonical: name})
		}
		return patches, nil
	}
	// The entry may actually name a union exposed without its
	// constructors, e.g. "exposing (Maybe)".
	if _, ok := iface.Unions[exposed.Name]; ok {
		return []Patch{&UnionPatch{Name: exposed.Name, Canonical: name}}, nil
	}
	pool := append(interfaces.SortedNames(iface.Aliases), interfaces.SortedNames(iface.Unions)...)
	return nil, &ValueNotFoundError{
		Region:      exposed.Region,
		Name:        exposed.Name,
		Module:      home.String(),
		Suggestions: nearbyNames(exposed.Name, pool),
	}
}

func resolveExposedUnion(home canonical.ModuleName, iface *interfaces.Interface, exposed ast.Exposed) ([]Patch, error) {
	union, ok := iface.Unions[exposed.Name]
	if !ok {
		return nil, &ValueNotFoundError{
			Region:      exposed.Region,
			Name:        exposed.Name,
			Module:      home.String(),
			Suggestions: nearbyNames(exposed.Name, interfaces.SortedNames(iface.Unions)),
		}
	}
	ctors, err := requestedCtors(home, union, exposed)
	if err != nil {
		return nil, err
	}
	patches := []Patch{
		&UnionPatch{Name: exposed.Name, Canonical: canonical.Name{Module: home, Ident: exposed.Name}},
	}
	for _, ctor := range ctors {
		patches = append(patches, ctorPatches("", home, ctor)...)
	}
	return patches, nil
}

// requestedCtors checks a union request's constructor listing against
// the union's real constructors. The request is all-or-nothing: one
// unknown name fails the whole entry.
func requestedCtors(home canonical.ModuleName, union interfaces.Union, exposed ast.Exposed) ([]interfaces.Ctor, error) {
	if exposed.Ctors == nil || exposed.Ctors.Open {
		return union.Ctors, nil
	}
	byName := make(map[string]interfaces.Ctor, len(union.Ctors))
	real := make([]string, len(union.Ctors))
	for i, ctor := range union.Ctors {
		byName[ctor.Name] = ctor
		real[i] = ctor.Name
	}
	ctors := make([]interfaces.Ctor, 0, len(exposed.Ctors.Names))
	for _, requested := range exposed.Ctors.Names {
		ctor, ok := byName[requested]
		if !ok {
			return nil, &ValueNotFoundError{
				Region:      exposed.Region,
				Name:        requested,
				Module:      home.String(),
				Suggestions: nearbyNames(requested, real),
			}
		}
		ctors = append(ctors, ctor)
	}
	return ctors, nil
}

// ctorPatches introduces one constructor as both a value and a
// pattern, optionally under a qualifier prefix.
func ctorPatches(prefix string, home canonical.ModuleName, ctor interfaces.Ctor) []Patch {
	name := canonical.Name{Module: home, Ident: ctor.Name}
	short := ctor.Name
	if prefix != "" {
		short = prefix + "." + ctor.Name
	}
	return []Patch{
		&ValuePatch{Name: short, Canonical: name},
		&PatternPatch{Name: short, Canonical: name, Arity: ctor.Arity},
	}
}
