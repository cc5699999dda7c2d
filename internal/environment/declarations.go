package environment

import (
	"github.com/agrafix/elm-compiler/internal/ast"
	"github.com/agrafix/elm-compiler/internal/canonical"
)

// declarationPatches derives patches from the module's own top-level
// declarations. It also collects one AliasNode per local type alias;
// those are not patches; the alias dependency resolver installs them
// after cycle analysis.
func declarationPatches(home canonical.ModuleName, module *ast.Module) ([]Patch, []*AliasNode) {
	var patches []Patch

	for _, decl := range module.Values {
		for _, bound := range boundVars(decl.Pattern) {
			patches = append(patches, &ValuePatch{
				Name:      bound,
				Canonical: canonical.Name{Module: home, Ident: bound},
			})
		}
	}

	for _, union := range module.Unions {
		patches = append(patches, &UnionPatch{
			Name:      union.Name,
			Canonical: canonical.Name{Module: home, Ident: union.Name},
		})
		for _, ctor := range union.Ctors {
			name := canonical.Name{Module: home, Ident: ctor.Name}
			patches = append(patches,
				&ValuePatch{Name: ctor.Name, Canonical: name},
				&PatternPatch{Name: ctor.Name, Canonical: name, Arity: ctor.Arity},
			)
		}
	}

	nodes := make([]*AliasNode, 0, len(module.Aliases))
	for _, alias := range module.Aliases {
		nodes = append(nodes, &AliasNode{
			Name:   alias.Name,
			Vars:   alias.Vars,
			Region: alias.Region,
			Type:   alias.Type,
		})
		// An alias over a closed record is usable as a constructor
		// function, so it gets a value binding too.
		if record, ok := alias.Type.(*ast.TRecord); ok && record.Extension == "" {
			patches = append(patches, &ValuePatch{
				Name:      alias.Name,
				Canonical: canonical.Name{Module: home, Ident: alias.Name},
			})
		}
	}

	for _, infix := range module.Infixes {
		patches = append(patches, &InfixPatch{
			Op:         infix.Op,
			Canonical:  canonical.Name{Module: home, Ident: infix.Op},
			Assoc:      infix.Assoc,
			Precedence: infix.Precedence,
		})
	}

	return patches, nodes
}

// boundVars collects every name a destructuring pattern binds, in
// source order.
func boundVars(pattern ast.Pattern) []string {
	var names []string
	collectBoundVars(pattern, &names)
	return names
}

func collectBoundVars(pattern ast.Pattern, names *[]string) {
	switch p := pattern.(type) {
	case *ast.PVar:
		*names = append(*names, p.Name)
	case *ast.PAlias:
		collectBoundVars(p.Pattern, names)
		*names = append(*names, p.Name)
	case *ast.PTuple:
		for _, item := range p.Items {
			collectBoundVars(item, names)
		}
	case *ast.PRecord:
		*names = append(*names, p.Fields...)
	case *ast.PCtor:
		for _, arg := range p.Args {
			collectBoundVars(arg, names)
		}
	case *ast.PAnything:
		// binds nothing
	}
}
