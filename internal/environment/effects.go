package environment

import (
	"github.com/agrafix/elm-compiler/internal/ast"
	"github.com/agrafix/elm-compiler/internal/canonical"
)

// effectPatches derives value bindings from a module's effect
// declaration. Ports and effect managers synthesize names the runtime
// supplies: one per port, plus "command"/"subscription" for managers.
func effectPatches(home canonical.ModuleName, effects ast.Effects) []Patch {
	switch effects.Kind {
	case ast.PortEffects:
		patches := make([]Patch, 0, len(effects.Ports))
		for _, port := range effects.Ports {
			patches = append(patches, &ValuePatch{
				Name:      port.Name,
				Canonical: canonical.Name{Module: home, Ident: port.Name},
			})
		}
		return patches
	case ast.ManagerEffects:
		if effects.Manager == nil {
			return nil
		}
		var patches []Patch
		if effects.Manager.Cmd {
			patches = append(patches, &ValuePatch{
				Name:      "command",
				Canonical: canonical.Name{Module: home, Ident: "command"},
			})
		}
		if effects.Manager.Sub {
			patches = append(patches, &ValuePatch{
				Name:      "subscription",
				Canonical: canonical.Name{Module: home, Ident: "subscription"},
			})
		}
		return patches
	}
	return nil
}
