package environment

import (
	"github.com/agrafix/elm-compiler/internal/ast"
	"github.com/agrafix/elm-compiler/internal/canonical"
	"github.com/agrafix/elm-compiler/internal/interfaces"
)

var (
	coreBasics = canonical.ModuleName{Package: "elm-lang/core", Module: "Basics"}
	utilsHome  = canonical.ModuleName{Package: "acme/util", Module: "Utils"}
	appHome    = canonical.ModuleName{Package: "acme/app", Module: "Main"}
)

func intType() canonical.Type {
	return &canonical.TCon{Name: canonical.Name{Module: coreBasics, Ident: "Int"}}
}

// utilsInterface declares more than it exports: "secret" stays
// private and union Color hides its Blue constructor.
func utilsInterface() *interfaces.Interface {
	return &interfaces.Interface{
		Exports: map[string]interfaces.Export{
			"add":   {Kind: interfaces.ExportValue},
			"sub":   {Kind: interfaces.ExportValue},
			"Color": {Kind: interfaces.ExportUnion, Ctors: []string{"Red", "Green"}},
			"Point": {Kind: interfaces.ExportAlias},
		},
		Values: map[string]canonical.Type{
			"add":    &canonical.TLambda{Arg: intType(), Result: &canonical.TLambda{Arg: intType(), Result: intType()}},
			"sub":    &canonical.TLambda{Arg: intType(), Result: &canonical.TLambda{Arg: intType(), Result: intType()}},
			"secret": intType(),
			"Point":  &canonical.TLambda{Arg: intType(), Result: &canonical.TLambda{Arg: intType(), Result: pointRecord()}},
		},
		Unions: map[string]interfaces.Union{
			"Color": {Ctors: []interfaces.Ctor{
				{Name: "Red"},
				{Name: "Green", Arity: 1},
				{Name: "Blue"},
			}},
		},
		Aliases: map[string]interfaces.Alias{
			"Point": {Type: pointRecord()},
		},
		Binops: map[string]interfaces.Binop{
			"|>": {Assoc: ast.AssocLeft, Precedence: 0},
		},
	}
}

func pointRecord() canonical.Type {
	return &canonical.TRecord{Fields: []canonical.Field{
		{Name: "x", Type: intType()},
		{Name: "y", Type: intType()},
	}}
}

func restrictedUtils() *interfaces.Interface {
	return interfaces.Restrict(utilsInterface())
}

func utilsWorld() (map[string]canonical.ModuleName, map[canonical.ModuleName]*interfaces.Interface) {
	importDict := map[string]canonical.ModuleName{"Utils": utilsHome}
	ifaces := map[canonical.ModuleName]*interfaces.Interface{utilsHome: utilsInterface()}
	return importDict, ifaces
}

func findValue(patches []Patch, name string) (*ValuePatch, bool) {
	for _, p := range patches {
		if vp, ok := p.(*ValuePatch); ok && vp.Name == name {
			return vp, true
		}
	}
	return nil, false
}

func findUnion(patches []Patch, name string) (*UnionPatch, bool) {
	for _, p := range patches {
		if up, ok := p.(*UnionPatch); ok && up.Name == name {
			return up, true
		}
	}
	return nil, false
}

func findAlias(patches []Patch, name string) (*AliasPatch, bool) {
	for _, p := range patches {
		if ap, ok := p.(*AliasPatch); ok && ap.Name == name {
			return ap, true
		}
	}
	return nil, false
}

func findPattern(patches []Patch, name string) (*PatternPatch, bool) {
	for _, p := range patches {
		if pp, ok := p.(*PatternPatch); ok && pp.Name == name {
			return pp, true
		}
	}
	return nil, false
}

func findInfix(patches []Patch, op string) (*InfixPatch, bool) {
	for _, p := range patches {
		if ip, ok := p.(*InfixPatch); ok && ip.Op == op {
			return ip, true
		}
	}
	return nil, false
}

func hasSuggestion(suggestions []string, want string) bool {
	for _, s := range suggestions {
		if s == want {
			return true
		}
	}
	return false
}
