package interfaces

import (
	"reflect"
	"testing"

	"github.com/agrafix/elm-compiler/internal/ast"
	"github.com/agrafix/elm-compiler/internal/canonical"
)

func basicsInt() canonical.Type {
	return &canonical.TCon{Name: canonical.Name{
		Module: canonical.ModuleName{Package: "elm-lang/core", Module: "Basics"},
		Ident:  "Int",
	}}
}

func sampleInterface() *Interface {
	return &Interface{
		Exports: map[string]Export{
			"add":   {Kind: ExportValue},
			"Color": {Kind: ExportUnion, Ctors: []string{"Red", "Green"}},
			"Shade": {Kind: ExportUnion, Open: true},
			"Point": {Kind: ExportAlias},
		},
		Values: map[string]canonical.Type{
			"add":    basicsInt(),
			"secret": basicsInt(),
			"Point":  basicsInt(),
		},
		Unions: map[string]Union{
			"Color": {Ctors: []Ctor{{Name: "Red"}, {Name: "Green"}, {Name: "Blue"}}},
			"Shade": {Ctors: []Ctor{{Name: "Light"}, {Name: "Dark"}}},
			"Inner": {Ctors: []Ctor{{Name: "Hidden"}}},
		},
		Aliases: map[string]Alias{
			"Point":  {Type: basicsInt()},
			"Hidden": {Type: basicsInt()},
		},
		Binops: map[string]Binop{
			"|>": {Assoc: ast.AssocLeft, Precedence: 0},
		},
	}
}

func TestRestrict_DropsUnexported(t *testing.T) {
	restricted := Restrict(sampleInterface())

	if _, ok := restricted.Values["secret"]; ok {
		t.Errorf("unexported value leaked through restriction")
	}
	if _, ok := restricted.Unions["Inner"]; ok {
		t.Errorf("unexported union leaked through restriction")
	}
	if _, ok := restricted.Aliases["Hidden"]; ok {
		t.Errorf("unexported alias leaked through restriction")
	}
}

func TestRestrict_FiltersUnionCtors(t *testing.T) {
	restricted := Restrict(sampleInterface())

	color := restricted.Unions["Color"]
	want := []Ctor{{Name: "Red"}, {Name: "Green"}}
	if !reflect.DeepEqual(color.Ctors, want) {
		t.Errorf("Color ctors = %v, want %v", color.Ctors, want)
	}

	shade := restricted.Unions["Shade"]
	if len(shade.Ctors) != 2 {
		t.Errorf("open union export must keep every constructor, got %v", shade.Ctors)
	}
}

func TestRestrict_KeepsAliasAndItsCtorValue(t *testing.T) {
	restricted := Restrict(sampleInterface())

	if _, ok := restricted.Aliases["Point"]; !ok {
		t.Errorf("exported alias missing after restriction")
	}
	if _, ok := restricted.Values["Point"]; !ok {
		t.Errorf("record alias constructor value missing after restriction")
	}
}

func TestRestrict_Idempotent(t *testing.T) {
	once := Restrict(sampleInterface())
	twice := Restrict(once)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("restriction is a projection and must be idempotent")
	}
}
