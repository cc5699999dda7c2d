package environment

import (
	"testing"

	"github.com/agrafix/elm-compiler/internal/ast"
)

func TestDeclarationPatches_ValuePatterns(t *testing.T) {
	module := &ast.Module{
		Package: appHome.Package,
		Name:    appHome.Module,
		Values: []*ast.ValueDecl{
			{Pattern: &ast.PVar{Name: "main"}},
			{Pattern: &ast.PTuple{Items: []ast.Pattern{
				&ast.PVar{Name: "left"},
				&ast.PAlias{Pattern: &ast.PRecord{Fields: []string{"x", "y"}}, Name: "pos"},
				&ast.PAnything{},
			}}},
			{Pattern: &ast.PCtor{Name: "Just", Args: []ast.Pattern{&ast.PVar{Name: "inner"}}}},
		},
	}

	patches, nodes := declarationPatches(appHome, module)
	if len(nodes) != 0 {
		t.Fatalf("expected no alias nodes, got %d", len(nodes))
	}
	for _, name := range []string{"main", "left", "x", "y", "pos", "inner"} {
		vp, ok := findValue(patches, name)
		if !ok {
			t.Errorf("missing value patch for bound name %s", name)
			continue
		}
		if vp.Canonical.Module != appHome {
			t.Errorf("%s canonicalized to %s, want home module", name, vp.Canonical)
		}
	}
	if _, ok := findValue(patches, "Just"); ok {
		t.Errorf("constructor in a destructuring pattern is not a bound name")
	}
}

func TestDeclarationPatches_Union(t *testing.T) {
	module := &ast.Module{
		Package: appHome.Package,
		Name:    appHome.Module,
		Unions: []*ast.UnionDecl{{
			Name: "Msg",
			Ctors: []ast.CtorDecl{
				{Name: "Tick", Arity: 1},
				{Name: "Reset"},
			},
		}},
	}

	patches, _ := declarationPatches(appHome, module)
	if _, ok := findUnion(patches, "Msg"); !ok {
		t.Errorf("missing union patch for Msg")
	}
	tick, ok := findPattern(patches, "Tick")
	if !ok {
		t.Fatalf("missing pattern patch for Tick")
	}
	if tick.Arity != 1 {
		t.Errorf("Tick arity = %d, want 1", tick.Arity)
	}
	if _, ok := findValue(patches, "Reset"); !ok {
		t.Errorf("missing value patch for Reset")
	}
}

func TestDeclarationPatches_RecordAliasYieldsValue(t *testing.T) {
	record := &ast.TRecord{Fields: []ast.Field{
		{Name: "x", Type: &ast.TCon{Name: "Int"}},
		{Name: "y", Type: &ast.TCon{Name: "Int"}},
	}}
	module := &ast.Module{
		Package: appHome.Package,
		Name:    appHome.Module,
		Aliases: []*ast.AliasDecl{
			{Name: "Point", Type: record},
			{Name: "Extended", Type: &ast.TRecord{Extension: "r", Fields: record.Fields}},
			{Name: "Id", Type: &ast.TCon{Name: "Int"}},
		},
	}

	patches, nodes := declarationPatches(appHome, module)
	if len(nodes) != 3 {
		t.Fatalf("expected 3 alias nodes, got %d", len(nodes))
	}
	if _, ok := findValue(patches, "Point"); !ok {
		t.Errorf("closed record alias must yield a constructor value")
	}
	if _, ok := findValue(patches, "Extended"); ok {
		t.Errorf("extensible record alias must not yield a constructor value")
	}
	if _, ok := findValue(patches, "Id"); ok {
		t.Errorf("non-record alias must not yield a constructor value")
	}
	if _, ok := findAlias(patches, "Point"); ok {
		t.Errorf("local aliases are installed by the resolver, not as patches")
	}
}

func TestDeclarationPatches_Infix(t *testing.T) {
	module := &ast.Module{
		Package: appHome.Package,
		Name:    appHome.Module,
		Infixes: []*ast.InfixDecl{
			{Op: "=>", Assoc: ast.AssocRight, Precedence: 9},
		},
	}

	patches, _ := declarationPatches(appHome, module)
	infix, ok := findInfix(patches, "=>")
	if !ok {
		t.Fatalf("missing infix patch for =>")
	}
	if infix.Assoc != ast.AssocRight || infix.Precedence != 9 {
		t.Errorf("fixity = (%s, %d), want (right, 9)", infix.Assoc, infix.Precedence)
	}
}

func TestEffectPatches_Ports(t *testing.T) {
	patches := effectPatches(appHome, ast.Effects{
		Kind: ast.PortEffects,
		Ports: []ast.Port{
			{Name: "sendMessage"},
			{Name: "onMessage"},
		},
	})
	for _, name := range []string{"sendMessage", "onMessage"} {
		if _, ok := findValue(patches, name); !ok {
			t.Errorf("missing port binding %s", name)
		}
	}
}

func TestEffectPatches_Manager(t *testing.T) {
	tests := []struct {
		name    string
		manager ast.Manager
		want    []string
		absent  []string
	}{
		{"commands only", ast.Manager{Cmd: true}, []string{"command"}, []string{"subscription"}},
		{"subscriptions only", ast.Manager{Sub: true}, []string{"subscription"}, []string{"command"}},
		{"both", ast.Manager{Cmd: true, Sub: true}, []string{"command", "subscription"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			manager := tt.manager
			patches := effectPatches(appHome, ast.Effects{Kind: ast.ManagerEffects, Manager: &manager})
			for _, name := range tt.want {
				if _, ok := findValue(patches, name); !ok {
					t.Errorf("missing synthetic binding %s", name)
				}
			}
			for _, name := range tt.absent {
				if _, ok := findValue(patches, name); ok {
					t.Errorf("unexpected synthetic binding %s", name)
				}
			}
		})
	}
}

func TestEffectPatches_None(t *testing.T) {
	if patches := effectPatches(appHome, ast.Effects{}); len(patches) != 0 {
		t.Errorf("module without effects got %d patches", len(patches))
	}
}
