package builtins

import (
	"testing"

	"github.com/agrafix/elm-compiler/internal/environment"
)

func TestPatches(t *testing.T) {
	patches, err := Patches()
	if err != nil {
		t.Fatalf("embedded manifest failed to load: %v", err)
	}
	if len(patches) == 0 {
		t.Fatalf("builtin table is empty")
	}

	var (
		boolUnion bool
		trueValue bool
		consInfix bool
		consArity = -1
	)
	for _, patch := range patches {
		switch p := patch.(type) {
		case *environment.UnionPatch:
			if p.Name == "Bool" {
				boolUnion = true
			}
		case *environment.ValuePatch:
			if p.Name == "True" {
				trueValue = true
			}
		case *environment.PatternPatch:
			if p.Name == "::" {
				consArity = p.Arity
			}
		case *environment.InfixPatch:
			if p.Op == "::" {
				consInfix = true
			}
		}
	}
	if !boolUnion {
		t.Errorf("missing builtin union Bool")
	}
	if !trueValue {
		t.Errorf("missing builtin constructor value True")
	}
	if consArity != 2 {
		t.Errorf("cons pattern arity = %d, want 2", consArity)
	}
	if !consInfix {
		t.Errorf("missing builtin fixity for ::")
	}
}

func TestPatchesLoadOnce(t *testing.T) {
	first, err := Patches()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Patches()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(first) != len(second) {
		t.Errorf("repeated loads disagree: %d vs %d patches", len(first), len(second))
	}
}

func TestLoadRejectsBadManifest(t *testing.T) {
	if _, err := load([]byte("unions: {not: [a, list}")); err == nil {
		t.Errorf("malformed yaml must fail")
	}
}
