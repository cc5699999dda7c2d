// Package builtins supplies the constant patch table of names every
// module sees without importing anything. The table lives in an
// embedded yaml manifest and is parsed exactly once; callers pass the
// result into environment.Build explicitly, so there is no mutable
// global state.
package builtins

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/agrafix/elm-compiler/internal/ast"
	"github.com/agrafix/elm-compiler/internal/canonical"
	"github.com/agrafix/elm-compiler/internal/environment"
)

//go:embed builtins.yaml
var manifest []byte

type manifestDoc struct {
	Package string `yaml:"package"`
	Unions  []struct {
		Module string   `yaml:"module"`
		Name   string   `yaml:"name"`
		Vars   []string `yaml:"vars"`
		Ctors  []struct {
			Name  string `yaml:"name"`
			Arity int    `yaml:"arity"`
		} `yaml:"ctors"`
	} `yaml:"unions"`
	Values []struct {
		Module string   `yaml:"module"`
		Names  []string `yaml:"names"`
	} `yaml:"values"`
	Operators []struct {
		Module     string `yaml:"module"`
		Op         string `yaml:"op"`
		Assoc      string `yaml:"assoc"`
		Precedence int    `yaml:"precedence"`
	} `yaml:"operators"`
}

var (
	loadOnce    sync.Once
	loadedTable []environment.Patch
	loadErr     error
)

// Patches returns the builtin patch table. The manifest is embedded,
// so an error here means the binary itself is broken.
func Patches() ([]environment.Patch, error) {
	loadOnce.Do(func() {
		loadedTable, loadErr = load(manifest)
	})
	return loadedTable, loadErr
}

func load(data []byte) ([]environment.Patch, error) {
	var doc manifestDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("builtin manifest: %w", err)
	}

	var patches []environment.Patch
	for _, union := range doc.Unions {
		home := canonical.ModuleName{Package: doc.Package, Module: union.Module}
		patches = append(patches, &environment.UnionPatch{
			Name:      union.Name,
			Canonical: canonical.Name{Module: home, Ident: union.Name},
		})
		for _, ctor := range union.Ctors {
			name := canonical.Name{Module: home, Ident: ctor.Name}
			patches = append(patches,
				&environment.ValuePatch{Name: ctor.Name, Canonical: name},
				&environment.PatternPatch{Name: ctor.Name, Canonical: name, Arity: ctor.Arity},
			)
		}
	}
	for _, group := range doc.Values {
		home := canonical.ModuleName{Package: doc.Package, Module: group.Module}
		for _, value := range group.Names {
			patches = append(patches, &environment.ValuePatch{
				Name:      value,
				Canonical: canonical.Name{Module: home, Ident: value},
			})
		}
	}
	for _, op := range doc.Operators {
		home := canonical.ModuleName{Package: doc.Package, Module: op.Module}
		patches = append(patches, &environment.InfixPatch{
			Op:         op.Op,
			Canonical:  canonical.Name{Module: home, Ident: op.Op},
			Assoc:      ast.Assoc(op.Assoc),
			Precedence: op.Precedence,
		})
	}
	return patches, nil
}
