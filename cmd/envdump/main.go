// envdump builds the canonical environment of one module described in
// a yaml scene file and prints every namespace, sorted. It exists for
// debugging import resolution against a populated interface store.
//
// Usage:
//
//	envdump -scene module.yaml -store interfaces.db
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/agrafix/elm-compiler/internal/ast"
	"github.com/agrafix/elm-compiler/internal/builtins"
	"github.com/agrafix/elm-compiler/internal/canonical"
	"github.com/agrafix/elm-compiler/internal/diagnostics"
	"github.com/agrafix/elm-compiler/internal/environment"
	"github.com/agrafix/elm-compiler/internal/interfaces"
)

type scene struct {
	Package string        `yaml:"package"`
	Module  string        `yaml:"module"`
	Imports []sceneImport `yaml:"imports"`
}

type sceneImport struct {
	Name     string   `yaml:"name"`
	Alias    string   `yaml:"alias,omitempty"`
	Open     bool     `yaml:"open,omitempty"`
	Exposing []string `yaml:"exposing,omitempty"`
}

func main() {
	scenePath := flag.String("scene", "", "yaml file describing the module to canonicalize")
	storePath := flag.String("store", "interfaces.db", "interface store to resolve imports against")
	flag.Parse()

	if *scenePath == "" {
		fmt.Fprintln(os.Stderr, "envdump: -scene is required")
		os.Exit(2)
	}
	if err := run(*scenePath, *storePath); err != nil {
		reporter := diagnostics.NewReporter(os.Stderr)
		if diag, ok := err.(diagnostics.Diagnostic); ok {
			reporter.Report(*scenePath, diag)
		} else {
			fmt.Fprintf(os.Stderr, "envdump: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(scenePath, storePath string) error {
	data, err := os.ReadFile(scenePath)
	if err != nil {
		return err
	}
	var sc scene
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return fmt.Errorf("parse scene: %w", err)
	}

	store, err := interfaces.OpenStore(storePath)
	if err != nil {
		return err
	}
	defer store.Close()

	ifaces, err := store.LoadAll()
	if err != nil {
		return err
	}
	importDict := make(map[string]canonical.ModuleName, len(ifaces))
	for name := range ifaces {
		importDict[name.Module] = name
	}

	builtin, err := builtins.Patches()
	if err != nil {
		return err
	}

	env, err := environment.Build(importDict, ifaces, builtin, sceneModule(&sc))
	if err != nil {
		return err
	}
	dump(env)
	return nil
}

func sceneModule(sc *scene) *ast.Module {
	module := &ast.Module{Package: sc.Package, Name: sc.Module}
	for _, imp := range sc.Imports {
		var listing *ast.Listing
		switch {
		case imp.Open:
			listing = &ast.Listing{Open: true}
		case len(imp.Exposing) > 0:
			listing = &ast.Listing{}
			for _, name := range imp.Exposing {
				listing.Explicit = append(listing.Explicit, ast.Exposed{
					Kind: ast.ExposedValue,
					Name: name,
				})
			}
		}
		module.Imports = append(module.Imports, &ast.Import{
			Name:     imp.Name,
			Alias:    imp.Alias,
			Exposing: listing,
		})
	}
	return module
}

func dump(env *environment.Env) {
	fmt.Printf("environment of %s\n", env.Home)

	section("values", env.Values, func(names []canonical.Name) string {
		return joinNames(names)
	})
	section("types", env.Unions, func(names []canonical.Name) string {
		return joinNames(names)
	})
	section("aliases", env.Aliases, func(infos []environment.AliasInfo) string {
		out := ""
		for i, info := range infos {
			if i > 0 {
				out += ", "
			}
			out += info.Name.String()
		}
		return out
	})
	section("patterns", env.Patterns, func(infos []environment.PatternInfo) string {
		out := ""
		for i, info := range infos {
			if i > 0 {
				out += ", "
			}
			out += fmt.Sprintf("%s/%d", info.Name, info.Arity)
		}
		return out
	})
	section("operators", env.Infixes, func(infos []environment.InfixInfo) string {
		out := ""
		for i, info := range infos {
			if i > 0 {
				out += ", "
			}
			out += fmt.Sprintf("%s (%s %d)", info.Name, info.Assoc, info.Precedence)
		}
		return out
	})
}

func section[V any](title string, table map[string]V, render func(V) string) {
	if len(table) == 0 {
		return
	}
	fmt.Printf("\n%s:\n", title)
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %-24s %s\n", name, render(table[name]))
	}
}

func joinNames(names []canonical.Name) string {
	out := ""
	for i, name := range names {
		if i > 0 {
			out += ", "
		}
		out += name.String()
	}
	return out
}
