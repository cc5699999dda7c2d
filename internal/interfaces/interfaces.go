// Package interfaces models the public surface of an already-compiled
// module: its exported values, unions, aliases and operator fixities.
// Interfaces are produced by the stage that compiles dependencies and
// consumed read-only here; this package never re-derives a signature.
package interfaces

import (
	"github.com/agrafix/elm-compiler/internal/ast"
	"github.com/agrafix/elm-compiler/internal/canonical"
)

// Ctor is one constructor of a union: its name and how many arguments
// it takes.
type Ctor struct {
	Name  string
	Arity int
}

// Union is an exported union type: its type parameters and the
// constructors visible through the export listing.
type Union struct {
	Vars  []string
	Ctors []Ctor
}

// Alias is an exported type alias. Type is already canonical because
// the defining module was compiled before this one.
type Alias struct {
	Vars []string
	Type canonical.Type
}

// Binop is an operator fixity declaration.
type Binop struct {
	Assoc      ast.Assoc
	Precedence int
}

// ExportKind distinguishes what an export entry names.
type ExportKind int

const (
	ExportValue ExportKind = iota
	ExportAlias
	ExportUnion
)

// Export is one entry of a module's export list. Unions carry their
// own constructor listing: open, or an explicit set of names.
type Export struct {
	Kind  ExportKind
	Open  bool     // union: expose every constructor
	Ctors []string // union: explicit constructor names when not open
}

// Interface is a compiled module's declaration surface together with
// its export list. Restrict projects it down to what importers may
// actually see.
type Interface struct {
	Exports map[string]Export
	Values  map[string]canonical.Type // value name -> signature (nil when untyped)
	Unions  map[string]Union
	Aliases map[string]Alias
	Binops  map[string]Binop
}

// Restrict filters an interface down to the entries reachable from
// its export list. Unexported declarations are dropped entirely and a
// union's constructor list is cut to what its listing names. The
// export list itself is kept, which makes restriction idempotent.
func Restrict(iface *Interface) *Interface {
	out := &Interface{
		Exports: iface.Exports,
		Values:  make(map[string]canonical.Type),
		Unions:  make(map[string]Union),
		Aliases: make(map[string]Alias),
		Binops:  iface.Binops,
	}
	for name, export := range iface.Exports {
		switch export.Kind {
		case ExportValue:
			if tipe, ok := iface.Values[name]; ok {
				out.Values[name] = tipe
			}
		case ExportAlias:
			if alias, ok := iface.Aliases[name]; ok {
				out.Aliases[name] = alias
			}
			// A record alias doubles as its constructor function.
			if tipe, ok := iface.Values[name]; ok {
				out.Values[name] = tipe
			}
		case ExportUnion:
			union, ok := iface.Unions[name]
			if !ok {
				continue
			}
			out.Unions[name] = Union{
				Vars:  union.Vars,
				Ctors: exportedCtors(union, export),
			}
		}
	}
	return out
}

// exportedCtors keeps declaration order while filtering to the
// listing's names.
func exportedCtors(union Union, export Export) []Ctor {
	if export.Open {
		return union.Ctors
	}
	listed := make(map[string]bool, len(export.Ctors))
	for _, name := range export.Ctors {
		listed[name] = true
	}
	kept := make([]Ctor, 0, len(export.Ctors))
	for _, ctor := range union.Ctors {
		if listed[ctor.Name] {
			kept = append(kept, ctor)
		}
	}
	return kept
}
