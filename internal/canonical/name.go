// Package canonical defines the fully-qualified names and resolved
// types produced by name canonicalization. A canonical name is the
// permanent identity of a symbol: once assigned it never changes and
// is unambiguous across the whole program.
package canonical

// ModuleName identifies a module globally: the package it ships in
// plus its dotted module path within that package.
type ModuleName struct {
	Package string // e.g. "elm-lang/core"
	Module  string // e.g. "Json.Decode"
}

func (m ModuleName) String() string {
	if m.Package == "" {
		return m.Module
	}
	return m.Package + "/" + m.Module
}

// Name is a fully-qualified symbol: its defining module plus the
// short name it was declared under.
type Name struct {
	Module ModuleName
	Ident  string
}

func (n Name) String() string {
	return n.Module.String() + "." + n.Ident
}
