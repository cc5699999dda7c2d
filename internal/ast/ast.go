package ast

// Position is a 1-based line/column location in a source file.
type Position struct {
	Line   int
	Column int
}

// Region is a contiguous span of source text. It is attached to the
// declarations and import entries that can produce diagnostics.
type Region struct {
	Start Position
	End   Position
}

// Assoc is the associativity of an infix operator.
type Assoc string

const (
	AssocLeft  Assoc = "left"
	AssocRight Assoc = "right"
	AssocNon   Assoc = "non"
)

// Module is one parsed, validated, not-yet-canonicalized module.
// Default imports are expected to be injected before this stage, so
// Imports already contains everything the module can see.
type Module struct {
	Package string // origin package, e.g. "elm-lang/core"
	Name    string // dotted module name as written in source, e.g. "Data.Set"
	Imports []*Import
	Values  []*ValueDecl
	Unions  []*UnionDecl
	Aliases []*AliasDecl
	Infixes []*InfixDecl
	Effects Effects
}

// Import is one import statement: a raw module name plus an optional
// alias for qualified access and an optional exposing listing.
type Import struct {
	Name     string   // raw module name, e.g. "List" or "Json.Decode"
	Alias    string   // rename for qualified access, "" if none
	Exposing *Listing // nil when nothing is exposed unqualified
	Region   Region
}

// Listing is an exposing specifier: either open ("(..)") or an
// explicit set of requested names.
type Listing struct {
	Open     bool
	Explicit []Exposed
}

// ExposedKind distinguishes what an explicit exposing entry asks for.
type ExposedKind int

const (
	ExposedValue ExposedKind = iota
	ExposedAlias
	ExposedUnion
)

// Exposed is one entry of an explicit exposing list. For unions it
// carries its own constructor listing, e.g. "Color(Red, Green)".
type Exposed struct {
	Kind   ExposedKind
	Name   string
	Ctors  *CtorListing // only for ExposedUnion
	Region Region
}

// CtorListing requests a union's constructors: open or by name.
type CtorListing struct {
	Open  bool
	Names []string
}

// ValueDecl is a top-level value definition. Only the bound pattern
// matters here; bodies are resolved by a later stage.
type ValueDecl struct {
	Pattern Pattern
	Region  Region
}

// UnionDecl declares a union type, e.g. "type Color = Red | Green | Blue".
type UnionDecl struct {
	Name   string
	Vars   []string
	Ctors  []CtorDecl
	Region Region
}

// CtorDecl is one constructor of a union declaration.
type CtorDecl struct {
	Name  string
	Arity int
}

// AliasDecl declares a type alias, e.g. "type alias Point = { x : Int, y : Int }".
type AliasDecl struct {
	Name   string
	Vars   []string
	Type   Type
	Region Region
}

// InfixDecl is a local fixity declaration for an operator.
type InfixDecl struct {
	Op         string
	Assoc      Assoc
	Precedence int
	Region     Region
}

// EffectsKind tells which flavor of effect declaration a module carries.
type EffectsKind int

const (
	NoEffects EffectsKind = iota
	PortEffects
	ManagerEffects
)

// Effects is a module's effect declaration: nothing, a set of foreign
// ports, or an effect manager. Ports and managers synthesize extra
// top-level bindings that the runtime supplies.
type Effects struct {
	Kind    EffectsKind
	Ports   []Port
	Manager *Manager
}

// Port is one declared foreign port.
type Port struct {
	Name   string
	Region Region
}

// Manager describes an effect-manager declaration and which synthetic
// bindings it requires.
type Manager struct {
	Cmd    bool // manages commands: synthesizes "command"
	Sub    bool // manages subscriptions: synthesizes "subscription"
	Region Region
}
