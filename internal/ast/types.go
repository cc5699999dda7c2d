package ast

// --- Source type expressions ---

// Type is a type expression as written in source, before any name has
// been resolved. E.g. Int, List a, (Int, Int) -> Bool, { x : Int }
type Type interface {
	typeNode()
}

// TCon references a named type, possibly qualified and applied to
// arguments, e.g. 'Int', 'Dict.Dict String a'.
type TCon struct {
	Module string // raw qualifier as written, "" when unqualified
	Name   string
	Args   []Type
}

func (*TCon) typeNode() {}

// TVar is a type variable occurrence, e.g. 'a'.
type TVar struct {
	Name string
}

func (*TVar) typeNode() {}

// TLambda is a function type, e.g. Int -> Bool.
type TLambda struct {
	Arg    Type
	Result Type
}

func (*TLambda) typeNode() {}

// TRecord is a record type, e.g. { x : Int } or { r | x : Int }.
// Extension holds the row variable of an extensible record, "" when
// the record is closed.
type TRecord struct {
	Fields    []Field
	Extension string
}

func (*TRecord) typeNode() {}

// Field is one field of a record type.
type Field struct {
	Name string
	Type Type
}

// TTuple is a tuple type, e.g. (Int, Bool).
type TTuple struct {
	Items []Type
}

func (*TTuple) typeNode() {}

// TUnit is the unit type ().
type TUnit struct{}

func (*TUnit) typeNode() {}
