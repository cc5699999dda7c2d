package ast

// --- Destructuring patterns ---

// Pattern is the left-hand side of a top-level value definition.
// Every variable bound anywhere inside it becomes a top-level name.
type Pattern interface {
	patternNode()
}

// PAnything is the wildcard pattern '_'. It binds nothing.
type PAnything struct{}

func (*PAnything) patternNode() {}

// PVar binds one name, e.g. 'x'.
type PVar struct {
	Name string
}

func (*PVar) patternNode() {}

// PAlias binds a name to a whole sub-pattern, e.g. '(a, b) as pair'.
type PAlias struct {
	Pattern Pattern
	Name    string
}

func (*PAlias) patternNode() {}

// PTuple destructures a tuple, e.g. '(x, y)'.
type PTuple struct {
	Items []Pattern
}

func (*PTuple) patternNode() {}

// PRecord destructures record fields, e.g. '{ x, y }'. Each listed
// field name is bound.
type PRecord struct {
	Fields []string
}

func (*PRecord) patternNode() {}

// PCtor destructures a constructor application, e.g. 'Just x'.
type PCtor struct {
	Name string
	Args []Pattern
}

func (*PCtor) patternNode() {}
