package canonical

// Type is a fully resolved type: every constructor reference carries
// the canonical name of its defining module.
type Type interface {
	typeNode()
}

// TLambda is a function type.
type TLambda struct {
	Arg    Type
	Result Type
}

func (*TLambda) typeNode() {}

// TVar is a type variable.
type TVar struct {
	Name string
}

func (*TVar) typeNode() {}

// TCon is a resolved reference to a union or builtin type applied to
// arguments.
type TCon struct {
	Name Name
	Args []Type
}

func (*TCon) typeNode() {}

// TRecord is a record type. Extension holds the row variable of an
// extensible record, "" when closed.
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

// TTuple is a tuple type.
type TTuple struct {
	Items []Type
}

func (*TTuple) typeNode() {}

// TUnit is the unit type.
type TUnit struct{}

func (*TUnit) typeNode() {}

// TAlias is a resolved reference to a type alias. Actual is the alias
// body with the type arguments already substituted in, so consumers
// can expand without consulting the defining module again.
type TAlias struct {
	Name   Name
	Args   []Type
	Actual Type
}

func (*TAlias) typeNode() {}

// Substitute replaces type variables by name. Variables missing from
// the substitution are kept as-is.
func Substitute(t Type, subst map[string]Type) Type {
	switch ty := t.(type) {
	case *TVar:
		if repl, ok := subst[ty.Name]; ok {
			return repl
		}
		return ty
	case *TLambda:
		return &TLambda{
			Arg:    Substitute(ty.Arg, subst),
			Result: Substitute(ty.Result, subst),
		}
	case *TCon:
		return &TCon{Name: ty.Name, Args: substituteAll(ty.Args, subst)}
	case *TAlias:
		return &TAlias{
			Name:   ty.Name,
			Args:   substituteAll(ty.Args, subst),
			Actual: Substitute(ty.Actual, subst),
		}
	case *TRecord:
		fields := make([]Field, len(ty.Fields))
		for i, f := range ty.Fields {
			fields[i] = Field{Name: f.Name, Type: Substitute(f.Type, subst)}
		}
		return &TRecord{Fields: fields, Extension: ty.Extension}
	case *TTuple:
		return &TTuple{Items: substituteAll(ty.Items, subst)}
	default:
		return t
	}
}

func substituteAll(ts []Type, subst map[string]Type) []Type {
	if ts == nil {
		return nil
	}
	out := make([]Type, len(ts))
	for i, t := range ts {
		out[i] = Substitute(t, subst)
	}
	return out
}
