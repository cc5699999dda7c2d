package interfaces

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/agrafix/elm-compiler/internal/ast"
	"github.com/agrafix/elm-compiler/internal/canonical"
)

// The yaml codec is how interfaces travel through the store. Types are
// a sum, so each one is encoded as a node with exactly one of the
// variant fields set.

type ifaceDoc struct {
	Exports map[string]exportDoc `yaml:"exports"`
	Values  map[string]*typeDoc  `yaml:"values,omitempty"`
	Unions  map[string]unionDoc  `yaml:"unions,omitempty"`
	Aliases map[string]aliasDoc  `yaml:"aliases,omitempty"`
	Binops  map[string]binopDoc  `yaml:"binops,omitempty"`
}

type exportDoc struct {
	Kind  string   `yaml:"kind"` // value | alias | union
	Open  bool     `yaml:"open,omitempty"`
	Ctors []string `yaml:"ctors,omitempty"`
}

type unionDoc struct {
	Vars  []string  `yaml:"vars,omitempty"`
	Ctors []ctorDoc `yaml:"ctors"`
}

type ctorDoc struct {
	Name  string `yaml:"name"`
	Arity int    `yaml:"arity,omitempty"`
}

type aliasDoc struct {
	Vars []string `yaml:"vars,omitempty"`
	Type *typeDoc `yaml:"type"`
}

type binopDoc struct {
	Assoc      string `yaml:"assoc"`
	Precedence int    `yaml:"precedence"`
}

type nameDoc struct {
	Package string `yaml:"package"`
	Module  string `yaml:"module"`
	Ident   string `yaml:"ident"`
}

type typeDoc struct {
	Var    string     `yaml:"var,omitempty"`
	Con    *conDoc    `yaml:"con,omitempty"`
	Fn     *fnDoc     `yaml:"fn,omitempty"`
	Record *recordDoc `yaml:"record,omitempty"`
	Tuple  []*typeDoc `yaml:"tuple,omitempty"`
	Unit   bool       `yaml:"unit,omitempty"`
	Alias  *aliasRef  `yaml:"alias,omitempty"`
}

type conDoc struct {
	Name nameDoc    `yaml:"name"`
	Args []*typeDoc `yaml:"args,omitempty"`
}

type fnDoc struct {
	Arg    *typeDoc `yaml:"arg"`
	Result *typeDoc `yaml:"result"`
}

type recordDoc struct {
	Fields    []fieldDoc `yaml:"fields"`
	Extension string     `yaml:"extension,omitempty"`
}

type fieldDoc struct {
	Name string   `yaml:"name"`
	Type *typeDoc `yaml:"type"`
}

type aliasRef struct {
	Name   nameDoc    `yaml:"name"`
	Args   []*typeDoc `yaml:"args,omitempty"`
	Actual *typeDoc   `yaml:"actual"`
}

// Encode serializes an interface for storage.
func Encode(iface *Interface) ([]byte, error) {
	doc := ifaceDoc{
		Exports: make(map[string]exportDoc, len(iface.Exports)),
		Values:  make(map[string]*typeDoc, len(iface.Values)),
		Unions:  make(map[string]unionDoc, len(iface.Unions)),
		Aliases: make(map[string]aliasDoc, len(iface.Aliases)),
		Binops:  make(map[string]binopDoc, len(iface.Binops)),
	}
	for name, export := range iface.Exports {
		doc.Exports[name] = exportDoc{
			Kind:  exportKindName(export.Kind),
			Open:  export.Open,
			Ctors: export.Ctors,
		}
	}
	for name, tipe := range iface.Values {
		doc.Values[name] = encodeType(tipe)
	}
	for name, union := range iface.Unions {
		ctors := make([]ctorDoc, len(union.Ctors))
		for i, ctor := range union.Ctors {
			ctors[i] = ctorDoc{Name: ctor.Name, Arity: ctor.Arity}
		}
		doc.Unions[name] = unionDoc{Vars: union.Vars, Ctors: ctors}
	}
	for name, alias := range iface.Aliases {
		doc.Aliases[name] = aliasDoc{Vars: alias.Vars, Type: encodeType(alias.Type)}
	}
	for op, binop := range iface.Binops {
		doc.Binops[op] = binopDoc{Assoc: string(binop.Assoc), Precedence: binop.Precedence}
	}
	return yaml.Marshal(&doc)
}

// Decode is the inverse of Encode.
func Decode(data []byte) (*Interface, error) {
	var doc ifaceDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode interface: %w", err)
	}
	iface := &Interface{
		Exports: make(map[string]Export, len(doc.Exports)),
		Values:  make(map[string]canonical.Type, len(doc.Values)),
		Unions:  make(map[string]Union, len(doc.Unions)),
		Aliases: make(map[string]Alias, len(doc.Aliases)),
		Binops:  make(map[string]Binop, len(doc.Binops)),
	}
	for name, export := range doc.Exports {
		kind, err := exportKindFromName(export.Kind)
		if err != nil {
			return nil, err
		}
		iface.Exports[name] = Export{Kind: kind, Open: export.Open, Ctors: export.Ctors}
	}
	for name, tipe := range doc.Values {
		decoded, err := decodeType(tipe)
		if err != nil {
			return nil, err
		}
		iface.Values[name] = decoded
	}
	for name, union := range doc.Unions {
		ctors := make([]Ctor, len(union.Ctors))
		for i, ctor := range union.Ctors {
			ctors[i] = Ctor{Name: ctor.Name, Arity: ctor.Arity}
		}
		iface.Unions[name] = Union{Vars: union.Vars, Ctors: ctors}
	}
	for name, alias := range doc.Aliases {
		decoded, err := decodeType(alias.Type)
		if err != nil {
			return nil, err
		}
		iface.Aliases[name] = Alias{Vars: alias.Vars, Type: decoded}
	}
	for op, binop := range doc.Binops {
		iface.Binops[op] = Binop{Assoc: ast.Assoc(binop.Assoc), Precedence: binop.Precedence}
	}
	return iface, nil
}

func exportKindName(kind ExportKind) string {
	switch kind {
	case ExportAlias:
		return "alias"
	case ExportUnion:
		return "union"
	default:
		return "value"
	}
}

func exportKindFromName(name string) (ExportKind, error) {
	switch name {
	case "value":
		return ExportValue, nil
	case "alias":
		return ExportAlias, nil
	case "union":
		return ExportUnion, nil
	}
	return 0, fmt.Errorf("decode interface: unknown export kind %q", name)
}

func encodeType(t canonical.Type) *typeDoc {
	if t == nil {
		return nil
	}
	switch ty := t.(type) {
	case *canonical.TVar:
		return &typeDoc{Var: ty.Name}
	case *canonical.TCon:
		return &typeDoc{Con: &conDoc{Name: encodeName(ty.Name), Args: encodeTypes(ty.Args)}}
	case *canonical.TLambda:
		return &typeDoc{Fn: &fnDoc{Arg: encodeType(ty.Arg), Result: encodeType(ty.Result)}}
	case *canonical.TRecord:
		fields := make([]fieldDoc, len(ty.Fields))
		for i, f := range ty.Fields {
			fields[i] = fieldDoc{Name: f.Name, Type: encodeType(f.Type)}
		}
		return &typeDoc{Record: &recordDoc{Fields: fields, Extension: ty.Extension}}
	case *canonical.TTuple:
		return &typeDoc{Tuple: encodeTypes(ty.Items)}
	case *canonical.TUnit:
		return &typeDoc{Unit: true}
	case *canonical.TAlias:
		return &typeDoc{Alias: &aliasRef{
			Name:   encodeName(ty.Name),
			Args:   encodeTypes(ty.Args),
			Actual: encodeType(ty.Actual),
		}}
	default:
		panic(fmt.Sprintf("encode interface: unhandled type %T", t))
	}
}

func encodeTypes(ts []canonical.Type) []*typeDoc {
	if len(ts) == 0 {
		return nil
	}
	out := make([]*typeDoc, len(ts))
	for i, t := range ts {
		out[i] = encodeType(t)
	}
	return out
}

func encodeName(name canonical.Name) nameDoc {
	return nameDoc{Package: name.Module.Package, Module: name.Module.Module, Ident: name.Ident}
}

func decodeName(doc nameDoc) canonical.Name {
	return canonical.Name{Module: canonical.ModuleName{Package: doc.Package, Module: doc.Module}, Ident: doc.Ident}
}

func decodeType(doc *typeDoc) (canonical.Type, error) {
	if doc == nil {
		return nil, nil
	}
	switch {
	case doc.Var != "":
		return &canonical.TVar{Name: doc.Var}, nil
	case doc.Con != nil:
		args, err := decodeTypes(doc.Con.Args)
		if err != nil {
			return nil, err
		}
		return &canonical.TCon{Name: decodeName(doc.Con.Name), Args: args}, nil
	case doc.Fn != nil:
		arg, err := decodeType(doc.Fn.Arg)
		if err != nil {
			return nil, err
		}
		result, err := decodeType(doc.Fn.Result)
		if err != nil {
			return nil, err
		}
		return &canonical.TLambda{Arg: arg, Result: result}, nil
	case doc.Record != nil:
		fields := make([]canonical.Field, len(doc.Record.Fields))
		for i, f := range doc.Record.Fields {
			tipe, err := decodeType(f.Type)
			if err != nil {
				return nil, err
			}
			fields[i] = canonical.Field{Name: f.Name, Type: tipe}
		}
		return &canonical.TRecord{Fields: fields, Extension: doc.Record.Extension}, nil
	case doc.Tuple != nil:
		items, err := decodeTypes(doc.Tuple)
		if err != nil {
			return nil, err
		}
		return &canonical.TTuple{Items: items}, nil
	case doc.Unit:
		return &canonical.TUnit{}, nil
	case doc.Alias != nil:
		args, err := decodeTypes(doc.Alias.Args)
		if err != nil {
			return nil, err
		}
		actual, err := decodeType(doc.Alias.Actual)
		if err != nil {
			return nil, err
		}
		return &canonical.TAlias{Name: decodeName(doc.Alias.Name), Args: args, Actual: actual}, nil
	}
	return nil, fmt.Errorf("decode interface: empty type node")
}

func decodeTypes(docs []*typeDoc) ([]canonical.Type, error) {
	if len(docs) == 0 {
		return nil, nil
	}
	out := make([]canonical.Type, len(docs))
	for i, doc := range docs {
		decoded, err := decodeType(doc)
		if err != nil {
			return nil, err
		}
		out[i] = decoded
	}
	return out, nil
}

// SortedNames returns a map's keys in lexical order. Patch builders
// and suggestion pools iterate interfaces through this so output is
// reproducible run to run.
func SortedNames[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
