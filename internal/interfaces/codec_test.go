package interfaces

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/agrafix/elm-compiler/internal/canonical"
)

func TestCodecRoundTrip(t *testing.T) {
	iface := sampleInterface()
	iface.Aliases["Handler"] = Alias{
		Vars: []string{"msg"},
		Type: &canonical.TLambda{
			Arg: &canonical.TVar{Name: "msg"},
			Result: &canonical.TAlias{
				Name:   canonical.Name{Module: canonical.ModuleName{Package: "acme/util", Module: "Utils"}, Ident: "Point"},
				Actual: &canonical.TRecord{Fields: []canonical.Field{{Name: "x", Type: basicsInt()}}},
			},
		},
	}
	iface.Values["pair"] = &canonical.TTuple{Items: []canonical.Type{basicsInt(), &canonical.TUnit{}}}

	data, err := Encode(iface)
	require.NoError(t, err)

	decoded, err := Decode(data)
	require.NoError(t, err)
	require.Equal(t, iface, decoded)
}

func TestCodecRejectsUnknownExportKind(t *testing.T) {
	_, err := Decode([]byte("exports:\n  foo:\n    kind: gadget\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "export kind")
}

func TestCodecRejectsEmptyTypeNode(t *testing.T) {
	_, err := Decode([]byte("exports: {}\nvalues:\n  broken: {}\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "empty type node")
}
