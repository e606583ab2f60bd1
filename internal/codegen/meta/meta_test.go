package meta

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Alia5/CCereal/internal/codegen/kind"
	"github.com/Alia5/CCereal/internal/codegen/scanner"
)

func TestClassified(t *testing.T) {
	md := &Metadata{
		Structs: []scanner.StructDecl{
			{Name: "Item", Fields: []scanner.RawField{
				{DeclaredType: "int", Name: "id"},
				{DeclaredType: "Color", Name: "tint"},
				{DeclaredType: "struct Tag", IsPointer: true, Name: "tag"},
			}},
			{Name: "Tag", Fields: []scanner.RawField{}},
		},
		Enums: scanner.NewEnumSet("Color"),
	}

	got := md.Classified(kind.DefaultDictionary())

	assert.Equal(t, []ClassifiedStruct{
		{Name: "Item", Fields: []ClassifiedField{
			{Name: "id", DeclaredType: "int", Kind: kind.Int, Type: "int"},
			{Name: "tint", DeclaredType: "Color", Kind: kind.Enum, Type: "Color"},
			{Name: "tag", DeclaredType: "struct Tag", IsPointer: true, Kind: kind.Struct, Type: "Tag", Child: "TagScheme"},
		}},
		{Name: "Tag", Fields: []ClassifiedField{}},
	}, got)
}

func TestClassifiedEmpty(t *testing.T) {
	md := &Metadata{Enums: scanner.EnumSet{}}
	assert.Empty(t, md.Classified(kind.DefaultDictionary()))
}
