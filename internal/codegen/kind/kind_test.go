package kind

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type enumNames map[string]bool

func (e enumNames) Has(name string) bool { return e[name] }

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"int", "int"},
		{"  int  ", "int"},
		{"const char", "char"},
		{"struct Inventory", "Inventory"},
		{"enum Color", "Color"},
		{"unsigned   int", "unsigned int"},
		{"const\n\tstruct Node", "Node"},
		// qualifiers are removed as substrings, not words
		{"constant_t", "ant_t"},
		{"Instruction", "Inion"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestClassify(t *testing.T) {
	dict := DefaultDictionary()
	enums := enumNames{"Color": true, "int": true}

	tests := []struct {
		name     string
		declared string
		want     Result
	}{
		{"int", "int", Result{Kind: Int, Type: "int"}},
		{"float", "float", Result{Kind: Float, Type: "float"}},
		{"char is string", "char", Result{Kind: String, Type: "char"}},
		{"const char", "const char", Result{Kind: String, Type: "char"}},
		{"bool", "bool", Result{Kind: Bool, Type: "bool"}},
		{"long", "long", Result{Kind: Long, Type: "long"}},
		{"double", "double", Result{Kind: Double, Type: "double"}},
		{"enum from registry", "Color", Result{Kind: Enum, Type: "Color"}},
		{"qualified enum", "enum Color", Result{Kind: Enum, Type: "Color"}},
		{"unknown is struct", "Inventory", Result{Kind: Struct, Type: "Inventory", Child: "InventoryScheme"}},
		{"qualified struct", "struct Inventory", Result{Kind: Struct, Type: "Inventory", Child: "InventoryScheme"}},
		{"multi word unknown", "unsigned int", Result{Kind: Struct, Type: "unsigned int", Child: "unsigned intScheme"}},
		{"dictionary wins over enum", "int", Result{Kind: Int, Type: "int"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.declared, enums, dict))
		})
	}
}

func TestClassifyDeterministic(t *testing.T) {
	dict := DefaultDictionary()
	enums := enumNames{"Color": true}

	first := Classify("Color", enums, dict)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Classify("Color", enums, dict))
	}
}

func TestClassifyNilRegistry(t *testing.T) {
	r := Classify("Color", nil, DefaultDictionary())
	assert.Equal(t, Struct, r.Kind)
	assert.Equal(t, "ColorScheme", r.Child)
}

func TestDictionaryIsImmutable(t *testing.T) {
	entries := map[string]Kind{"int": Int}
	dict := NewDictionary(entries)
	entries["float"] = Float

	_, ok := dict.Lookup("float")
	assert.False(t, ok)
	assert.Equal(t, 1, dict.Len())
	assert.Equal(t, 6, DefaultDictionary().Len())
}

func TestIsPrimitive(t *testing.T) {
	for _, k := range []Kind{Int, Float, String, Bool, Long, Double} {
		assert.True(t, k.IsPrimitive(), k)
	}
	assert.False(t, Enum.IsPrimitive())
	assert.False(t, Struct.IsPrimitive())
}
