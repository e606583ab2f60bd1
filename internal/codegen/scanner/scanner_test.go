package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanEnums(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "tag only",
			text: "enum Color { RED, GREEN };",
			want: []string{"Color"},
		},
		{
			name: "typedef alias wins over tag",
			text: "typedef enum ColorTag { RED } Color;",
			want: []string{"Color"},
		},
		{
			name: "typedef anonymous",
			text: "typedef enum\n{\n\tINT,\n\tFLOAT\n} FieldType;",
			want: []string{"FieldType"},
		},
		{
			name: "anonymous enum skipped",
			text: "enum { A, B };",
			want: []string{},
		},
		{
			name: "several enums",
			text: "enum Beta { X };\nenum Alpha { Y };",
			want: []string{"Alpha", "Beta"},
		},
		{
			name: "commented out enums ignored",
			text: "/* enum Hidden { H }; */\n// enum Gone { G };\nenum Seen { S };",
			want: []string{"Seen"},
		},
		{
			name: "no enums",
			text: "int x;\nstruct S { int y; };",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScanEnums(tt.text).Names())
		})
	}
}

func TestEnumSetMerge(t *testing.T) {
	s := NewEnumSet("A")
	s.Merge(NewEnumSet("B", "A"))

	assert.True(t, s.Has("A"))
	assert.True(t, s.Has("B"))
	assert.False(t, s.Has("C"))
	assert.Equal(t, []string{"A", "B"}, s.Names())
}

func TestScanStructs(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		marker string
		want   []StructDecl
	}{
		{
			name: "typedef alias",
			text: "typedef struct SERIALIZABLE {\n\tint id;\n\tColor tint;\n} Item;",
			want: []StructDecl{{
				Name: "Item",
				Fields: []RawField{
					{DeclaredType: "int", Name: "id"},
					{DeclaredType: "Color", Name: "tint"},
				},
			}},
		},
		{
			name: "tag only with pointers and arrays",
			text: "struct SERIALIZABLE Player {\n\tchar *name;\n\tint scores[10];\n\tconst char *title;\n\tstruct Inventory *bag;\n};",
			want: []StructDecl{{
				Name: "Player",
				Fields: []RawField{
					{DeclaredType: "char", IsPointer: true, Name: "name"},
					{DeclaredType: "int", Name: "scores", ArraySuffix: "[10]"},
					{DeclaredType: "const char", IsPointer: true, Name: "title"},
					{DeclaredType: "struct Inventory", IsPointer: true, Name: "bag"},
				},
			}},
		},
		{
			name: "alias wins over tag",
			text: "typedef struct SERIALIZABLE PlayerTag { int id; } Player;",
			want: []StructDecl{{
				Name:   "Player",
				Fields: []RawField{{DeclaredType: "int", Name: "id"}},
			}},
		},
		{
			name: "untagged struct invisible",
			text: "typedef struct { int x; } Plain;\nstruct Other { int y; };",
			want: nil,
		},
		{
			name: "anonymous annotated struct skipped",
			text: "struct SERIALIZABLE { int x; };",
			want: nil,
		},
		{
			name: "multi-declarator line dropped",
			text: "typedef struct SERIALIZABLE {\n\tint a, b;\n\tint ok;\n} Pair;",
			want: []StructDecl{{
				Name:   "Pair",
				Fields: []RawField{{DeclaredType: "int", Name: "ok"}},
			}},
		},
		{
			name: "comments skipped",
			text: "typedef struct SERIALIZABLE {\n\t// the id\n\tint id; /* primary */\n\tfloat hp;\n} Stats;",
			want: []StructDecl{{
				Name: "Stats",
				Fields: []RawField{
					{DeclaredType: "int", Name: "id"},
					{DeclaredType: "float", Name: "hp"},
				},
			}},
		},
		{
			name: "block opener inside line comment",
			text: "// inputs: src/*.h\ntypedef struct SERIALIZABLE { int x; } A;\n/* trailing */\n",
			want: []StructDecl{{
				Name:   "A",
				Fields: []RawField{{DeclaredType: "int", Name: "x"}},
			}},
		},
		{
			name: "empty body",
			text: "typedef struct SERIALIZABLE { } Empty;",
			want: []StructDecl{{Name: "Empty", Fields: []RawField{}}},
		},
		{
			name:   "custom marker",
			text:   "typedef struct REFLECT { double x; } Vec;\ntypedef struct SERIALIZABLE { int y; } Skipped;",
			marker: "REFLECT",
			want: []StructDecl{{
				Name:   "Vec",
				Fields: []RawField{{DeclaredType: "double", Name: "x"}},
			}},
		},
		{
			name: "discovery order kept",
			text: "typedef struct SERIALIZABLE { int b; } B;\ntypedef struct SERIALIZABLE { int a; } A;",
			want: []StructDecl{
				{Name: "B", Fields: []RawField{{DeclaredType: "int", Name: "b"}}},
				{Name: "A", Fields: []RawField{{DeclaredType: "int", Name: "a"}}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScanStructs(tt.text, tt.marker))
		})
	}
}

func TestStripComments(t *testing.T) {
	assert.Equal(t, "int id;", StripComments("int/* x */id;"))
	assert.Equal(t, "a  \nb", StripComments("a // trailing\nb"))
	assert.Equal(t, "x   y", StripComments("x /* multi\nline */ y"))
	assert.Equal(t, " \nint x;  ", StripComments("// see src/*.h\nint x; /* t */"))
	assert.Equal(t, "  c", StripComments("/* a // b */ c"))
}
