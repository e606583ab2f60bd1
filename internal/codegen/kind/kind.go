// Package kind classifies C field types into the FieldType tags understood
// by the CCereal runtime serializer.
package kind

import "strings"

// Kind is a FieldType enumerator name as declared in serializer.h.
type Kind string

const (
	Int    Kind = "INT"
	Float  Kind = "FLOAT"
	String Kind = "STRING"
	Struct Kind = "STRUCT"
	Bool   Kind = "BOOL"
	Long   Kind = "LONG"
	Double Kind = "DOUBLE"
	Enum   Kind = "ENUM"
)

// SchemeSuffix is appended to a struct name to form its descriptor symbol.
const SchemeSuffix = "Scheme"

// FieldsSuffix is appended to a struct name to form its field table symbol.
const FieldsSuffix = "Fields"

// Dictionary maps canonical primitive spellings to their Kind.
// It is immutable once built.
type Dictionary struct {
	m map[string]Kind
}

// NewDictionary copies entries into a new Dictionary.
func NewDictionary(entries map[string]Kind) Dictionary {
	m := make(map[string]Kind, len(entries))
	for k, v := range entries {
		m[k] = v
	}
	return Dictionary{m: m}
}

// DefaultDictionary returns the primitives supported by serializer.c.
func DefaultDictionary() Dictionary {
	return NewDictionary(map[string]Kind{
		"int":    Int,
		"float":  Float,
		"char":   String,
		"bool":   Bool,
		"long":   Long,
		"double": Double,
	})
}

// Lookup returns the Kind registered for a normalized type name.
func (d Dictionary) Lookup(typeName string) (Kind, bool) {
	k, ok := d.m[typeName]
	return k, ok
}

// Len returns the number of primitive entries.
func (d Dictionary) Len() int { return len(d.m) }

// Registry reports whether a type name is a known enum.
type Registry interface {
	Has(name string) bool
}

// Result is the outcome of classifying one declared field type.
type Result struct {
	Kind Kind
	// Type is the normalized type name the decision was made on.
	Type string
	// Child is the descriptor symbol of the referenced struct, empty unless Kind is Struct.
	Child string
}

// qualifiers are removed from declared types before lookup. Removal is by
// substring, so "constant" loses its "const" too.
var qualifiers = []string{"struct", "enum", "const"}

// Normalize strips qualifiers and collapses whitespace in a declared type.
func Normalize(declared string) string {
	for _, q := range qualifiers {
		declared = strings.ReplaceAll(declared, q, "")
	}
	return strings.Join(strings.Fields(declared), " ")
}

// Classify decides the Kind of a declared field type. Primitives win over
// enums, and anything unknown is assumed to be a nested struct.
func Classify(declared string, enums Registry, dict Dictionary) Result {
	typeName := Normalize(declared)

	if k, ok := dict.Lookup(typeName); ok {
		return Result{Kind: k, Type: typeName}
	}
	if enums != nil && enums.Has(typeName) {
		return Result{Kind: Enum, Type: typeName}
	}
	return Result{Kind: Struct, Type: typeName, Child: typeName + SchemeSuffix}
}

// IsPrimitive reports whether k is a dictionary kind rather than ENUM or STRUCT.
func (k Kind) IsPrimitive() bool {
	return k != Enum && k != Struct
}
