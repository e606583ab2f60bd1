package scanner

import "regexp"

// RawField is a field as written in the struct body, before classification.
type RawField struct {
	DeclaredType string `json:"declaredType" yaml:"declaredType" toml:"declaredType"` // type words preceding the name, e.g. "const char"
	IsPointer    bool   `json:"isPointer" yaml:"isPointer" toml:"isPointer"`
	Name         string `json:"name" yaml:"name" toml:"name"`
	ArraySuffix  string `json:"arraySuffix,omitempty" yaml:"arraySuffix,omitempty" toml:"arraySuffix,omitempty"` // e.g. "[16]"
}

// StructDecl is an annotated struct and its fields in declaration order.
type StructDecl struct {
	Name   string     `json:"name" yaml:"name" toml:"name"`
	Fields []RawField `json:"fields" yaml:"fields" toml:"fields"`
}

// StructScanner extracts structs tagged with a marker keyword.
type StructScanner struct {
	pattern *regexp.Regexp
}

// NewStructScanner returns a scanner for structs tagged with marker.
// An empty marker selects DefaultMarker.
func NewStructScanner(marker string) *StructScanner {
	if marker == "" {
		marker = DefaultMarker
	}
	return &StructScanner{pattern: structPattern(marker)}
}

// ScanStructs is a convenience wrapper around NewStructScanner(marker).Scan.
func ScanStructs(text, marker string) []StructDecl {
	return NewStructScanner(marker).Scan(text)
}

// Scan returns the tagged structs in text in the order they appear.
// Structs with neither a tag nor a typedef alias are skipped.
func (s *StructScanner) Scan(text string) []StructDecl {
	var decls []StructDecl

	bodyIdx := s.pattern.SubexpIndex("body")
	for _, m := range s.pattern.FindAllStringSubmatch(StripComments(text), -1) {
		name := resolveName(s.pattern, m)
		if name == "" {
			continue
		}
		decls = append(decls, StructDecl{
			Name:   name,
			Fields: parseFields(m[bodyIdx]),
		})
	}

	return decls
}

// parseFields reads single-declarator fields from a struct body. Anything
// else (nested braces, multi-declarator lines) simply does not match.
func parseFields(body string) []RawField {
	fields := []RawField{}

	typeIdx := fieldPattern.SubexpIndex("type")
	ptrIdx := fieldPattern.SubexpIndex("ptr")
	nameIdx := fieldPattern.SubexpIndex("name")
	arrayIdx := fieldPattern.SubexpIndex("array")

	for _, m := range fieldPattern.FindAllStringSubmatch(body, -1) {
		if m[nameIdx] == "" {
			continue
		}
		fields = append(fields, RawField{
			DeclaredType: m[typeIdx],
			IsPointer:    m[ptrIdx] != "",
			Name:         m[nameIdx],
			ArraySuffix:  m[arrayIdx],
		})
	}

	return fields
}
