package meta

import (
	"github.com/Alia5/CCereal/internal/codegen/kind"
	"github.com/Alia5/CCereal/internal/codegen/scanner"
)

// Metadata holds everything scanned from one run's inputs.
// Shared between the driver, the C emitter and inspect.
type Metadata struct {
	Structs []scanner.StructDecl // discovery order across all files
	Enums   scanner.EnumSet      // built from every input before any classification
	Sources []string             // files that contributed at least one struct, in order
}

// ClassifiedField is a RawField with its Kind resolved.
type ClassifiedField struct {
	Name         string    `json:"name" yaml:"name" toml:"name"`
	DeclaredType string    `json:"declaredType" yaml:"declaredType" toml:"declaredType"`
	IsPointer    bool      `json:"isPointer" yaml:"isPointer" toml:"isPointer"`
	ArraySuffix  string    `json:"arraySuffix,omitempty" yaml:"arraySuffix,omitempty" toml:"arraySuffix,omitempty"`
	Kind         kind.Kind `json:"kind" yaml:"kind" toml:"kind"`
	// Type is the normalized type name, e.g. "char" for "const char".
	Type string `json:"type" yaml:"type" toml:"type"`
	// Child names the referenced descriptor for STRUCT fields, e.g. "InventoryScheme".
	Child string `json:"child,omitempty" yaml:"child,omitempty" toml:"child,omitempty"`
}

// ClassifiedStruct is a StructDecl whose fields have been classified.
type ClassifiedStruct struct {
	Name   string            `json:"name" yaml:"name" toml:"name"`
	Fields []ClassifiedField `json:"fields" yaml:"fields" toml:"fields"`
}

// ClassifyStruct resolves every field of s against the enum registry and dictionary.
func ClassifyStruct(s scanner.StructDecl, enums kind.Registry, dict kind.Dictionary) ClassifiedStruct {
	out := ClassifiedStruct{Name: s.Name, Fields: make([]ClassifiedField, 0, len(s.Fields))}
	for _, f := range s.Fields {
		r := kind.Classify(f.DeclaredType, enums, dict)
		out.Fields = append(out.Fields, ClassifiedField{
			Name:         f.Name,
			DeclaredType: f.DeclaredType,
			IsPointer:    f.IsPointer,
			ArraySuffix:  f.ArraySuffix,
			Kind:         r.Kind,
			Type:         r.Type,
			Child:        r.Child,
		})
	}
	return out
}

// Classified returns all structs with their fields classified.
func (md *Metadata) Classified(dict kind.Dictionary) []ClassifiedStruct {
	out := make([]ClassifiedStruct, 0, len(md.Structs))
	for _, s := range md.Structs {
		out = append(out, ClassifyStruct(s, md.Enums, dict))
	}
	return out
}
