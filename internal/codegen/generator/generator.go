package generator

import (
	"log/slog"

	cgen "github.com/Alia5/CCereal/internal/codegen/generator/c"
	"github.com/Alia5/CCereal/internal/codegen/kind"
	"github.com/Alia5/CCereal/internal/codegen/meta"
	"github.com/Alia5/CCereal/internal/codegen/scanner"
	"github.com/Alia5/CCereal/internal/codegen/sources"
)

// Default output locations, relative to the tools/ directory.
const (
	DefaultHeaderPath = "../meta_data/metaData.h"
	DefaultSourcePath = "../meta_data/metaData.c"
)

// Options configures a generator run.
type Options struct {
	Prefix           string // prepended to every input pattern
	Marker           string // keyword tagging structs for generation
	HeaderPath       string
	SourcePath       string
	SerializerHeader string
}

type Generator struct {
	opts   Options
	dict   kind.Dictionary
	logger *slog.Logger
}

func New(opts Options, logger *slog.Logger) *Generator {
	if opts.Marker == "" {
		opts.Marker = scanner.DefaultMarker
	}
	if opts.HeaderPath == "" {
		opts.HeaderPath = DefaultHeaderPath
	}
	if opts.SourcePath == "" {
		opts.SourcePath = DefaultSourcePath
	}
	if opts.SerializerHeader == "" {
		opts.SerializerHeader = cgen.DefaultSerializerHeader
	}
	return &Generator{
		opts:   opts,
		dict:   kind.DefaultDictionary(),
		logger: logger,
	}
}

// Dictionary returns the primitive dictionary used for classification.
func (g *Generator) Dictionary() kind.Dictionary { return g.dict }

// Scan resolves and reads all inputs, then runs two passes: the enum
// registry is built from every file before any struct is extracted, so a
// struct may use an enum declared in a different file.
func (g *Generator) Scan(patterns []string) *meta.Metadata {
	paths := sources.Resolve(g.opts.Prefix, patterns)
	g.logger.Info("Scanning input files", "count", len(paths))

	loaded := sources.Load(g.logger, paths)

	md := &meta.Metadata{Enums: scanner.EnumSet{}}

	for _, src := range loaded {
		md.Enums.Merge(scanner.ScanEnums(src.Text))
	}
	g.logger.Debug("Built enum registry", "enums", md.Enums.Names())

	structs := scanner.NewStructScanner(g.opts.Marker)
	for _, src := range loaded {
		found := structs.Scan(src.Text)
		if len(found) == 0 {
			continue
		}
		g.logger.Info("Found structs", "file", src.Path, "count", len(found))
		md.Structs = append(md.Structs, found...)
		md.Sources = append(md.Sources, src.Path)
	}

	g.checkFields(md)
	return md
}

// Generate scans patterns and writes both artifacts. It reports false, and
// writes nothing, when no annotated struct was found.
func (g *Generator) Generate(patterns []string) (bool, error) {
	md := g.Scan(patterns)
	if len(md.Structs) == 0 {
		g.logger.Info("No structs found, nothing to generate")
		return false, nil
	}

	err := cgen.Generate(g.logger, md, cgen.Options{
		HeaderPath:       g.opts.HeaderPath,
		SourcePath:       g.opts.SourcePath,
		SerializerHeader: g.opts.SerializerHeader,
		Dictionary:       g.dict,
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// checkFields warns about layouts the runtime serializer reads differently
// from how they are declared. The emitted tables are not affected.
func (g *Generator) checkFields(md *meta.Metadata) {
	for _, s := range md.Classified(g.dict) {
		for _, f := range s.Fields {
			switch {
			case f.Kind == kind.Struct && !f.IsPointer:
				g.logger.Warn("Embedded struct field is read as a pointer by the serializer",
					"struct", s.Name, "field", f.Name, "type", f.Type)
			case f.Kind.IsPrimitive() && f.Kind != kind.String && f.IsPointer:
				g.logger.Warn("Pointer field is read as a plain value by the serializer",
					"struct", s.Name, "field", f.Name, "type", f.Type)
			case f.ArraySuffix != "":
				g.logger.Warn("Array field is read as a single value by the serializer",
					"struct", s.Name, "field", f.Name, "array", f.ArraySuffix)
			}
		}
	}
}
