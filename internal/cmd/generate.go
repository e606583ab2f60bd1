package cmd

import (
	"log/slog"

	"github.com/Alia5/CCereal/internal/codegen/generator"

	"github.com/alecthomas/kong"
)

// ScanFlags are shared by every command that reads C sources.
type ScanFlags struct {
	Prefix string `help:"Prefix prepended to every input path or glob pattern" default:"../../" env:"METAGEN_PREFIX"`
	Marker string `help:"Keyword that opts a struct into table generation" default:"SERIALIZABLE" env:"METAGEN_MARKER"`
}

// Generate writes the StructScheme declarations and definitions for all
// annotated structs found in the inputs.
type Generate struct {
	Files []string `arg:"" optional:"" name:"file" help:"C source or header files, or glob patterns"`

	ScanFlags `embed:""`

	Header           string `help:"Declarations artifact (metaData.h)" default:"../meta_data/metaData.h" env:"METAGEN_HEADER"`
	Source           string `help:"Definitions artifact (metaData.c)" default:"../meta_data/metaData.c" env:"METAGEN_SOURCE"`
	SerializerHeader string `name:"serializer-header" help:"Runtime header included by the declarations artifact" default:"serializer.h" env:"METAGEN_SERIALIZER_HEADER"`
}

func (c *Generate) options() generator.Options {
	return generator.Options{
		Prefix:           c.Prefix,
		Marker:           c.Marker,
		HeaderPath:       c.Header,
		SourcePath:       c.Source,
		SerializerHeader: c.SerializerHeader,
	}
}

// Run is called by Kong when the generate command is executed.
func (c *Generate) Run(ctx *kong.Context, logger *slog.Logger) error {
	if len(c.Files) == 0 {
		return ctx.PrintUsage(false)
	}

	_, err := generator.New(c.options(), logger).Generate(c.Files)
	return err
}
