package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/Alia5/CCereal/internal/codegen/generator"
	"github.com/Alia5/CCereal/internal/codegen/kind"
	"github.com/Alia5/CCereal/internal/codegen/meta"

	"github.com/alecthomas/kong"
	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"
)

// Inspect prints the scanned and classified model without writing any artifact.
type Inspect struct {
	Files []string `arg:"" name:"file" help:"C source or header files, or glob patterns"`

	ScanFlags `embed:""`

	Format string `help:"Output format" enum:"json,yaml,toml" default:"yaml"`
	Output string `help:"Write to this file instead of stdout"`
}

// Report is the document printed by inspect.
type Report struct {
	Enums   []string                `json:"enums" yaml:"enums" toml:"enums"`
	Sources []string                `json:"sources" yaml:"sources" toml:"sources"`
	Structs []meta.ClassifiedStruct `json:"structs" yaml:"structs" toml:"structs"`
}

// NewReport builds the inspect document for md.
func NewReport(md *meta.Metadata, dict kind.Dictionary) Report {
	return Report{
		Enums:   md.Enums.Names(),
		Sources: append([]string{}, md.Sources...),
		Structs: md.Classified(dict),
	}
}

// Marshal encodes r in the given format.
func (r Report) Marshal(format string) ([]byte, error) {
	switch normalizeFormat(format) {
	case "json":
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case "yaml":
		return yaml.Marshal(r)
	case "toml":
		return toml.Marshal(r)
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// Run is called by Kong when the inspect command is executed.
func (c *Inspect) Run(ctx *kong.Context, logger *slog.Logger) error {
	gen := generator.New(generator.Options{Prefix: c.Prefix, Marker: c.Marker}, logger)
	md := gen.Scan(c.Files)

	data, err := NewReport(md, gen.Dictionary()).Marshal(c.Format)
	if err != nil {
		return err
	}

	if c.Output == "" {
		_, err = ctx.Stdout.Write(data)
		return err
	}
	return writeReport(c.Output, data)
}

// writeReport writes data to path and reports a failed close when the write
// itself succeeded.
func writeReport(path string, data []byte) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	if _, err = f.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
