package cgen

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"text/template"

	"github.com/Alia5/CCereal/internal/codegen/kind"
	"github.com/Alia5/CCereal/internal/codegen/meta"
)

// DefaultSerializerHeader is the runtime header declaring StructScheme and FieldInfo.
const DefaultSerializerHeader = "serializer.h"

// Options controls where and how the two artifacts are produced.
type Options struct {
	HeaderPath       string // declarations artifact, e.g. ../meta_data/metaData.h
	SourcePath       string // definitions artifact, e.g. ../meta_data/metaData.c
	SerializerHeader string // included by the declarations artifact
	Dictionary       kind.Dictionary
}

// Render produces the declarations and definitions text for md.
// Output depends only on md and opts, so repeated runs are byte-identical.
func Render(md *meta.Metadata, opts Options) (header, source string, err error) {
	if opts.SerializerHeader == "" {
		opts.SerializerHeader = DefaultSerializerHeader
	}
	if opts.Dictionary.Len() == 0 {
		opts.Dictionary = kind.DefaultDictionary()
	}
	view := newFileView(md, opts)

	header, err = execute("header", headerTmpl, view)
	if err != nil {
		return "", "", fmt.Errorf("render header: %w", err)
	}
	source, err = execute("source", sourceTmpl, view)
	if err != nil {
		return "", "", fmt.Errorf("render source: %w", err)
	}
	return header, source, nil
}

// Generate renders md and writes both artifacts, creating parent directories
// as needed. Existing files are overwritten.
func Generate(logger *slog.Logger, md *meta.Metadata, opts Options) error {
	header, source, err := Render(md, opts)
	if err != nil {
		return err
	}

	if err := writeFile(opts.HeaderPath, header); err != nil {
		return err
	}
	logger.Info("Generated header", "file", opts.HeaderPath, "structs", len(md.Structs))

	if err := writeFile(opts.SourcePath, source); err != nil {
		return err
	}
	logger.Info("Generated source", "file", opts.SourcePath, "structs", len(md.Structs))

	return nil
}

func writeFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir for %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func execute(name, text string, data any) (string, error) {
	t, err := template.New(name).Funcs(tplFuncs()).Parse(text)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
