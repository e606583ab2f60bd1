package cgen

import (
	"path/filepath"
	"strings"
	"text/template"

	"github.com/Alia5/CCereal/internal/codegen/kind"
	"github.com/Alia5/CCereal/internal/codegen/meta"
)

type fileView struct {
	SerializerHeader string
	HeaderBase       string
	Includes         []string
	Structs          []structView
}

type structView struct {
	Name   string
	Fields []fieldView
}

type fieldView struct {
	Owner string
	Name  string
	Kind  kind.Kind
	Child string
	Last  bool
}

func tplFuncs() template.FuncMap {
	return template.FuncMap{
		"schemeName": func(name string) string { return name + kind.SchemeSuffix },
		"fieldsName": func(name string) string { return name + kind.FieldsSuffix },
		"childRef":   childRef,
	}
}

// childRef renders the childScheme initializer.
func childRef(child string) string {
	if child == "" {
		return "NULL"
	}
	return "&" + child
}

// includePath normalizes Windows separators so the generated source
// compiles on every host.
func includePath(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}

func newFileView(md *meta.Metadata, opts Options) fileView {
	view := fileView{
		SerializerHeader: opts.SerializerHeader,
		HeaderBase:       filepath.Base(includePath(opts.HeaderPath)),
	}
	for _, src := range md.Sources {
		view.Includes = append(view.Includes, includePath(src))
	}

	for _, s := range md.Classified(opts.Dictionary) {
		sv := structView{Name: s.Name}
		for i, f := range s.Fields {
			sv.Fields = append(sv.Fields, fieldView{
				Owner: s.Name,
				Name:  f.Name,
				Kind:  f.Kind,
				Child: f.Child,
				Last:  i == len(s.Fields)-1,
			})
		}
		view.Structs = append(view.Structs, sv)
	}
	return view
}
