package cgen

// Field entries are comma separated with no trailing comma after the last one.
const sourceTmpl = `#include "{{.HeaderBase}}"
#include <stddef.h>
{{range .Includes}}#include "{{.}}"
{{end}}
{{range .Structs}}FieldInfo {{fieldsName .Name}}[] = {
{{range .Fields}}    { .name = "{{.Name}}", .offset = offsetof({{.Owner}}, {{.Name}}), .type = {{.Kind}}, .childScheme = {{childRef .Child}} }{{if not .Last}},{{end}}
{{end}}};

{{end}}{{range .Structs}}StructScheme {{schemeName .Name}} = { .name = "{{.Name}}", .fieldCount = {{len .Fields}}, .fields = {{fieldsName .Name}}, .size = sizeof({{.Name}}) };

{{end}}`
