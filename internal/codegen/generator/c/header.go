package cgen

const headerTmpl = `#pragma once
#include "{{.SerializerHeader}}"

{{range .Structs}}extern StructScheme {{schemeName .Name}};
{{end}}`
