package scanner

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultMarker is the keyword that opts a struct into table generation.
// serializer.h defines it to nothing so the C compiler never sees it.
const DefaultMarker = "SERIALIZABLE"

// commentPattern matches whichever comment opens first, so a "/*" inside a
// line comment or a "//" inside a block comment is not a comment start.
var commentPattern = regexp.MustCompile(`(?s)//[^\n]*|/\*.*?\*/`)

// enumPattern matches: [typedef] enum [Tag] { ... } [Alias];
var enumPattern = regexp.MustCompile(`(?s)(?:typedef\s+)?enum\s*(?P<tag>\w+)?\s*\{(?P<body>.*?)\}\s*(?P<name>\w+)?;`)

// fieldPattern matches one single-declarator field: <type words> [*]name[array];
var fieldPattern = regexp.MustCompile(`\s*(?P<type>[\w\s]+?)\s+(?P<ptr>\*)?(?P<name>\w+)(?P<array>\[.*?\])?\s*;`)

// structPattern builds the matcher for: [typedef] struct MARKER [Tag] { ... } [Alias];
func structPattern(marker string) *regexp.Regexp {
	return regexp.MustCompile(fmt.Sprintf(
		`(?s)(?:typedef\s+)?struct\s+%s(?:\s+(?P<tag>\w+))?\s*\{(?P<body>.*?)\s*\}\s*(?P<name>\w+)?;`,
		regexp.QuoteMeta(marker),
	))
}

// StripComments blanks out C block and line comments. Each comment becomes a
// single space so tokens on either side stay separated.
func StripComments(text string) string {
	return commentPattern.ReplaceAllString(text, " ")
}

// resolveName applies the alias-else-tag rule shared by enums and structs.
func resolveName(re *regexp.Regexp, m []string) string {
	if name := strings.TrimSpace(m[re.SubexpIndex("name")]); name != "" {
		return name
	}
	return strings.TrimSpace(m[re.SubexpIndex("tag")])
}
