package scanner

import "sort"

// EnumSet is the registry of named enum types seen across all inputs.
type EnumSet map[string]struct{}

// NewEnumSet returns a set holding the given names.
func NewEnumSet(names ...string) EnumSet {
	s := make(EnumSet, len(names))
	for _, n := range names {
		s.Add(n)
	}
	return s
}

func (s EnumSet) Add(name string) { s[name] = struct{}{} }

// Merge adds every name of other to s.
func (s EnumSet) Merge(other EnumSet) {
	for n := range other {
		s[n] = struct{}{}
	}
}

// Has reports whether name is a known enum type.
func (s EnumSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Names returns the registry contents sorted.
func (s EnumSet) Names() []string {
	out := make([]string, 0, len(s))
	for n := range s {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// ScanEnums returns the names of all named enums declared in text.
// Enum members are not recorded, only the existence of the type.
func ScanEnums(text string) EnumSet {
	found := EnumSet{}
	for _, m := range enumPattern.FindAllStringSubmatch(StripComments(text), -1) {
		if name := resolveName(enumPattern, m); name != "" {
			found.Add(name)
		}
	}
	return found
}
