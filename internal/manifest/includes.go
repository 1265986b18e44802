package manifest

import (
	"path"
	"sort"
	"strings"
)

// IncludePaths is a set of "/"-separated directories searched for headers.
type IncludePaths map[string]struct{}

// NewIncludePaths returns an empty set.
func NewIncludePaths() IncludePaths {
	return make(IncludePaths)
}

// Add records dir, cleaned. Backslashes are treated as separators.
func (s IncludePaths) Add(dir string) {
	if dir == "" {
		dir = "."
	}
	s[path.Clean(strings.ReplaceAll(dir, `\`, "/"))] = struct{}{}
}

// Merge adds every path of other to s.
func (s IncludePaths) Merge(other IncludePaths) {
	for p := range other {
		s[p] = struct{}{}
	}
}

// Sorted returns the paths in lexical order.
func (s IncludePaths) Sorted() []string {
	out := make([]string, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}
