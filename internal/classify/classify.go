// Package classify decides which files belong in an mkb manifest and how
// their names must be written so the mkb tokenizer reads them as one token.
package classify

import "strings"

var sourceExts = map[string]bool{
	".h":   true,
	".cpp": true,
	".hpp": true,
	".c":   true,
	".cc":  true,
	".inl": true,
	".m":   true,
	".mm":  true,
}

var headerExts = map[string]bool{
	".h":   true,
	".hpp": true,
	".inl": true,
}

// Keywords are mkb words that collide with directory names used in a
// "(dir)" declaration. The plural of each is reserved as well.
var Keywords = []string{"define", "test", "file", "subproject", "option"}

// SplitExt splits name into stem and extension. Leading dots belong to the
// stem, so ".h" has no extension.
func SplitExt(name string) (stem, ext string) {
	lead := len(name) - len(strings.TrimLeft(name, "."))
	i := strings.LastIndexByte(name, '.')
	if i < lead {
		return name, ""
	}
	return name[:i], name[i:]
}

// Ext returns the lowercased extension of name.
func Ext(name string) string {
	_, ext := SplitExt(name)
	return strings.ToLower(ext)
}

// IsSource reports whether name has a recognized source or header extension.
func IsSource(name string) bool {
	return sourceExts[Ext(name)]
}

// IsHeader reports whether name is a header or inline file whose directory
// must be added to the include paths.
func IsHeader(name string) bool {
	return headerExts[Ext(name)]
}

// NeedsQuote reports whether the stem of name contains a character outside
// [A-Za-z0-9_-].
func NeedsQuote(name string) bool {
	stem, _ := SplitExt(name)
	for i := 0; i < len(stem); i++ {
		if !isWordByte(stem[i]) {
			return true
		}
	}
	return false
}

// FileToken returns name as it must appear in a files block.
func FileToken(name string) string {
	if NeedsQuote(name) {
		return `"` + name + `"`
	}
	return name
}

// HasKeywordSegment reports whether any "/"-separated segment of dir is an
// mkb keyword or its plural. Only whole segments count.
func HasKeywordSegment(dir string) bool {
	for _, part := range strings.Split(dir, "/") {
		for _, kw := range Keywords {
			if part == kw || part == kw+"s" {
				return true
			}
		}
	}
	return false
}

// DirToken returns dir as it must appear inside a "(dir)" declaration.
func DirToken(dir string) string {
	if HasKeywordSegment(dir) {
		return `"` + dir + `"`
	}
	return dir
}

func isWordByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '_' || c == '-':
		return true
	}
	return false
}
