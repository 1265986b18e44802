// Package mkbignore loads gitignore-style exclusion rules for the
// directory walk.
package mkbignore

import (
	"fmt"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
)

// Rules matches root-relative, "/"-separated paths.
type Rules struct {
	gi *ignore.GitIgnore
}

// Load compiles the patterns in the file at path.
func Load(path string) (*Rules, error) {
	gi, err := ignore.CompileIgnoreFile(path)
	if err != nil {
		return nil, fmt.Errorf("parsing ignore file %s: %w", path, err)
	}
	return &Rules{gi: gi}, nil
}

// Compile builds rules from pattern lines.
func Compile(lines ...string) *Rules {
	return &Rules{gi: ignore.CompileIgnoreLines(lines...)}
}

// Ignored reports whether relPath is excluded. Directory paths are also
// tried with a trailing slash so "build/" patterns apply to the directory
// itself.
func (r *Rules) Ignored(relPath string, isDir bool) bool {
	if r == nil || r.gi == nil || relPath == "." {
		return false
	}
	relPath = strings.TrimPrefix(relPath, "./")
	if r.gi.MatchesPath(relPath) {
		return true
	}
	return isDir && r.gi.MatchesPath(relPath+"/")
}
