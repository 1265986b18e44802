package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/user/mkbgen/internal/classify"
)

// Ext is the extension of generated manifests.
const Ext = ".mkb"

// ErrTargetExists is returned when the manifest to be written is already on disk.
var ErrTargetExists = errors.New("target mkb already exists")

// Target describes where a manifest is written and what it is generated from.
type Target struct {
	Input    string // Input as given on the command line
	Path     string // Absolute path of the manifest to write
	Basename string // Stem used for library target naming
	Solution bool   // Input is a .sln file
}

// IsSolution reports whether input names a solution file.
func IsSolution(input string) bool {
	return strings.EqualFold(filepath.Ext(input), ".sln")
}

// ResolveTarget computes the manifest path for input. A non-empty basename
// overrides the stem derived from input.
func ResolveTarget(input, basename string) (*Target, error) {
	if input == "" {
		input = "."
	}
	abs, err := filepath.Abs(input)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	stem, _ := classify.SplitExt(filepath.Base(abs))
	if basename != "" {
		stem = basename
	}

	t := &Target{Input: input, Basename: stem, Solution: IsSolution(input)}
	if t.Solution {
		t.Path = abs[:len(abs)-len(filepath.Ext(abs))] + Ext
	} else {
		t.Path = filepath.Join(abs, stem+Ext)
	}
	return t, nil
}

// CheckAbsent fails with ErrTargetExists if the manifest is already present.
func (t *Target) CheckAbsent() error {
	if _, err := os.Lstat(t.Path); err == nil {
		return fmt.Errorf("%w: %s", ErrTargetExists, t.Path)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("checking target: %w", err)
	}
	return nil
}
