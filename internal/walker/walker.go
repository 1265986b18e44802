// Package walker lists the source files of a directory tree as mkb files
// block entries, one group per directory.
package walker

import (
	"fmt"
	"io"
	"io/fs"
	"path"

	"github.com/user/mkbgen/internal/classify"
	"github.com/user/mkbgen/internal/manifest"
)

// Ignorer excludes root-relative paths from the walk.
type Ignorer interface {
	Ignored(relPath string, isDir bool) bool
}

// Walker emits a files block body for the tree in FS.
type Walker struct {
	FS     fs.FS
	Ignore Ignorer // Optional
}

// New returns a Walker over fsys. ig may be nil.
func New(fsys fs.FS, ig Ignorer) *Walker {
	return &Walker{FS: fsys, Ignore: ig}
}

// WriteFiles walks the tree depth-first, pre-order. Each directory's own
// files are written before any of its subdirectories are visited.
func (wk *Walker) WriteFiles(w io.Writer) (manifest.IncludePaths, error) {
	includes := manifest.NewIncludePaths()
	if err := wk.walk(w, ".", includes); err != nil {
		return includes, err
	}
	return includes, nil
}

func (wk *Walker) walk(w io.Writer, dir string, includes manifest.IncludePaths) error {
	entries, err := fs.ReadDir(wk.FS, dir)
	if err != nil {
		return fmt.Errorf("reading directory %s: %w", dir, err)
	}

	var files, subdirs []string
	for _, e := range entries {
		rel := path.Join(dir, e.Name())
		if wk.ignored(rel, e.IsDir()) {
			continue
		}
		if e.IsDir() {
			subdirs = append(subdirs, rel)
			continue
		}
		if classify.IsSource(e.Name()) {
			files = append(files, e.Name())
		}
	}

	if err := writeGroup(w, dir, files, includes); err != nil {
		return err
	}
	for _, sub := range subdirs {
		if err := wk.walk(w, sub, includes); err != nil {
			return err
		}
	}
	return nil
}

func (wk *Walker) ignored(rel string, isDir bool) bool {
	return wk.Ignore != nil && wk.Ignore.Ignored(rel, isDir)
}

// writeGroup writes one directory group. files are already sorted because
// fs.ReadDir returns entries by name.
func writeGroup(w io.Writer, dir string, files []string, includes manifest.IncludePaths) error {
	if len(files) == 0 {
		return nil
	}
	if dir != "." {
		if _, err := fmt.Fprintf(w, "\t[\"%s\"]\n", dir); err != nil {
			return fmt.Errorf("writing group %s: %w", dir, err)
		}
	}
	fmt.Fprintf(w, "\t(%s)\n", classify.DirToken(dir))
	for _, name := range files {
		fmt.Fprintf(w, "\t%s\n", classify.FileToken(name))
		if classify.IsHeader(name) {
			includes.Add(dir)
		}
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("writing group %s: %w", dir, err)
	}
	return nil
}
