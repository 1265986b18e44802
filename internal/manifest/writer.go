package manifest

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	libPlatform = "S3E_LIB"
	subproject  = "iwutil"
)

// Source produces the body of a files block and reports the header
// directories it saw.
type Source interface {
	WriteFiles(w io.Writer) (IncludePaths, error)
}

// Options control manifest emission.
type Options struct {
	Invocation string // Command line recorded in the generated comment
	Library    bool   // Emit platform/target directives for a library build
}

// Render writes a complete manifest for basename to w, taking the files
// block body from src.
func Render(w io.Writer, basename string, src Source, opts Options) error {
	fmt.Fprintf(w, "#!/usr/bin/env mkb\n# Automatically generated by '%s'\n", opts.Invocation)

	if opts.Library {
		fmt.Fprintf(w, "\nplatform %s\n", libPlatform)
		if strings.HasPrefix(basename, "lib") {
			fmt.Fprintf(w, "target \"%s\"\n", basename[:3])
		}
	}

	if _, err := io.WriteString(w, "\nfiles\n{\n"); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}

	includes := NewIncludePaths()
	found, err := src.WriteFiles(w)
	if err != nil {
		return err
	}
	includes.Merge(found)

	fmt.Fprintf(w, "}\n\nsubproject %s\n\nincludepath .\n\n\n", subproject)
	for _, inc := range includes.Sorted() {
		fmt.Fprintf(w, "includepath %s\n", inc)
	}
	return nil
}

// Write creates the manifest at t.Path and renders into it. The file is
// never overwritten. If rendering fails the partial file stays on disk.
func (t *Target) Write(src Source, opts Options) (err error) {
	f, err := os.OpenFile(t.Path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if os.IsExist(err) {
		return fmt.Errorf("%w: %s", ErrTargetExists, t.Path)
	}
	if err != nil {
		return fmt.Errorf("creating manifest: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing manifest: %w", cerr)
		}
	}()

	bw := bufio.NewWriter(f)
	renderErr := Render(bw, t.Basename, src, opts)
	if ferr := bw.Flush(); ferr != nil && renderErr == nil {
		return fmt.Errorf("writing manifest: %w", ferr)
	}
	return renderErr
}
