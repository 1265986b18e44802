// Package solution extracts per-project file lists from a legacy IDE
// solution file and the project files it references.
//
// Both formats are scanned line by line. Only two declarations are
// recognized:
//
//	Project("{GUID}") = "Name", "relative\path\to\project-file"
//	    RelativePath="relative\path\to\member"
//
// Every other line is skipped without error; the files are free-form text
// and most of their lines carry nothing the manifest needs.
package solution

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/user/mkbgen/internal/classify"
	"github.com/user/mkbgen/internal/manifest"
)

var (
	projectDecl = regexp.MustCompile(`^Project\("\{[^"]+\}"\) = "([^"]+)", "([^"]+)"`)
	memberDecl  = regexp.MustCompile(`^\s*RelativePath="([^"]+)"`)
)

const maxLine = 1024 * 1024

// Project is one project declaration of a solution.
type Project struct {
	Name string
	Path string // Project file, relative to the solution, "/"-separated
}

// Parser emits a files block body for a solution file.
type Parser struct {
	Path      string
	OnProject func(Project) // Optional, called as each project is found
}

// New returns a Parser for the solution file at slnPath.
func New(slnPath string, onProject func(Project)) *Parser {
	return &Parser{Path: slnPath, OnProject: onProject}
}

// WriteFiles scans the solution and, for each project in declaration
// order, writes that project's members.
func (p *Parser) WriteFiles(w io.Writer) (manifest.IncludePaths, error) {
	includes := manifest.NewIncludePaths()

	abs, err := filepath.Abs(p.Path)
	if err != nil {
		return includes, fmt.Errorf("resolving solution path: %w", err)
	}
	f, err := os.Open(abs)
	if err != nil {
		return includes, fmt.Errorf("opening solution: %w", err)
	}
	defer f.Close()

	slnDir := filepath.Dir(abs)
	sc := newScanner(f)
	for sc.Scan() {
		m := projectDecl.FindStringSubmatch(sc.Text())
		if m == nil {
			continue
		}
		proj := Project{Name: m[1], Path: slashed(m[2])}
		if p.OnProject != nil {
			p.OnProject(proj)
		}
		if err := writeProject(w, slnDir, proj, includes); err != nil {
			return includes, err
		}
	}
	if err := sc.Err(); err != nil {
		return includes, fmt.Errorf("reading solution: %w", err)
	}
	return includes, nil
}

type scanState int

const (
	awaitingFirstFile scanState = iota
	inFiles
)

// writeProject scans one project file. The group header is written on the
// first member so projects without members produce no output.
func writeProject(w io.Writer, slnDir string, proj Project, includes manifest.IncludePaths) error {
	f, err := os.Open(filepath.Join(slnDir, filepath.FromSlash(proj.Path)))
	if err != nil {
		return fmt.Errorf("opening project file for %s: %w", proj.Name, err)
	}
	defer f.Close()

	projDir := path.Dir(proj.Path)
	state := awaitingFirstFile
	prevDir := ""

	sc := newScanner(f)
	for sc.Scan() {
		m := memberDecl.FindStringSubmatch(sc.Text())
		if m == nil {
			continue
		}
		if state == awaitingFirstFile {
			fmt.Fprintf(w, "\n\t[%s]\n", proj.Name)
			state = inFiles
		}

		member := path.Join(projDir, slashed(m[1]))
		dir, name := path.Dir(member), path.Base(member)
		if dir != prevDir {
			fmt.Fprintf(w, "\n\t(%s)\n", dir)
			prevDir = dir
		}
		if _, err := fmt.Fprintf(w, "\t%s\n", name); err != nil {
			return fmt.Errorf("writing project %s: %w", proj.Name, err)
		}

		if classify.Ext(name) == ".h" {
			includes.Add(dir)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading project file for %s: %w", proj.Name, err)
	}
	return nil
}

func newScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	return sc
}

// slashed normalizes Windows separators, which both formats use.
func slashed(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}
