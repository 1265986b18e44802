package cmd

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v3"

	"github.com/user/mkbgen/internal/manifest"
	"github.com/user/mkbgen/internal/mkbignore"
	"github.com/user/mkbgen/internal/solution"
	"github.com/user/mkbgen/internal/walker"
)

// invocation is the command line recorded in generated manifests.
var invocation = func() string { return strings.Join(os.Args, " ") }

func generateAction(ctx context.Context, cmd *cli.Command) error {
	pterm.DefaultBasicText.Println("MKB Project Creator")

	// Arguments past the basename are ignored.
	args := cmd.Args()
	target, err := manifest.ResolveTarget(args.Get(0), args.Get(1))
	if err != nil {
		return err
	}
	if err := target.CheckAbsent(); err != nil {
		return err
	}

	src, err := newSource(target, cmd.String("ignore-file"))
	if err != nil {
		return err
	}

	pterm.Info.Printfln("Writing mkb file: %s", target.Path)

	opts := manifest.Options{
		Invocation: invocation(),
		Library:    cmd.Bool("lib"),
	}
	if err := target.Write(src, opts); err != nil {
		return err
	}
	return manifest.MarkExecutable(target.Path)
}

// newSource picks the solution parser for .sln input and the directory
// walker for anything else.
func newSource(target *manifest.Target, ignoreFile string) (manifest.Source, error) {
	if target.Solution {
		return solution.New(target.Input, func(p solution.Project) {
			pterm.Info.Printfln("Project: %s in %s", p.Name, filepath.FromSlash(p.Path))
		}), nil
	}

	fsys := os.DirFS(filepath.Dir(target.Path))
	if ignoreFile == "" {
		return walker.New(fsys, nil), nil
	}
	rules, err := mkbignore.Load(ignoreFile)
	if err != nil {
		return nil, err
	}
	return walker.New(fsys, rules), nil
}
