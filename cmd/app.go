package cmd

import "github.com/urfave/cli/v3"

// NewApp creates the mkbgen CLI command.
func NewApp() *cli.Command {
	return &cli.Command{
		Name:      "mkbgen",
		Usage:     "Create an mkb project file from a source tree or a .sln solution",
		ArgsUsage: "[root] [basename]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "lib",
				Aliases: []string{"l"},
				Usage:   "build a library mkb",
				Sources: cli.EnvVars("MKBGEN_LIB"),
			},
			&cli.StringFlag{
				Name:    "ignore-file",
				Usage:   "gitignore-style file of paths to leave out of a directory walk",
				Sources: cli.EnvVars("MKBGEN_IGNORE_FILE"),
			},
		},
		Action: generateAction,
	}
}
