package main

import (
	"log"
	"os"

	lunny "github.com/lunny/log"
	"github.com/urfave/cli/v2"
)

/******************************************************************************

This file is the entry point for the molint command line utility. Initial
argparsing and app definition is done entirely through
"github.com/urfave/cli/v2" for which you can find the docs here:

https://github.com/urfave/cli/blob/master/docs/v2/manual.md

The app is defined via the &cli.App{} struct with Name, Usage, Flags, and
Commands at the top level. The functions the subcommands dispatch to live in
commands.go to keep this file readable.

******************************************************************************/

// main is the entry point for the command line app. We separate it from the
// actual &cli.App to help with testing.
func main() {
	run(os.Args)
}

// run is separated from main and application for debugging's sake.
func run(args []string) {
	app := application()
	err := app.Run(args)
	if err != nil {
		log.Fatal(err)
	}
}

// application defines instances of our app. It's where commands are templated
// and where initial arg parsing occurs.
func application() *cli.App {
	app := &cli.App{
		Name:  "molint",
		Usage: "Compute molecular integrals over Gaussian basis sets.",

		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "v",
				Usage: "Verbose output. Logs debug information such as computed matrices and timings.",
			},
		},

		Before: func(c *cli.Context) error {
			if c.Bool("v") {
				lunny.SetOutputLevel(lunny.Ldebug)
			} else {
				lunny.SetOutputLevel(lunny.Linfo)
			}
			return nil
		},

		Commands: []*cli.Command{
			{
				Name:    "compute",
				Aliases: []string{"c"},
				Usage:   "Compute the core integral matrices of a molecule and write them out as JSON.",

				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "b",
						Usage:    "Basis set JSON file in the Basis Set Exchange schema.",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "m",
						Usage:    "Molecule JSON file, atoms in atomic units.",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "o",
						Value: ".",
						Usage: "Output directory for the computed matrices.",
					},
					&cli.BoolFlag{
						Name:  "eri",
						Usage: "Also compute the electron repulsion tensor. This is the expensive part.",
					},
				},
				Action: func(c *cli.Context) error {
					return computeCommand(c)
				},
			},

			{
				Name:    "hash",
				Aliases: []string{"ha"},
				Usage:   "Print the BLAKE3 fingerprint of a molecular system.",

				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "b",
						Usage:    "Basis set JSON file in the Basis Set Exchange schema.",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "m",
						Usage:    "Molecule JSON file, atoms in atomic units.",
						Required: true,
					},
				},
				Action: func(c *cli.Context) error {
					return hashCommand(c)
				},
			},
		},
	}

	return app
}
