package main

import (
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/bodgit/uohues"
	"github.com/bodgit/uohues/hue"
	"github.com/bodgit/uohues/viewer"
	"github.com/urfave/cli/v2"
)

const defaultDB = "uohues.db"

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(io.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

func decode(file string) ([]hue.Hue, error) {
	hues, err := hue.DecodeFile(file)
	if err != nil {
		return nil, err
	}
	if len(hues) == 0 {
		return nil, uohues.ErrNoHues
	}
	return hues, nil
}

func main() {
	app := cli.NewApp()

	app.Name = "uohues"
	app.Usage = "Ultima Online hue table utility"
	app.Version = "1.0.0"

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"UOHUES_DB"},
			Value:   filepath.Join(cwd, defaultDB),
			Usage:   "path to hue database",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "view",
			Usage:       "Browse a hue table interactively",
			Description: "",
			ArgsUsage:   "FILE",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				hues, err := decode(c.Args().First())
				if err != nil {
					return cli.Exit(err, 1)
				}

				if err := viewer.Run(hues); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "export",
			Usage:       "Export a hue table as CSV",
			Description: "",
			ArgsUsage:   "FILE",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Usage:   "write to `FILE` instead of stdout",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				hues, err := decode(c.Args().First())
				if err != nil {
					return cli.Exit(err, 1)
				}

				w := io.Writer(os.Stdout)
				if output := c.String("output"); output != "" {
					f, err := os.Create(output)
					if err != nil {
						return cli.Exit(err, 1)
					}
					defer f.Close()
					w = f
				}

				if err := hue.WriteCSV(w, hues); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "import",
			Usage:       "Import a hue table into the database",
			Description: "",
			ArgsUsage:   "FILE",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				u, err := uohues.New(c.String("db"), newLogger(c))
				if err != nil {
					return cli.Exit(err, 1)
				}
				defer u.Close()

				if err := u.Import(c.Args().First()); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "match",
			Usage:       "Find the closest hue for each image",
			Description: "Quantizes each image down to a small palette and reports the hue whose gradient covers that palette best.",
			ArgsUsage:   "FILE PATH",
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				if err := uohues.Match(os.Stdout, c.Args().Get(0), c.Args().Get(1), newLogger(c)); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
