package main

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/woodcut/stamp/gen"
	"github.com/woodcut/stamp/mono"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newGenerator(c *cli.Context) (*gen.Generator, func(), error) {
	logger := log.New(io.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}

	var cache *gen.Cache
	cleanup := func() {}
	if file := c.String("cache"); file != "" {
		var err error
		if cache, err = gen.OpenCache(file); err != nil {
			return nil, nil, err
		}
		cleanup = func() { cache.Close() }
	}

	return gen.New(cache, logger), cleanup, nil
}

// parseScale parses the WxH form of the scale flag, rejecting anything
// beyond two positive dimensions.
func parseScale(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(s, "x")
	w, werr := strconv.Atoi(ws)
	h, herr := strconv.Atoi(hs)
	if !ok || werr != nil || herr != nil || w < 1 || h < 1 {
		return 0, 0, fmt.Errorf("invalid scale %q", s)
	}
	return w, h, nil
}

func parseOptions(c *cli.Context) (gen.Options, error) {
	mode, err := gen.ParseMode(c.String("mode"))
	if err != nil {
		return gen.Options{}, err
	}

	opts := gen.Options{
		Mode: mode,
	}

	if s := c.String("scale"); s != "" {
		if opts.ScaleW, opts.ScaleH, err = parseScale(s); err != nil {
			return gen.Options{}, err
		}
	}

	return opts, nil
}

// packageName picks the emitted package name: the flag if given, else the
// directory the output lands in, which is the working directory when
// writing to stdout. go:generate runs in the package directory, so the
// default is right for the common case.
func packageName(c *cli.Context) (string, error) {
	if pkg := c.String("pkg"); pkg != "" {
		return pkg, nil
	}

	dir := filepath.Dir(c.String("out"))
	if c.String("out") == "" {
		var err error
		if dir, err = os.Getwd(); err != nil {
			return "", err
		}
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	return gen.PackageName(filepath.Base(abs))
}

func newApp() *cli.App {
	app := cli.NewApp()

	app.Name = "stampgen"
	app.Usage = "embed images as 1-bit stamps in Go source"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "cache",
			EnvVars: []string{"STAMPGEN_CACHE"},
			Usage:   "path to stamp cache database",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:      "generate",
			Usage:     "Generate Go source embedding the given images",
			ArgsUsage: "FILE...",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "out",
					Aliases: []string{"o"},
					Usage:   "write to `FILE` instead of stdout",
				},
				&cli.StringFlag{
					Name:  "pkg",
					Usage: "package name for the generated file",
				},
				&cli.StringFlag{
					Name:  "name",
					Usage: "identifier for the stamp, single FILE only",
				},
				&cli.StringFlag{
					Name:  "mode",
					Usage: "quantisation mode: threshold, dither or auto",
				},
				&cli.StringFlag{
					Name:  "scale",
					Usage: "scale images to `WxH` pixels before quantising",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				opts, err := parseOptions(c)
				if err != nil {
					return cli.Exit(err, 1)
				}

				if c.String("name") != "" && c.NArg() > 1 {
					return cli.Exit("a name can only cover a single FILE", 1)
				}
				opts.Name = c.String("name")

				pkg, err := packageName(c)
				if err != nil {
					return cli.Exit(err, 1)
				}

				g, cleanup, err := newGenerator(c)
				if err != nil {
					return cli.Exit(err, 1)
				}
				defer cleanup()

				assets := make([]*gen.Asset, 0, c.NArg())
				for _, path := range c.Args().Slice() {
					a, err := g.Generate(path, opts)
					if err != nil {
						return cli.Exit(err, 1)
					}
					assets = append(assets, a)
				}

				if out := c.String("out"); out != "" {
					// Render fully before touching the file, so a bad
					// asset set cannot truncate the output of an
					// earlier run.
					b := new(bytes.Buffer)
					if err := gen.File(b, pkg, assets); err != nil {
						return cli.Exit(err, 1)
					}
					if err := os.WriteFile(out, b.Bytes(), 0o644); err != nil {
						return cli.Exit(err, 1)
					}
					return nil
				}

				if err := gen.File(os.Stdout, pkg, assets); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
		{
			Name:      "scan",
			Usage:     "Scan a tree and generate a file per directory of images",
			ArgsUsage: "DIRECTORY",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "out",
					Aliases: []string{"o"},
					Value:   gen.DefaultOut,
					Usage:   "generated `FILE` name within each directory",
				},
				&cli.StringFlag{
					Name:  "pkg",
					Usage: "package name override for every generated file",
				},
				&cli.StringFlag{
					Name:  "mode",
					Usage: "quantisation mode: threshold, dither or auto",
				},
				&cli.StringFlag{
					Name:  "scale",
					Usage: "scale images to `WxH` pixels before quantising",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				opts, err := parseOptions(c)
				if err != nil {
					return cli.Exit(err, 1)
				}
				opts.Package = c.String("pkg")
				opts.Out = c.String("out")

				g, cleanup, err := newGenerator(c)
				if err != nil {
					return cli.Exit(err, 1)
				}
				defer cleanup()

				if err := g.Scan(c.Args().First(), opts); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
		{
			Name:      "preview",
			Usage:     "Print an ASCII preview of an image as a stamp",
			ArgsUsage: "FILE",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "mode",
					Usage: "quantisation mode: threshold, dither or auto",
				},
				&cli.StringFlag{
					Name:  "scale",
					Usage: "scale images to `WxH` pixels before quantising",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() != 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				opts, err := parseOptions(c)
				if err != nil {
					return cli.Exit(err, 1)
				}

				g, cleanup, err := newGenerator(c)
				if err != nil {
					return cli.Exit(err, 1)
				}
				defer cleanup()

				a, err := g.Generate(c.Args().First(), opts)
				if err != nil {
					return cli.Exit(err, 1)
				}

				for _, row := range mono.Sketch(mono.FromBytes(a.Width, a.Height, a.Data)) {
					fmt.Println(row)
				}

				return nil
			},
		},
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
