package main

import (
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/alecthomas/repr"
	"github.com/pontaoski/celestial/ast"
	"github.com/pontaoski/celestial/codegen"
	"github.com/pontaoski/celestial/interpreter"
	"github.com/pontaoski/celestial/lexer"
	"github.com/pontaoski/celestial/parser"
	"github.com/pontaoski/celestial/reader"
	"github.com/urfave/cli/v2"
	"github.com/ztrue/tracerr"
)

// openSource picks the program to work on: --eval text, then the first
// argument, then the manifest entry, then the demo program.
func openSource(c *cli.Context) (io.ReadCloser, string, error) {
	if src := c.String("eval"); src != "" {
		r, name := reader.Inline(src)
		return r, name, nil
	}
	if c.Args().Present() {
		return reader.Open(c.Args().First())
	}

	doc, ok, err := loadManifest(manifestFile)
	if err != nil {
		return nil, "", err
	}
	if ok && doc.Entry != "" {
		return reader.Open(doc.Entry)
	}

	return reader.Open("")
}

func parseSource(c *cli.Context) (ast.Program, string, error) {
	handle, name, err := openSource(c)
	if err != nil {
		return nil, "", tracerr.Wrap(err)
	}
	defer handle.Close()

	start := time.Now()
	prog, err := parser.NewParser(lexer.NewLexer(handle, name)).Parse()
	if c.Bool("verbose") {
		log.Printf("parsed %s: %d statements in %s", name, len(prog), time.Since(start))
	}

	return prog, name, err
}

// interpret runs the program in src and writes printed values to out.
func interpret(src io.Reader, filename string, out io.Writer) error {
	prog, err := parser.NewParser(lexer.NewLexer(src, filename)).Parse()
	if err != nil {
		return err
	}

	return interpreter.New(out).Interpret(prog)
}

var sourceFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    "eval",
		Aliases: []string{"e"},
		Usage:   "program text to use instead of a file",
	},
	&cli.BoolFlag{
		Name:  "verbose",
		Usage: "log phase timings to stderr",
	},
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "celestial",
		Usage: "celestial script interpreter",
		ExitErrHandler: func(context *cli.Context, err error) {
			if err == nil {
				return
			}
			tracerr.PrintSourceColor(err)
			os.Exit(1)
		},
		Commands: []*cli.Command{
			{
				Name:      "init",
				Usage:     "init a directory",
				ArgsUsage: "NAME",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "entry",
						Value: "main.cel",
					},
				},
				Action: func(c *cli.Context) error {
					name := c.Args().First()
					if name == "" {
						return cli.Exit("no module name provided", 1)
					}

					return writeManifest(manifestFile, celestialModule{
						Package: name,
						Entry:   c.String("entry"),
					})
				},
			},
			{
				Name:      "run",
				Usage:     "interpret a program",
				ArgsUsage: "[FILE|-]",
				Flags:     sourceFlags,
				Action: func(c *cli.Context) error {
					handle, name, err := openSource(c)
					if err != nil {
						return tracerr.Wrap(err)
					}
					defer handle.Close()

					start := time.Now()
					err = interpret(handle, name, c.App.Writer)
					if c.Bool("verbose") {
						log.Printf("ran %s in %s", name, time.Since(start))
					}

					return err
				},
			},
			{
				Name:      "tokens",
				Usage:     "dump the tokens of a program",
				ArgsUsage: "[FILE|-]",
				Flags:     sourceFlags,
				Action: func(c *cli.Context) error {
					handle, name, err := openSource(c)
					if err != nil {
						return tracerr.Wrap(err)
					}
					defer handle.Close()

					tokens, err := lexer.NewLexer(handle, name).Tokenize()
					if err != nil {
						return err
					}

					p := repr.New(c.App.Writer, repr.NoIndent())
					for _, tok := range tokens {
						p.Println(tok)
					}
					return nil
				},
			},
			{
				Name:      "ast",
				Usage:     "dump the syntax tree of a program",
				ArgsUsage: "[FILE|-]",
				Flags: append([]cli.Flag{
					&cli.BoolFlag{
						Name:  "source",
						Usage: "print the tree back as celestial source",
					},
				}, sourceFlags...),
				Action: func(c *cli.Context) error {
					prog, _, err := parseSource(c)
					if err != nil {
						return err
					}

					if c.Bool("source") {
						fmt.Fprintln(c.App.Writer, prog)
						return nil
					}

					repr.New(c.App.Writer, repr.Indent("  ")).Println(prog)
					return nil
				},
			},
			{
				Name:      "build",
				Usage:     "compile a program to a native executable",
				ArgsUsage: "[FILE|-]",
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name: "output",
					},
					&cli.BoolFlag{
						Name:  "dump",
						Value: false,
					},
				}, sourceFlags...),
				Action: func(c *cli.Context) error {
					doc, _, err := loadManifest(manifestFile)
					if err != nil {
						return err
					}

					prog, name, err := parseSource(c)
					if err != nil {
						return err
					}

					module, err := codegen.Generate(prog, codegen.Settings{
						PackageName: doc.Package,
						Source:      name,
					})
					if err != nil {
						return err
					}

					if c.Bool("dump") {
						fmt.Fprintln(c.App.Writer, module.String())
						return nil
					}

					out := c.String("output")
					if out == "" {
						out = doc.Package
					}
					if out == "" {
						out = "a.out"
					}

					fi, err := ioutil.TempFile("", "*.ll")
					if err != nil {
						return tracerr.Wrap(err)
					}
					defer os.Remove(fi.Name())
					defer fi.Close()

					_, err = io.Copy(fi, strings.NewReader(module.String()))
					if err != nil {
						return tracerr.Wrap(err)
					}

					cmd := exec.Command("clang", "-o", out, fi.Name())
					cmd.Stdout = os.Stdout
					cmd.Stderr = os.Stderr

					start := time.Now()
					if err := cmd.Run(); err != nil {
						return tracerr.Wrap(err)
					}
					if c.Bool("verbose") {
						log.Printf("linked %s in %s", out, time.Since(start))
					}

					return nil
				},
			},
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		os.Exit(1)
	}
}
