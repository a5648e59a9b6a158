package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/repr"
	"github.com/coreos/pkg/capnslog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v2"
	"github.com/ztrue/tracerr"

	"github.com/programLyrique/analysr/ast"
	"github.com/programLyrique/analysr/count"
	"github.com/programLyrique/analysr/reader"
	"github.com/programLyrique/analysr/types"
)

var plog = capnslog.NewPackageLogger("github.com/programLyrique/analysr", "main")

var cfg = defaultSettings()

func setupLogging(level string) error {
	capnslog.SetFormatter(capnslog.NewPrettyFormatter(os.Stderr, false))

	l, err := capnslog.ParseLevel(strings.ToUpper(level))
	if err != nil {
		return err
	}
	capnslog.SetGlobalLogLevel(l)
	return nil
}

func loadConfig(c *cli.Context) error {
	// init is what creates the file
	explicit := c.IsSet("config") && c.Args().First() != "init"

	s, err := loadSettings(c.String("config"), explicit)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", c.String("config"), err)
	}

	if c.IsSet("rscript") {
		s.Rscript = c.String("rscript")
	}
	if c.IsSet("jobs") {
		s.Jobs = c.Int("jobs")
	}
	if c.IsSet("simplify") {
		s.Simplify = c.Bool("simplify")
	}
	if c.IsSet("log-level") {
		s.LogLevel = c.String("log-level")
	}
	if s.Jobs < 1 {
		s.Jobs = 1
	}

	cfg = s
	return setupLogging(cfg.LogLevel)
}

func reportFailure(u unit) {
	if plog.LevelAt(capnslog.DEBUG) {
		plog.Errorf("%s:", u.File)
		tracerr.PrintSourceColor(u.Err)
		return
	}
	plog.Errorf("%s: %v", u.File, u.Err)
}

func inputs(c *cli.Context) ([]string, error) {
	if c.NArg() == 0 {
		return nil, cli.Exit("no input files provided", 1)
	}
	return expandInputs(c.Args().Slice())
}

func failedUnits(n, of int) error {
	if n == 0 {
		return nil
	}
	return cli.Exit(fmt.Sprintf("%d of %d units failed", n, of), 1)
}

func main() {
	app := &cli.App{
		Name:  "analysr",
		Usage: "translate R programs into an analysis AST",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Value: configFile,
			},
			&cli.StringFlag{
				Name:  "rscript",
				Usage: "R front end used to parse sources",
			},
			&cli.IntFlag{
				Name:  "jobs",
				Usage: "number of files translated at once",
			},
			&cli.BoolFlag{
				Name:  "simplify",
				Usage: "simplify trees after translation",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "CRITICAL, ERROR, WARNING, NOTICE, INFO, DEBUG or TRACE",
			},
		},
		Before: loadConfig,
		Commands: []*cli.Command{
			{
				Name:  "init",
				Usage: "write a default " + configFile,
				Action: func(c *cli.Context) error {
					path := c.String("config")
					if err := writeSettings(path, defaultSettings()); err != nil {
						return fmt.Errorf("error creating %s: %w", path, err)
					}
					plog.Infof("wrote %s", path)
					return nil
				},
			},
			{
				Name:      "tree",
				Usage:     "print the parse tree of a file",
				ArgsUsage: "FILE",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "format",
						Value: "text",
						Usage: "text or repr",
					},
				},
				Action: func(c *cli.Context) error {
					format := c.String("format")
					if format != "text" && format != "repr" {
						return cli.Exit("unknown format "+format, 1)
					}

					file := c.Args().First()
					if file == "" {
						return cli.Exit("no input file provided", 1)
					}
					tree, err := reader.ReadFile(file, reader.Options{Rscript: cfg.Rscript})
					if err != nil {
						return err
					}
					if format == "repr" {
						repr.Println(tree)
					} else {
						fmt.Print(types.Format(tree))
					}
					return nil
				},
			},
			{
				Name:      "dump",
				Usage:     "translate files and print their trees",
				ArgsUsage: "FILES...",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "format",
						Value: "text",
						Usage: "text or repr",
					},
				},
				Action: func(c *cli.Context) error {
					format := c.String("format")
					if format != "text" && format != "repr" {
						return cli.Exit("unknown format "+format, 1)
					}

					files, err := inputs(c)
					if err != nil {
						return err
					}

					failed := 0
					for _, u := range translateAll(files, cfg) {
						if u.Err != nil {
							reportFailure(u)
							failed++
							continue
						}
						fmt.Printf("# %s\n", u.File)
						if format == "repr" {
							repr.Println(u.Expr)
						} else {
							fmt.Println(ast.String(u.Expr))
						}
					}
					return failedUnits(failed, len(files))
				},
			},
			{
				Name:      "count",
				Usage:     "count the node kinds of translated files",
				ArgsUsage: "FILES...",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "metrics-file",
						Usage: "also write the counts in Prometheus text format",
					},
				},
				Action: func(c *cli.Context) error {
					files, err := inputs(c)
					if err != nil {
						return err
					}

					registry := prometheus.NewRegistry()
					collector := count.NewCollector(cfg.Metrics, registry)
					total := count.Counts{}

					failed := 0
					for _, u := range translateAll(files, cfg) {
						if u.Err != nil {
							reportFailure(u)
							collector.Failed()
							failed++
							continue
						}
						counts := count.Count(u.Expr)
						collector.Observe(counts)
						total.Add(counts)
						fmt.Printf("%s\t%d\n", u.File, counts.Total())
					}

					fmt.Println()
					for _, kind := range total.Kinds() {
						fmt.Printf("%-12s %d\n", kind, total[kind])
					}
					fmt.Printf("%-12s %d\n", "total", total.Total())

					if path := c.String("metrics-file"); path != "" {
						if err := prometheus.WriteToTextfile(path, registry); err != nil {
							return err
						}
						plog.Infof("wrote metrics to %s", path)
					}

					return failedUnits(failed, len(files))
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		plog.Fatalf("error with analysr: %v", err)
	}
}
