package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/augurtools/augur/internal/output"
	"github.com/augurtools/augur/internal/progress"
	"github.com/augurtools/augur/pkg/analysis"
	"github.com/augurtools/augur/pkg/config"
)

var version = "dev" // set via ldflags at build time

// getPath returns the root path from positional args, defaulting to "."
func getPath(c *cli.Context) string {
	if c.Args().Len() > 0 {
		return c.Args().First()
	}
	return "."
}

// loadConfig resolves configuration: an explicit --config path must load
// cleanly, otherwise standard locations are searched with a fallback to
// defaults.
func loadConfig(c *cli.Context) (*config.Config, error) {
	if path := c.String("config"); path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config %s: %w", path, err)
		}
		return cfg, nil
	}
	return config.LoadOrDefault(), nil
}

// newFormatter builds the output formatter from the global flags.
func newFormatter(c *cli.Context, cfg *config.Config) (*output.Formatter, error) {
	format := cfg.Output.Format
	if c.IsSet("format") {
		format = c.String("format")
	}
	colored := cfg.Output.Color && !c.Bool("no-color")
	return output.NewFormatter(output.ParseFormat(format), c.String("output"), colored)
}

// collectAnalysis runs discovery and analysis for a command. A nil
// result with a nil error means no source files were found and the
// command should exit cleanly.
func collectAnalysis(c *cli.Context, cfg *config.Config, label string) (*analysis.Analysis, error) {
	root, err := filepath.Abs(getPath(c))
	if err != nil {
		return nil, fmt.Errorf("invalid path %s: %w", getPath(c), err)
	}

	runner := analysis.New(cfg)
	files, err := runner.ListFiles(root, c.StringSlice("extensions"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan directory %s: %w", root, err)
	}

	if len(files) == 0 {
		color.Yellow("No source files found")
		return nil, nil
	}

	tracker := progress.NewTracker(label, len(files))
	runner = analysis.New(cfg, analysis.WithProgress(tracker.Tick))
	result := runner.AnalyzeFiles(files)
	tracker.FinishSuccess("Analyzed %d files", len(result.Files))

	return result, nil
}

func main() {
	app := &cli.App{
		Name:    "augur",
		Usage:   "Text-based code quality analysis CLI",
		Version: version,
		Description: `Augur scans source trees for line-level quality metrics, cyclomatic
complexity estimates, and SOLID / functional-programming heuristics.
It reads files as plain text and never parses them.

Supports: Python, JavaScript, TypeScript, Java, C, C++, C#, Ruby, Go`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file (TOML, YAML, or JSON)",
				EnvVars: []string{"AUGUR_CONFIG"},
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   "text",
				Usage:   "Output format: text, json, markdown",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Write output to file",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "Disable colored output",
			},
		},
		Before: func(c *cli.Context) error {
			if c.Bool("no-color") {
				color.NoColor = true
			}
			return nil
		},
		Commands: []*cli.Command{
			analyzeCmd(),
			metricsCmd(),
			principlesCmd(),
		},
		DefaultCommand: "analyze",
	}

	if err := app.Run(os.Args); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}
