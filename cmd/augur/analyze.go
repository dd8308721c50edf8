package main

import (
	"encoding/json"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/augurtools/augur/internal/output"
	"github.com/augurtools/augur/pkg/analysis"
)

func analyzeCmd() *cli.Command {
	return &cli.Command{
		Name:      "analyze",
		Aliases:   []string{"all"},
		Usage:     "Run the full analysis: metrics plus principle scores",
		ArgsUsage: "[path]",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "extensions",
				Aliases: []string{"e"},
				Usage:   "Only analyze files with these suffixes (e.g. .py,.js)",
			},
			&cli.StringFlag{
				Name:  "json",
				Usage: "Also write results as JSON to the given file",
			},
		},
		Action: runAnalyzeCmd,
	}
}

func runAnalyzeCmd(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	result, err := collectAnalysis(c, cfg, "Analyzing files...")
	if err != nil || result == nil {
		return err
	}

	formatter, err := newFormatter(c, cfg)
	if err != nil {
		return err
	}
	defer formatter.Close()

	if formatter.Format() == output.FormatJSON {
		if err := formatter.Output(result); err != nil {
			return err
		}
	} else {
		for _, table := range []*output.Table{
			fileMetricsTable(result),
			summaryTable(result),
			solidTable(result),
			functionalTable(result),
		} {
			if err := formatter.Output(table); err != nil {
				return err
			}
		}
	}

	if path := c.String("json"); path != "" {
		writeJSONFile(path, result)
	}

	return nil
}

// writeJSONFile writes the analysis to a JSON sidecar file. Failures are
// reported as warnings; the analysis already succeeded and its output
// stands on its own.
func writeJSONFile(path string, result *analysis.Analysis) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err == nil {
		err = os.WriteFile(path, data, 0o644)
	}
	if err != nil {
		color.Yellow("Warning: could not write %s: %v", path, err)
		return
	}
	color.Green("Results written to %s", path)
}
