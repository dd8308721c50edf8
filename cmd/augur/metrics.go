package main

import (
	"github.com/urfave/cli/v2"

	"github.com/augurtools/augur/internal/output"
)

func metricsCmd() *cli.Command {
	return &cli.Command{
		Name:      "metrics",
		Aliases:   []string{"mx"},
		Usage:     "Report per-file metrics without principle scoring",
		ArgsUsage: "[path]",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "extensions",
				Aliases: []string{"e"},
				Usage:   "Only analyze files with these suffixes (e.g. .py,.js)",
			},
		},
		Action: runMetricsCmd,
	}
}

func runMetricsCmd(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	result, err := collectAnalysis(c, cfg, "Collecting metrics...")
	if err != nil || result == nil {
		return err
	}

	formatter, err := newFormatter(c, cfg)
	if err != nil {
		return err
	}
	defer formatter.Close()

	if formatter.Format() == output.FormatJSON {
		return formatter.Output(struct {
			Files   any `json:"files"`
			Summary any `json:"summary"`
		}{result.Files, result.Summary})
	}

	if err := formatter.Output(fileMetricsTable(result)); err != nil {
		return err
	}
	return formatter.Output(summaryTable(result))
}
