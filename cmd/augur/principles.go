package main

import (
	"github.com/urfave/cli/v2"

	"github.com/augurtools/augur/internal/output"
)

func principlesCmd() *cli.Command {
	return &cli.Command{
		Name:      "principles",
		Aliases:   []string{"solid"},
		Usage:     "Score the codebase against SOLID and functional heuristics",
		ArgsUsage: "[path]",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "extensions",
				Aliases: []string{"e"},
				Usage:   "Only analyze files with these suffixes (e.g. .py,.js)",
			},
		},
		Action: runPrinciplesCmd,
	}
}

func runPrinciplesCmd(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	result, err := collectAnalysis(c, cfg, "Scoring principles...")
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
			SOLID      any `json:"solid_scores"`
			Functional any `json:"functional_scores"`
		}{result.SOLID, result.Functional})
	}

	if err := formatter.Output(solidTable(result)); err != nil {
		return err
	}
	return formatter.Output(functionalTable(result))
}
