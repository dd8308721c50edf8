package main

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/augurtools/augur/internal/output"
	"github.com/augurtools/augur/pkg/analysis"
	"github.com/augurtools/augur/pkg/lang"
)

// fileMetricsTable builds the per-file metrics table.
func fileMetricsTable(a *analysis.Analysis) *output.Table {
	var rows [][]string
	for _, fm := range a.Files {
		category := string(fm.ComplexityCategory)

		// Mixed indentation only means something for Python.
		mixed := ""
		if fm.Language == lang.LangPython {
			mixed = "no"
			if fm.MixedIndent {
				mixed = color.YellowString("yes")
			}
		}

		rows = append(rows, []string{
			fm.Path,
			string(fm.Language),
			fmt.Sprintf("%d", fm.LineCount),
			fmt.Sprintf("%d", fm.NumFunctions),
			fmt.Sprintf("%d", fm.NumClasses),
			fmt.Sprintf("%d", fm.NumInterfaces),
			fmt.Sprintf("%d", fm.CyclomaticComplexity),
			output.CategoryColor(category, category),
			fmt.Sprintf("%d (%.1f%%)", fm.CommentCount, fm.CommentRatio*100),
			fmt.Sprintf("%d (%.1f%%)", fm.LongLineCount, fm.LongLineRatio*100),
			mixed,
		})
	}

	return output.NewTable(
		"File Metrics",
		[]string{"File", "Language", "Lines", "Functions", "Classes", "Interfaces",
			"Complexity", "Category", "Comments", "Long Lines", "Mixed Indent"},
		rows,
		[]string{
			fmt.Sprintf("Files: %d", a.Summary.TotalFiles),
			"",
			fmt.Sprintf("%d", a.Summary.TotalLines),
			fmt.Sprintf("%d", a.Summary.TotalFunctions),
			fmt.Sprintf("%d", a.Summary.TotalClasses),
			fmt.Sprintf("%d", a.Summary.TotalInterfaces),
			fmt.Sprintf("Avg: %.1f", a.Summary.AvgComplexity),
			"",
			fmt.Sprintf("%d", a.Summary.TotalComments),
			fmt.Sprintf("%d", a.Summary.TotalLongLines),
			fmt.Sprintf("%d", a.Summary.MixedIndentFiles),
		},
		a,
	)
}

// summaryTable builds the run-level statistics table.
func summaryTable(a *analysis.Analysis) *output.Table {
	s := a.Summary
	rows := [][]string{
		{"Files analyzed", fmt.Sprintf("%d", s.TotalFiles)},
		{"Total lines", fmt.Sprintf("%d", s.TotalLines)},
		{"Functions", fmt.Sprintf("%d", s.TotalFunctions)},
		{"Classes", fmt.Sprintf("%d", s.TotalClasses)},
		{"Interfaces", fmt.Sprintf("%d", s.TotalInterfaces)},
		{"Avg complexity", fmt.Sprintf("%.2f", s.AvgComplexity)},
		{"Median complexity (P50)", fmt.Sprintf("%.0f", s.P50Complexity)},
		{"90th percentile complexity", fmt.Sprintf("%.0f", s.P90Complexity)},
		{"Max complexity", fmt.Sprintf("%.0f", s.MaxComplexity)},
		{"Avg functions per file", fmt.Sprintf("%.2f", s.AvgFunctionsPerFile)},
		{"Comment ratio", fmt.Sprintf("%.1f%%", s.CommentRatio*100)},
		{"Long line ratio", fmt.Sprintf("%.1f%%", s.LongLineRatio*100)},
		{"Mixed indentation files", fmt.Sprintf("%d", s.MixedIndentFiles)},
	}

	return output.NewTable(
		"Overall Statistics",
		[]string{"Metric", "Value"},
		rows,
		nil,
		s,
	)
}

// solidTable builds the SOLID principle score table.
func solidTable(a *analysis.Analysis) *output.Table {
	s := a.SOLID
	rows := [][]string{
		{"Single Responsibility", scoreCell(s.SingleResponsibility)},
		{"Open/Closed", scoreCell(s.OpenClosed)},
		{"Liskov Substitution", scoreCell(s.LiskovSubstitution)},
		{"Interface Segregation", scoreCell(s.InterfaceSegregation)},
		{"Dependency Inversion", scoreCell(s.DependencyInversion)},
	}

	return output.NewTable(
		"SOLID Principles",
		[]string{"Principle", "Score"},
		rows,
		nil,
		s,
	)
}

// functionalTable builds the functional-style score table.
func functionalTable(a *analysis.Analysis) *output.Table {
	f := a.Functional
	rows := [][]string{
		{"Purity", scoreCell(f.Purity)},
		{"Higher-Order Usage", scoreCell(f.HigherOrderUsage)},
		{"Immutability", scoreCell(f.Immutability)},
	}

	return output.NewTable(
		"Functional Style",
		[]string{"Aspect", "Score"},
		rows,
		nil,
		f,
	)
}

func scoreCell(score float64) string {
	return output.ScoreColor(score, fmt.Sprintf("%.3f", score))
}
