package metrics

import (
	"gonum.org/v1/gonum/stat"

	"github.com/augurtools/augur/pkg/stats"
)

// Summary aggregates metrics across an entire run.
type Summary struct {
	TotalFiles          int     `json:"total_files"`
	TotalFunctions      int     `json:"total_functions"`
	TotalClasses        int     `json:"total_classes"`
	TotalInterfaces     int     `json:"total_interfaces"`
	TotalLines          int     `json:"total_lines"`
	TotalComments       int     `json:"total_comments"`
	TotalLongLines      int     `json:"total_long_lines"`
	AvgComplexity       float64 `json:"avg_complexity"`
	P50Complexity       float64 `json:"p50_complexity"`
	P90Complexity       float64 `json:"p90_complexity"`
	MaxComplexity       float64 `json:"max_complexity"`
	AvgFunctionsPerFile float64 `json:"avg_functions_per_file"`
	AvgClassesPerFile   float64 `json:"avg_classes_per_file"`
	CommentRatio        float64 `json:"comment_ratio"`
	LongLineRatio       float64 `json:"long_line_ratio"`
	MixedIndentFiles    int     `json:"mixed_indent_files"`
}

// Summarize computes run-level totals and averages from per-file metrics.
func Summarize(files []FileMetrics) Summary {
	s := Summary{TotalFiles: len(files)}
	if len(files) == 0 {
		return s
	}

	complexity := make([]float64, len(files))
	functions := make([]float64, len(files))
	classes := make([]float64, len(files))

	for i, fm := range files {
		s.TotalFunctions += fm.NumFunctions
		s.TotalClasses += fm.NumClasses
		s.TotalInterfaces += fm.NumInterfaces
		s.TotalLines += fm.LineCount
		s.TotalComments += fm.CommentCount
		s.TotalLongLines += fm.LongLineCount
		if fm.MixedIndent {
			s.MixedIndentFiles++
		}
		complexity[i] = float64(fm.CyclomaticComplexity)
		functions[i] = float64(fm.NumFunctions)
		classes[i] = float64(fm.NumClasses)
	}

	s.AvgComplexity = stat.Mean(complexity, nil)
	s.P50Complexity = stats.Percentile(complexity, 50)
	s.P90Complexity = stats.Percentile(complexity, 90)
	s.MaxComplexity = stats.Max(complexity)
	s.AvgFunctionsPerFile = stat.Mean(functions, nil)
	s.AvgClassesPerFile = stat.Mean(classes, nil)
	s.CommentRatio = ratio(s.TotalComments, s.TotalLines)
	s.LongLineRatio = ratio(s.TotalLongLines, s.TotalLines)
	return s
}
