// Package metrics collects per-file quality metrics from plain text scans.
// It operates on syntax cues only (keywords, declaration shapes, comment
// markers) and makes no attempt to parse the source.
package metrics

import "github.com/augurtools/augur/pkg/lang"

// Category buckets cyclomatic complexity into risk tiers following
// McCabe's original classification.
type Category string

const (
	CategorySimple   Category = "Simple"
	CategoryModerate Category = "Moderate"
	CategoryComplex  Category = "Complex"
	CategoryVeryHigh Category = "Very High"
)

// CategoryFor maps a cyclomatic complexity value to its risk category.
func CategoryFor(complexity int) Category {
	switch {
	case complexity <= 10:
		return CategorySimple
	case complexity <= 20:
		return CategoryModerate
	case complexity <= 50:
		return CategoryComplex
	default:
		return CategoryVeryHigh
	}
}

// FileMetrics holds the metrics of a single source file. Counts are
// populated by Scan and not mutated afterwards.
type FileMetrics struct {
	Path                 string        `json:"path"`
	Language             lang.Language `json:"language"`
	NumFunctions         int           `json:"num_functions"`
	NumClasses           int           `json:"num_classes"`
	NumInterfaces        int           `json:"num_interfaces"`
	CyclomaticComplexity int           `json:"cyclomatic_complexity"`
	ComplexityCategory   Category      `json:"complexity_category"`
	LineCount            int           `json:"line_count"`
	CommentCount         int           `json:"comment_count"`
	LongLineCount        int           `json:"long_line_count"`
	MixedIndent          bool          `json:"mixed_indent"`
	CommentRatio         float64       `json:"comment_ratio"`
	LongLineRatio        float64       `json:"long_line_ratio"`
}

// ratio returns count/total, or 0 for empty files.
func ratio(count, total int) float64 {
	if total == 0 {
		return 0.0
	}
	return float64(count) / float64(total)
}
