package principles

import (
	"math"
	"regexp"

	"github.com/augurtools/augur/pkg/metrics"
	"github.com/augurtools/augur/pkg/source"
)

var (
	// A line assigns when '=' appears before any '#', one count per line.
	assignmentPattern = regexp.MustCompile(`^[^#]*=`)
	printPattern      = regexp.MustCompile(`\b(print|console\.log|System\.out\.println)\b`)
	lambdaPattern     = regexp.MustCompile(`\blambda\b|=>`)
	hofPattern        = regexp.MustCompile(`\b(map|filter|reduce|fold|forEach)\b`)
	immutablePattern  = regexp.MustCompile(`(?i)\b(const|final|immutable)\b`)
)

// EvaluateFunctional scores the analyzed files for functional style.
// Files are visited strictly in record order: the assignment count
// accumulates across the run and a file's functions only count as pure
// while that running count is still zero. Reordering the records can
// change the purity score.
func EvaluateFunctional(files []metrics.FileMetrics, src source.ContentSource) FunctionalScores {
	var (
		totalFunctions int
		pureFunctions  int
		higherOrder    int
		immutable      int
		assignments    int
	)

	for _, fm := range files {
		totalFunctions += fm.NumFunctions
	}

	for _, fm := range files {
		data, err := src.Read(fm.Path)
		if err != nil {
			continue
		}
		text := string(data)

		for _, line := range metrics.SplitLines(data) {
			if assignmentPattern.MatchString(line) {
				assignments++
			}
		}

		// A file's functions are assumed pure only when no assignment
		// has been seen so far and the file prints nothing.
		if fm.NumFunctions > 0 {
			if assignments == 0 && !printPattern.MatchString(text) {
				pureFunctions += fm.NumFunctions
			}
		}

		higherOrder += len(lambdaPattern.FindAllString(text, -1))
		higherOrder += len(hofPattern.FindAllString(text, -1))
		immutable += len(immutablePattern.FindAllString(text, -1))
	}

	purity := 0.0
	if totalFunctions > 0 {
		purity = float64(pureFunctions) / float64(totalFunctions)
	}
	hof := math.Min(1.0, float64(higherOrder)/float64(max(1, totalFunctions)))
	immutability := math.Min(1.0, float64(immutable)/float64(assignments+1))

	return FunctionalScores{
		Purity:           round3(purity),
		HigherOrderUsage: round3(hof),
		Immutability:     round3(immutability),
	}
}
