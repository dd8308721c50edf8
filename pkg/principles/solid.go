package principles

import (
	"math"
	"regexp"

	"github.com/augurtools/augur/pkg/metrics"
	"github.com/augurtools/augur/pkg/source"
)

// liskovScore is a fixed placeholder: substitutability cannot be inferred
// from text alone, so every run reports a neutral value.
const liskovScore = 0.5

var (
	// class Foo extends Bar (Java, JS) or class Foo : Bar (C++, C#)
	inheritancePattern = regexp.MustCompile(`(?i)class\s+\w+\s*(?:extends|:)\s+\w+`)
	// interface Foo { ... } with the body captured for method counting
	interfaceBlockPattern = regexp.MustCompile(`(?s)interface\s+\w+\s*\{([^}]*)\}`)
	methodPattern         = regexp.MustCompile(`\b\w+\s*\(.*?\)\s*;`)
	importLinePattern     = regexp.MustCompile(`^\s*(import|using|require)\b`)
	abstractionPattern    = regexp.MustCompile(`(?i)(interface|abstract)`)
)

// EvaluateSOLID scores the analyzed files against the SOLID principles.
// File text is reread through src; unreadable files contribute empty text.
func EvaluateSOLID(files []metrics.FileMetrics, src source.ContentSource) SOLIDScores {
	var (
		totalClasses    int
		totalFunctions  int
		totalInterfaces int
		inheriting      int
		ifaceMethods    int
		totalImports    int
		abstractImports int
	)

	for _, fm := range files {
		totalClasses += fm.NumClasses
		totalFunctions += fm.NumFunctions
		totalInterfaces += fm.NumInterfaces

		data, err := src.Read(fm.Path)
		if err != nil {
			data = nil
		}
		text := string(data)

		inheriting += len(inheritancePattern.FindAllString(text, -1))

		for _, m := range interfaceBlockPattern.FindAllStringSubmatch(text, -1) {
			ifaceMethods += len(methodPattern.FindAllString(m[1], -1))
		}

		for _, line := range metrics.SplitLines(data) {
			if importLinePattern.MatchString(line) {
				totalImports++
				if abstractionPattern.MatchString(line) {
					abstractImports++
				}
			}
		}
	}

	// Classes averaging more than five functions suggest multiple
	// responsibilities; no classes at all leaves SRP not applicable.
	srp := 1.0
	if totalClasses > 0 {
		avg := float64(totalFunctions) / float64(totalClasses)
		srp = math.Max(0.0, 1.0-math.Max(0, avg-5)/10)
	}

	// A higher fraction of inheriting classes is read as openness for
	// extension. Without classes there is nothing open to extend.
	ocp := 0.0
	if totalClasses > 0 {
		ocp = math.Min(1.0, float64(inheriting)/float64(totalClasses))
	}

	// Interfaces averaging fewer than five methods imply segregation.
	isp := 1.0
	if totalInterfaces > 0 {
		avg := float64(ifaceMethods) / float64(totalInterfaces)
		isp = math.Max(0.0, 1.0-math.Max(0, avg-5)/10)
	}

	dip := 0.0
	if totalImports > 0 {
		dip = float64(abstractImports) / float64(totalImports)
	}

	return SOLIDScores{
		SingleResponsibility: round3(srp),
		OpenClosed:           round3(ocp),
		LiskovSubstitution:   liskovScore,
		InterfaceSegregation: round3(isp),
		DependencyInversion:  round3(dip),
	}
}
