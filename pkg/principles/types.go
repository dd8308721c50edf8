// Package principles scores analyzed codebases against SOLID and
// functional-programming heuristics. The heuristics operate on raw text
// and are signals for review, not judgments.
package principles

import "math"

// SOLIDScores holds one score in [0, 1] per SOLID principle.
type SOLIDScores struct {
	SingleResponsibility float64 `json:"single_responsibility"`
	OpenClosed           float64 `json:"open_closed"`
	LiskovSubstitution   float64 `json:"liskov_substitution"`
	InterfaceSegregation float64 `json:"interface_segregation"`
	DependencyInversion  float64 `json:"dependency_inversion"`
}

// FunctionalScores holds functional-style scores in [0, 1].
type FunctionalScores struct {
	Purity           float64 `json:"purity"`
	HigherOrderUsage float64 `json:"higher_order_usage"`
	Immutability     float64 `json:"immutability"`
}

// round3 rounds a score to three decimal places.
func round3(x float64) float64 {
	return math.Round(x*1000) / 1000
}
