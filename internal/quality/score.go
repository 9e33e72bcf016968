package quality

import (
	"regexp"
	"strings"
)

const (
	baselineScore = 5.0
	maxScore      = 10.0

	optimalMinChars = 20
	optimalMaxChars = 500
	optimalMinLines = 2
	optimalMaxLines = 50
)

// definitionRe matches function/class/struct-style definition keywords
// across the supported languages.
var definitionRe = regexp.MustCompile(
	`(?im)\b(def|func|fn|function|class|struct|interface|impl|enum|trait|procedure)\b`)

// identifierRe matches identifiers of length >= 4, a proxy for meaningful
// naming versus single-letter noise.
var identifierRe = regexp.MustCompile(`[A-Za-z_][A-Za-z0-9_]{3,}`)

// Scorer combines detection, validation, and structural signals into one
// 0-10 score. The weighting is fixed so scores stay reproducible and
// explainable per span.
type Scorer struct{}

// NewScorer returns a Scorer.
func NewScorer() *Scorer {
	return &Scorer{}
}

// Score starts at a 5.0 baseline and applies the fixed adjustments:
// +confidence*2, +1 for optimal character length, +1 for optimal line
// count, +1.5 for a definition keyword, +1 for >=2 distinct long
// identifiers, +1 if valid else -0.5 per issue. The result is clamped
// to [0,10].
func (s *Scorer) Score(code, language string, confidence float64, isValid bool, issueCount int) float64 {
	score := baselineScore

	score += confidence * 2.0

	if n := len(code); n >= optimalMinChars && n <= optimalMaxChars {
		score += 1.0
	}
	if n := countLines(code); n >= optimalMinLines && n <= optimalMaxLines {
		score += 1.0
	}
	if definitionRe.MatchString(code) {
		score += 1.5
	}
	if distinctIdentifiers(code) >= 2 {
		score += 1.0
	}
	if isValid {
		score += 1.0
	} else {
		score -= 0.5 * float64(issueCount)
	}

	if score < 0 {
		score = 0
	}
	if score > maxScore {
		score = maxScore
	}
	return score
}

func countLines(code string) int {
	n := 0
	for _, line := range strings.Split(code, "\n") {
		if strings.TrimSpace(line) != "" {
			n++
		}
	}
	return n
}

func distinctIdentifiers(code string) int {
	seen := make(map[string]bool)
	for _, id := range identifierRe.FindAllString(code, -1) {
		seen[id] = true
	}
	return len(seen)
}
