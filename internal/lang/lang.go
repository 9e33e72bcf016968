// Package lang detects the programming language of a code span by scoring
// it against weighted per-language regex patterns.
package lang

// scoreCeiling normalizes the winning pattern score into a confidence.
// Confidence saturates at 1.0 once a span carries enough strong markers;
// it is a coarse signal, not a calibrated probability.
const scoreCeiling = 10.0

// Unknown is returned when no pattern of any language matches.
const Unknown = "unknown"

// Detector scores code text against an immutable pattern table.
type Detector struct {
	patterns PatternTable
	priority []string
}

// NewDetector builds a detector over the given table. A nil table selects
// the built-in defaults.
func NewDetector(table PatternTable) *Detector {
	if table == nil {
		table = DefaultPatterns()
	}
	return &Detector{patterns: table, priority: Priority}
}

// Detect returns the best-matching language and a confidence in [0,1].
// For each language the weights of all matching patterns are summed; the
// highest sum wins, ties broken by the fixed priority order. No match at
// all yields ("unknown", 0).
func (d *Detector) Detect(code string) (string, float64) {
	if code == "" {
		return Unknown, 0
	}

	best := Unknown
	bestScore := 0
	for _, language := range d.priority {
		score := 0
		for _, p := range d.patterns[language] {
			if p.Regexp.MatchString(code) {
				score += p.Weight
			}
		}
		if score > bestScore {
			best = language
			bestScore = score
		}
	}
	if bestScore == 0 {
		return Unknown, 0
	}

	confidence := float64(bestScore) / scoreCeiling
	if confidence > 1.0 {
		confidence = 1.0
	}
	return best, confidence
}
