// Package quality heuristically validates and scores extracted code spans,
// and aggregates document-level quality statistics.
package quality

import (
	"regexp"
	"strings"
)

const (
	// bracketTolerance allows truncated snippets a small open/close skew.
	bracketTolerance = 2
	// stopWordLimit is the stop-word count above which a span is flagged
	// as prose rather than code.
	stopWordLimit = 4
	// commentDensityLimit is the max fraction of comment-only lines.
	commentDensityLimit = 0.7
)

// indentSensitive lists languages where mixed tab/space indentation is a
// real defect rather than a style nit.
var indentSensitive = map[string]bool{
	"python": true,
	"yaml":   true,
}

// stopWords is the fixed list used by the natural-language check. It
// deliberately includes short function words that rarely survive in real
// code at volume.
var stopWords = []string{
	"the", "and", "for", "with", "this", "that", "from", "have",
	"will", "your", "are", "was", "were", "been", "which", "their",
	"would", "there", "about", "when", "what", "into", "on", "of",
}

var stopWordRe = regexp.MustCompile(`(?i)\b(` + strings.Join(stopWords, "|") + `)\b`)

var commentPrefixes = []string{"#", "//", "--", "/*", "*", ";;"}

// Validator runs the fixed battery of heuristic syntax checks.
type Validator struct{}

// NewValidator returns a Validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate runs every check and reports every failure; nothing
// short-circuits. The span is valid iff no check failed.
func (v *Validator) Validate(code, language string) (bool, []string) {
	var issues []string

	trimmed := strings.TrimSpace(code)
	if trimmed == "" {
		issues = append(issues, "empty code block")
		return false, issues
	}

	if !bracketsBalanced(code) {
		issues = append(issues, "unbalanced brackets")
	}

	if indentSensitive[language] && mixedIndentation(code) {
		issues = append(issues, "mixed tabs and spaces")
	}

	if len(stopWordRe.FindAllString(code, -1)) > stopWordLimit {
		issues = append(issues, "may be natural language, not code")
	}

	if commentDensity(code) > commentDensityLimit {
		issues = append(issues, "mostly comments")
	}

	return len(issues) == 0, issues
}

func bracketsBalanced(code string) bool {
	pairs := [][2]rune{{'(', ')'}, {'[', ']'}, {'{', '}'}}
	for _, pair := range pairs {
		open, closed := 0, 0
		for _, r := range code {
			switch r {
			case pair[0]:
				open++
			case pair[1]:
				closed++
			}
		}
		diff := open - closed
		if diff < 0 {
			diff = -diff
		}
		if diff > bracketTolerance {
			return false
		}
	}
	return true
}

func mixedIndentation(code string) bool {
	tabs, spaces := false, false
	for _, line := range strings.Split(code, "\n") {
		if strings.HasPrefix(line, "\t") {
			tabs = true
		} else if strings.HasPrefix(line, "    ") {
			spaces = true
		}
	}
	return tabs && spaces
}

func commentDensity(code string) float64 {
	total, comments := 0, 0
	for _, line := range strings.Split(code, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		total++
		for _, prefix := range commentPrefixes {
			if strings.HasPrefix(line, prefix) {
				comments++
				break
			}
		}
	}
	if total == 0 {
		return 0
	}
	return float64(comments) / float64(total)
}
