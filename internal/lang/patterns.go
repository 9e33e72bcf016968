package lang

import "regexp"

// Pattern pairs a compiled regex with its weight (1-5). Strong syntactic
// markers (function definitions, includes, shebangs) carry the high weights;
// weak markers shared across languages carry weight 1-2.
type Pattern struct {
	Regexp *regexp.Regexp
	Weight int
}

// PatternTable maps a language name to its ordered pattern list. Tables are
// built once and treated as immutable; the detector only reads them.
type PatternTable map[string][]Pattern

func pat(weight int, expr string) Pattern {
	return Pattern{Regexp: regexp.MustCompile(`(?im)` + expr), Weight: weight}
}

// Priority is the fixed tie-break order. When two languages sum to the same
// score, the one listed first wins, so detection is stable across runs.
var Priority = []string{
	"python",
	"javascript",
	"java",
	"go",
	"rust",
	"c",
	"sql",
	"bash",
}

// DefaultPatterns returns the built-in weighted pattern table.
func DefaultPatterns() PatternTable {
	return PatternTable{
		"python": {
			pat(5, `^\s*def\s+\w+\s*\(`),
			pat(4, `^\s*class\s+\w+(\(|:)`),
			pat(4, `^\s*(import\s+\w+|from\s+[\w.]+\s+import\b)`),
			pat(3, `^\s*(if|elif|for|while|with|try)\b.*:\s*$`),
			pat(3, `\bself\.`),
			pat(2, `\bprint\s*\(`),
			pat(2, `^\s*@\w+\s*$`),
			pat(1, `^\s*(return|yield|pass|raise)\b`),
		},
		"javascript": {
			pat(5, `\bfunction\s*\w*\s*\(`),
			pat(4, `\b(const|let|var)\s+\w+\s*=`),
			pat(4, `\bconsole\.(log|error|warn)\s*\(`),
			pat(3, `=>\s*[{(]?`),
			pat(3, `===|!==`),
			pat(3, `\b(require\s*\(|import\s+.*\s+from\s+['"])`),
			pat(2, `\bdocument\.\w+`),
			pat(1, `^\s*return\b.*;\s*$`),
		},
		"java": {
			pat(5, `\bpublic\s+(final\s+)?(class|interface|enum)\s+\w+`),
			pat(5, `\bpublic\s+static\s+void\s+main\b`),
			pat(4, `\bSystem\.(out|err)\.print`),
			pat(3, `\b(private|protected|public)\s+\w+(<[\w, ]+>)?\s+\w+\s*\(`),
			pat(3, `^\s*@(Override|Test|Autowired)\b`),
			pat(2, `\bnew\s+\w+\s*\(`),
			pat(2, `\bimport\s+java\.`),
		},
		"go": {
			pat(5, `^\s*func\s+(\(\w+\s+\*?\w+\)\s+)?\w+\s*\(`),
			pat(4, `^\s*package\s+\w+\s*$`),
			pat(4, `:=`),
			pat(3, `\bfmt\.(Print|Sprint|Errorf|Fprint)`),
			pat(3, `^\s*import\s+\(`),
			pat(3, `\bgo\s+func\b`),
			pat(2, `\b(chan|goroutine|defer)\b`),
			pat(2, `\bif\s+err\s*!=\s*nil\b`),
		},
		"rust": {
			pat(5, `\bfn\s+\w+\s*(<[\w, ']+>)?\s*\(`),
			pat(4, `\blet\s+(mut\s+)?\w+`),
			pat(4, `\b(println!|panic!|vec!)`),
			pat(3, `\bimpl(\s+\w+)?\s+(for\s+)?\w+`),
			pat(3, `\b(pub\s+)?(struct|enum|trait)\s+\w+`),
			pat(2, `->\s*[\w<>&]+\s*\{`),
			pat(1, `\w+::\w+`),
		},
		"c": {
			pat(5, `^\s*#include\s*[<"]`),
			pat(5, `\bint\s+main\s*\(`),
			pat(3, `\b(printf|fprintf|scanf)\s*\(`),
			pat(3, `\b(void|int|char|float|double|size_t)\s+\*?\w+\s*\(`),
			pat(3, `\b(malloc|calloc|free)\s*\(`),
			pat(2, `^\s*#define\s+\w+`),
			pat(1, `\bstruct\s+\w+\s*\{`),
		},
		"sql": {
			pat(5, `\bselect\s+[\w*,.\s]+\s+from\b`),
			pat(4, `\b(insert\s+into|update\s+\w+\s+set|delete\s+from)\b`),
			pat(4, `\bcreate\s+(table|index|view|database)\b`),
			pat(3, `\b(inner|left|right|outer)\s+join\b`),
			pat(2, `\bwhere\s+\w+`),
			pat(2, `\b(group|order)\s+by\b`),
		},
		"bash": {
			pat(5, `^#!\s*/(usr/)?bin/(env\s+)?(ba)?sh`),
			pat(3, `^\s*\w+\s*\(\)\s*\{`),
			pat(3, `\$\{\w+\}`),
			pat(2, `^\s*(if\s+\[|fi|then|done|do|esac|elif)\b`),
			pat(2, `^\s*(echo|export|cd|chmod|mkdir)\s+`),
			pat(2, `\$\(\w+`),
			pat(1, `\$\w+`),
		},
	}
}
