package metrics

import (
	"math"
	"regexp"
	"strings"
)

type Metrics struct {
	CodeSize      int     `json:"code_size"`
	FunctionCount int     `json:"function_count"`
	ClassCount    int     `json:"class_count"`
	CommentRatio  float64 `json:"comment_ratio"`
	Complexity    float64 `json:"complexity_score"`

	// StyleScore is filled by the processor after scoring: it derives from
	// the lint issue count, not from the source text.
	StyleScore   float64  `json:"style_score"`
	TestCoverage *float64 `json:"test_coverage,omitempty"`
}

// Language describes how to read sources of one language: which file name
// direct submissions get, which files belong to it in a cloned repo and how
// to classify its lines. Only line comments are recognized: a block comment
// counts when its line starts with the marker.
type Language struct {
	Name       string
	FileName   string
	Extensions []string

	commentPrefix string
	funcRe        *regexp.Regexp
	classRe       *regexp.Regexp
}

var languages = map[string]Language{
	"go": {
		Name:          "go",
		FileName:      "main.go",
		Extensions:    []string{".go"},
		commentPrefix: "//",
		funcRe:        regexp.MustCompile(`(?m)^\s*func\s+(\([^)]*\)\s*)?[A-Za-z_]\w*\s*\(`),
		classRe:       regexp.MustCompile(`(?m)^\s*type\s+[A-Za-z_]\w*\s+(struct|interface)\b`),
	},
	"python": {
		Name:          "python",
		FileName:      "main.py",
		Extensions:    []string{".py"},
		commentPrefix: "#",
		funcRe:        regexp.MustCompile(`(?m)^\s*def\s+\w+\s*\(`),
		classRe:       regexp.MustCompile(`(?m)^\s*class\s+\w+`),
	},
	"javascript": {
		Name:          "javascript",
		FileName:      "main.js",
		Extensions:    []string{".js"},
		commentPrefix: "//",
		funcRe:        regexp.MustCompile(`(?m)\bfunction\s+\w+\s*\(|\b(?:const|let|var)\s+\w+\s*=\s*(?:async\s+)?\([^)]*\)\s*=>`),
		classRe:       regexp.MustCompile(`(?m)\bclass\s+\w+`),
	},
}

// Lookup returns the table entry for name, falling back to Go.
func Lookup(name string) Language {
	if lang, ok := languages[strings.ToLower(name)]; ok {
		return lang
	}

	return languages["go"]
}

func (l Language) Compute(code string) *Metrics {
	var codeLines, commentLines int
	lines := splitLines(code)
	for _, line := range lines {
		line = strings.TrimSpace(line)
		switch {
		case line == "":
		case strings.HasPrefix(line, l.commentPrefix):
			commentLines++
		default:
			codeLines++
		}
	}

	functionCount := len(l.funcRe.FindAllString(code, -1))
	classCount := len(l.classRe.FindAllString(code, -1))

	var commentRatio float64
	if len(lines) > 0 {
		commentRatio = float64(commentLines) / float64(len(lines)) * 100
	}

	complexity := float64(functionCount)*2 + float64(codeLines)*0.1

	return &Metrics{
		CodeSize:      codeLines,
		FunctionCount: functionCount,
		ClassCount:    classCount,
		CommentRatio:  round2(commentRatio),
		Complexity:    round2(complexity),
	}
}

func splitLines(code string) []string {
	lines := strings.Split(code, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	return lines
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
