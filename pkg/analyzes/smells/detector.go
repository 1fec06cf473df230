package smells

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

type Finding struct {
	Type     string `json:"type"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Line     int    `json:"line,omitempty"`
}

type Report struct {
	CodeSmells  []Finding `json:"code_smells"`
	Suggestions []Finding `json:"suggestions"`
	AIScore     float64   `json:"ai_score"`
}

const (
	findingTypeSmell      = "code_smell"
	findingTypeSuggestion = "suggestion"

	severityWarning = "warning"
	severityInfo    = "info"
)

var (
	branchingRe   = regexp.MustCompile(`\b(if|for|while|switch|select|case|try|except|catch)\b`)
	assignedVarRe = regexp.MustCompile(`\b([A-Za-z])\s*:?=[^=]`)
	commentLineRe = regexp.MustCompile(`^(//|#|/\*|\*)`)
	blockSplitRe  = regexp.MustCompile(`\n\s*\n`)
)

type Detector struct {
	ComplexityThreshold      int
	MaintainabilityThreshold float64
	LongFunctionLines        int
}

func NewDetector() *Detector {
	return &Detector{
		ComplexityThreshold:      10,
		MaintainabilityThreshold: 20,
		LongFunctionLines:        20,
	}
}

type codeStats struct {
	loc             int
	branching       int
	maintainability float64
	commentCount    int
}

func (d Detector) Analyze(code string) *Report {
	stats := d.buildStats(code)
	smellFindings := d.detectSmells(code, stats)
	suggestions := d.buildSuggestions(code, stats)

	return &Report{
		CodeSmells:  smellFindings,
		Suggestions: suggestions,
		AIScore:     calcAIScore(len(smellFindings), len(suggestions)),
	}
}

func (d Detector) buildStats(code string) *codeStats {
	lines := strings.Split(code, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	loc := len(lines)

	commentCount := 0
	for _, line := range lines {
		if commentLineRe.MatchString(strings.TrimSpace(line)) {
			commentCount++
		}
	}

	branching := len(branchingRe.FindAllString(code, -1))

	maintainability := 100 - 0.5*float64(branching) - 0.1*float64(loc)
	if maintainability < 0 {
		maintainability = 0
	}
	if maintainability > 100 {
		maintainability = 100
	}

	return &codeStats{
		loc:             loc,
		branching:       branching,
		maintainability: maintainability,
		commentCount:    commentCount,
	}
}

func (d Detector) detectSmells(code string, stats *codeStats) []Finding {
	findings := []Finding{}

	if stats.branching > d.ComplexityThreshold {
		findings = append(findings, Finding{
			Type:     findingTypeSmell,
			Severity: severityWarning,
			Message:  fmt.Sprintf("High cyclomatic complexity (%d). Consider simplifying the logic.", stats.branching),
			Line:     1,
		})
	}

	if stats.maintainability < d.MaintainabilityThreshold {
		findings = append(findings, Finding{
			Type:     findingTypeSmell,
			Severity: severityWarning,
			Message:  fmt.Sprintf("Low maintainability index (%.2f). Consider improving code structure and documentation.", stats.maintainability),
			Line:     1,
		})
	}

	if stats.loc > d.LongFunctionLines {
		findings = append(findings, Finding{
			Type:     findingTypeSmell,
			Severity: severityWarning,
			Message:  fmt.Sprintf("Function is too long (%d lines). Consider breaking it down into smaller functions.", stats.loc),
			Line:     1,
		})
	}

	if hasDuplicatedBlocks(code) {
		findings = append(findings, Finding{
			Type:     findingTypeSmell,
			Severity: severityInfo,
			Message:  "Potential code duplication detected. Consider extracting common patterns into reusable functions.",
			Line:     1,
		})
	}

	return findings
}

func (d Detector) buildSuggestions(code string, stats *codeStats) []Finding {
	suggestions := []Finding{}

	if float64(stats.commentCount) < float64(stats.loc)*0.1 {
		suggestions = append(suggestions, Finding{
			Type:     findingTypeSuggestion,
			Severity: severityInfo,
			Message:  "Consider adding more documentation to improve code readability.",
			Line:     1,
		})
	}

	for _, name := range singleLetterVars(code) {
		suggestions = append(suggestions, Finding{
			Type:     findingTypeSuggestion,
			Severity: severityInfo,
			Message:  fmt.Sprintf("Variable %q is a single letter. Consider a more descriptive name.", name),
			Line:     1,
		})
	}

	if float64(stats.branching) > float64(d.ComplexityThreshold)*0.7 {
		suggestions = append(suggestions, Finding{
			Type:     findingTypeSuggestion,
			Severity: severityInfo,
			Message:  "Consider refactoring complex logic into smaller, more manageable functions.",
			Line:     1,
		})
	}

	return suggestions
}

// hasDuplicatedBlocks reports whether any blank-line-separated block of the
// code repeats verbatim.
func hasDuplicatedBlocks(code string) bool {
	blocks := blockSplitRe.Split(code, -1)
	seen := map[string]bool{}
	for _, block := range blocks {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		if seen[block] {
			return true
		}
		seen[block] = true
	}

	return false
}

func singleLetterVars(code string) []string {
	seen := map[string]bool{}
	for _, m := range assignedVarRe.FindAllStringSubmatch(code, -1) {
		seen[m[1]] = true
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

func calcAIScore(smellCount, suggestionCount int) float64 {
	score := 100 - 15*float64(smellCount) - 5*float64(suggestionCount)
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}

	return score
}
