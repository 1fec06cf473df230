package smells

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeCleanShortCode(t *testing.T) {
	code := "// doc\nfunc add(left, right int) int {\n\treturn left + right\n}\n"
	report := NewDetector().Analyze(code)

	assert.Empty(t, report.CodeSmells)
	assert.Empty(t, report.Suggestions)
	assert.Equal(t, 100.0, report.AIScore)
}

func TestAnalyzeHighComplexity(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 12; i++ {
		b.WriteString("if ready {\n\tcall()\n}\n")
	}
	report := NewDetector().Analyze(b.String())

	assertHasMessage(t, report.CodeSmells, "High cyclomatic complexity (12)")
	assertHasMessage(t, report.Suggestions, "refactoring complex logic")
}

func TestAnalyzeTooLong(t *testing.T) {
	code := strings.Repeat("callTheService()\n", 25)
	report := NewDetector().Analyze(code)

	assertHasMessage(t, report.CodeSmells, "too long (25 lines)")
}

func TestAnalyzeDuplicatedBlocks(t *testing.T) {
	block := "func handle() {\n\tserve()\n}\n"
	code := block + "\n" + block
	report := NewDetector().Analyze(code)

	assertHasMessage(t, report.CodeSmells, "code duplication")
}

func TestAnalyzeSuggestsDocumentation(t *testing.T) {
	code := strings.Repeat("callTheService()\n", 15)
	report := NewDetector().Analyze(code)

	assertHasMessage(t, report.Suggestions, "adding more documentation")
}

func TestAnalyzeSingleLetterVars(t *testing.T) {
	code := "// doc\n// doc\nx := compute()\ntotal := sum()\n"
	report := NewDetector().Analyze(code)

	assertHasMessage(t, report.Suggestions, `Variable "x" is a single letter`)
	for _, s := range report.Suggestions {
		assert.NotContains(t, s.Message, `"total"`)
	}
}

func TestAIScoreClamped(t *testing.T) {
	assert.Equal(t, 100.0, calcAIScore(0, 0))
	assert.Equal(t, 65.0, calcAIScore(2, 1))
	assert.Equal(t, 0.0, calcAIScore(7, 3))
}

func TestReportArraysAreNonNil(t *testing.T) {
	report := NewDetector().Analyze("")

	assert.NotNil(t, report.CodeSmells)
	assert.NotNil(t, report.Suggestions)
}

func assertHasMessage(t *testing.T, findings []Finding, substr string) {
	t.Helper()
	for _, f := range findings {
		if strings.Contains(f.Message, substr) {
			return
		}
	}
	t.Errorf("no finding contains %q in %+v", substr, findings)
}
