package golinters

import (
	"testing"

	"github.com/codequal/codequal-api/pkg/worker/analyze/linters/result"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGoSecOutput(t *testing.T) {
	out := `{
	"Issues": [
		{
			"severity": "HIGH",
			"confidence": "HIGH",
			"rule_id": "G401",
			"details": "Use of weak cryptographic primitive",
			"file": "/src/crypto.go",
			"code": "md5.New()",
			"line": "12",
			"column": "9"
		},
		{
			"severity": "MEDIUM",
			"confidence": "HIGH",
			"rule_id": "G304",
			"details": "Potential file inclusion via variable",
			"file": "/src/read.go",
			"code": "ioutil.ReadFile(path)",
			"line": "33-35",
			"column": "2"
		}
	],
	"Stats": {"files": 2, "lines": 100, "nosec": 0, "found": 2}
}`

	issues, err := parseGoSecOutput(out)
	require.NoError(t, err)
	require.Len(t, issues, 2)

	assert.Equal(t, "gosec", issues[0].FromTool)
	assert.Equal(t, "G401", issues[0].RuleID)
	assert.Equal(t, "/src/crypto.go", issues[0].File)
	assert.Equal(t, 12, issues[0].Line)
	assert.Equal(t, 9, issues[0].Column)
	assert.Contains(t, issues[0].Message, "weak cryptographic")
	assert.Contains(t, issues[0].Message, "severity: HIGH")
	assert.Equal(t, result.TypeError, issues[0].Type)

	assert.Equal(t, 33, issues[1].Line)
	assert.Equal(t, result.TypeWarning, issues[1].Type)
}

func TestGoSecIssueType(t *testing.T) {
	assert.Equal(t, result.TypeError, goSecIssueType("HIGH"))
	assert.Equal(t, result.TypeWarning, goSecIssueType("MEDIUM"))
	assert.Equal(t, result.TypeInfo, goSecIssueType("LOW"))
	assert.Equal(t, result.TypeWarning, goSecIssueType(""))
}

func TestParseGoSecOutputNoJSON(t *testing.T) {
	issues, err := parseGoSecOutput("")
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestParseGoSecLine(t *testing.T) {
	assert.Equal(t, 10, parseGoSecLine("10"))
	assert.Equal(t, 10, parseGoSecLine("10-12"))
	assert.Zero(t, parseGoSecLine("abc"))
}
