package golinters

import (
	"testing"

	"github.com/codequal/codequal-api/pkg/worker/analyze/linters/result"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGoVetOutput(t *testing.T) {
	out := `# example.com/proj
{
	"example.com/proj": {
		"printf": [
			{
				"posn": "/src/main.go:10:2",
				"message": "Printf format %d has arg s of wrong type string"
			}
		],
		"unreachable": [
			{
				"posn": "/src/util.go:25:3",
				"message": "unreachable code"
			}
		]
	}
}
# example.com/proj/sub
{
	"example.com/proj/sub": {
		"printf": [
			{
				"posn": "/src/sub/sub.go:5:1",
				"message": "Sprintf call has arguments but no formatting directives"
			}
		]
	}
}
`

	issues, err := parseGoVetOutput(out)
	require.NoError(t, err)
	require.Len(t, issues, 3)

	byRule := map[string]int{}
	for _, i := range issues {
		assert.Equal(t, "govet", i.FromTool)
		assert.Equal(t, result.TypeWarning, i.Type)
		assert.NotEmpty(t, i.Message)
		assert.NotEmpty(t, i.File)
		assert.NotZero(t, i.Line)
		byRule[i.RuleID]++
	}
	assert.Equal(t, 2, byRule["printf"])
	assert.Equal(t, 1, byRule["unreachable"])
}

func TestParseGoVetOutputEmpty(t *testing.T) {
	issues, err := parseGoVetOutput("")
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestParseGoVetOutputInvalidJSON(t *testing.T) {
	_, err := parseGoVetOutput("vet: no Go files in /src")
	assert.Error(t, err)
}

func TestParsePosn(t *testing.T) {
	file, line, column := parsePosn("/src/main.go:10:2")
	assert.Equal(t, "/src/main.go", file)
	assert.Equal(t, 10, line)
	assert.Equal(t, 2, column)

	file, line, column = parsePosn("C:/src/main.go:3:14")
	assert.Equal(t, "C:/src/main.go", file)
	assert.Equal(t, 3, line)
	assert.Equal(t, 14, column)

	file, line, column = parsePosn("garbage")
	assert.Equal(t, "garbage", file)
	assert.Zero(t, line)
	assert.Zero(t, column)
}
