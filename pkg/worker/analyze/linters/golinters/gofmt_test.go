package golinters

import (
	"testing"

	"github.com/codequal/codequal-api/pkg/worker/analyze/linters/result"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGoFmtOutput(t *testing.T) {
	issues := parseGoFmtOutput("main.go\npkg/util.go\n")
	require.Len(t, issues, 2)

	assert.Equal(t, "gofmt", issues[0].FromTool)
	assert.Equal(t, result.TypeWarning, issues[0].Type)
	assert.Equal(t, "file is not gofmt-ed", issues[0].Message)
	assert.Equal(t, "main.go", issues[0].File)
	assert.Equal(t, "pkg/util.go", issues[1].File)
}

func TestParseGoFmtOutputClean(t *testing.T) {
	assert.Empty(t, parseGoFmtOutput(""))
	assert.Empty(t, parseGoFmtOutput("\n\n"))
}
