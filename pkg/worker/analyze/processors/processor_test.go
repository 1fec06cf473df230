package processors

import (
	"encoding/json"
	"testing"

	"github.com/codequal/codequal-api/pkg/worker/analyze/linters/result"
	"github.com/codequal/codequal-api/pkg/worker/lib/errorutils"
	"github.com/codequal/codequal-api/pkg/worker/lib/fetchers"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCloneURL(t *testing.T) {
	assert.Equal(t, "https://github.com/owner/repo.git",
		buildCloneURL("owner/repo", ""))
	assert.Equal(t, "https://secrettoken@github.com/owner/repo.git",
		buildCloneURL("owner/repo", "secrettoken"))
}

func TestTransformError(t *testing.T) {
	assert.NoError(t, transformError(nil))

	err := transformError(errors.Wrap(fetchers.ErrNoBranchOrRepo, "clone failed"))
	assert.Equal(t, ErrUnrecoverable, errors.Cause(err))

	err = transformError(errors.Wrap(&errorutils.BadInputError{PublicDesc: "bad code"}, "analyze"))
	assert.Equal(t, ErrUnrecoverable, errors.Cause(err))

	retriable := errors.New("connection reset")
	assert.Equal(t, retriable, transformError(retriable))
}

func TestPublicError(t *testing.T) {
	assert.Equal(t, "internal oops",
		publicError(&errorutils.InternalError{PublicDesc: "internal oops", PrivateDesc: "secret"}))
	assert.Equal(t, "bad code",
		publicError(&errorutils.BadInputError{PublicDesc: "bad code"}))
	assert.Equal(t, fetchers.ErrNoBranchOrRepo.Error(),
		publicError(errors.Wrap(fetchers.ErrNoBranchOrRepo, "clone")))
	assert.Equal(t, "processing failed", publicError(errors.New("some db error")))
}

func TestBuildIssuesPayloadGroupsByToolKind(t *testing.T) {
	lintRes := &result.Result{
		Issues: []result.Issue{
			result.NewIssue("govet", result.TypeWarning, "unreachable code", "main.go", 10),
			result.NewIssue("gofmt", result.TypeWarning, "file is not gofmt-ed", "main.go", 0),
			result.NewIssue("gosec", result.TypeError, "weak crypto", "crypto.go", 12),
			result.NewIssue("govet", result.TypeWarning, "printf arg mismatch", "util.go", 3),
		},
	}

	payload := buildIssuesPayload(lintRes, nil)
	assert.Len(t, payload.Lint, 2)
	assert.Len(t, payload.Style, 1)
	assert.Len(t, payload.Security, 1)

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Contains(t, decoded, "lint")
	require.Contains(t, decoded, "style")
	require.Contains(t, decoded, "security")

	securityIssues := decoded["security"].([]interface{})
	require.Len(t, securityIssues, 1)
	issue := securityIssues[0].(map[string]interface{})
	assert.Equal(t, "error", issue["type"])
	assert.Equal(t, "weak crypto", issue["message"])
	assert.NotContains(t, issue, "from_tool")
}

func TestBuildIssuesPayloadEmptyResult(t *testing.T) {
	data, err := json.Marshal(buildIssuesPayload(&result.Result{}, nil))
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	// empty kinds stay as [] in the payload, not null
	for _, kind := range []string{"lint", "style", "security"} {
		arr, ok := decoded[kind].([]interface{})
		assert.True(t, ok, "kind %s", kind)
		assert.Empty(t, arr)
	}
}

func TestHasAnyExtension(t *testing.T) {
	assert.True(t, hasAnyExtension("a/b/c.go", []string{".go"}))
	assert.False(t, hasAnyExtension("a/b/c.py", []string{".go"}))
	assert.False(t, hasAnyExtension("a/b/c", []string{".go"}))
}
