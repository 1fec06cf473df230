package analyzes

import (
	"testing"

	"github.com/codequal/codequal-api/pkg/api/models"
	"github.com/stretchr/testify/assert"
)

func TestBuildAnalysisInfoCarriesSubmission(t *testing.T) {
	analysis := &models.Analysis{
		GUID:          "guid-1",
		Status:        models.AnalysisStatusCompleted,
		Code:          "package main\n\nfunc main() {}\n",
		Language:      "go",
		Repository:    "owner/repo",
		Branch:        "master",
		CommitSHA:     "abc123",
		CommitMessage: "fix race",
		CommitAuthor:  "Dev Eloper",
	}

	info := buildAnalysisInfo(analysis)
	assert.Equal(t, analysis.Code, info.Code)
	assert.Equal(t, analysis.CommitMessage, info.CommitMessage)
	assert.Equal(t, analysis.CommitAuthor, info.CommitAuthor)
	assert.Equal(t, analysis.Repository, info.Repository)
}

func TestParseRepoRef(t *testing.T) {
	testCases := []struct {
		ref   string
		owner string
		name  string
	}{
		{"golang/go", "golang", "go"},
		{"Golang/Go", "golang", "go"},
		{" golang/go ", "golang", "go"},
		{"golang/go.git", "golang", "go"},
		{"https://github.com/golang/go", "golang", "go"},
		{"https://github.com/golang/go.git", "golang", "go"},
		{"https://github.com/Golang/Tools/", "golang", "tools"},
	}

	for _, tc := range testCases {
		owner, name, err := parseRepoRef(tc.ref)
		assert.NoError(t, err, "ref %q", tc.ref)
		assert.Equal(t, tc.owner, owner, "ref %q", tc.ref)
		assert.Equal(t, tc.name, name, "ref %q", tc.ref)
	}
}

func TestParseRepoRefErrors(t *testing.T) {
	badRefs := []string{
		"",
		"   ",
		"golang",
		"golang/go/extra",
		"/go",
		"golang/",
		"https://gitlab.com/golang/go",
	}

	for _, ref := range badRefs {
		_, _, err := parseRepoRef(ref)
		assert.Error(t, err, "ref %q", ref)
	}
}
