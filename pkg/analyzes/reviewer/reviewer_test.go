package reviewer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReply(t *testing.T) {
	reply := `{"suggestions": [
		{"type": "naming", "message": "Rename x to something descriptive"},
		{"message": "Add error handling"}
	]}`

	suggestions, err := parseReply(reply)
	require.NoError(t, err)
	require.Len(t, suggestions, 2)
	assert.Equal(t, Suggestion{Type: "naming", Message: "Rename x to something descriptive"}, suggestions[0])
	assert.Equal(t, Suggestion{Type: "suggestion", Message: "Add error handling"}, suggestions[1])
}

func TestParseReplySkipsEmptyMessages(t *testing.T) {
	suggestions, err := parseReply(`{"suggestions": [{"type": "style", "message": ""}]}`)
	require.NoError(t, err)
	assert.Empty(t, suggestions)
}

func TestParseReplyEmptyList(t *testing.T) {
	suggestions, err := parseReply(` {"suggestions": []} `)
	require.NoError(t, err)
	assert.NotNil(t, suggestions)
	assert.Empty(t, suggestions)
}

func TestParseReplyInvalidJSON(t *testing.T) {
	_, err := parseReply("sorry, I can't review that")
	assert.Error(t, err)
}

func TestIsReasoningModel(t *testing.T) {
	assert.True(t, isReasoningModel("o3-2025-04-16"))
	assert.True(t, isReasoningModel("gpt-5-mini"))
	assert.False(t, isReasoningModel("gpt-4o-mini"))
}
