package reviewer

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	openai "github.com/sashabaranov/go-openai"
)

const (
	defaultModel = "gpt-4o-mini"
	maxTokens    = 2048

	systemPrompt = `You are a code reviewer. Review the submitted code and suggest concrete improvements.
Reply with a JSON object of the form {"suggestions": [{"type": "suggestion", "message": "..."}]}.
Reply with an empty suggestions list when the code needs no changes.`
)

// Suggestion is one reviewer remark parsed from the model reply.
type Suggestion struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type Reviewer struct {
	client *openai.Client
	model  string
}

// New builds a reviewer talking to the OpenAI API. The caller decides
// whether a key is configured at all: apiKey must not be empty here.
func New(apiKey, model string) *Reviewer {
	if model == "" {
		model = defaultModel
	}
	return &Reviewer{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (r *Reviewer) Review(ctx context.Context, code string) ([]Suggestion, error) {
	req := openai.ChatCompletionRequest{
		Model: r.model,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildUserPrompt(code)},
		},
	}
	// For reasoning models (o1/o3/o4/gpt-5*) use MaxCompletionTokens instead of MaxTokens
	if isReasoningModel(r.model) {
		req.MaxCompletionTokens = maxTokens
	} else {
		req.MaxTokens = maxTokens
	}

	resp, err := r.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create chat completion")
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("chat completion returned no choices")
	}

	return parseReply(resp.Choices[0].Message.Content)
}

func isReasoningModel(model string) bool {
	for _, prefix := range []string{"o1", "o3", "o4", "gpt-5"} {
		if strings.HasPrefix(model, prefix) {
			return true
		}
	}
	return false
}

func buildUserPrompt(code string) string {
	return fmt.Sprintf("Review this code:\n\n%s", code)
}

func parseReply(reply string) ([]Suggestion, error) {
	var parsed struct {
		Suggestions []Suggestion `json:"suggestions"`
	}
	if err := json.Unmarshal([]byte(strings.TrimSpace(reply)), &parsed); err != nil {
		return nil, errors.Wrapf(err, "can't parse reviewer reply %q", reply)
	}

	suggestions := make([]Suggestion, 0, len(parsed.Suggestions))
	for _, s := range parsed.Suggestions {
		if s.Message == "" {
			continue
		}
		if s.Type == "" {
			s.Type = "suggestion"
		}
		suggestions = append(suggestions, s)
	}
	return suggestions, nil
}
