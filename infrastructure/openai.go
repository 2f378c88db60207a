package infrastructure

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

const systemPrompt = "You are a helpful resume-screening assistant."

const scoringPrompt = `
You are a resume screening assistant.

Given this resume and job description:

Resume:
%s

Job Description:
%s

Extract:
- Candidate Name
- Match Percentage (0–100%%)
- Matching Skills
- Missing Skills
- Feedback (1-2 lines)

Respond ONLY in this format:
Candidate Name: ...
Match Percentage: ...%%
Matching Skills: ...
Missing Skills: ...
Feedback: ...
`

// OpenAIScorer scores one resume against a job description with a single
// synchronous chat completion. No retry, no backoff.
type OpenAIScorer struct {
	client *openai.Client
	model  string
}

func NewOpenAIScorer(apiKey, model string) *OpenAIScorer {
	return &OpenAIScorer{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// Score returns the model's raw response text. The pipeline parses the five
// labeled fields out of it.
func (s *OpenAIScorer) Score(ctx context.Context, resumeText, jobDescription string) (string, error) {
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf(scoringPrompt, resumeText, jobDescription)},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}
	return resp.Choices[0].Message.Content, nil
}
