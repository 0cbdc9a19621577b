package generator

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIGenerator implémente Generator sur l'API chat completions
type OpenAIGenerator struct {
	client *openai.Client
	model  string
}

func NewOpenAIGenerator(apiKey, model string) *OpenAIGenerator {
	return &OpenAIGenerator{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (g *OpenAIGenerator) GenerateStory(ctx context.Context, p StoryPrompt) (string, error) {
	system := fmt.Sprintf(
		"You are a language teacher. Write a short story in %s for a %s learner. "+
			"After the story, add a translation in %s.",
		p.TargetLanguage, p.Level, p.NativeLanguage,
	)
	user := "Write the story."
	if p.Topic != "" {
		user = fmt.Sprintf("Write the story about: %s", p.Topic)
	}

	return g.complete(ctx, []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: system},
		{Role: openai.ChatMessageRoleUser, Content: user},
	})
}

func (g *OpenAIGenerator) Practice(ctx context.Context, p ChatPrompt) (string, error) {
	messages := []openai.ChatCompletionMessage{
		{
			Role: openai.ChatMessageRoleSystem,
			Content: fmt.Sprintf(
				"You are a friendly conversation partner speaking %s with a %s learner. "+
					"Keep replies short and correct their mistakes gently.",
				p.TargetLanguage, p.Level,
			),
		},
	}
	for _, turn := range p.History {
		role := openai.ChatMessageRoleUser
		if turn.Role == "assistant" {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{Role: role, Content: turn.Content})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: p.Message,
	})

	return g.complete(ctx, messages)
}

func (g *OpenAIGenerator) ExplainWord(ctx context.Context, p WordPrompt) (string, error) {
	prompt := fmt.Sprintf(
		"Explain the %s word %q to a %s speaker: meaning, pronunciation hint, "+
			"and two example sentences.",
		p.TargetLanguage, p.Word, p.NativeLanguage,
	)
	if p.Context != "" {
		prompt += fmt.Sprintf(" The word appeared in this context: %q.", p.Context)
	}

	return g.complete(ctx, []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleUser, Content: prompt},
	})
}

func (g *OpenAIGenerator) complete(ctx context.Context, messages []openai.ChatCompletionMessage) (string, error) {
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    g.model,
		Messages: messages,
	})
	if err != nil {
		return "", fmt.Errorf("text generation failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("text generation returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
