package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"atelier-catalog/pkg/apierrors"
)

// AnthropicClient talks to Claude for analysis, personality generation and
// chat replies. A missing API key degrades every call to an explicit
// not-configured error.
type AnthropicClient struct {
	client     anthropic.Client
	model      string
	configured bool
}

func NewAnthropicClient(apiKey, model string) *AnthropicClient {
	return &AnthropicClient{
		client:     anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:      model,
		configured: apiKey != "",
	}
}

func (c *AnthropicClient) AnalyzeArtwork(ctx context.Context, imageBase64, mediaType, artistNotes string) (*Analysis, error) {
	if !c.configured {
		return nil, fmt.Errorf("AI analysis: %w", apierrors.ErrNotConfigured)
	}

	notes := ""
	if artistNotes != "" {
		notes = fmt.Sprintf("Artist's notes about this piece: %s", artistNotes)
	}

	prompt := fmt.Sprintf(`You are an art analyst helping catalog artwork for an artist's portfolio and e-commerce site.

Analyze this artwork image and provide:
1. A compelling title (if not provided)
2. An artistic description (2-3 sentences capturing the essence)
3. SEO-optimized title (for web search)
4. SEO meta description (under 160 characters)
5. Relevant tags for categorization (5-10 tags)
6. Detected medium (painting, digital, mixed media, resin, jewelry, etc.)
7. Dominant colors (list 3-5 colors)
8. Overall mood/emotion

%s

Respond in JSON format:
{
  "title": "...",
  "description": "...",
  "seoTitle": "...",
  "seoDescription": "...",
  "tags": ["..."],
  "medium": "...",
  "colors": ["..."],
  "mood": "..."
}`, notes)

	text, err := c.send(ctx, 1024, "", []anthropic.MessageParam{
		anthropic.NewUserMessage(
			anthropic.NewImageBlockBase64(mediaType, imageBase64),
			anthropic.NewTextBlock(prompt),
		),
	})
	if err != nil {
		return nil, err
	}

	jsonStr, err := extractJSON(text)
	if err != nil {
		return nil, fmt.Errorf("parse analysis response: %w", err)
	}
	var analysis Analysis
	if err := json.Unmarshal([]byte(jsonStr), &analysis); err != nil {
		return nil, fmt.Errorf("decode analysis response: %w", err)
	}
	return &analysis, nil
}

func (c *AnthropicClient) GeneratePersonality(ctx context.Context, imageBase64, mediaType string, input PersonalityInput) (string, error) {
	if !c.configured {
		return "", fmt.Errorf("personality generation: %w", apierrors.ErrNotConfigured)
	}

	prompt := fmt.Sprintf(`You are helping create a unique AI personality for an artwork that will "speak" to viewers.

The artwork details:
- Title: %s
- Description: %s
- Medium: %s
- Mood: %s
- Artist's notes: %s

Create a personality prompt/system message that will allow this artwork to speak as itself when viewers interact with it. The artwork should:
- Speak in first person as if it IS the artwork
- Reflect its visual elements, mood, and meaning
- Be thoughtful, poetic, and engaging
- Help viewers understand the artist's intention and shift their perspective
- Not break character or reference being an AI

Write a personality description (2-3 paragraphs) that captures how this artwork would speak, think, and engage with viewers. This will be used as a system prompt for conversations.`,
		input.Title, input.Description, input.Medium, input.Mood, input.ArtistNotes)

	return c.send(ctx, 1024, "", []anthropic.MessageParam{
		anthropic.NewUserMessage(
			anthropic.NewImageBlockBase64(mediaType, imageBase64),
			anthropic.NewTextBlock(prompt),
		),
	})
}

func (c *AnthropicClient) ChatReply(ctx context.Context, personality, title string, history []Turn, message string) (string, error) {
	if !c.configured {
		return "", fmt.Errorf("chat: %w", apierrors.ErrNotConfigured)
	}

	system := fmt.Sprintf(`You are the artwork "%s". %s

Remember: You ARE this artwork. Speak from your own perspective as a piece of art. Be thoughtful, evocative, and help the viewer see new perspectives. Never break character.`, title, personality)

	messages := make([]anthropic.MessageParam, 0, len(history)+1)
	for _, turn := range history {
		if turn.Role == "assistant" {
			messages = append(messages, anthropic.NewAssistantMessage(anthropic.NewTextBlock(turn.Content)))
		} else {
			messages = append(messages, anthropic.NewUserMessage(anthropic.NewTextBlock(turn.Content)))
		}
	}
	messages = append(messages, anthropic.NewUserMessage(anthropic.NewTextBlock(message)))

	return c.send(ctx, 512, system, messages)
}

func (c *AnthropicClient) send(ctx context.Context, maxTokens int64, system string, messages []anthropic.MessageParam) (string, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: maxTokens,
		Messages:  messages,
	}
	if system != "" {
		params.System = []anthropic.TextBlockParam{{Text: system}}
	}

	msg, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("ai api call: %w", err)
	}
	if len(msg.Content) == 0 {
		return "", fmt.Errorf("empty response from ai service")
	}
	return msg.Content[0].Text, nil
}

// extractJSON finds the first complete JSON object in a string.
func extractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON object found in response")
	}
	out := s[start : end+1]
	if !json.Valid([]byte(out)) {
		return "", fmt.Errorf("response does not contain valid JSON")
	}
	return out, nil
}
