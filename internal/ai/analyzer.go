package ai

import "context"

// Analysis is the structured metadata the model derives from one image.
type Analysis struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	SEOTitle       string   `json:"seoTitle"`
	SEODescription string   `json:"seoDescription"`
	Tags           []string `json:"tags"`
	Medium         string   `json:"medium"`
	Colors         []string `json:"colors"`
	Mood           string   `json:"mood"`
}

// PersonalityInput carries the artwork context for voice generation.
type PersonalityInput struct {
	Title       string
	Description string
	ArtistNotes string
	Medium      string
	Mood        string
}

type Turn struct {
	Role    string
	Content string
}

// Analyzer is the narrow capability surface over the generative model, so the
// lifecycle logic can run against deterministic fakes.
type Analyzer interface {
	AnalyzeArtwork(ctx context.Context, imageBase64, mediaType, artistNotes string) (*Analysis, error)
	GeneratePersonality(ctx context.Context, imageBase64, mediaType string, input PersonalityInput) (string, error)
	ChatReply(ctx context.Context, personality, title string, history []Turn, message string) (string, error)
}
