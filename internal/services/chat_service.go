package services

import (
	"context"

	"atelier-catalog/internal/ai"
	"atelier-catalog/internal/repository"
	"atelier-catalog/internal/validation"
	"atelier-catalog/pkg/apierrors"
)

// ChatService answers visitor messages in the voice of one artwork.
type ChatService struct {
	repo     repository.ArtworkRepository
	analyzer ai.Analyzer
}

func NewChatService(repo repository.ArtworkRepository, analyzer ai.Analyzer) *ChatService {
	return &ChatService{repo: repo, analyzer: analyzer}
}

func (s *ChatService) Chat(ctx context.Context, in validation.ChatInput) (string, error) {
	a, err := s.repo.GetByID(ctx, in.ArtworkID)
	if err != nil {
		return "", err
	}
	if a.Personality == "" {
		return "", apierrors.Validation("this artwork does not have a personality configured")
	}

	history := make([]ai.Turn, 0, len(in.History))
	for _, turn := range in.History {
		history = append(history, ai.Turn{Role: turn.Role, Content: turn.Content})
	}

	return s.analyzer.ChatReply(ctx, a.Personality, a.Title, history, in.Message)
}
