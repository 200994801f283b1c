package services

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"atelier-catalog/internal/domain/artwork"
	"atelier-catalog/internal/repository"
)

type ArtworkService struct {
	repo repository.ArtworkRepository
}

func NewArtworkService(repo repository.ArtworkRepository) *ArtworkService {
	return &ArtworkService{repo: repo}
}

// List returns artworks newest-first, optionally narrowed to one status.
// Ordering is a caller concern; storage gives no guarantee.
func (s *ArtworkService) List(ctx context.Context, status artwork.Status) ([]artwork.Artwork, error) {
	var artworks []artwork.Artwork
	var err error
	if status != "" {
		artworks, err = s.repo.ListByStatus(ctx, status)
	} else {
		artworks, err = s.repo.List(ctx)
	}
	if err != nil {
		return nil, err
	}
	sort.Slice(artworks, func(i, j int) bool {
		return artworks[i].CreatedAt.After(artworks[j].CreatedAt)
	})
	return artworks, nil
}

func (s *ArtworkService) GetByID(ctx context.Context, id uuid.UUID) (artwork.Artwork, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ArtworkService) Update(ctx context.Context, id uuid.UUID, u artwork.Update) (artwork.Artwork, error) {
	return s.repo.Update(ctx, id, u)
}

func (s *ArtworkService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
