package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"atelier-catalog/internal/ai"
	"atelier-catalog/internal/domain/artwork"
	"atelier-catalog/internal/imaging"
	"atelier-catalog/internal/repository"
	"atelier-catalog/internal/storage"
	"atelier-catalog/internal/validation"
)

// UploadService runs the creation flow: normalize the image, store the
// assets, let the AI derive metadata and a personality, then persist a draft
// record. Asset files are written before the record exists, so a failure
// mid-flow can leave orphaned files; they are content-addressed by a fresh id
// and harmless if unreferenced.
type UploadService struct {
	repo      repository.ArtworkRepository
	processor imaging.Processor
	assets    storage.AssetStore
	analyzer  ai.Analyzer
	now       func() time.Time
}

func NewUploadService(repo repository.ArtworkRepository, processor imaging.Processor, assets storage.AssetStore, analyzer ai.Analyzer) *UploadService {
	return &UploadService{
		repo:      repo,
		processor: processor,
		assets:    assets,
		analyzer:  analyzer,
		now:       time.Now,
	}
}

func (s *UploadService) Upload(ctx context.Context, data []byte, filename string, fields validation.CreateFields) (artwork.Artwork, error) {
	processed, err := s.processor.Process(data, filename)
	if err != nil {
		return artwork.Artwork{}, err
	}

	imagePath, err := s.assets.Save(ctx, processed.ImageName, processed.Image, processed.MediaType)
	if err != nil {
		return artwork.Artwork{}, err
	}
	thumbnailPath, err := s.assets.Save(ctx, processed.ThumbnailName, processed.Thumbnail, processed.MediaType)
	if err != nil {
		return artwork.Artwork{}, err
	}

	notes := ""
	if fields.ArtistNotes != nil {
		notes = *fields.ArtistNotes
	}

	analysis, err := s.analyzer.AnalyzeArtwork(ctx, processed.Base64, processed.MediaType, notes)
	if err != nil {
		return artwork.Artwork{}, err
	}

	title := fields.Title
	if title == "" {
		title = analysis.Title
	}

	personality, err := s.analyzer.GeneratePersonality(ctx, processed.Base64, processed.MediaType, ai.PersonalityInput{
		Title:       title,
		Description: analysis.Description,
		ArtistNotes: notes,
		Medium:      analysis.Medium,
		Mood:        analysis.Mood,
	})
	if err != nil {
		return artwork.Artwork{}, err
	}

	now := s.now().UTC()
	a := artwork.Artwork{
		ID:             uuid.New(),
		Title:          title,
		Description:    analysis.Description,
		SEOTitle:       analysis.SEOTitle,
		SEODescription: analysis.SEODescription,
		Tags:           analysis.Tags,
		Colors:         analysis.Colors,
		Mood:           analysis.Mood,
		Personality:    personality,
		Price:          fields.Price,
		Status:         fields.Status,
		ImagePath:      imagePath,
		ThumbnailPath:  thumbnailPath,
		OriginalWidth:  processed.OriginalWidth,
		OriginalHeight: processed.OriginalHeight,
		ArtistNotes:    fields.ArtistNotes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Create(ctx, &a); err != nil {
		return artwork.Artwork{}, err
	}
	return a, nil
}
