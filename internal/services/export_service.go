package services

import (
	"context"
	"time"

	"atelier-catalog/internal/domain/artwork"
	"atelier-catalog/internal/export"
	"atelier-catalog/internal/repository"
	"atelier-catalog/internal/transport/httpdto"
	"atelier-catalog/internal/validation"
	"atelier-catalog/pkg/apierrors"
)

// ExportService renders a selection of the catalog into a downloadable format.
type ExportService struct {
	repo repository.ArtworkRepository
	now  func() time.Time
}

func NewExportService(repo repository.ArtworkRepository) *ExportService {
	return &ExportService{repo: repo, now: time.Now}
}

func (s *ExportService) Export(ctx context.Context, in validation.ExportInput) (httpdto.ExportResponse, error) {
	artworks, err := s.selectArtworks(ctx, in)
	if err != nil {
		return httpdto.ExportResponse{}, err
	}
	if len(artworks) == 0 {
		return httpdto.ExportResponse{}, apierrors.Validation("no artworks found matching the criteria")
	}

	var data string
	switch in.Format {
	case export.FormatCSV:
		data = export.CSV(artworks)
	case export.FormatJSON:
		data, err = export.JSON(artworks)
	case export.FormatVelo:
		data, err = export.Velo(artworks)
	}
	if err != nil {
		return httpdto.ExportResponse{}, err
	}

	return httpdto.ExportResponse{
		Type:     in.Format,
		Data:     data,
		Filename: export.Filename(in.Format, s.now()),
	}, nil
}

func (s *ExportService) selectArtworks(ctx context.Context, in validation.ExportInput) ([]artwork.Artwork, error) {
	if len(in.IDs) > 0 {
		return s.repo.ListByIDs(ctx, in.IDs)
	}
	if in.Status != "" {
		return s.repo.ListByStatus(ctx, in.Status)
	}
	return s.repo.List(ctx)
}
