package repository

import (
	"context"

	"github.com/google/uuid"

	"atelier-catalog/internal/domain/artwork"
)

// ArtworkRepository owns the on-disk artwork collection. No other component
// reads or writes the backing document directly.
type ArtworkRepository interface {
	List(ctx context.Context) ([]artwork.Artwork, error)
	GetByID(ctx context.Context, id uuid.UUID) (artwork.Artwork, error)
	ListByStatus(ctx context.Context, status artwork.Status) ([]artwork.Artwork, error)
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]artwork.Artwork, error)
	Create(ctx context.Context, a *artwork.Artwork) error
	Update(ctx context.Context, id uuid.UUID, u artwork.Update) (artwork.Artwork, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// AssetRemover removes a stored asset by its public path. Used by Delete for
// best-effort cleanup of the image and thumbnail files.
type AssetRemover interface {
	Remove(publicPath string) error
}
