package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"atelier-catalog/internal/domain/artwork"
	"atelier-catalog/pkg/apierrors"
)

const artworksFile = "artworks.json"

// FileArtworkRepository keeps the whole collection in one JSON document and
// rewrites it on every mutation. Reads and writes are full-document; there is
// no cross-process locking or optimistic concurrency, so concurrent writers
// race and the last write wins. The mutex only serializes writers inside this
// process so the file itself never interleaves.
type FileArtworkRepository struct {
	mu     sync.Mutex
	path   string
	assets AssetRemover
	now    func() time.Time
}

func NewFileArtworkRepository(dataDir string, assets AssetRemover) *FileArtworkRepository {
	return &FileArtworkRepository{
		path:   filepath.Join(dataDir, artworksFile),
		assets: assets,
		now:    time.Now,
	}
}

func (r *FileArtworkRepository) ensureFile() error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	if _, err := os.Stat(r.path); os.IsNotExist(err) {
		return os.WriteFile(r.path, []byte("[]"), 0644)
	}
	return nil
}

func (r *FileArtworkRepository) load() ([]artwork.Artwork, error) {
	if err := r.ensureFile(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("read artworks file: %w", err)
	}
	var artworks []artwork.Artwork
	if err := json.Unmarshal(data, &artworks); err != nil {
		return nil, fmt.Errorf("decode artworks file: %w", err)
	}
	return artworks, nil
}

func (r *FileArtworkRepository) save(artworks []artwork.Artwork) error {
	data, err := json.MarshalIndent(artworks, "", "  ")
	if err != nil {
		return fmt.Errorf("encode artworks: %w", err)
	}
	if err := os.WriteFile(r.path, data, 0644); err != nil {
		return fmt.Errorf("write artworks file: %w", err)
	}
	return nil
}

func (r *FileArtworkRepository) List(ctx context.Context) ([]artwork.Artwork, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

func (r *FileArtworkRepository) GetByID(ctx context.Context, id uuid.UUID) (artwork.Artwork, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	artworks, err := r.load()
	if err != nil {
		return artwork.Artwork{}, err
	}
	for _, a := range artworks {
		if a.ID == id {
			return a, nil
		}
	}
	return artwork.Artwork{}, apierrors.NotFound("artwork")
}

func (r *FileArtworkRepository) ListByStatus(ctx context.Context, status artwork.Status) ([]artwork.Artwork, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	artworks, err := r.load()
	if err != nil {
		return nil, err
	}
	filtered := make([]artwork.Artwork, 0, len(artworks))
	for _, a := range artworks {
		if a.Status == status {
			filtered = append(filtered, a)
		}
	}
	return filtered, nil
}

// ListByIDs returns records whose id is in the given set. Unknown ids are
// silently omitted.
func (r *FileArtworkRepository) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]artwork.Artwork, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	artworks, err := r.load()
	if err != nil {
		return nil, err
	}
	wanted := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}
	filtered := make([]artwork.Artwork, 0, len(ids))
	for _, a := range artworks {
		if _, ok := wanted[a.ID]; ok {
			filtered = append(filtered, a)
		}
	}
	return filtered, nil
}

// Create appends a pre-populated, already-validated record and persists the
// full collection.
func (r *FileArtworkRepository) Create(ctx context.Context, a *artwork.Artwork) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	artworks, err := r.load()
	if err != nil {
		return err
	}
	artworks = append(artworks, *a)
	return r.save(artworks)
}

func (r *FileArtworkRepository) Update(ctx context.Context, id uuid.UUID, u artwork.Update) (artwork.Artwork, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	artworks, err := r.load()
	if err != nil {
		return artwork.Artwork{}, err
	}
	for i := range artworks {
		if artworks[i].ID != id {
			continue
		}
		artworks[i].Apply(u)
		artworks[i].UpdatedAt = r.now().UTC()
		if err := r.save(artworks); err != nil {
			return artwork.Artwork{}, err
		}
		return artworks[i], nil
	}
	return artwork.Artwork{}, apierrors.NotFound("artwork")
}

// Delete removes the record and persists. The two asset files are unlinked
// best-effort first; their failure never blocks record deletion.
func (r *FileArtworkRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	artworks, err := r.load()
	if err != nil {
		return err
	}
	for i := range artworks {
		if artworks[i].ID != id {
			continue
		}
		if r.assets != nil {
			if artworks[i].ImagePath != "" {
				_ = r.assets.Remove(artworks[i].ImagePath)
			}
			if artworks[i].ThumbnailPath != "" {
				_ = r.assets.Remove(artworks[i].ThumbnailPath)
			}
		}
		artworks = append(artworks[:i], artworks[i+1:]...)
		return r.save(artworks)
	}
	return apierrors.NotFound("artwork")
}
