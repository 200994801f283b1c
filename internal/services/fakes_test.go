package services

import (
	"context"

	"github.com/google/uuid"

	"atelier-catalog/internal/ai"
	"atelier-catalog/internal/domain/artwork"
	"atelier-catalog/internal/imaging"
	"atelier-catalog/internal/printful"
	"atelier-catalog/pkg/apierrors"
)

type fakeRepo struct {
	artworks []artwork.Artwork
	created  []artwork.Artwork
	getCalls int
}

func (r *fakeRepo) List(ctx context.Context) ([]artwork.Artwork, error) {
	return append([]artwork.Artwork(nil), r.artworks...), nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (artwork.Artwork, error) {
	r.getCalls++
	for _, a := range r.artworks {
		if a.ID == id {
			return a, nil
		}
	}
	return artwork.Artwork{}, apierrors.NotFound("artwork")
}

func (r *fakeRepo) ListByStatus(ctx context.Context, status artwork.Status) ([]artwork.Artwork, error) {
	var out []artwork.Artwork
	for _, a := range r.artworks {
		if a.Status == status {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]artwork.Artwork, error) {
	var out []artwork.Artwork
	for _, id := range ids {
		for _, a := range r.artworks {
			if a.ID == id {
				out = append(out, a)
			}
		}
	}
	return out, nil
}

func (r *fakeRepo) Create(ctx context.Context, a *artwork.Artwork) error {
	r.created = append(r.created, *a)
	r.artworks = append(r.artworks, *a)
	return nil
}

func (r *fakeRepo) Update(ctx context.Context, id uuid.UUID, u artwork.Update) (artwork.Artwork, error) {
	for i := range r.artworks {
		if r.artworks[i].ID == id {
			r.artworks[i].Apply(u)
			return r.artworks[i], nil
		}
	}
	return artwork.Artwork{}, apierrors.NotFound("artwork")
}

func (r *fakeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i := range r.artworks {
		if r.artworks[i].ID == id {
			r.artworks = append(r.artworks[:i], r.artworks[i+1:]...)
			return nil
		}
	}
	return apierrors.NotFound("artwork")
}

type fakeProcessor struct {
	result *imaging.Processed
	err    error
}

func (p *fakeProcessor) Process(buf []byte, originalFilename string) (*imaging.Processed, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.result, nil
}

type fakeAssets struct {
	saved   []string
	removed []string
	err     error
}

func (s *fakeAssets) Save(ctx context.Context, name string, data []byte, contentType string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.saved = append(s.saved, name)
	return "/uploads/" + name, nil
}

func (s *fakeAssets) Remove(publicPath string) error {
	s.removed = append(s.removed, publicPath)
	return nil
}

type fakeAnalyzer struct {
	analysis    *ai.Analysis
	personality string
	reply       string
	err         error

	chatHistory []ai.Turn
	chatMessage string
}

func (a *fakeAnalyzer) AnalyzeArtwork(ctx context.Context, imageBase64, mediaType, artistNotes string) (*ai.Analysis, error) {
	if a.err != nil {
		return nil, a.err
	}
	return a.analysis, nil
}

func (a *fakeAnalyzer) GeneratePersonality(ctx context.Context, imageBase64, mediaType string, input ai.PersonalityInput) (string, error) {
	if a.err != nil {
		return "", a.err
	}
	return a.personality, nil
}

func (a *fakeAnalyzer) ChatReply(ctx context.Context, personality, title string, history []ai.Turn, message string) (string, error) {
	if a.err != nil {
		return "", a.err
	}
	a.chatHistory = history
	a.chatMessage = message
	return a.reply, nil
}

type createdProduct struct {
	title       string
	imageURL    string
	retailPrice float64
	productType string
}

type fakeProductCreator struct {
	calls []createdProduct
	err   error
}

func (c *fakeProductCreator) CreateSyncProduct(ctx context.Context, title, imageURL string, retailPrice float64, productType string) (*printful.SyncProduct, error) {
	if c.err != nil {
		return nil, c.err
	}
	c.calls = append(c.calls, createdProduct{title: title, imageURL: imageURL, retailPrice: retailPrice, productType: productType})
	return &printful.SyncProduct{ID: len(c.calls), Name: printful.Products[productType].Name}, nil
}
