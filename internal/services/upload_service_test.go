package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atelier-catalog/internal/ai"
	"atelier-catalog/internal/domain/artwork"
	"atelier-catalog/internal/imaging"
	"atelier-catalog/internal/validation"
)

func testProcessed() *imaging.Processed {
	return &imaging.Processed{
		ImageName:      "abc.jpg",
		ThumbnailName:  "abc_thumb.jpg",
		Image:          []byte("main"),
		Thumbnail:      []byte("thumb"),
		OriginalWidth:  3000,
		OriginalHeight: 2000,
		Base64:         "ZGF0YQ==",
		MediaType:      "image/jpeg",
	}
}

func testAnalysis() *ai.Analysis {
	return &ai.Analysis{
		Title:          "Generated Title",
		Description:    "A moody landscape.",
		SEOTitle:       "Moody Landscape",
		SEODescription: "Original moody landscape painting.",
		Tags:           []string{"landscape", "moody"},
		Medium:         "oil on canvas",
		Colors:         []string{"#112233"},
		Mood:           "contemplative",
	}
}

func TestUploadService_CreatesDraftWithTimestamps(t *testing.T) {
	repo := &fakeRepo{}
	assets := &fakeAssets{}
	analyzer := &fakeAnalyzer{analysis: testAnalysis(), personality: "I am a quiet painting."}
	svc := NewUploadService(repo, &fakeProcessor{result: testProcessed()}, assets, analyzer)
	now := time.Date(2026, 4, 2, 9, 30, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	fields, err := validation.ParseCreateFields("", "", "", "")
	require.NoError(t, err)

	a, err := svc.Upload(context.Background(), []byte("raw"), "photo.jpg", fields)
	require.NoError(t, err)

	assert.Equal(t, artwork.StatusDraft, a.Status)
	assert.Equal(t, now, a.CreatedAt)
	assert.Equal(t, a.CreatedAt, a.UpdatedAt)
	assert.Equal(t, "Generated Title", a.Title)
	assert.Equal(t, "I am a quiet painting.", a.Personality)
	assert.Equal(t, "/uploads/abc.jpg", a.ImagePath)
	assert.Equal(t, "/uploads/abc_thumb.jpg", a.ThumbnailPath)
	assert.Equal(t, 3000, a.OriginalWidth)
	assert.Equal(t, 2000, a.OriginalHeight)
	assert.Nil(t, a.Price)

	require.Len(t, repo.created, 1)
	assert.Equal(t, a.ID, repo.created[0].ID)
	assert.Equal(t, []string{"abc.jpg", "abc_thumb.jpg"}, assets.saved)
}

func TestUploadService_ProvidedFieldsWinOverAnalysis(t *testing.T) {
	repo := &fakeRepo{}
	analyzer := &fakeAnalyzer{analysis: testAnalysis(), personality: "voice"}
	svc := NewUploadService(repo, &fakeProcessor{result: testProcessed()}, &fakeAssets{}, analyzer)

	fields, err := validation.ParseCreateFields("My Title", "painted at dusk", "149.50", "published")
	require.NoError(t, err)

	a, err := svc.Upload(context.Background(), []byte("raw"), "photo.png", fields)
	require.NoError(t, err)

	assert.Equal(t, "My Title", a.Title)
	assert.Equal(t, artwork.StatusPublished, a.Status)
	require.NotNil(t, a.Price)
	assert.Equal(t, 149.50, *a.Price)
	require.NotNil(t, a.ArtistNotes)
	assert.Equal(t, "painted at dusk", *a.ArtistNotes)
	// Analysis metadata still fills the descriptive fields.
	assert.Equal(t, "A moody landscape.", a.Description)
	assert.Equal(t, []string{"landscape", "moody"}, a.Tags)
}

func TestUploadService_ProcessorErrorAbortsBeforeStorage(t *testing.T) {
	repo := &fakeRepo{}
	assets := &fakeAssets{}
	svc := NewUploadService(repo, &fakeProcessor{err: assert.AnError}, assets, &fakeAnalyzer{})

	_, err := svc.Upload(context.Background(), []byte("raw"), "photo.jpg", validation.CreateFields{Status: artwork.StatusDraft})
	require.Error(t, err)
	assert.Empty(t, assets.saved)
	assert.Empty(t, repo.created)
}

func TestUploadService_AnalyzerErrorAbortsCreate(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewUploadService(repo, &fakeProcessor{result: testProcessed()}, &fakeAssets{}, &fakeAnalyzer{err: assert.AnError})

	_, err := svc.Upload(context.Background(), []byte("raw"), "photo.jpg", validation.CreateFields{Status: artwork.StatusDraft})
	require.Error(t, err)
	assert.Empty(t, repo.created)
}
