package validation

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atelier-catalog/internal/domain/artwork"
	"atelier-catalog/internal/transport/httpdto"
	"atelier-catalog/pkg/apierrors"
)

func strPtr(s string) *string { return &s }

func TestSanitizeString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"strips angle brackets", "<b>Hello</b>", "bHello/b"},
		{"trims whitespace", "  hello  ", "hello"},
		{"plain text unchanged", "Sunset over water", "Sunset over water"},
		{"script tag stripped", "<script>alert(1)</script>", "scriptalert(1)/script"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeString(tt.input))
		})
	}
}

func TestSanitizeTruncatesToCap(t *testing.T) {
	long := strings.Repeat("a", MaxTitle+50)
	got := sanitize(long, MaxTitle)
	assert.Len(t, got, MaxTitle)
}

func TestParseArtworkID(t *testing.T) {
	id := uuid.New()
	parsed, err := ParseArtworkID(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	_, err = ParseArtworkID("not-a-uuid")
	assert.ErrorIs(t, err, apierrors.ErrInvalidInput)
}

func TestParseCreateFields(t *testing.T) {
	t.Run("defaults to draft", func(t *testing.T) {
		fields, err := ParseCreateFields("", "", "", "")
		require.NoError(t, err)
		assert.Equal(t, artwork.StatusDraft, fields.Status)
		assert.Nil(t, fields.Price)
		assert.Nil(t, fields.ArtistNotes)
	})

	t.Run("parses all fields", func(t *testing.T) {
		fields, err := ParseCreateFields("Title", "notes", "99.95", "published")
		require.NoError(t, err)
		assert.Equal(t, "Title", fields.Title)
		require.NotNil(t, fields.ArtistNotes)
		assert.Equal(t, "notes", *fields.ArtistNotes)
		require.NotNil(t, fields.Price)
		assert.Equal(t, 99.95, *fields.Price)
		assert.Equal(t, artwork.StatusPublished, fields.Status)
	})

	t.Run("rejects non-numeric price", func(t *testing.T) {
		_, err := ParseCreateFields("", "", "abc", "")
		assert.ErrorIs(t, err, apierrors.ErrInvalidInput)
	})

	t.Run("rejects negative price", func(t *testing.T) {
		_, err := ParseCreateFields("", "", "-1", "")
		assert.ErrorIs(t, err, apierrors.ErrInvalidInput)
	})

	t.Run("rejects price above cap", func(t *testing.T) {
		_, err := ParseCreateFields("", "", "1000001", "")
		assert.ErrorIs(t, err, apierrors.ErrInvalidInput)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := ParseCreateFields("", "", "", "live")
		assert.ErrorIs(t, err, apierrors.ErrInvalidInput)
	})
}

func TestParseArtworkUpdate(t *testing.T) {
	t.Run("sanitizes string fields", func(t *testing.T) {
		u, err := ParseArtworkUpdate(httpdto.UpdateArtworkRequest{
			Title: strPtr("  <i>New</i>  "),
		})
		require.NoError(t, err)
		require.NotNil(t, u.Title)
		assert.Equal(t, "iNew/i", *u.Title)
	})

	t.Run("absent price leaves patch unset", func(t *testing.T) {
		u, err := ParseArtworkUpdate(httpdto.UpdateArtworkRequest{})
		require.NoError(t, err)
		assert.False(t, u.PriceSet)
		assert.False(t, u.ArtistNotesSet)
	})

	t.Run("explicit null price clears", func(t *testing.T) {
		u, err := ParseArtworkUpdate(httpdto.UpdateArtworkRequest{
			Price: httpdto.Nullable[float64]{Present: true},
		})
		require.NoError(t, err)
		assert.True(t, u.PriceSet)
		assert.Nil(t, u.Price)
	})

	t.Run("too many tags rejected", func(t *testing.T) {
		tags := make([]string, MaxTags+1)
		_, err := ParseArtworkUpdate(httpdto.UpdateArtworkRequest{Tags: &tags})
		assert.ErrorIs(t, err, apierrors.ErrInvalidInput)
	})

	t.Run("too many colors rejected", func(t *testing.T) {
		colors := make([]string, MaxColors+1)
		_, err := ParseArtworkUpdate(httpdto.UpdateArtworkRequest{Colors: &colors})
		assert.ErrorIs(t, err, apierrors.ErrInvalidInput)
	})

	t.Run("invalid status rejected", func(t *testing.T) {
		_, err := ParseArtworkUpdate(httpdto.UpdateArtworkRequest{Status: strPtr("hidden")})
		assert.ErrorIs(t, err, apierrors.ErrInvalidInput)
	})
}

func TestParseChatRequest(t *testing.T) {
	id := uuid.New().String()

	t.Run("valid request", func(t *testing.T) {
		in, err := ParseChatRequest(httpdto.ChatRequest{
			ArtworkID: id,
			Message:   " hello ",
			History:   []httpdto.ChatTurn{{Role: "user", Content: "hi"}},
		})
		require.NoError(t, err)
		assert.Equal(t, "hello", in.Message)
		assert.Len(t, in.History, 1)
	})

	t.Run("empty message rejected", func(t *testing.T) {
		_, err := ParseChatRequest(httpdto.ChatRequest{ArtworkID: id, Message: "   "})
		assert.ErrorIs(t, err, apierrors.ErrInvalidInput)
	})

	t.Run("bad history role rejected", func(t *testing.T) {
		_, err := ParseChatRequest(httpdto.ChatRequest{
			ArtworkID: id,
			Message:   "hi",
			History:   []httpdto.ChatTurn{{Role: "system", Content: "x"}},
		})
		assert.ErrorIs(t, err, apierrors.ErrInvalidInput)
	})

	t.Run("oversized history rejected", func(t *testing.T) {
		history := make([]httpdto.ChatTurn, MaxHistoryEntries+1)
		for i := range history {
			history[i] = httpdto.ChatTurn{Role: "user", Content: "x"}
		}
		_, err := ParseChatRequest(httpdto.ChatRequest{ArtworkID: id, Message: "hi", History: history})
		assert.ErrorIs(t, err, apierrors.ErrInvalidInput)
	})

	t.Run("long history content truncated", func(t *testing.T) {
		in, err := ParseChatRequest(httpdto.ChatRequest{
			ArtworkID: id,
			Message:   "hi",
			History:   []httpdto.ChatTurn{{Role: "user", Content: strings.Repeat("a", MaxHistoryContent+10)}},
		})
		require.NoError(t, err)
		assert.Len(t, in.History[0].Content, MaxHistoryContent)
	})
}

func TestParseExportRequest(t *testing.T) {
	t.Run("unknown format rejected", func(t *testing.T) {
		_, err := ParseExportRequest(httpdto.ExportRequest{Format: "xml"})
		assert.ErrorIs(t, err, apierrors.ErrInvalidInput)
	})

	t.Run("too many ids rejected", func(t *testing.T) {
		ids := make([]string, MaxExportIDs+1)
		for i := range ids {
			ids[i] = uuid.New().String()
		}
		_, err := ParseExportRequest(httpdto.ExportRequest{Format: "csv", ArtworkIDs: ids})
		assert.ErrorIs(t, err, apierrors.ErrInvalidInput)
	})

	t.Run("malformed id rejected", func(t *testing.T) {
		_, err := ParseExportRequest(httpdto.ExportRequest{Format: "csv", ArtworkIDs: []string{"nope"}})
		assert.ErrorIs(t, err, apierrors.ErrInvalidInput)
	})

	t.Run("status filter parsed", func(t *testing.T) {
		in, err := ParseExportRequest(httpdto.ExportRequest{Format: "velo", Status: "published"})
		require.NoError(t, err)
		assert.Equal(t, artwork.StatusPublished, in.Status)
	})
}

func TestParseCreateProducts(t *testing.T) {
	id := uuid.New().String()

	t.Run("empty types rejected", func(t *testing.T) {
		_, err := ParseCreateProducts(httpdto.CreateProductsRequest{ArtworkID: id})
		assert.ErrorIs(t, err, apierrors.ErrInvalidInput)
	})

	t.Run("too many types rejected", func(t *testing.T) {
		types := make([]string, MaxProductTypes+1)
		_, err := ParseCreateProducts(httpdto.CreateProductsRequest{ArtworkID: id, ProductTypes: types})
		assert.ErrorIs(t, err, apierrors.ErrInvalidInput)
	})

	t.Run("valid request", func(t *testing.T) {
		in, err := ParseCreateProducts(httpdto.CreateProductsRequest{
			ArtworkID:    id,
			ProductTypes: []string{"poster_12x18"},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"poster_12x18"}, in.ProductTypes)
	})
}

func TestValidateImageFile(t *testing.T) {
	assert.NoError(t, ValidateImageFile(1024, "image/jpeg"))
	assert.NoError(t, ValidateImageFile(MaxFileSize, "image/webp"))
	assert.ErrorIs(t, ValidateImageFile(MaxFileSize+1, "image/jpeg"), apierrors.ErrInvalidInput)
	assert.ErrorIs(t, ValidateImageFile(1024, "image/svg+xml"), apierrors.ErrInvalidInput)
	assert.ErrorIs(t, ValidateImageFile(1024, "application/pdf"), apierrors.ErrInvalidInput)
}
