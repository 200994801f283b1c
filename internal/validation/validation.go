package validation

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	"atelier-catalog/internal/domain/artwork"
	"atelier-catalog/internal/transport/httpdto"
	"atelier-catalog/pkg/apierrors"
)

// Field length caps. Strings are sanitized and truncated to these; list sizes
// and numeric ranges are hard rejections.
const (
	MaxStringLength    = 10000
	MaxTitle           = 200
	MaxDescription     = 5000
	MaxSEOTitle        = 70
	MaxSEODescription  = 160
	MaxTag             = 50
	MaxTags            = 20
	MaxColor           = 20
	MaxColors          = 10
	MaxMood            = 100
	MaxPersonality     = 2000
	MaxArtistNotes     = 2000
	MaxChatMessage     = 2000
	MaxHistoryContent  = 5000
	MaxHistoryEntries  = 50
	MaxExportIDs       = 100
	MaxProductTypes    = 20
	MaxProductTypeName = 50
	MaxPrice           = 1_000_000
)

// File upload constraints.
const MaxFileSize = 10 * 1024 * 1024 // 10MB

var AllowedImageTypes = []string{"image/jpeg", "image/png", "image/webp", "image/gif"}

// SanitizeString strips < and > to prevent naive HTML injection, trims
// whitespace and caps the length.
func SanitizeString(s string) string {
	return sanitize(s, MaxStringLength)
}

func sanitize(s string, max int) string {
	s = strings.NewReplacer("<", "", ">", "").Replace(s)
	s = strings.TrimSpace(s)
	if len(s) > max {
		s = s[:max]
	}
	return s
}

func sanitizePtr(s *string, max int) *string {
	if s == nil {
		return nil
	}
	clean := sanitize(*s, max)
	return &clean
}

// ParseArtworkID validates the identifier shape before any storage lookup, so
// a malformed id is a bad request rather than a not-found.
func ParseArtworkID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, apierrors.Validation("invalid artwork ID format")
	}
	return parsed, nil
}

func validatePrice(price float64) error {
	if price < 0 || price > MaxPrice {
		return apierrors.Validation("price must be between 0 and %d", MaxPrice)
	}
	return nil
}

func parseStatus(s string) (artwork.Status, error) {
	status := artwork.Status(s)
	if !status.Valid() {
		return "", apierrors.Validation("status must be one of draft, published, archived")
	}
	return status, nil
}

// CreateFields is the sanitized optional metadata accompanying an upload.
type CreateFields struct {
	Title       string
	ArtistNotes *string
	Price       *float64
	Status      artwork.Status
}

// ParseCreateFields validates the multipart form fields of the upload flow.
// All fields arrive as strings; empty means absent.
func ParseCreateFields(title, artistNotes, price, status string) (CreateFields, error) {
	fields := CreateFields{
		Title:  sanitize(title, MaxTitle),
		Status: artwork.StatusDraft,
	}
	if notes := sanitize(artistNotes, MaxArtistNotes); notes != "" {
		fields.ArtistNotes = &notes
	}
	if price != "" {
		parsed, err := strconv.ParseFloat(price, 64)
		if err != nil {
			return CreateFields{}, apierrors.Validation("price must be a number")
		}
		if err := validatePrice(parsed); err != nil {
			return CreateFields{}, err
		}
		fields.Price = &parsed
	}
	if status != "" {
		parsed, err := parseStatus(status)
		if err != nil {
			return CreateFields{}, err
		}
		fields.Status = parsed
	}
	return fields, nil
}

// ParseArtworkUpdate turns the update request into a sanitized domain patch.
// The first violation wins.
func ParseArtworkUpdate(req httpdto.UpdateArtworkRequest) (artwork.Update, error) {
	u := artwork.Update{
		Title:          sanitizePtr(req.Title, MaxTitle),
		Description:    sanitizePtr(req.Description, MaxDescription),
		SEOTitle:       sanitizePtr(req.SEOTitle, MaxSEOTitle),
		SEODescription: sanitizePtr(req.SEODescription, MaxSEODescription),
		Mood:           sanitizePtr(req.Mood, MaxMood),
		Personality:    sanitizePtr(req.Personality, MaxPersonality),
	}
	if req.Tags != nil {
		if len(*req.Tags) > MaxTags {
			return artwork.Update{}, apierrors.Validation("at most %d tags allowed", MaxTags)
		}
		tags := make([]string, 0, len(*req.Tags))
		for _, t := range *req.Tags {
			tags = append(tags, sanitize(t, MaxTag))
		}
		u.Tags = &tags
	}
	if req.Colors != nil {
		if len(*req.Colors) > MaxColors {
			return artwork.Update{}, apierrors.Validation("at most %d colors allowed", MaxColors)
		}
		colors := make([]string, 0, len(*req.Colors))
		for _, c := range *req.Colors {
			colors = append(colors, sanitize(c, MaxColor))
		}
		u.Colors = &colors
	}
	if req.Price.Present {
		u.PriceSet = true
		if req.Price.Value != nil {
			if err := validatePrice(*req.Price.Value); err != nil {
				return artwork.Update{}, err
			}
			u.Price = req.Price.Value
		}
	}
	if req.Status != nil {
		status, err := parseStatus(*req.Status)
		if err != nil {
			return artwork.Update{}, err
		}
		u.Status = &status
	}
	if req.ArtistNotes.Present {
		u.ArtistNotesSet = true
		u.ArtistNotes = sanitizePtr(req.ArtistNotes.Value, MaxArtistNotes)
	}
	return u, nil
}

// ChatInput is a validated chat request.
type ChatInput struct {
	ArtworkID uuid.UUID
	Message   string
	History   []httpdto.ChatTurn
}

func ParseChatRequest(req httpdto.ChatRequest) (ChatInput, error) {
	id, err := ParseArtworkID(req.ArtworkID)
	if err != nil {
		return ChatInput{}, err
	}
	message := sanitize(req.Message, MaxChatMessage)
	if message == "" {
		return ChatInput{}, apierrors.Validation("message is required")
	}
	if len(req.History) > MaxHistoryEntries {
		return ChatInput{}, apierrors.Validation("history is limited to %d entries", MaxHistoryEntries)
	}
	history := make([]httpdto.ChatTurn, 0, len(req.History))
	for _, turn := range req.History {
		if turn.Role != "user" && turn.Role != "assistant" {
			return ChatInput{}, apierrors.Validation("history role must be user or assistant")
		}
		content := turn.Content
		if len(content) > MaxHistoryContent {
			content = content[:MaxHistoryContent]
		}
		history = append(history, httpdto.ChatTurn{Role: turn.Role, Content: content})
	}
	return ChatInput{ArtworkID: id, Message: message, History: history}, nil
}

// ExportInput is a validated export request. Exactly one of IDs or Status
// narrows the selection; both empty means every record.
type ExportInput struct {
	Format string
	IDs    []uuid.UUID
	Status artwork.Status
}

func ParseExportRequest(req httpdto.ExportRequest) (ExportInput, error) {
	switch req.Format {
	case "csv", "json", "velo":
	default:
		return ExportInput{}, apierrors.Validation("format must be one of csv, json, velo")
	}
	in := ExportInput{Format: req.Format}
	if len(req.ArtworkIDs) > MaxExportIDs {
		return ExportInput{}, apierrors.Validation("at most %d artwork ids allowed", MaxExportIDs)
	}
	for _, raw := range req.ArtworkIDs {
		id, err := ParseArtworkID(raw)
		if err != nil {
			return ExportInput{}, err
		}
		in.IDs = append(in.IDs, id)
	}
	if req.Status != "" {
		status, err := parseStatus(req.Status)
		if err != nil {
			return ExportInput{}, err
		}
		in.Status = status
	}
	return in, nil
}

// ProductInput is a validated product-creation request.
type ProductInput struct {
	ArtworkID    uuid.UUID
	ProductTypes []string
}

func ParseCreateProducts(req httpdto.CreateProductsRequest) (ProductInput, error) {
	id, err := ParseArtworkID(req.ArtworkID)
	if err != nil {
		return ProductInput{}, err
	}
	if len(req.ProductTypes) == 0 {
		return ProductInput{}, apierrors.Validation("at least one product type is required")
	}
	if len(req.ProductTypes) > MaxProductTypes {
		return ProductInput{}, apierrors.Validation("at most %d product types allowed", MaxProductTypes)
	}
	types := make([]string, 0, len(req.ProductTypes))
	for _, t := range req.ProductTypes {
		types = append(types, sanitize(t, MaxProductTypeName))
	}
	return ProductInput{ArtworkID: id, ProductTypes: types}, nil
}

// ValidateImageFile rejects oversized files and media types outside the
// raster-image allow-list.
func ValidateImageFile(size int64, contentType string) error {
	if size > MaxFileSize {
		return apierrors.Validation("file size exceeds %dMB limit", MaxFileSize/1024/1024)
	}
	for _, t := range AllowedImageTypes {
		if contentType == t {
			return nil
		}
	}
	return apierrors.Validation("invalid file type, allowed: %s", strings.Join(AllowedImageTypes, ", "))
}
