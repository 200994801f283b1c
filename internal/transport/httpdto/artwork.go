package httpdto

// UpdateArtworkRequest is the partial-field body of PUT /api/artworks/:id.
// Every field is optional; price and artistNotes accept an explicit null.
type UpdateArtworkRequest struct {
	Title          *string           `json:"title"`
	Description    *string           `json:"description"`
	SEOTitle       *string           `json:"seoTitle"`
	SEODescription *string           `json:"seoDescription"`
	Tags           *[]string         `json:"tags"`
	Colors         *[]string         `json:"colors"`
	Mood           *string           `json:"mood"`
	Personality    *string           `json:"personality"`
	Price          Nullable[float64] `json:"price"`
	Status         *string           `json:"status"`
	ArtistNotes    Nullable[string]  `json:"artistNotes"`
}

type UploadConstraints struct {
	MaxFileSize  int64    `json:"maxFileSize"`
	AllowedTypes []string `json:"allowedTypes"`
}
