package artwork

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
)

// Valid reports whether s is one of the three lifecycle states.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusArchived:
		return true
	}
	return false
}

// Artwork is the persisted catalog entity for one uploaded piece.
type Artwork struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	SEOTitle       string    `json:"seoTitle"`
	SEODescription string    `json:"seoDescription"`
	Tags           []string  `json:"tags"`
	Colors         []string  `json:"colors"`
	Mood           string    `json:"mood"`
	Personality    string    `json:"personality"`
	Price          *float64  `json:"price"`
	Status         Status    `json:"status"`
	ImagePath      string    `json:"imagePath"`
	ThumbnailPath  string    `json:"thumbnailPath"`
	OriginalWidth  int       `json:"originalWidth"`
	OriginalHeight int       `json:"originalHeight"`
	ArtistNotes    *string   `json:"artistNotes"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Update is a partial-field patch. Nil pointers leave the record untouched;
// Price and ArtistNotes carry an explicit set flag so a null can clear them.
type Update struct {
	Title          *string
	Description    *string
	SEOTitle       *string
	SEODescription *string
	Tags           *[]string
	Colors         *[]string
	Mood           *string
	Personality    *string
	Price          *float64
	PriceSet       bool
	Status         *Status
	ArtistNotes    *string
	ArtistNotesSet bool
}

// Apply merges the patch over the record. Identifier, asset paths and
// CreatedAt are never touched; the caller bumps UpdatedAt.
func (a *Artwork) Apply(u Update) {
	if u.Title != nil {
		a.Title = *u.Title
	}
	if u.Description != nil {
		a.Description = *u.Description
	}
	if u.SEOTitle != nil {
		a.SEOTitle = *u.SEOTitle
	}
	if u.SEODescription != nil {
		a.SEODescription = *u.SEODescription
	}
	if u.Tags != nil {
		a.Tags = *u.Tags
	}
	if u.Colors != nil {
		a.Colors = *u.Colors
	}
	if u.Mood != nil {
		a.Mood = *u.Mood
	}
	if u.Personality != nil {
		a.Personality = *u.Personality
	}
	if u.PriceSet {
		a.Price = u.Price
	}
	if u.Status != nil {
		a.Status = *u.Status
	}
	if u.ArtistNotesSet {
		a.ArtistNotes = u.ArtistNotes
	}
}
