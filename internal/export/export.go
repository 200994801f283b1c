// Package export turns filtered artwork lists into commerce import payloads.
// Formatting only: no AI or network calls, deterministic for identical input.
package export

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"text/template"
	"time"

	"atelier-catalog/internal/domain/artwork"
)

const (
	FormatCSV  = "csv"
	FormatJSON = "json"
	FormatVelo = "velo"
)

const maxCSVDescription = 8000

// CSV renders rows for a commerce product import. Text fields are
// quote-escaped, descriptions truncated, visibility derived from the
// published status, and the collection column carries the first three tags.
func CSV(artworks []artwork.Artwork) string {
	headers := []string{
		"handleId",
		"name",
		"description",
		"price",
		"sku",
		"visible",
		"productImageUrl",
		"collection",
	}

	lines := make([]string, 0, len(artworks)+1)
	lines = append(lines, strings.Join(headers, ","))

	for _, a := range artworks {
		description := strings.ReplaceAll(a.Description, `"`, `""`)
		if len(description) > maxCSVDescription {
			description = description[:maxCSVDescription]
		}

		price := ""
		if a.Price != nil {
			price = strconv.FormatFloat(*a.Price, 'f', -1, 64)
		}

		tags := a.Tags
		if len(tags) > 3 {
			tags = tags[:3]
		}

		row := []string{
			a.ID.String(),
			`"` + strings.ReplaceAll(a.Title, `"`, `""`) + `"`,
			`"` + description + `"`,
			price,
			strings.ToUpper(a.ID.String()[:8]),
			strconv.FormatBool(a.Status == artwork.StatusPublished),
			a.ImagePath,
			`"` + strings.Join(tags, ", ") + `"`,
		}
		lines = append(lines, strings.Join(row, ","))
	}

	return strings.Join(lines, "\n")
}

type cmsItem struct {
	ID             string    `json:"_id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	SEOTitle       string    `json:"seoTitle"`
	SEODescription string    `json:"seoDescription"`
	Price          *float64  `json:"price"`
	Tags           []string  `json:"tags"`
	Colors         []string  `json:"colors"`
	Mood           string    `json:"mood"`
	Image          string    `json:"image"`
	Thumbnail      string    `json:"thumbnail"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
}

// JSON renders the structured document array for a CMS import, with a stable
// field-name mapping from the artwork model.
func JSON(artworks []artwork.Artwork) (string, error) {
	items := make([]cmsItem, 0, len(artworks))
	for _, a := range artworks {
		items = append(items, cmsItem{
			ID:             a.ID.String(),
			Title:          a.Title,
			Description:    a.Description,
			SEOTitle:       a.SEOTitle,
			SEODescription: a.SEODescription,
			Price:          a.Price,
			Tags:           a.Tags,
			Colors:         a.Colors,
			Mood:           a.Mood,
			Image:          a.ImagePath,
			Thumbnail:      a.ThumbnailPath,
			Status:         string(a.Status),
			CreatedAt:      a.CreatedAt,
		})
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

var veloTemplate = template.Must(template.New("velo").Parse(`// Wix Velo Code - Auto-generated artwork import
// Add this to your Wix backend code

import wixData from 'wix-data';

const artworks = {{.Snapshot}};

export async function importArtworks() {
  const results = [];

  for (const artwork of artworks) {
    try {
      const result = await wixData.insert('Artworks', {
        _id: artwork.id,
        title: artwork.title,
        price: artwork.price,
        tags: artwork.tags,
      });
      results.push({ id: artwork.id, success: true });
    } catch (error) {
      results.push({ id: artwork.id, success: false, error: error.message });
    }
  }

  return results;
}

// Call importArtworks() from a page or backend trigger
`))

type veloItem struct {
	ID    string   `json:"id"`
	Title string   `json:"title"`
	Price *float64 `json:"price"`
	Tags  []string `json:"tags"`
}

// Velo generates the automation script embedding a snapshot of the selected
// records for the downstream platform to execute.
func Velo(artworks []artwork.Artwork) (string, error) {
	items := make([]veloItem, 0, len(artworks))
	for _, a := range artworks {
		items = append(items, veloItem{
			ID:    a.ID.String(),
			Title: a.Title,
			Price: a.Price,
			Tags:  a.Tags,
		})
	}
	snapshot, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return "", err
	}

	var out strings.Builder
	if err := veloTemplate.Execute(&out, map[string]string{"Snapshot": string(snapshot)}); err != nil {
		return "", err
	}
	return out.String(), nil
}

// Filename suggests a download name for one export.
func Filename(format string, now time.Time) string {
	ms := now.UnixMilli()
	if format == FormatVelo {
		return fmt.Sprintf("artworks-velo-%d.js", ms)
	}
	return fmt.Sprintf("artworks-export-%d.%s", ms, format)
}
