package imaging

import (
	"encoding/base64"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/h2non/bimg"
)

const (
	// MaxMainSize caps the longest edge of the stored image.
	MaxMainSize = 2000
	// ThumbnailSize is the square cover-crop thumbnail edge.
	ThumbnailSize = 400
	// AnalysisSize caps the payload sent to the AI service.
	AnalysisSize = 1024
)

// Processed is the normalized output of one uploaded image: a full-size
// asset, a thumbnail, and a compact base64 form for AI consumption.
type Processed struct {
	ImageName      string
	ThumbnailName  string
	Image          []byte
	Thumbnail      []byte
	OriginalWidth  int
	OriginalHeight int
	Base64         string
	MediaType      string
}

// Processor normalizes uploaded bytes into catalog assets.
type Processor interface {
	Process(buf []byte, originalFilename string) (*Processed, error)
}

// BimgProcessor resizes through libvips.
type BimgProcessor struct{}

func NewBimgProcessor() *BimgProcessor {
	return &BimgProcessor{}
}

func (p *BimgProcessor) Process(buf []byte, originalFilename string) (*Processed, error) {
	id := uuid.New().String()

	ext := strings.ToLower(filepath.Ext(originalFilename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp", ".gif":
	default:
		ext = ".jpg"
	}

	var outType bimg.ImageType
	var mediaType string
	outExt := ext
	switch ext {
	case ".png":
		outType, mediaType = bimg.PNG, "image/png"
	case ".webp":
		outType, mediaType = bimg.WEBP, "image/webp"
	case ".gif":
		// GIF converts to PNG to preserve transparency.
		outType, mediaType = bimg.PNG, "image/png"
		outExt = ".png"
	default:
		outType, mediaType = bimg.JPEG, "image/jpeg"
	}

	size, err := bimg.NewImage(buf).Size()
	if err != nil {
		return nil, fmt.Errorf("read image metadata: %w", err)
	}

	mainW, mainH := fitWithin(size.Width, size.Height, MaxMainSize)
	main, err := bimg.NewImage(buf).Process(bimg.Options{
		Width:   mainW,
		Height:  mainH,
		Quality: 85,
		Type:    outType,
	})
	if err != nil {
		return nil, fmt.Errorf("process main image: %w", err)
	}

	thumb, err := bimg.NewImage(buf).Process(bimg.Options{
		Width:   ThumbnailSize,
		Height:  ThumbnailSize,
		Crop:    true,
		Gravity: bimg.GravityCentre,
		Quality: 80,
		Type:    outType,
	})
	if err != nil {
		return nil, fmt.Errorf("process thumbnail: %w", err)
	}

	aiW, aiH := fitWithin(size.Width, size.Height, AnalysisSize)
	aiPayload, err := bimg.NewImage(buf).Process(bimg.Options{
		Width:   aiW,
		Height:  aiH,
		Quality: 70,
		Type:    outType,
	})
	if err != nil {
		return nil, fmt.Errorf("process analysis image: %w", err)
	}

	return &Processed{
		ImageName:      id + outExt,
		ThumbnailName:  id + "_thumb" + outExt,
		Image:          main,
		Thumbnail:      thumb,
		OriginalWidth:  size.Width,
		OriginalHeight: size.Height,
		Base64:         base64.StdEncoding.EncodeToString(aiPayload),
		MediaType:      mediaType,
	}, nil
}

// fitWithin scales dimensions down to fit inside max, never enlarging.
func fitWithin(w, h, max int) (int, int) {
	if w <= max && h <= max {
		return w, h
	}
	if w >= h {
		return max, h * max / w
	}
	return w * max / h, max
}
