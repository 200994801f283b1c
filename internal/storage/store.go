package storage

import "context"

// UploadsPrefix is the public path segment assets are served under.
const UploadsPrefix = "/uploads/"

// AssetStore persists processed image assets and serves them back by public
// path. The repository only ever sees the public paths.
type AssetStore interface {
	Save(ctx context.Context, name string, data []byte, contentType string) (string, error)
	Remove(publicPath string) error
}
