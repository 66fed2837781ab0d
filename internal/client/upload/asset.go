// Package upload resolves a locally selected profile image into a stable
// reference URL by transmitting it to the external hosting service.
package upload

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
)

// Asset is a locally selected file pending upload.
type Asset struct {
	Name      string
	MediaType string
	Data      []byte
}

// allowedMediaTypes is the fixed allow-list for profile images.
var allowedMediaTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
}

// FromFile reads the file at path and detects its media type from the
// content, not the extension.
func FromFile(path string) (*Asset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read asset: %w", err)
	}

	return &Asset{
		Name:      filepath.Base(path),
		MediaType: mimetype.Detect(data).String(),
		Data:      data,
	}, nil
}
