// Package imageio reads and writes the rasters shown in the annotator.
package imageio

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"pose-annotator/internal/logger"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported image format")
	ErrImageUnwritable   = errors.New("image unwritable")
)

// Loader decodes image files from disk.
type Loader struct {
	logger logger.Logger
}

func NewLoader(log logger.Logger) *Loader {
	if log == nil {
		log = logger.NoOp{}
	}
	return &Loader{logger: log}
}

func (l *Loader) Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	l.logger.Debug("ImageLoader", "image decoded", map[string]interface{}{
		"path":      path,
		"format":    format,
		"extension": strings.ToLower(filepath.Ext(path)),
		"width":     bounds.Dx(),
		"height":    bounds.Dy(),
	})

	return img, nil
}
