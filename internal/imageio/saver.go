package imageio

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// FormatForPath picks the encoder name from a file extension.
func FormatForPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "jpeg", nil
	case ".png":
		return "png", nil
	case ".gif":
		return "gif", nil
	case ".bmp":
		return "bmp", nil
	case ".tif", ".tiff":
		return "tiff", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Encode writes img to w in the named format.
func Encode(w io.Writer, img image.Image, format string) error {
	switch format {
	case "jpeg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 95})
	case "png":
		return png.Encode(w, img)
	case "gif":
		return gif.Encode(w, img, nil)
	case "bmp":
		return bmp.Encode(w, img)
	case "tiff":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// Save encodes img to path, choosing the format from the extension.
func (l *Loader) Save(path string, img image.Image) error {
	if _, err := FormatForPath(path); err != nil {
		return fmt.Errorf("%w: %w", ErrImageUnwritable, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrImageUnwritable, err)
	}

	if err := l.Write(f, path, img); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrImageUnwritable, err)
	}
	return nil
}

// Write encodes img to w in the format named by the extension of name.
func (l *Loader) Write(w io.Writer, name string, img image.Image) error {
	if img == nil {
		return fmt.Errorf("%w: no image data to save", ErrImageUnwritable)
	}

	format, err := FormatForPath(name)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrImageUnwritable, err)
	}

	if err := Encode(w, img, format); err != nil {
		return fmt.Errorf("%w: %w", ErrImageUnwritable, err)
	}

	l.logger.Info("ImageSaver", "image saved", map[string]interface{}{
		"path":   name,
		"format": format,
	})
	return nil
}
