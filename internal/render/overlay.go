// Package render paints keypoint overlays with OpenCV.
package render

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"pose-annotator/internal/annotation"
)

// Overlay implements annotation.Renderer.
type Overlay struct {
	style annotation.Style
}

func NewOverlay(style annotation.Style) *Overlay {
	return &Overlay{style: style}
}

// Render draws filled joint circles, then wireframe lines, onto a BGR copy
// of base and converts the result back to an RGBA image.
func (o *Overlay) Render(base image.Image, marks annotation.Marks) (image.Image, error) {
	if base == nil {
		return nil, fmt.Errorf("input image is nil")
	}

	bounds := base.Bounds()
	if err := validateDimensions(bounds.Dx(), bounds.Dy(), "Render"); err != nil {
		return nil, err
	}

	mat, err := gocv.ImageToMatRGB(base)
	if err != nil {
		return nil, fmt.Errorf("failed to convert image to Mat: %w", err)
	}
	defer mat.Close()

	if err := validateMat(mat, "Render"); err != nil {
		return nil, err
	}

	// Mat coordinates start at zero; images may not.
	origin := bounds.Min

	for _, p := range marks.Points {
		gocv.Circle(&mat, p.Sub(origin), o.style.PointRadius, o.style.PointColor, -1)
	}
	for _, s := range marks.Segments {
		gocv.Line(&mat, s.From.Sub(origin), s.To.Sub(origin), o.style.LineColor, o.style.LineWidth)
	}

	out, err := mat.ToImage()
	if err != nil {
		return nil, fmt.Errorf("failed to convert Mat to image: %w", err)
	}
	return out, nil
}
