package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pose-annotator/internal/annotation"
)

func whiteImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.White)
		}
	}
	return img
}

func rgb(img image.Image, x, y int) [3]uint8 {
	r, g, b, _ := img.At(x, y).RGBA()
	return [3]uint8{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)}
}

func TestOverlay_DrawsPointsAndLines(t *testing.T) {
	base := whiteImage(100, 100)
	marks := annotation.Marks{
		Points: []image.Point{image.Pt(20, 20)},
		Segments: []annotation.Segment{
			{From: image.Pt(10, 80), To: image.Pt(90, 80)},
		},
	}

	out, err := NewOverlay(annotation.DefaultStyle()).Render(base, marks)
	require.NoError(t, err)
	assert.Equal(t, base.Bounds(), out.Bounds())

	assert.Equal(t, [3]uint8{255, 0, 0}, rgb(out, 20, 20), "point colour")
	assert.Equal(t, [3]uint8{128, 0, 0}, rgb(out, 50, 80), "line colour")
	assert.Equal(t, [3]uint8{255, 255, 255}, rgb(out, 50, 50), "untouched background")
}

func TestOverlay_LeavesBaseUntouched(t *testing.T) {
	base := whiteImage(40, 40)
	marks := annotation.Marks{Points: []image.Point{image.Pt(10, 10)}}

	_, err := NewOverlay(annotation.DefaultStyle()).Render(base, marks)
	require.NoError(t, err)
	assert.Equal(t, [3]uint8{255, 255, 255}, rgb(base, 10, 10))
}

func TestOverlay_NilBase(t *testing.T) {
	_, err := NewOverlay(annotation.DefaultStyle()).Render(nil, annotation.Marks{})
	assert.Error(t, err)
}

func TestOverlay_EmptyBase(t *testing.T) {
	_, err := NewOverlay(annotation.DefaultStyle()).Render(image.NewRGBA(image.Rect(0, 0, 0, 0)), annotation.Marks{})
	assert.ErrorContains(t, err, "invalid dimensions")
}

func TestValidateDimensions(t *testing.T) {
	assert.NoError(t, validateDimensions(640, 480, "test"))
	assert.Error(t, validateDimensions(0, 480, "test"))
	assert.Error(t, validateDimensions(maxDimension+1, 10, "test"))
}
