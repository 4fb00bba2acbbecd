package components

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const (
	ScrollViewportWidth  = 640
	ScrollViewportHeight = 480

	ZoomStep    = 1.25
	ZoomMin     = 0.333
	ZoomMax     = 3.0
	zoomDefault = 1.0
)

// ImageDisplay shows the composited overlay and reports taps in image pixels.
type ImageDisplay struct {
	widget.BaseWidget

	raster *canvas.Image
	size   image.Point
	scale  float64
	fit    bool

	tapHandler func(x, y int)
}

func NewImageDisplay() *ImageDisplay {
	raster := canvas.NewImageFromImage(nil)
	raster.FillMode = canvas.ImageFillContain
	raster.ScaleMode = canvas.ImageScalePixels

	id := &ImageDisplay{
		raster: raster,
		scale:  zoomDefault,
	}
	id.ExtendBaseWidget(id)
	return id
}

func (id *ImageDisplay) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(id.raster)
}

func (id *ImageDisplay) MinSize() fyne.Size {
	if id.fit || id.size == (image.Point{}) {
		return fyne.NewSize(1, 1)
	}
	return fyne.NewSize(float32(float64(id.size.X)*id.scale), float32(float64(id.size.Y)*id.scale))
}

// SetImage replaces the displayed raster, keeping the current zoom.
func (id *ImageDisplay) SetImage(img image.Image) {
	var size image.Point
	if img != nil {
		size = img.Bounds().Size()
	}
	id.size = size
	id.raster.Image = img
	id.raster.Refresh()
	id.Refresh()
}

// ResetZoom returns to the 1.0 factor. Fit mode is left as it is.
func (id *ImageDisplay) ResetZoom() {
	id.scale = zoomDefault
	id.Refresh()
}

func (id *ImageDisplay) ZoomIn() {
	id.setScale(id.scale * ZoomStep)
}

func (id *ImageDisplay) ZoomOut() {
	id.setScale(id.scale / ZoomStep)
}

func (id *ImageDisplay) setScale(scale float64) {
	id.scale = scale
	id.fit = false
	id.Refresh()
}

func (id *ImageDisplay) SetFit(fit bool) {
	id.fit = fit
	id.Refresh()
}

func (id *ImageDisplay) Scale() float64 {
	return id.scale
}

func (id *ImageDisplay) Fit() bool {
	return id.fit
}

func (id *ImageDisplay) CanZoomIn() bool {
	return id.size != (image.Point{}) && id.scale < ZoomMax
}

func (id *ImageDisplay) CanZoomOut() bool {
	return id.size != (image.Point{}) && id.scale > ZoomMin
}

func (id *ImageDisplay) SetTapHandler(handler func(x, y int)) {
	id.tapHandler = handler
}

func (id *ImageDisplay) Tapped(ev *fyne.PointEvent) {
	x, y, ok := id.ImagePoint(ev.Position)
	if !ok || id.tapHandler == nil {
		return
	}
	id.tapHandler(x, y)
}

// ImagePoint maps a position inside the widget to pixel coordinates of the
// source image. Positions on the letterbox around a fitted image are rejected.
func (id *ImageDisplay) ImagePoint(pos fyne.Position) (int, int, bool) {
	if id.size.X == 0 || id.size.Y == 0 {
		return 0, 0, false
	}

	area := id.Size()
	w, h := float64(id.size.X), float64(id.size.Y)
	scale := min(float64(area.Width)/w, float64(area.Height)/h)
	if scale <= 0 {
		return 0, 0, false
	}

	offsetX := (float64(area.Width) - w*scale) / 2
	offsetY := (float64(area.Height) - h*scale) / 2
	fx := (float64(pos.X) - offsetX) / scale
	fy := (float64(pos.Y) - offsetY) / scale
	if fx < 0 || fy < 0 || fx >= w || fy >= h {
		return 0, 0, false
	}
	return int(fx), int(fy), true
}

// Viewport wraps the display in a scroll container while zoomed and shows it
// stretched over the available area while fitted.
type Viewport struct {
	display *ImageDisplay
	scroll  *container.Scroll
	stack   *fyne.Container
	fitted  bool
}

func NewViewport(display *ImageDisplay) *Viewport {
	scroll := container.NewScroll(container.NewCenter(display))
	scroll.SetMinSize(fyne.NewSize(ScrollViewportWidth, ScrollViewportHeight))

	return &Viewport{
		display: display,
		scroll:  scroll,
		stack:   container.NewStack(scroll),
	}
}

func (v *Viewport) GetContainer() *fyne.Container {
	return v.stack
}

// Sync swaps between the scrolling and fitted layouts to match the display.
func (v *Viewport) Sync() {
	if fit := v.display.Fit(); fit != v.fitted {
		v.fitted = fit
		if fit {
			v.stack.Objects = []fyne.CanvasObject{v.display}
		} else {
			v.scroll.Content = container.NewCenter(v.display)
			v.stack.Objects = []fyne.CanvasObject{v.scroll}
		}
		v.stack.Refresh()
	}
	v.scroll.Refresh()
}
