package components

import (
	"image"
	"testing"

	"pose-annotator/internal/annotation"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

func TestImageDisplay_MapsZoomedTap(t *testing.T) {
	test.NewTempApp(t)

	display := NewImageDisplay()
	display.SetImage(image.NewRGBA(image.Rect(0, 0, 64, 48)))
	display.ZoomIn()
	display.Resize(display.MinSize())

	var gotX, gotY int
	display.SetTapHandler(func(x, y int) { gotX, gotY = x, y })
	display.Tapped(&fyne.PointEvent{Position: fyne.NewPos(25, 12.5)})

	if gotX != 20 || gotY != 10 {
		t.Errorf("tap mapped to (%d, %d), want (20, 10)", gotX, gotY)
	}
}

func TestImageDisplay_FitRejectsLetterbox(t *testing.T) {
	test.NewTempApp(t)

	display := NewImageDisplay()
	display.SetImage(image.NewRGBA(image.Rect(0, 0, 100, 50)))
	display.SetFit(true)
	display.Resize(fyne.NewSize(200, 200))

	// Fitted at scale 2, centered vertically with a 50 unit band above.
	if _, _, ok := display.ImagePoint(fyne.NewPos(10, 20)); ok {
		t.Error("expected tap on the letterbox to be rejected")
	}
	x, y, ok := display.ImagePoint(fyne.NewPos(100, 100))
	if !ok || x != 50 || y != 25 {
		t.Errorf("ImagePoint = (%d, %d, %v), want (50, 25, true)", x, y, ok)
	}
}

func TestImageDisplay_ZoomLimits(t *testing.T) {
	test.NewTempApp(t)

	display := NewImageDisplay()
	if display.CanZoomIn() {
		t.Error("zoom should be disabled without an image")
	}

	display.SetImage(image.NewRGBA(image.Rect(0, 0, 10, 10)))
	for display.CanZoomIn() {
		display.ZoomIn()
	}
	if display.Scale() < ZoomMax {
		t.Errorf("scale %.3f stopped below the maximum", display.Scale())
	}

	display.ResetZoom()
	for display.CanZoomOut() {
		display.ZoomOut()
	}
	if display.Scale() > ZoomMin {
		t.Errorf("scale %.3f stopped above the minimum", display.Scale())
	}
}

func TestSidePanel_ButtonsDispatchCommands(t *testing.T) {
	test.NewTempApp(t)

	panel := NewSidePanel()
	var got []annotation.Command
	panel.SetCommandHandler(func(cmd annotation.Command) { got = append(got, cmd) })

	test.Tap(panel.Buttons[annotation.CommandSkip])
	test.Tap(panel.Buttons[annotation.CommandUndo])

	want := []annotation.Command{annotation.CommandSkip, annotation.CommandUndo}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("dispatched %v, want %v", got, want)
	}
}

func TestHintSegments_Colors(t *testing.T) {
	segments := HintSegments(annotation.Hints(2))
	if len(segments) != annotation.SchemaSize {
		t.Fatalf("got %d segments", len(segments))
	}

	for i, seg := range segments {
		text := seg.(*widget.TextSegment)
		want := theme.ColorNameForeground
		if i < 2 {
			want = theme.ColorNameDisabled
		}
		if text.Style.ColorName != want {
			t.Errorf("segment %d (%s) color %q, want %q", i, text.Text, text.Style.ColorName, want)
		}
		if text.Text != annotation.Schema[i] {
			t.Errorf("segment %d text %q, want %q", i, text.Text, annotation.Schema[i])
		}
	}
}

func TestStatusBar(t *testing.T) {
	test.NewTempApp(t)

	bar := NewStatusBar()
	bar.SetStatus("Saved to /tmp/a.txt")
	if bar.Status() != "Saved to /tmp/a.txt" {
		t.Errorf("status = %q", bar.Status())
	}
}
