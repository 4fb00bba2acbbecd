package app

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pose-annotator/internal/annotation"
	"pose-annotator/internal/config"
	"pose-annotator/internal/logger"
	"pose-annotator/internal/shutdown"

	"fyne.io/fyne/v2/test"
)

func writeFrame(t *testing.T, path string) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 40, 30))
	img.Set(1, 1, color.RGBA{G: 200, A: 255})

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
}

func newTestApplication(t *testing.T) *Application {
	t.Helper()
	a, err := newApplication(test.NewTempApp(t), config.Default(), nil, shutdown.NewManager(logger.NoOp{}))
	if err != nil {
		t.Fatalf("newApplication: %v", err)
	}
	a.guiManager.Install()
	return a
}

func TestHandlers_AnnotateExportAndAdvance(t *testing.T) {
	a := newTestApplication(t)
	h := a.handlers

	dir := t.TempDir()
	first := filepath.Join(dir, "frame_009.png")
	second := filepath.Join(dir, "frame_010.png")
	writeFrame(t, first)
	writeFrame(t, second)

	h.OpenPath(first)
	if got := a.guiManager.Status(); !strings.HasPrefix(got, "Opened ") || !strings.HasSuffix(got, "40x30") {
		t.Errorf("status after open = %q", got)
	}
	if a.config.Dialogs.LastDirectory != dir {
		t.Errorf("remembered directory = %q, want %q", a.config.Dialogs.LastDirectory, dir)
	}

	h.HandleCommand(annotation.CommandExport)
	if got := a.guiManager.Status(); !strings.HasPrefix(got, "export failed") {
		t.Errorf("status after early export = %q", got)
	}

	for i := 0; i < annotation.SchemaSize; i++ {
		h.HandleClick(i, i+1)
	}
	h.HandleClick(5, 5)
	if got := a.guiManager.Status(); got != "All joints recorded" {
		t.Errorf("status after extra click = %q", got)
	}

	h.HandleCommand(annotation.CommandExport)
	exported := filepath.Join(dir, "frame_009.txt")
	data, err := os.ReadFile(exported)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	lines := strings.Split(string(data), "\n")
	if len(lines) != annotation.SchemaSize || lines[0] != "0, 1, 2" || lines[1] != "0, 0, 0" || lines[5] != "1, 2, 2" {
		t.Errorf("unexpected export:\n%s", data)
	}
	if got := a.guiManager.Status(); got != "Saved to "+exported {
		t.Errorf("status after export = %q", got)
	}

	h.HandleCommand(annotation.CommandNext)
	if a.session.Path() != second {
		t.Errorf("path after next = %q, want %q", a.session.Path(), second)
	}
	if a.session.Len() != 0 {
		t.Errorf("next should start with no keypoints, got %d", a.session.Len())
	}

	// frame_011.png does not exist: the session stays on frame_010.
	h.HandleCommand(annotation.CommandNext)
	if a.session.Path() != second {
		t.Errorf("path after failed next = %q", a.session.Path())
	}
}

func TestHandlers_SkipUndoAndReset(t *testing.T) {
	a := newTestApplication(t)
	h := a.handlers

	path := filepath.Join(t.TempDir(), "pose.png")
	writeFrame(t, path)
	h.OpenPath(path)

	h.HandleCommand(annotation.CommandSkip)
	if got := a.guiManager.Status(); got != "Skipped camera" {
		t.Errorf("status = %q", got)
	}
	h.HandleClick(3, 4)
	h.HandleCommand(annotation.CommandUndo)
	if got := a.guiManager.Status(); got != "Removed left_shoulder" {
		t.Errorf("status = %q", got)
	}
	h.HandleCommand(annotation.CommandReset)
	if a.session.Len() != 0 {
		t.Errorf("len after reset = %d", a.session.Len())
	}
}

func TestHandlers_CopyAndPaste(t *testing.T) {
	a := newTestApplication(t)
	h := a.handlers

	path := filepath.Join(t.TempDir(), "clip.png")
	writeFrame(t, path)

	a.guiManager.SetClipboardText("file://" + path + "\n")
	h.HandlePaste()
	if a.session.Path() != path {
		t.Fatalf("pasted path not loaded, session path %q", a.session.Path())
	}

	h.HandleCopy()
	if !strings.HasPrefix(a.guiManager.Status(), "Nothing to copy") {
		t.Errorf("status = %q", a.guiManager.Status())
	}

	for i := 0; i < annotation.SchemaSize; i++ {
		h.HandleCommand(annotation.CommandSkip)
	}
	h.HandleCopy()
	if got := a.guiManager.ClipboardText(); got != a.session.ExportText() || got == "" {
		t.Errorf("clipboard = %q", got)
	}
}

func TestHandlers_OpenFailureKeepsState(t *testing.T) {
	a := newTestApplication(t)
	h := a.handlers

	path := filepath.Join(t.TempDir(), "ok.png")
	writeFrame(t, path)
	h.OpenPath(path)
	h.HandleClick(2, 2)

	h.OpenPath(filepath.Join(t.TempDir(), "missing.png"))
	if !strings.HasPrefix(a.guiManager.Status(), "open failed") {
		t.Errorf("status = %q", a.guiManager.Status())
	}
	if a.session.Path() != path || a.session.Len() != 1 {
		t.Errorf("state changed after failed open: %q, %d", a.session.Path(), a.session.Len())
	}
}

func TestApplication_QuitRunsShutdownOnce(t *testing.T) {
	a := newTestApplication(t)
	a.Quit()
	a.Quit()

	select {
	case <-a.lifecycle.shutdown.Done():
	default:
		t.Error("shutdown manager not triggered")
	}
}
