package app

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"pose-annotator/internal/annotation"
	"pose-annotator/internal/config"
	"pose-annotator/internal/gui"
	"pose-annotator/internal/imageio"
	"pose-annotator/internal/logger"

	"fyne.io/fyne/v2"
)

// Handlers connects GUI events to the annotation session.
type Handlers struct {
	session    *annotation.Session
	images     *imageio.Loader
	guiManager *gui.Manager
	config     *config.Config
	logger     logger.Logger
}

func NewHandlers(session *annotation.Session, images *imageio.Loader, gm *gui.Manager, cfg *config.Config, log logger.Logger) *Handlers {
	return &Handlers{
		session:    session,
		images:     images,
		guiManager: gm,
		config:     cfg,
		logger:     log,
	}
}

func (h *Handlers) HandleOpen() {
	h.guiManager.ShowOpenDialog(h.config.StartDirectory(), h.OpenPath)
}

// OpenPath loads path into the session and shows it at normal size.
func (h *Handlers) OpenPath(path string) {
	if err := h.session.Load(path); err != nil {
		h.showError("open failed", err)
		return
	}

	h.config.RememberFile(path)
	h.guiManager.ShowImage(h.session.Overlay())
	h.refresh()
	h.guiManager.UpdateStatus(h.session.Summary())
}

func (h *Handlers) HandleSaveAs() {
	img := h.session.Image()
	if img == nil {
		h.guiManager.UpdateStatus("No image to save")
		return
	}

	name := "image.png"
	if path := h.session.Path(); path != "" {
		name = filepath.Base(path)
	}

	h.guiManager.ShowSaveDialog(h.config.StartDirectory(), name, func(writer fyne.URIWriteCloser) {
		path := writer.URI().Path()
		err := h.images.Write(writer, path, img)
		if closeErr := writer.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("%w: %w", imageio.ErrImageUnwritable, closeErr)
		}
		if err != nil {
			h.showError("save failed", err)
			return
		}

		h.config.RememberFile(path)
		h.guiManager.UpdateStatus("Saved to " + path)
	})
}

func (h *Handlers) HandleCopy() {
	text := h.session.ExportText()
	if text == "" {
		h.guiManager.UpdateStatus(fmt.Sprintf("Nothing to copy: %d of %d joints recorded", h.session.Len(), annotation.SchemaSize))
		return
	}

	h.guiManager.SetClipboardText(text)
	h.guiManager.UpdateStatus("Keypoints copied")
}

// HandlePaste opens the image whose path is on the clipboard.
func (h *Handlers) HandlePaste() {
	path := strings.TrimSpace(h.guiManager.ClipboardText())
	path = strings.TrimPrefix(path, "file://")
	if path == "" {
		h.guiManager.UpdateStatus("Clipboard holds no image path")
		return
	}
	h.OpenPath(path)
}

func (h *Handlers) HandleClick(x, y int) {
	if h.session.Image() == nil {
		return
	}

	if !h.session.RecordClick(x, y) {
		h.guiManager.UpdateStatus("All joints recorded")
		return
	}

	h.refresh()
	h.guiManager.UpdateStatus(fmt.Sprintf("%s at (%d, %d)", annotation.Schema[h.session.Len()-1], x, y))
}

func (h *Handlers) HandleCommand(cmd annotation.Command) {
	previous := h.session.Path()

	status, err := h.session.Dispatch(cmd)
	if err != nil {
		if errors.Is(err, annotation.ErrImageUnreadable) || errors.Is(err, annotation.ErrExportWriteFailed) {
			h.showError(status, err)
			return
		}

		h.logger.Warning("Handlers", "command failed", map[string]interface{}{
			"command": cmd.String(),
			"error":   err.Error(),
		})
		switch {
		case status != "":
			status = status + ": " + err.Error()
		default:
			status = err.Error()
		}
	}

	if cmd == annotation.CommandNext && h.session.Path() != previous {
		h.config.RememberFile(h.session.Path())
		h.guiManager.ShowImage(h.session.Overlay())
	}

	h.refresh()
	if status != "" {
		h.guiManager.UpdateStatus(status)
	}
}

func (h *Handlers) HandleAbout() {
	h.guiManager.ShowInformation("About "+AppName, fmt.Sprintf(
		"%s %s\n\nClick the joints in the order shown on the right.\n"+
			"R reset, S skip, E export, Z undo, W next image.",
		AppName, AppVersion,
	))
}

// refresh pushes the session state to the window.
func (h *Handlers) refresh() {
	h.guiManager.ShowOverlay(h.session.Overlay())
	h.guiManager.SetHints(h.session.Hints())
	h.guiManager.SetExportText(h.session.ExportText())
}

func (h *Handlers) showError(title string, err error) {
	h.logger.Error("Handlers", err, map[string]interface{}{
		"title": title,
	})
	if title != "" {
		h.guiManager.UpdateStatus(title + ": " + err.Error())
	} else {
		h.guiManager.UpdateStatus(err.Error())
	}
	h.guiManager.ShowError(err)
}
