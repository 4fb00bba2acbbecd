package annotation

import (
	"errors"
	"fmt"
	"image"
	"os"

	"pose-annotator/internal/logger"
)

// ImageLoader decodes the image stored at path.
type ImageLoader interface {
	Load(path string) (image.Image, error)
}

// Session is the annotation state for the currently loaded image. It is
// driven from the GUI event goroutine only and holds no locks.
type Session struct {
	loader   ImageLoader
	renderer Renderer
	logger   logger.Logger

	path    string
	base    image.Image
	points  []Keypoint
	overlay image.Image
}

func NewSession(loader ImageLoader, renderer Renderer, log logger.Logger) *Session {
	if log == nil {
		log = logger.NoOp{}
	}
	return &Session{
		loader:   loader,
		renderer: renderer,
		logger:   log,
		points:   make([]Keypoint, 0, SchemaSize),
	}
}

// Load decodes path and makes it the active image, clearing all keypoints.
// On failure the previous image and keypoints are kept.
func (s *Session) Load(path string) error {
	img, err := s.loader.Load(path)
	if err != nil {
		s.logger.Error("Session", err, map[string]interface{}{
			"path": path,
		})
		return fmt.Errorf("%w: %s: %w", ErrImageUnreadable, path, err)
	}

	s.SetImage(img, path)
	return nil
}

// SetImage replaces the active image with an already decoded one. path may
// be empty for images that did not come from a file.
func (s *Session) SetImage(img image.Image, path string) {
	s.base = img
	s.path = path
	s.points = s.points[:0]
	s.redraw()

	bounds := img.Bounds()
	s.logger.Info("Session", "image loaded", map[string]interface{}{
		"path":   path,
		"width":  bounds.Dx(),
		"height": bounds.Dy(),
	})
}

// RecordClick appends a clicked keypoint. It reports false once every joint
// in the schema has been recorded.
func (s *Session) RecordClick(x, y int) bool {
	return s.push(Keypoint{X: x, Y: y})
}

// Skip records the next joint as absent.
func (s *Session) Skip() bool {
	return s.push(Absent)
}

func (s *Session) push(kp Keypoint) bool {
	if len(s.points) >= SchemaSize {
		return false
	}

	s.points = append(s.points, kp)
	s.logger.Debug("Session", "keypoint recorded", map[string]interface{}{
		"joint":  Schema[len(s.points)-1],
		"x":      kp.X,
		"y":      kp.Y,
		"absent": kp.IsAbsent(),
	})
	s.redraw()
	return true
}

// Undo drops the most recent keypoint. It reports false on an empty sequence.
func (s *Session) Undo() bool {
	if len(s.points) == 0 {
		s.redraw()
		return false
	}

	s.points = s.points[:len(s.points)-1]
	s.redraw()
	return true
}

func (s *Session) Reset() {
	s.points = s.points[:0]
	s.redraw()
}

// redraw rebuilds the overlay from scratch. A renderer failure falls back to
// the bare image so the user still sees something.
func (s *Session) redraw() {
	if s.base == nil {
		s.overlay = nil
		return
	}
	if s.renderer == nil {
		s.overlay = s.base
		return
	}

	img, err := s.renderer.Render(s.base, PlanMarks(s.points))
	if err != nil {
		s.logger.Error("Session", err, map[string]interface{}{
			"stage":     "render",
			"keypoints": len(s.points),
		})
		s.overlay = s.base
		return
	}
	s.overlay = img
}

// Overlay is the base image with the current keypoints and wireframe drawn
// on top, or nil when no image is loaded.
func (s *Session) Overlay() image.Image {
	return s.overlay
}

func (s *Session) Image() image.Image {
	return s.base
}

func (s *Session) Path() string {
	return s.path
}

func (s *Session) Len() int {
	return len(s.points)
}

// Keypoints returns a copy of the recorded sequence.
func (s *Session) Keypoints() []Keypoint {
	out := make([]Keypoint, len(s.points))
	copy(out, s.points)
	return out
}

func (s *Session) Complete() bool {
	return len(s.points) == SchemaSize
}

// ExportText is the keypoint file content, empty until every joint has been
// recorded.
func (s *Session) ExportText() string {
	return FormatExport(s.points)
}

func (s *Session) Hints() []Hint {
	return Hints(len(s.points))
}

// Export writes ExportText next to the image and returns the written path.
// Nothing is written while the sequence is incomplete.
func (s *Session) Export() (string, error) {
	if !s.Complete() {
		return "", fmt.Errorf("%w: %d of %d joints recorded", ErrSequenceIncomplete, len(s.points), SchemaSize)
	}
	if s.path == "" {
		return "", ErrNoImage
	}

	target, ok := ExportPath(s.path)
	if !ok {
		err := fmt.Errorf("%w: no export name for %s", ErrExportWriteFailed, s.path)
		s.logger.Error("Session", err, nil)
		return "", err
	}

	if err := os.WriteFile(target, []byte(s.ExportText()), 0o644); err != nil {
		s.logger.Error("Session", err, map[string]interface{}{
			"path": target,
		})
		return "", fmt.Errorf("%w: %w", ErrExportWriteFailed, err)
	}

	s.logger.Info("Session", "keypoints exported", map[string]interface{}{
		"path": target,
	})
	return target, nil
}

// Next loads the next sequentially numbered file after the current one.
func (s *Session) Next() (string, error) {
	if s.path == "" {
		return "", ErrNoImage
	}

	next, ok := NextSequentialPath(s.path)
	if !ok {
		return "", ErrNoNextFile
	}
	if err := s.Load(next); err != nil {
		return "", err
	}
	return next, nil
}

// Summary describes the active image for the status line.
func (s *Session) Summary() string {
	if s.base == nil {
		return "No image loaded"
	}
	bounds := s.base.Bounds()
	if s.path == "" {
		return fmt.Sprintf("Image, %dx%d", bounds.Dx(), bounds.Dy())
	}
	return fmt.Sprintf("Opened %q, %dx%d", s.path, bounds.Dx(), bounds.Dy())
}

// Dispatch runs cmd and returns a status message for the user. Errors that
// need the user's attention are returned; a missing sequential file name is
// not one of them.
func (s *Session) Dispatch(cmd Command) (string, error) {
	s.logger.Debug("Session", "command", map[string]interface{}{
		"command":   cmd.String(),
		"keypoints": len(s.points),
	})

	switch cmd {
	case CommandReset:
		s.Reset()
		return "Keypoints cleared", nil

	case CommandSkip:
		if !s.Skip() {
			return "All joints recorded", nil
		}
		return "Skipped " + Schema[len(s.points)-1], nil

	case CommandUndo:
		if len(s.points) == 0 {
			s.Undo()
			return "Nothing to undo", nil
		}
		removed := Schema[len(s.points)-1]
		s.Undo()
		return "Removed " + removed, nil

	case CommandExport:
		path, err := s.Export()
		if err != nil {
			return "export failed", err
		}
		return "Saved to " + path, nil

	case CommandNext:
		if _, err := s.Next(); err != nil {
			if errors.Is(err, ErrNoNextFile) || errors.Is(err, ErrNoImage) {
				return "", nil
			}
			return "", err
		}
		return s.Summary(), nil
	}

	return "", fmt.Errorf("unknown command %d", cmd)
}
