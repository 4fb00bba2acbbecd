package app

import (
	"pose-annotator/internal/config"
	"pose-annotator/internal/gui"
	"pose-annotator/internal/logger"
	"pose-annotator/internal/shutdown"
)

// Lifecycle registers the application's shutdown steps and triggers them.
type Lifecycle struct {
	shutdown *shutdown.Manager
	logger   logger.Logger
}

// NewLifecycle registers steps so that they run in reverse: the window
// goes first and the configuration is persisted after it.
func NewLifecycle(sm *shutdown.Manager, cfg *config.Config, gm *gui.Manager, log logger.Logger) *Lifecycle {
	l := &Lifecycle{
		shutdown: sm,
		logger:   log,
	}

	sm.Register("config", func() {
		if err := cfg.Save(); err != nil {
			log.Error("Lifecycle", err, map[string]interface{}{
				"path": cfg.Path(),
			})
			return
		}
		log.Debug("Lifecycle", "configuration saved", map[string]interface{}{
			"path": cfg.Path(),
		})
	})
	sm.Register("gui", gm.Shutdown)

	return l
}

func (l *Lifecycle) Shutdown() {
	l.logger.Info("Lifecycle", "shutdown sequence initiated", nil)
	l.shutdown.Shutdown()
}
