package app

import (
	"pose-annotator/internal/annotation"
	"pose-annotator/internal/config"
	"pose-annotator/internal/gui"
	"pose-annotator/internal/imageio"
	"pose-annotator/internal/logger"
	"pose-annotator/internal/render"
	"pose-annotator/internal/shutdown"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppName    = "Pose Annotator"
	AppID      = "com.poseannotator.desktop"
	AppVersion = "1.0.0"
)

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	guiManager *gui.Manager
	session    *annotation.Session
	handlers   *Handlers
	config     *config.Config
	logger     logger.Logger
	lifecycle  *Lifecycle
}

func NewApplication(cfg *config.Config, log logger.Logger, shutdownMgr *shutdown.Manager) (*Application, error) {
	return newApplication(app.NewWithID(AppID), cfg, log, shutdownMgr)
}

func newApplication(fyneApp fyne.App, cfg *config.Config, log logger.Logger, shutdownMgr *shutdown.Manager) (*Application, error) {
	if log == nil {
		log = logger.NoOp{}
	}

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(float32(cfg.Window.Width), float32(cfg.Window.Height)))
	window.CenterOnScreen()
	window.SetMaster()

	log.Info("Application", "starting application", map[string]interface{}{
		"version":       AppVersion,
		"window_width":  cfg.Window.Width,
		"window_height": cfg.Window.Height,
		"config":        cfg.Path(),
	})

	images := imageio.NewLoader(log)
	session := annotation.NewSession(images, render.NewOverlay(cfg.OverlayStyle()), log)
	guiManager := gui.NewManager(window, log)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		guiManager: guiManager,
		session:    session,
		handlers:   NewHandlers(session, images, guiManager, cfg, log),
		config:     cfg,
		logger:     log,
	}
	application.lifecycle = NewLifecycle(shutdownMgr, cfg, guiManager, log)

	application.setupHandlers()

	log.Info("Application", "initialization complete", nil)
	return application, nil
}

func (a *Application) setupHandlers() {
	h := a.handlers

	a.guiManager.SetOpenHandler(h.HandleOpen)
	a.guiManager.SetSaveHandler(h.HandleSaveAs)
	a.guiManager.SetCopyHandler(h.HandleCopy)
	a.guiManager.SetPasteHandler(h.HandlePaste)
	a.guiManager.SetAboutHandler(h.HandleAbout)
	a.guiManager.SetQuitHandler(a.Quit)
	a.guiManager.SetCommandHandler(h.HandleCommand)
	a.guiManager.SetClickHandler(h.HandleClick)

	a.window.SetOnDropped(func(_ fyne.Position, uris []fyne.URI) {
		if len(uris) > 0 {
			h.OpenPath(uris[0].Path())
		}
	})
}

// Run shows the window, opens initialPath when given, and blocks until the
// application quits.
func (a *Application) Run(initialPath string) error {
	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "shutdown requested", nil)
		a.Quit()
	})

	a.guiManager.Install()
	a.window.Show()

	if initialPath != "" {
		a.handlers.OpenPath(initialPath)
	}

	a.logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()

	return nil
}

// Quit runs the shutdown steps and stops the Fyne event loop. It must be
// called on the GUI goroutine.
func (a *Application) Quit() {
	a.lifecycle.Shutdown()
	a.fyneApp.Quit()
}
