package gui

import (
	"image"

	"pose-annotator/internal/annotation"
	"pose-annotator/internal/gui/components"
	"pose-annotator/internal/logger"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/storage"
)

// Manager owns the main window layout and forwards user input to handlers.
type Manager struct {
	window fyne.Window
	logger logger.Logger

	imageDisplay *components.ImageDisplay
	viewport     *components.Viewport
	sidePanel    *components.SidePanel
	statusBar    *components.StatusBar

	mainMenu   *fyne.MainMenu
	zoomIn     *fyne.MenuItem
	zoomOut    *fyne.MenuItem
	normalSize *fyne.MenuItem
	fitWindow  *fyne.MenuItem

	openHandler    func()
	saveHandler    func()
	copyHandler    func()
	pasteHandler   func()
	aboutHandler   func()
	quitHandler    func()
	commandHandler func(annotation.Command)
	clickHandler   func(x, y int)
}

func NewManager(window fyne.Window, log logger.Logger) *Manager {
	if log == nil {
		log = logger.NoOp{}
	}

	imageDisplay := components.NewImageDisplay()

	m := &Manager{
		window:       window,
		logger:       log,
		imageDisplay: imageDisplay,
		viewport:     components.NewViewport(imageDisplay),
		sidePanel:    components.NewSidePanel(),
		statusBar:    components.NewStatusBar(),
	}

	imageDisplay.SetTapHandler(m.onTap)
	m.sidePanel.SetCommandHandler(m.onCommand)
	m.setupMenus()
	m.refreshZoom()

	log.Info("GUIManager", "initialized", map[string]interface{}{
		"viewport_width":  components.ScrollViewportWidth,
		"viewport_height": components.ScrollViewportHeight,
	})

	return m
}

func (m *Manager) GetMainContainer() *fyne.Container {
	return container.NewBorder(
		nil,
		m.statusBar.GetContainer(),
		nil,
		container.NewVScroll(m.sidePanel.GetContainer()),
		m.viewport.GetContainer(),
	)
}

// Install puts the layout, menus and keyboard handling on the window.
func (m *Manager) Install() {
	m.window.SetContent(m.GetMainContainer())
	m.window.SetMainMenu(m.mainMenu)
	m.window.Canvas().SetOnTypedKey(m.onTypedKey)
	m.setupShortcuts()
}

func (m *Manager) GetWindow() fyne.Window {
	return m.window
}

func (m *Manager) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open...", m.onOpen),
		fyne.NewMenuItem("Save As...", m.onSave),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", m.onQuit),
	)
	// Fyne adds its own Quit item to the last menu unless one is marked.
	fileMenu.Items[len(fileMenu.Items)-1].IsQuit = true

	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Copy Keypoints", m.onCopy),
		fyne.NewMenuItem("Paste Image Path", m.onPaste),
	)

	m.zoomIn = fyne.NewMenuItem("Zoom In (25%)", m.ZoomIn)
	m.zoomOut = fyne.NewMenuItem("Zoom Out (25%)", m.ZoomOut)
	m.normalSize = fyne.NewMenuItem("Normal Size", m.NormalSize)
	m.fitWindow = fyne.NewMenuItem("Fit to Window", m.ToggleFit)
	viewMenu := fyne.NewMenu("View",
		m.zoomIn,
		m.zoomOut,
		m.normalSize,
		fyne.NewMenuItemSeparator(),
		m.fitWindow,
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", m.onAbout),
	)

	m.mainMenu = fyne.NewMainMenu(fileMenu, editMenu, viewMenu, helpMenu)
}

func (m *Manager) setupShortcuts() {
	add := func(key fyne.KeyName, mod fyne.KeyModifier, fn func()) {
		m.window.Canvas().AddShortcut(&desktop.CustomShortcut{KeyName: key, Modifier: mod}, func(fyne.Shortcut) {
			fn()
		})
	}

	add(fyne.KeyO, fyne.KeyModifierShortcutDefault, m.onOpen)
	add(fyne.KeyS, fyne.KeyModifierShortcutDefault|fyne.KeyModifierShift, m.onSave)
	add(fyne.KeyEqual, fyne.KeyModifierShortcutDefault, m.ZoomIn)
	add(fyne.KeyMinus, fyne.KeyModifierShortcutDefault, m.ZoomOut)
	add(fyne.Key0, fyne.KeyModifierShortcutDefault, m.NormalSize)
	add(fyne.KeyF, fyne.KeyModifierShortcutDefault, m.ToggleFit)

	m.window.Canvas().AddShortcut(&fyne.ShortcutCopy{}, func(fyne.Shortcut) { m.onCopy() })
	m.window.Canvas().AddShortcut(&fyne.ShortcutPaste{}, func(fyne.Shortcut) { m.onPaste() })
}

func (m *Manager) SetOpenHandler(handler func())  { m.openHandler = handler }
func (m *Manager) SetSaveHandler(handler func())  { m.saveHandler = handler }
func (m *Manager) SetCopyHandler(handler func())  { m.copyHandler = handler }
func (m *Manager) SetPasteHandler(handler func()) { m.pasteHandler = handler }
func (m *Manager) SetAboutHandler(handler func()) { m.aboutHandler = handler }
func (m *Manager) SetQuitHandler(handler func())  { m.quitHandler = handler }

func (m *Manager) SetCommandHandler(handler func(annotation.Command)) {
	m.commandHandler = handler
}

func (m *Manager) SetClickHandler(handler func(x, y int)) {
	m.clickHandler = handler
}

func (m *Manager) onOpen()  { call(m.openHandler) }
func (m *Manager) onSave()  { call(m.saveHandler) }
func (m *Manager) onCopy()  { call(m.copyHandler) }
func (m *Manager) onPaste() { call(m.pasteHandler) }
func (m *Manager) onAbout() { call(m.aboutHandler) }
func (m *Manager) onQuit()  { call(m.quitHandler) }

func call(fn func()) {
	if fn != nil {
		fn()
	}
}

func (m *Manager) onTypedKey(ev *fyne.KeyEvent) {
	cmd, ok := annotation.CommandForKey(ev.Name)
	if !ok {
		return
	}
	m.logger.Debug("GUIManager", "key command", map[string]interface{}{
		"key":     string(ev.Name),
		"command": cmd.String(),
	})
	m.onCommand(cmd)
}

func (m *Manager) onCommand(cmd annotation.Command) {
	// Buttons keep focus after a tap, which would swallow the letter keys.
	m.window.Canvas().Unfocus()
	if m.commandHandler != nil {
		m.commandHandler(cmd)
	}
}

func (m *Manager) onTap(x, y int) {
	if m.clickHandler != nil {
		m.clickHandler(x, y)
	}
}

// ShowImage displays a freshly loaded image at 1.0 zoom, or fitted when fit
// mode is on.
func (m *Manager) ShowImage(img image.Image) {
	m.imageDisplay.ResetZoom()
	m.ShowOverlay(img)
}

// ShowOverlay replaces the displayed raster without touching the zoom.
func (m *Manager) ShowOverlay(img image.Image) {
	m.imageDisplay.SetImage(img)
	m.refreshZoom()
}

func (m *Manager) SetHints(hints []annotation.Hint) {
	recorded := 0
	for _, hint := range hints {
		if hint.State == annotation.HintDone {
			recorded++
		}
	}
	m.sidePanel.SetHints(hints)
	m.statusBar.SetCount(recorded, len(hints))
}

func (m *Manager) SetExportText(text string) {
	m.sidePanel.SetExportText(text)
}

func (m *Manager) UpdateStatus(status string) {
	m.statusBar.SetStatus(status)
	m.logger.Debug("GUIManager", "status updated", map[string]interface{}{
		"status": status,
	})
}

func (m *Manager) Status() string {
	return m.statusBar.Status()
}

func (m *Manager) ZoomIn() {
	if !m.imageDisplay.CanZoomIn() {
		return
	}
	m.imageDisplay.ZoomIn()
	m.refreshZoom()
}

func (m *Manager) ZoomOut() {
	if !m.imageDisplay.CanZoomOut() {
		return
	}
	m.imageDisplay.ZoomOut()
	m.refreshZoom()
}

func (m *Manager) NormalSize() {
	m.imageDisplay.ResetZoom()
	m.refreshZoom()
}

func (m *Manager) ToggleFit() {
	fit := !m.imageDisplay.Fit()
	m.imageDisplay.SetFit(fit)
	if !fit {
		m.imageDisplay.ResetZoom()
	}
	m.refreshZoom()
}

func (m *Manager) refreshZoom() {
	fit := m.imageDisplay.Fit()
	m.viewport.Sync()

	m.zoomIn.Disabled = fit || !m.imageDisplay.CanZoomIn()
	m.zoomOut.Disabled = fit || !m.imageDisplay.CanZoomOut()
	m.normalSize.Disabled = fit
	m.fitWindow.Checked = fit
	m.mainMenu.Refresh()

	m.statusBar.SetZoom(m.imageDisplay.Scale(), fit)
}

// ClipboardText returns the current text content of the system clipboard.
func (m *Manager) ClipboardText() string {
	return m.window.Clipboard().Content()
}

func (m *Manager) SetClipboardText(text string) {
	m.window.Clipboard().SetContent(text)
}

func (m *Manager) ShowError(err error) {
	dialog.ShowError(err, m.window)
}

func (m *Manager) ShowInformation(title, message string) {
	dialog.ShowInformation(title, message, m.window)
}

// ShowOpenDialog asks for an image file starting in dir and reports the
// chosen path. Cancelling reports nothing.
func (m *Manager) ShowOpenDialog(dir string, onChosen func(path string)) {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			m.ShowError(err)
			return
		}
		if reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()
		onChosen(path)
	}, m.window)

	m.setDialogLocation(d, dir)
	d.Show()
}

// ShowSaveDialog asks for a destination starting in dir with a suggested
// file name. The callback owns the writer and must close it.
func (m *Manager) ShowSaveDialog(dir, name string, onChosen func(writer fyne.URIWriteCloser)) {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			m.ShowError(err)
			return
		}
		if writer == nil {
			return
		}
		onChosen(writer)
	}, m.window)

	if name != "" {
		d.SetFileName(name)
	}
	m.setDialogLocation(d, dir)
	d.Show()
}

func (m *Manager) setDialogLocation(d *dialog.FileDialog, dir string) {
	if dir == "" {
		return
	}
	lister, err := storage.ListerForURI(storage.NewFileURI(dir))
	if err != nil {
		m.logger.Warning("GUIManager", "dialog start directory unavailable", map[string]interface{}{
			"directory": dir,
			"error":     err.Error(),
		})
		return
	}
	d.SetLocation(lister)
}

func (m *Manager) Shutdown() {
	m.logger.Debug("GUIManager", "shutdown", nil)
}
