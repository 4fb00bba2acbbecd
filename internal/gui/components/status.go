package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
	zoomLabel   *widget.Label
	countLabel  *widget.Label
}

func NewStatusBar() *StatusBar {
	statusLabel := widget.NewLabel("Ready")
	statusLabel.Truncation = fyne.TextTruncateEllipsis
	zoomLabel := widget.NewLabel("Zoom: --")
	countLabel := widget.NewLabel("Joints: 0")

	infoContainer := container.NewHBox(
		countLabel,
		widget.NewSeparator(),
		zoomLabel,
	)

	mainContainer := container.NewBorder(
		nil, nil,
		nil,
		infoContainer,
		statusLabel,
	)

	return &StatusBar{
		container:   mainContainer,
		statusLabel: statusLabel,
		zoomLabel:   zoomLabel,
		countLabel:  countLabel,
	}
}

func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}

func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

func (sb *StatusBar) Status() string {
	return sb.statusLabel.Text
}

func (sb *StatusBar) SetZoom(scale float64, fit bool) {
	if fit {
		sb.zoomLabel.SetText("Zoom: fit")
		return
	}
	sb.zoomLabel.SetText(fmt.Sprintf("Zoom: %.0f%%", scale*100))
}

func (sb *StatusBar) SetCount(recorded, total int) {
	sb.countLabel.SetText(fmt.Sprintf("Joints: %d/%d", recorded, total))
}
