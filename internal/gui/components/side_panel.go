package components

import (
	"pose-annotator/internal/annotation"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

var commandLabels = map[annotation.Command]string{
	annotation.CommandReset:  "Reset (R)",
	annotation.CommandSkip:   "Skip (S)",
	annotation.CommandExport: "Export (E)",
	annotation.CommandUndo:   "Undo (Z)",
	annotation.CommandNext:   "Next (W)",
}

// SidePanel holds the command buttons, the joint hints and the export text.
type SidePanel struct {
	container *fyne.Container
	Buttons   map[annotation.Command]*widget.Button
	hints     *widget.RichText
	export    *widget.Entry

	commandHandler func(annotation.Command)
}

func NewSidePanel() *SidePanel {
	sp := &SidePanel{
		Buttons: make(map[annotation.Command]*widget.Button),
	}
	sp.setupPanel()
	return sp
}

func (sp *SidePanel) setupPanel() {
	commands := []annotation.Command{
		annotation.CommandReset,
		annotation.CommandSkip,
		annotation.CommandExport,
		annotation.CommandUndo,
		annotation.CommandNext,
	}

	buttons := container.NewGridWithColumns(1)
	for _, cmd := range commands {
		cmd := cmd
		button := widget.NewButton(commandLabels[cmd], func() {
			sp.onCommand(cmd)
		})
		sp.Buttons[cmd] = button
		buttons.Add(button)
	}
	sp.Buttons[annotation.CommandExport].Importance = widget.HighImportance

	sp.hints = widget.NewRichText(HintSegments(annotation.Hints(0))...)

	sp.export = widget.NewMultiLineEntry()
	sp.export.Wrapping = fyne.TextWrapOff
	sp.export.SetMinRowsVisible(annotation.SchemaSize)
	sp.export.Disable()

	sp.container = container.NewVBox(
		buttons,
		widget.NewSeparator(),
		sp.hints,
		widget.NewSeparator(),
		sp.export,
	)
}

func (sp *SidePanel) GetContainer() *fyne.Container {
	return sp.container
}

func (sp *SidePanel) SetCommandHandler(handler func(annotation.Command)) {
	sp.commandHandler = handler
}

func (sp *SidePanel) onCommand(cmd annotation.Command) {
	if sp.commandHandler != nil {
		sp.commandHandler(cmd)
	}
}

func (sp *SidePanel) SetHints(hints []annotation.Hint) {
	sp.hints.Segments = HintSegments(hints)
	sp.hints.Refresh()
}

func (sp *SidePanel) SetExportText(text string) {
	sp.export.SetText(text)
}

func (sp *SidePanel) ExportText() string {
	return sp.export.Text
}

// HintSegments renders one line per joint, greyed out once recorded.
func HintSegments(hints []annotation.Hint) []widget.RichTextSegment {
	segments := make([]widget.RichTextSegment, 0, len(hints))
	for _, hint := range hints {
		style := widget.RichTextStyleParagraph
		style.ColorName = theme.ColorNameForeground
		if hint.State == annotation.HintDone {
			style.ColorName = theme.ColorNameDisabled
		}
		segments = append(segments, &widget.TextSegment{Text: hint.Name, Style: style})
	}
	return segments
}
