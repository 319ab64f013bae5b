package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const ReadyStatus = "Ready"

// StatusBar shows the outcome of the most recent package operation
type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
}

func NewStatusBar() *StatusBar {
	sb := &StatusBar{}
	sb.statusLabel = widget.NewLabel(ReadyStatus)
	sb.statusLabel.Truncation = fyne.TextTruncateEllipsis
	sb.container = container.NewVBox(widget.NewSeparator(), sb.statusLabel)
	return sb
}

// SetStatus must be called on the UI goroutine
func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

func (sb *StatusBar) GetStatus() string {
	return sb.statusLabel.Text
}

func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}
