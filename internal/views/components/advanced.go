package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// AdvancedPanel offers free-text search and install by package ID.
// It starts hidden.
type AdvancedPanel struct {
	container     *fyne.Container
	searchEntry   *widget.Entry
	searchButton  *widget.Button
	resultsEntry  *widget.Entry
	installEntry  *widget.Entry
	installButton *widget.Button

	searchHandler  func(string)
	installHandler func(string)
}

func NewAdvancedPanel() *AdvancedPanel {
	ap := &AdvancedPanel{}
	ap.createComponents()
	ap.buildLayout()
	ap.container.Hide()
	return ap
}

func (ap *AdvancedPanel) createComponents() {
	ap.searchEntry = widget.NewEntry()
	ap.searchEntry.SetPlaceHolder("Package name")
	ap.searchEntry.OnSubmitted = func(string) { ap.submitSearch() }
	ap.searchButton = widget.NewButton("Search", ap.submitSearch)

	ap.resultsEntry = widget.NewMultiLineEntry()
	ap.resultsEntry.Wrapping = fyne.TextWrapOff
	ap.resultsEntry.SetMinRowsVisible(8)

	ap.installEntry = widget.NewEntry()
	ap.installEntry.SetPlaceHolder("Package ID")
	ap.installEntry.OnSubmitted = func(string) { ap.submitInstall() }
	ap.installButton = widget.NewButton("Install", ap.submitInstall)
}

func (ap *AdvancedPanel) buildLayout() {
	ap.container = container.NewVBox(
		widget.NewLabelWithStyle("Search Packages", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewBorder(nil, nil, nil, ap.searchButton, ap.searchEntry),
		widget.NewLabelWithStyle("Search Results", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		ap.resultsEntry,
		widget.NewLabelWithStyle("Install by ID", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewBorder(nil, nil, nil, ap.installButton, ap.installEntry),
	)
}

func (ap *AdvancedPanel) submitSearch() {
	if ap.searchHandler != nil {
		ap.searchHandler(ap.searchEntry.Text)
	}
}

func (ap *AdvancedPanel) submitInstall() {
	if ap.installHandler != nil {
		ap.installHandler(ap.installEntry.Text)
	}
}

func (ap *AdvancedPanel) SetSearchHandler(handler func(string)) {
	ap.searchHandler = handler
}

func (ap *AdvancedPanel) SetInstallHandler(handler func(string)) {
	ap.installHandler = handler
}

// SetResults replaces the search results text
func (ap *AdvancedPanel) SetResults(text string) {
	ap.resultsEntry.SetText(text)
}

func (ap *AdvancedPanel) GetResults() string {
	return ap.resultsEntry.Text
}

func (ap *AdvancedPanel) SetVisible(visible bool) {
	if visible {
		ap.container.Show()
	} else {
		ap.container.Hide()
	}
}

func (ap *AdvancedPanel) IsVisible() bool {
	return ap.container.Visible()
}

func (ap *AdvancedPanel) GetContainer() *fyne.Container {
	return ap.container
}
