package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Toolbar holds the theme controls, the advanced-options toggle and the
// package manager selector
type Toolbar struct {
	container     *fyne.Container
	darkCheck     *widget.Check
	refreshButton *widget.Button
	advancedCheck *widget.Check
	managerSelect *widget.Select

	darkModeHandler func(bool)
	refreshHandler  func()
	advancedHandler func(bool)
	managerHandler  func(string)

	// set while state is pushed from the model so widget callbacks do not
	// echo it back as user input
	syncing bool
}

// NewToolbar creates a toolbar offering the given package manager names
func NewToolbar(managers []string) *Toolbar {
	t := &Toolbar{}
	t.createComponents(managers)
	t.buildLayout()
	return t
}

func (t *Toolbar) createComponents(managers []string) {
	t.darkCheck = widget.NewCheck("Dark Mode", func(checked bool) {
		if t.syncing || t.darkModeHandler == nil {
			return
		}
		t.darkModeHandler(checked)
	})

	t.refreshButton = widget.NewButton("Refresh System Theme", func() {
		if t.refreshHandler != nil {
			t.refreshHandler()
		}
	})
	t.refreshButton.Disable()

	t.advancedCheck = widget.NewCheck("Advanced options", func(checked bool) {
		if t.syncing || t.advancedHandler == nil {
			return
		}
		t.advancedHandler(checked)
	})

	t.managerSelect = widget.NewSelect(managers, func(name string) {
		if t.syncing || t.managerHandler == nil {
			return
		}
		t.managerHandler(name)
	})
	if len(managers) > 0 {
		t.syncing = true
		t.managerSelect.SetSelected(managers[0])
		t.syncing = false
	}
}

func (t *Toolbar) buildLayout() {
	themeSection := container.NewHBox(t.darkCheck, t.refreshButton)
	managerSection := container.NewHBox(widget.NewLabel("Package manager:"), t.managerSelect)

	t.container = container.NewVBox(
		container.NewHBox(themeSection, widget.NewSeparator(), t.advancedCheck),
		managerSection,
	)
}

func (t *Toolbar) SetDarkModeHandler(handler func(bool)) {
	t.darkModeHandler = handler
}

func (t *Toolbar) SetRefreshHandler(handler func()) {
	t.refreshHandler = handler
}

func (t *Toolbar) SetAdvancedHandler(handler func(bool)) {
	t.advancedHandler = handler
}

func (t *Toolbar) SetManagerHandler(handler func(string)) {
	t.managerHandler = handler
}

// SetThemeState mirrors the theme preferences. The dark mode check is
// read-only while the system theme is followed.
func (t *Toolbar) SetThemeState(dark, followSystem bool) {
	t.syncing = true
	defer func() { t.syncing = false }()

	t.darkCheck.SetChecked(dark)
	if followSystem {
		t.darkCheck.Disable()
		t.refreshButton.Enable()
	} else {
		t.darkCheck.Enable()
		t.refreshButton.Disable()
	}
}

func (t *Toolbar) SetManager(name string) {
	t.syncing = true
	defer func() { t.syncing = false }()
	t.managerSelect.SetSelected(name)
}

func (t *Toolbar) GetManager() string {
	return t.managerSelect.Selected
}

func (t *Toolbar) DarkModeChecked() bool {
	return t.darkCheck.Checked
}

func (t *Toolbar) DarkModeEnabled() bool {
	return !t.darkCheck.Disabled()
}

func (t *Toolbar) AdvancedChecked() bool {
	return t.advancedCheck.Checked
}

func (t *Toolbar) GetContainer() *fyne.Container {
	return t.container
}
