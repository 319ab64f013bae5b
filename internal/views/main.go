package views

import (
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"winget-installer/internal/models"
	"winget-installer/internal/preferences"
	"winget-installer/internal/theme"
	"winget-installer/internal/views/components"
)

// AboutInfo is the content of the Help > About dialog
type AboutInfo struct {
	Name        string
	Description string
	Version     string
}

// MainView is the installer window. Every method must run on the UI goroutine.
type MainView struct {
	window        fyne.Window
	mainContainer *fyne.Container
	toolbar       *components.Toolbar
	catalogPanel  *components.CatalogPanel
	advanced      *components.AdvancedPanel
	statusBar     *components.StatusBar

	mainMenu   *fyne.MainMenu
	lightItem  *fyne.MenuItem
	darkItem   *fyne.MenuItem
	followItem *fyne.MenuItem

	about AboutInfo

	// Event handlers - connected to controller
	searchHandler          func(string)
	installIDHandler       func(string)
	installAppHandler      func(models.App)
	installCategoryHandler func(string, []models.App)
	managerChangeHandler   func(string)
	darkModeHandler        func(bool)
	themeHandler           func(string)
	followSystemHandler    func()
	refreshThemeHandler    func()
	exitHandler            func()
}

func NewMainView(window fyne.Window, catalog *models.Catalog, managers []string, about AboutInfo) *MainView {
	view := &MainView{
		window: window,
		about:  about,
	}

	view.initializeComponents(catalog, managers)
	view.buildMenu()
	view.buildLayout()
	view.setupEventHandlers()

	return view
}

func (mv *MainView) initializeComponents(catalog *models.Catalog, managers []string) {
	mv.toolbar = components.NewToolbar(managers)
	mv.catalogPanel = components.NewCatalogPanel(catalog)
	mv.advanced = components.NewAdvancedPanel()
	mv.statusBar = components.NewStatusBar()
}

func (mv *MainView) buildMenu() {
	exitItem := fyne.NewMenuItem("Exit", mv.exit)
	exitItem.IsQuit = true
	exitItem.Shortcut = &desktop.CustomShortcut{KeyName: fyne.KeyQ, Modifier: fyne.KeyModifierControl}

	mv.lightItem = fyne.NewMenuItem("Light", func() { mv.selectTheme(theme.LightName) })
	mv.darkItem = fyne.NewMenuItem("Dark", func() { mv.selectTheme(theme.DarkName) })
	mv.followItem = fyne.NewMenuItem("Follow System Theme", func() {
		if mv.followSystemHandler != nil {
			mv.followSystemHandler()
		}
	})

	mv.mainMenu = fyne.NewMainMenu(
		fyne.NewMenu("File", exitItem),
		fyne.NewMenu("Window", mv.lightItem, mv.darkItem, fyne.NewMenuItemSeparator(), mv.followItem),
		fyne.NewMenu("Help", fyne.NewMenuItem("About", mv.ShowAbout)),
	)
	mv.window.SetMainMenu(mv.mainMenu)

	mv.window.Canvas().AddShortcut(
		&desktop.CustomShortcut{KeyName: fyne.KeyQ, Modifier: fyne.KeyModifierControl},
		func(fyne.Shortcut) { mv.exit() },
	)
}

func (mv *MainView) buildLayout() {
	title := widget.NewLabelWithStyle(mv.about.Name, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	content := container.NewVBox(
		mv.advanced.GetContainer(),
		mv.catalogPanel.GetContainer(),
	)

	mv.mainContainer = container.NewBorder(
		container.NewVBox(title, mv.toolbar.GetContainer()),
		mv.statusBar.GetContainer(),
		nil,
		nil,
		container.NewVScroll(content),
	)

	mv.window.SetContent(mv.mainContainer)
}

func (mv *MainView) setupEventHandlers() {
	mv.toolbar.SetDarkModeHandler(mv.selectDarkMode)
	mv.toolbar.SetRefreshHandler(func() {
		if mv.refreshThemeHandler != nil {
			mv.refreshThemeHandler()
		}
	})
	mv.toolbar.SetAdvancedHandler(mv.advanced.SetVisible)
	mv.toolbar.SetManagerHandler(func(name string) {
		if mv.managerChangeHandler != nil {
			mv.managerChangeHandler(name)
		}
	})

	mv.advanced.SetSearchHandler(func(query string) {
		if mv.searchHandler != nil {
			mv.searchHandler(query)
		}
	})
	mv.advanced.SetInstallHandler(func(id string) {
		if mv.installIDHandler != nil {
			mv.installIDHandler(id)
		}
	})

	mv.catalogPanel.SetInstallAppHandler(func(app models.App) {
		if mv.installAppHandler != nil {
			mv.installAppHandler(app)
		}
	})
	mv.catalogPanel.SetInstallAllHandler(func(category string, apps []models.App) {
		if mv.installCategoryHandler != nil {
			mv.installCategoryHandler(category, apps)
		}
	})
}

func (mv *MainView) selectDarkMode(dark bool) {
	if mv.darkModeHandler != nil {
		mv.darkModeHandler(dark)
	}
}

func (mv *MainView) selectTheme(name string) {
	if mv.themeHandler != nil {
		mv.themeHandler(name)
	}
}

func (mv *MainView) exit() {
	if mv.exitHandler != nil {
		mv.exitHandler()
		return
	}
	mv.window.Close()
}

// Event handler setters - called by controller

func (mv *MainView) SetSearchHandler(handler func(string)) {
	mv.searchHandler = handler
}

func (mv *MainView) SetInstallIDHandler(handler func(string)) {
	mv.installIDHandler = handler
}

func (mv *MainView) SetInstallAppHandler(handler func(models.App)) {
	mv.installAppHandler = handler
}

func (mv *MainView) SetInstallCategoryHandler(handler func(string, []models.App)) {
	mv.installCategoryHandler = handler
}

func (mv *MainView) SetManagerChangeHandler(handler func(string)) {
	mv.managerChangeHandler = handler
}

// SetDarkModeHandler receives the toolbar Dark Mode check
func (mv *MainView) SetDarkModeHandler(handler func(bool)) {
	mv.darkModeHandler = handler
}

// SetThemeHandler receives Window > Light and Window > Dark by palette name
func (mv *MainView) SetThemeHandler(handler func(string)) {
	mv.themeHandler = handler
}

// SetFollowSystemHandler receives Window > Follow System Theme activations
func (mv *MainView) SetFollowSystemHandler(handler func()) {
	mv.followSystemHandler = handler
}

func (mv *MainView) SetRefreshThemeHandler(handler func()) {
	mv.refreshThemeHandler = handler
}

func (mv *MainView) SetExitHandler(handler func()) {
	mv.exitHandler = handler
}

// UI update methods - called by controller or the sync coordinator

// SyncTheme mirrors the theme preferences into the menu and toolbar
func (mv *MainView) SyncTheme(prefs preferences.ThemePreferences) {
	mv.lightItem.Checked = !prefs.FollowSystem && !prefs.DarkMode
	mv.darkItem.Checked = !prefs.FollowSystem && prefs.DarkMode
	mv.followItem.Checked = prefs.FollowSystem
	mv.mainMenu.Refresh()

	mv.toolbar.SetThemeState(prefs.DarkMode, prefs.FollowSystem)
}

func (mv *MainView) SetManager(name string) {
	mv.toolbar.SetManager(name)
}

func (mv *MainView) SetStatus(status string) {
	mv.statusBar.SetStatus(status)
}

func (mv *MainView) Status() string {
	return mv.statusBar.GetStatus()
}

func (mv *MainView) SetSearchResults(text string) {
	mv.advanced.SetResults(text)
}

func (mv *MainView) SearchResults() string {
	return mv.advanced.GetResults()
}

// ShowNotice displays a modal dialog for the notice
func (mv *MainView) ShowNotice(notice models.Notice) {
	switch notice.Kind {
	case models.NoticeError:
		d := dialog.NewError(errors.New(notice.Message), mv.window)
		d.Show()
	default:
		dialog.ShowInformation(notice.Title, notice.Message, mv.window)
	}
}

func (mv *MainView) ShowAbout() {
	message := mv.about.Name + "\n\n" + mv.about.Description + "\n\nVersion " + mv.about.Version
	dialog.ShowInformation("About", message, mv.window)
}

// ThemeMenuState reports the checked state of the Window menu entries
func (mv *MainView) ThemeMenuState() (light, dark, follow bool) {
	return mv.lightItem.Checked, mv.darkItem.Checked, mv.followItem.Checked
}

func (mv *MainView) AdvancedVisible() bool {
	return mv.advanced.IsVisible()
}

func (mv *MainView) Toolbar() *components.Toolbar {
	return mv.toolbar
}

func (mv *MainView) Catalog() *components.CatalogPanel {
	return mv.catalogPanel
}

func (mv *MainView) Advanced() *components.AdvancedPanel {
	return mv.advanced
}

func (mv *MainView) Window() fyne.Window {
	return mv.window
}
