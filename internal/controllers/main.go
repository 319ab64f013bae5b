package controllers

import (
	"errors"

	"winget-installer/internal/logger"
	"winget-installer/internal/models"
	"winget-installer/internal/packagemanager"
	"winget-installer/internal/services"
	"winget-installer/internal/views"
)

// PackageOperations is the subset of services.PackageService the window drives
type PackageOperations interface {
	StartSearch(query string) error
	StartInstall(packageID, displayName string) error
	StartInstallCategory(category string, apps []models.App)
	SetManager(m packagemanager.Manager)
	Manager() packagemanager.Manager
}

// MainController connects the main view to the theme controller and the
// package service. All handlers run on the UI goroutine.
type MainController struct {
	theme    *ThemeController
	packages PackageOperations
	log      logger.Logger

	mainView *views.MainView
}

func NewMainController(theme *ThemeController, packages PackageOperations, log logger.Logger) *MainController {
	if log == nil {
		log = logger.Nop()
	}
	return &MainController{
		theme:    theme,
		packages: packages,
		log:      log,
	}
}

// SetMainView associates the main view with this controller and brings it
// in line with the current preferences and package manager
func (mc *MainController) SetMainView(view *views.MainView) {
	mc.mainView = view
	mc.setupViewEventHandlers()

	mc.theme.OnChange(view.SyncTheme)
	view.SyncTheme(mc.theme.Preferences())
	view.SetManager(mc.packages.Manager().DisplayName())
}

func (mc *MainController) setupViewEventHandlers() {
	mc.mainView.SetDarkModeHandler(mc.theme.SetDarkMode)
	mc.mainView.SetThemeHandler(mc.SelectTheme)
	mc.mainView.SetFollowSystemHandler(mc.theme.ToggleFollowSystem)
	mc.mainView.SetRefreshThemeHandler(mc.theme.RefreshSystemTheme)

	mc.mainView.SetSearchHandler(mc.Search)
	mc.mainView.SetInstallIDHandler(mc.InstallByID)
	mc.mainView.SetInstallAppHandler(mc.InstallApp)
	mc.mainView.SetInstallCategoryHandler(mc.InstallCategory)
	mc.mainView.SetManagerChangeHandler(mc.ChangeManager)
}

// SelectTheme applies the named palette as an explicit manual choice
func (mc *MainController) SelectTheme(name string) {
	if err := mc.theme.SetTheme(name); err != nil {
		mc.log.Warning("MainController", "ignoring unknown theme", map[string]interface{}{
			"theme": name,
		})
	}
}

func (mc *MainController) Search(query string) {
	if err := mc.packages.StartSearch(query); err != nil {
		mc.handleInputError(err)
	}
}

func (mc *MainController) InstallByID(packageID string) {
	if err := mc.packages.StartInstall(packageID, ""); err != nil {
		mc.handleInputError(err)
	}
}

func (mc *MainController) InstallApp(app models.App) {
	if err := mc.packages.StartInstall(app.PackageID, app.Name); err != nil {
		mc.handleInputError(err)
	}
}

func (mc *MainController) InstallCategory(category string, apps []models.App) {
	mc.packages.StartInstallCategory(category, apps)
}

// ChangeManager switches the package manager used by subsequent requests
func (mc *MainController) ChangeManager(name string) {
	m, err := packagemanager.ParseManager(name)
	if err != nil {
		mc.log.Warning("MainController", "ignoring unknown package manager", map[string]interface{}{
			"manager": name,
		})
		return
	}

	mc.packages.SetManager(m)
	mc.log.Info("MainController", "package manager changed", map[string]interface{}{
		"manager": m.String(),
	})
}

func (mc *MainController) handleInputError(err error) {
	notice := inputNotice(err)
	if notice.Kind == models.NoticeError {
		mc.log.Error("MainController", err, nil)
	}
	mc.showNotice(notice)
}

// inputNotice maps request validation errors to the dialog shown to the user
func inputNotice(err error) models.Notice {
	switch {
	case errors.Is(err, services.ErrEmptyQuery):
		return models.WarningNotice("Input Error", "Enter a package name")
	case errors.Is(err, services.ErrEmptyPackageID):
		return models.WarningNotice("Input Error", "Enter a package ID")
	}
	return models.ErrorNotice("Error", err.Error())
}

func (mc *MainController) showNotice(notice models.Notice) {
	if mc.mainView != nil {
		mc.mainView.ShowNotice(notice)
	}
}
