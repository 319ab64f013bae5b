package views

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"winget-installer/internal/models"
	"winget-installer/internal/preferences"
)

func newTestView(t *testing.T) *MainView {
	t.Helper()
	a := test.NewTempApp(t)
	w := a.NewWindow("test")
	t.Cleanup(w.Close)

	return NewMainView(w, models.DefaultCatalog(), []string{"winget", "chocolatey"}, AboutInfo{
		Name:        "WinGet Package Installer",
		Description: "Install applications with winget or Chocolatey",
		Version:     "1.0.0",
	})
}

func menuItem(t *testing.T, mv *MainView, menu, label string) *fyne.MenuItem {
	t.Helper()
	for _, m := range mv.mainMenu.Items {
		if m.Label != menu {
			continue
		}
		for _, item := range m.Items {
			if item.Label == label {
				return item
			}
		}
	}
	t.Fatalf("menu item %s > %s not found", menu, label)
	return nil
}

func TestMenuRoutesThemeSelections(t *testing.T) {
	mv := newTestView(t)

	var selections []string
	follows, toggles := 0, 0
	mv.SetThemeHandler(func(name string) { selections = append(selections, name) })
	mv.SetDarkModeHandler(func(bool) { toggles++ })
	mv.SetFollowSystemHandler(func() { follows++ })

	menuItem(t, mv, "Window", "Dark").Action()
	menuItem(t, mv, "Window", "Light").Action()
	menuItem(t, mv, "Window", "Follow System Theme").Action()

	assert.Equal(t, []string{"dark", "light"}, selections)
	assert.Equal(t, 1, follows)
	assert.Zero(t, toggles)
}

func TestSyncThemeUpdatesMenuAndToolbar(t *testing.T) {
	mv := newTestView(t)

	mv.SyncTheme(preferences.ThemePreferences{DarkMode: true})
	light, dark, follow := mv.ThemeMenuState()
	assert.Equal(t, []bool{false, true, false}, []bool{light, dark, follow})
	assert.True(t, mv.Toolbar().DarkModeChecked())
	assert.True(t, mv.Toolbar().DarkModeEnabled())

	mv.SyncTheme(preferences.ThemePreferences{DarkMode: false, FollowSystem: true})
	light, dark, follow = mv.ThemeMenuState()
	assert.Equal(t, []bool{false, false, true}, []bool{light, dark, follow})
	assert.False(t, mv.Toolbar().DarkModeChecked())
	assert.False(t, mv.Toolbar().DarkModeEnabled())

	mv.SyncTheme(preferences.Defaults())
	light, dark, follow = mv.ThemeMenuState()
	assert.Equal(t, []bool{true, false, false}, []bool{light, dark, follow})
}

func TestSyncThemeDoesNotTriggerHandlers(t *testing.T) {
	mv := newTestView(t)

	calls := 0
	mv.SetDarkModeHandler(func(bool) { calls++ })

	mv.SyncTheme(preferences.ThemePreferences{DarkMode: true})
	mv.SyncTheme(preferences.ThemePreferences{DarkMode: false})

	assert.Zero(t, calls)
}

func TestExitUsesHandler(t *testing.T) {
	mv := newTestView(t)

	exits := 0
	mv.SetExitHandler(func() { exits++ })

	item := menuItem(t, mv, "File", "Exit")
	assert.True(t, item.IsQuit)
	require.NotNil(t, item.Shortcut)
	item.Action()

	assert.Equal(t, 1, exits)
}

func TestStatusAndResults(t *testing.T) {
	mv := newTestView(t)
	assert.Equal(t, "Ready", mv.Status())

	mv.SetStatus("Searching...")
	mv.SetSearchResults("Git Git.Git")

	assert.Equal(t, "Searching...", mv.Status())
	assert.Equal(t, "Git Git.Git", mv.SearchResults())
}

func TestShowNoticeAndAboutOpenDialogs(t *testing.T) {
	mv := newTestView(t)

	mv.ShowNotice(models.WarningNotice("Warning", "Enter a package name"))
	assert.NotNil(t, mv.Window().Canvas().Overlays().Top())

	mv.ShowNotice(models.ErrorNotice("Error", "Failed to install Git.Git"))
	mv.ShowAbout()
	assert.GreaterOrEqual(t, len(mv.Window().Canvas().Overlays().List()), 1)
}

func TestAdvancedHiddenByDefault(t *testing.T) {
	mv := newTestView(t)

	assert.False(t, mv.AdvancedVisible())
	mv.Advanced().SetVisible(true)
	assert.True(t, mv.AdvancedVisible())
}
