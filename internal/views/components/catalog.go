package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"winget-installer/internal/models"
)

// CatalogPanel lists the built-in categories and the apps of the selected one
type CatalogPanel struct {
	container  *fyne.Container
	categories *fyne.Container
	appList    *fyne.Container
	heading    *widget.Label

	installButtons []*widget.Button
	installAll     *widget.Button

	catalog  *models.Catalog
	selected string

	installAppHandler func(models.App)
	installAllHandler func(string, []models.App)
}

func NewCatalogPanel(catalog *models.Catalog) *CatalogPanel {
	cp := &CatalogPanel{catalog: catalog}
	cp.createComponents()
	cp.SelectCategory(catalog.First())
	return cp
}

func (cp *CatalogPanel) createComponents() {
	cp.categories = container.NewHBox()
	for _, name := range cp.catalog.Names() {
		cp.categories.Add(widget.NewButton(name, func() {
			cp.SelectCategory(name)
		}))
	}

	cp.heading = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	cp.appList = container.NewVBox()

	cp.container = container.NewVBox(
		widget.NewLabelWithStyle("Categories", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		cp.categories,
		cp.heading,
		cp.appList,
	)
}

// SelectCategory rebuilds the app list; unknown names leave it empty
func (cp *CatalogPanel) SelectCategory(name string) {
	cp.selected = name
	apps := cp.catalog.Apps(name)

	cp.heading.SetText(name)
	cp.appList.RemoveAll()
	cp.installButtons = cp.installButtons[:0]
	cp.installAll = nil
	for _, app := range apps {
		install := widget.NewButton("Install", func() {
			if cp.installAppHandler != nil {
				cp.installAppHandler(app)
			}
		})
		cp.installButtons = append(cp.installButtons, install)
		cp.appList.Add(container.NewBorder(nil, nil, nil, install, widget.NewLabel(app.Name)))
	}

	if len(apps) > 0 {
		installAll := widget.NewButton(fmt.Sprintf("Install All %s", name), func() {
			if cp.installAllHandler != nil {
				cp.installAllHandler(name, cp.catalog.Apps(name))
			}
		})
		installAll.Importance = widget.HighImportance
		cp.installAll = installAll
		cp.appList.Add(installAll)
	}
	cp.appList.Refresh()
}

func (cp *CatalogPanel) SetInstallAppHandler(handler func(models.App)) {
	cp.installAppHandler = handler
}

func (cp *CatalogPanel) SetInstallAllHandler(handler func(string, []models.App)) {
	cp.installAllHandler = handler
}

func (cp *CatalogPanel) Selected() string {
	return cp.selected
}

func (cp *CatalogPanel) GetContainer() *fyne.Container {
	return cp.container
}
