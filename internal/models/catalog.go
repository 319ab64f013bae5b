package models

// App is one installable entry of the built-in catalog
type App struct {
	Name      string
	PackageID string
}

// Category groups catalog apps under a heading
type Category struct {
	Name string
	Apps []App
}

// Catalog is the ordered, hard-coded list of categories shown in the window
type Catalog struct {
	categories []Category
}

// NewCatalog creates a catalog preserving the given order
func NewCatalog(categories ...Category) *Catalog {
	return &Catalog{categories: categories}
}

// DefaultCatalog returns the built-in application list
func DefaultCatalog() *Catalog {
	return NewCatalog(
		Category{Name: "Browsers", Apps: []App{
			{Name: "Google Chrome", PackageID: "Google.Chrome"},
			{Name: "Firefox", PackageID: "Mozilla.Firefox"},
			{Name: "Microsoft Edge", PackageID: "Microsoft.Edge"},
		}},
		Category{Name: "Development", Apps: []App{
			{Name: "Visual Studio Code", PackageID: "Microsoft.VisualStudioCode"},
			{Name: "Git", PackageID: "Git.Git"},
			{Name: "Node.js", PackageID: "OpenJS.NodeJS"},
		}},
		Category{Name: "Media", Apps: []App{
			{Name: "VLC", PackageID: "VideoLAN.VLC"},
			{Name: "Spotify", PackageID: "Spotify.Spotify"},
		}},
		Category{Name: "Utilities", Apps: []App{
			{Name: "7-Zip", PackageID: "7zip.7zip"},
			{Name: "Notepad++", PackageID: "Notepad++.Notepad++"},
		}},
	)
}

// Names returns category names in display order
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.categories))
	for _, cat := range c.categories {
		names = append(names, cat.Name)
	}
	return names
}

// Apps returns a copy of the apps in the named category, nil when unknown
func (c *Catalog) Apps(category string) []App {
	for _, cat := range c.categories {
		if cat.Name == category {
			apps := make([]App, len(cat.Apps))
			copy(apps, cat.Apps)
			return apps
		}
	}
	return nil
}

// First returns the first category name, or "" for an empty catalog
func (c *Catalog) First() string {
	if len(c.categories) == 0 {
		return ""
	}
	return c.categories[0].Name
}
