package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogOrder(t *testing.T) {
	c := DefaultCatalog()

	assert.Equal(t, []string{"Browsers", "Development", "Media", "Utilities"}, c.Names())
	assert.Equal(t, "Browsers", c.First())
}

func TestCatalogApps(t *testing.T) {
	c := DefaultCatalog()

	apps := c.Apps("Development")
	require.Len(t, apps, 3)
	assert.Equal(t, App{Name: "Git", PackageID: "Git.Git"}, apps[1])

	assert.Nil(t, c.Apps("Games"))
}

func TestCatalogAppsReturnsCopy(t *testing.T) {
	c := DefaultCatalog()

	apps := c.Apps("Media")
	apps[0].PackageID = "changed"

	assert.Equal(t, "VideoLAN.VLC", c.Apps("Media")[0].PackageID)
}

func TestEmptyCatalog(t *testing.T) {
	c := NewCatalog()

	assert.Empty(t, c.Names())
	assert.Equal(t, "", c.First())
}

func TestNoticeConstructors(t *testing.T) {
	assert.Equal(t, Notice{Kind: NoticeInfo, Title: "Success", Message: "done"}, InfoNotice("Success", "done"))
	assert.Equal(t, NoticeWarning, WarningNotice("Input Error", "x").Kind)
	assert.Equal(t, NoticeError, ErrorNotice("Error", "x").Kind)
}
