//go:build windows

package systheme

import (
	"fmt"

	"golang.org/x/sys/windows/registry"
)

const personalizeKey = `SOFTWARE\Microsoft\Windows\CurrentVersion\Themes\Personalize`

// Detect reads AppsUseLightTheme; 0 means apps use the dark theme
func Detect() (bool, error) {
	k, err := registry.OpenKey(registry.CURRENT_USER, personalizeKey, registry.QUERY_VALUE)
	if err != nil { // older Windows builds do not have the key
		return false, fmt.Errorf("open personalize key: %w", err)
	}
	defer k.Close()

	useLight, _, err := k.GetIntegerValue("AppsUseLightTheme")
	if err != nil {
		return false, fmt.Errorf("read AppsUseLightTheme: %w", err)
	}

	return useLight == 0, nil
}
