//go:build linux || freebsd || openbsd || netbsd

package systheme

import (
	"fmt"

	"github.com/rymdport/portal/settings"
)

const (
	appearanceNamespace = "org.freedesktop.appearance"
	colorSchemeKey      = "color-scheme"

	// color-scheme values: 0 no preference, 1 prefer dark, 2 prefer light
	preferDark = 1
)

// Detect asks the XDG desktop portal for the preferred color scheme
func Detect() (bool, error) {
	value, err := settings.ReadOne(appearanceNamespace, colorSchemeKey)
	if err != nil {
		return false, fmt.Errorf("read %s %s: %w", appearanceNamespace, colorSchemeKey, err)
	}

	switch v := value.(type) {
	case uint32:
		return v == preferDark, nil
	case int32:
		return v == preferDark, nil
	case uint64:
		return v == preferDark, nil
	case int:
		return v == preferDark, nil
	}
	return false, fmt.Errorf("unexpected %s value type %T", colorSchemeKey, value)
}
