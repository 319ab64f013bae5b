//go:build darwin

package systheme

import (
	"os/exec"
)

// Detect checks AppleInterfaceStyle
func Detect() (bool, error) {
	output, err := exec.Command("defaults", "read", "-g", "AppleInterfaceStyle").Output()
	return parseInterfaceStyle(output, err)
}
