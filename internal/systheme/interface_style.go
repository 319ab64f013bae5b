package systheme

import (
	"errors"
	"fmt"
	"strings"
)

// parseInterfaceStyle interprets the result of `defaults read`. The key is
// absent in light mode, which defaults reports with exit status 1.
func parseInterfaceStyle(output []byte, err error) (bool, error) {
	if err != nil {
		var exitErr interface{ ExitCode() int }
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
			return false, nil
		}
		return false, fmt.Errorf("read AppleInterfaceStyle: %w", err)
	}
	return strings.TrimSpace(string(output)) == "Dark", nil
}
