//go:build !windows

package console

import (
	"os"
	"strings"
)

// IsBlueBackground reports whether COLORFGBG advertises a blue background.
func IsBlueBackground() bool {
	raw := os.Getenv("COLORFGBG")
	if raw == "" {
		return false
	}

	parts := strings.Split(raw, ";")
	bg := strings.TrimSpace(parts[len(parts)-1])

	// 4 is blue and 12 bright blue in the 16-color palette.
	return bg == "4" || bg == "12"
}
