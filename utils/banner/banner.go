package banner

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/thirukguru/version-gate/utils/ansi"
	"github.com/thirukguru/version-gate/utils/console"
	"golang.org/x/term"
)

type bannerColor int

const (
	bannerAmber bannerColor = iota
	bannerTeal
	bannerMagenta
	bannerWhite
)

var bannerTitleColors = []string{
	"\x1b[38;2;255;176;0m",   // Amber
	"\x1b[38;2;0;168;150m",   // Teal
	"\x1b[38;2;214;51;132m",  // Magenta
	"\x1b[38;2;240;240;240m", // White
}

var bannerTitleColorNames = []string{
	"Amber",
	"Teal",
	"Magenta",
	"White",
}

const (
	bannerTitleColorDefault        = bannerTeal
	bannerTitleColorBlueBackground = bannerAmber
	bannerTitleColorEnv            = "VERSION_GATE_BANNER_COLOR"
)

var titleLines = []string{
	"╦  ╦╔═╗╦═╗╔═╗╦╔═╗╔╗╔   ╔═╗╔═╗╔╦╗╔═╗",
	"╚╗╔╝║╣ ╠╦╝╚═╗║║ ║║║║───║ ╦╠═╣ ║ ║╣ ",
	" ╚╝ ╚═╝╩╚═╚═╝╩╚═╝╝╚╝   ╚═╝╩ ╩ ╩ ╚═╝",
}

func printCenteredLines(w io.Writer, lines []string, width int) {
	for _, line := range lines {
		if pad := (width - utf8.RuneCountInString(line)) / 2; pad > 0 {
			fmt.Fprint(w, strings.Repeat(" ", pad))
		}
		fmt.Fprintln(w, line)
	}
}

func bannerTitleColor() bannerColor {
	if color, ok := bannerTitleColorFromEnv(); ok {
		return color
	}

	if console.IsBlueBackground() {
		return bannerTitleColorBlueBackground
	}

	return bannerTitleColorDefault
}

func bannerTitleColorFromEnv() (bannerColor, bool) {
	raw := strings.TrimSpace(os.Getenv(bannerTitleColorEnv))
	if raw == "" {
		return 0, false
	}

	for i, name := range bannerTitleColorNames {
		if strings.EqualFold(raw, name) {
			return bannerColor(i), true
		}
	}

	return 0, false
}

// DrawBannerTitle prints the application title banner to stdout.
func DrawBannerTitle() {
	ansi.EnableANSI()

	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
	}

	drawBanner(os.Stdout, width)
}

func drawBanner(w io.Writer, width int) {
	fmt.Fprint(w, bannerTitleColors[bannerTitleColor()])
	printCenteredLines(w, titleLines, width)
	fmt.Fprint(w, "\x1b[0m")
}
