package rendering

import (
	"sort"
	"strings"
)

// RGB is an 8-bit color triple
type RGB struct {
	R, G, B int
}

// ColorScheme is the palette applied across one render
type ColorScheme struct {
	Primary    RGB
	Secondary  RGB
	Accent     RGB
	Text       RGB
	TextLight  RGB
	Background RGB
	Border     RGB
}

// DefaultColorScheme is used for unknown or empty scheme names.
const DefaultColorScheme = "blue"

var white = RGB{255, 255, 255}

var colorSchemes = map[string]ColorScheme{
	"blue": {
		Primary:    RGB{37, 99, 235},
		Secondary:  RGB{30, 64, 175},
		Accent:     RGB{59, 130, 246},
		Text:       RGB{31, 41, 55},
		TextLight:  RGB{107, 114, 128},
		Background: RGB{239, 246, 255},
		Border:     RGB{191, 219, 254},
	},
	"green": {
		Primary:    RGB{22, 163, 74},
		Secondary:  RGB{21, 128, 61},
		Accent:     RGB{34, 197, 94},
		Text:       RGB{31, 41, 55},
		TextLight:  RGB{107, 114, 128},
		Background: RGB{240, 253, 244},
		Border:     RGB{187, 247, 208},
	},
	"purple": {
		Primary:    RGB{124, 58, 237},
		Secondary:  RGB{91, 33, 182},
		Accent:     RGB{139, 92, 246},
		Text:       RGB{31, 41, 55},
		TextLight:  RGB{107, 114, 128},
		Background: RGB{245, 243, 255},
		Border:     RGB{221, 214, 254},
	},
	"red": {
		Primary:    RGB{220, 38, 38},
		Secondary:  RGB{153, 27, 27},
		Accent:     RGB{239, 68, 68},
		Text:       RGB{31, 41, 55},
		TextLight:  RGB{107, 114, 128},
		Background: RGB{254, 242, 242},
		Border:     RGB{254, 202, 202},
	},
	"orange": {
		Primary:    RGB{234, 88, 12},
		Secondary:  RGB{154, 52, 18},
		Accent:     RGB{249, 115, 22},
		Text:       RGB{31, 41, 55},
		TextLight:  RGB{107, 114, 128},
		Background: RGB{255, 247, 237},
		Border:     RGB{254, 215, 170},
	},
	"gray": {
		Primary:    RGB{55, 65, 81},
		Secondary:  RGB{31, 41, 55},
		Accent:     RGB{107, 114, 128},
		Text:       RGB{17, 24, 39},
		TextLight:  RGB{107, 114, 128},
		Background: RGB{249, 250, 251},
		Border:     RGB{209, 213, 219},
	},
}

// ResolveColorScheme maps a palette name to its colors.
// Unknown names resolve to DefaultColorScheme; this never fails.
func ResolveColorScheme(name string) ColorScheme {
	if scheme, ok := colorSchemes[strings.ToLower(strings.TrimSpace(name))]; ok {
		return scheme
	}
	return colorSchemes[DefaultColorScheme]
}

// IsColorScheme reports whether name is a known palette.
func IsColorScheme(name string) bool {
	_, ok := colorSchemes[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// ColorSchemes returns the known palette names in sorted order.
func ColorSchemes() []string {
	names := make([]string, 0, len(colorSchemes))
	for name := range colorSchemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
