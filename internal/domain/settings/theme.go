package settings

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	ErrInvalidThemePreset = errors.New("unknown theme preset")
	ErrInvalidFontFamily  = errors.New("unknown font family")
	ErrInvalidHexColor    = errors.New("color must be a 6-digit hex value")
)

type Preset string

const (
	PresetMinimalist Preset = "minimalist"
	PresetSepia      Preset = "sepia"
	PresetDark       Preset = "dark"
	PresetGradient   Preset = "gradient"
	PresetCustom     Preset = "custom"
)

func (p Preset) IsValid() bool {
	switch p {
	case PresetMinimalist, PresetSepia, PresetDark, PresetGradient, PresetCustom:
		return true
	default:
		return false
	}
}

type Colors struct {
	Primary    string
	Secondary  string
	Accent     string
	Background string
	Gradient   string
}

type Theme struct {
	Preset       Preset
	CustomColors *Colors
	FontFamily   string
}

func (t Theme) Validate() error {
	if !t.Preset.IsValid() {
		return ErrInvalidThemePreset
	}
	if t.FontFamily != "" && !IsValidFontName(t.FontFamily) {
		return ErrInvalidFontFamily
	}
	if t.Preset == PresetCustom && t.CustomColors != nil {
		for _, c := range []string{
			t.CustomColors.Primary,
			t.CustomColors.Secondary,
			t.CustomColors.Accent,
			t.CustomColors.Background,
		} {
			if !IsValidHexColor(c) {
				return ErrInvalidHexColor
			}
		}
	}
	return nil
}

// Colors resolves the active color set: custom colors when the custom preset
// carries them, the preset palette otherwise, minimalist as the fallback.
func (t Theme) Colors() Colors {
	if t.Preset == PresetCustom && t.CustomColors != nil {
		return Colors{
			Primary:    t.CustomColors.Primary,
			Secondary:  t.CustomColors.Secondary,
			Accent:     t.CustomColors.Accent,
			Background: t.CustomColors.Background,
		}
	}
	if colors, ok := presetColors[t.Preset]; ok {
		return colors
	}
	return presetColors[PresetMinimalist]
}

var presetColors = map[Preset]Colors{
	// Pure minimalist: classic black & white
	PresetMinimalist: {
		Primary:    "#000000",
		Secondary:  "#ffffff",
		Accent:     "#111827",
		Background: "#ffffff",
	},
	// Warm sepia: vintage analog feel
	PresetSepia: {
		Primary:    "#3d2817",
		Secondary:  "#f5e6d3",
		Accent:     "#8b6f47",
		Background: "#faf8f3",
	},
	// Dark elegant
	PresetDark: {
		Primary:    "#ffffff",
		Secondary:  "#0a0a0a",
		Accent:     "#d4d4d4",
		Background: "#0a0a0a",
	},
	// Subtle gradient
	PresetGradient: {
		Primary:    "#1a1a1a",
		Secondary:  "#ffffff",
		Accent:     "#4a5568",
		Background: "#f8fafc",
		Gradient:   "linear-gradient(135deg, #f8fafc 0%, #e2e8f0 100%)",
	},
	PresetCustom: {
		Primary:    "#000000",
		Secondary:  "#ffffff",
		Accent:     "#111827",
		Background: "#ffffff",
	},
}

type FontType string

const (
	FontSerif FontType = "serif"
	FontSans  FontType = "sans"
)

type FontOption struct {
	Name           string
	Type           FontType
	Weights        []int
	GoogleFontName string
}

const DefaultFontFamily = "EB Garamond"

var AvailableFonts = []FontOption{
	// Serif
	{Name: "EB Garamond", Type: FontSerif, Weights: []int{400, 500, 600, 700}, GoogleFontName: "EB+Garamond"},
	{Name: "Playfair Display", Type: FontSerif, Weights: []int{400, 500, 600, 700, 800}, GoogleFontName: "Playfair+Display"},
	{Name: "Cormorant Garamond", Type: FontSerif, Weights: []int{300, 400, 500, 600, 700}, GoogleFontName: "Cormorant+Garamond"},
	{Name: "Merriweather", Type: FontSerif, Weights: []int{300, 400, 700, 900}, GoogleFontName: "Merriweather"},
	{Name: "Lora", Type: FontSerif, Weights: []int{400, 500, 600, 700}, GoogleFontName: "Lora"},
	{Name: "Crimson Text", Type: FontSerif, Weights: []int{400, 600, 700}, GoogleFontName: "Crimson+Text"},

	// Sans-serif
	{Name: "Inter", Type: FontSans, Weights: []int{300, 400, 500, 600, 700}, GoogleFontName: "Inter"},
	{Name: "DM Sans", Type: FontSans, Weights: []int{400, 500, 700}, GoogleFontName: "DM+Sans"},
	{Name: "Work Sans", Type: FontSans, Weights: []int{300, 400, 500, 600, 700}, GoogleFontName: "Work+Sans"},
	{Name: "Poppins", Type: FontSans, Weights: []int{300, 400, 500, 600, 700}, GoogleFontName: "Poppins"},
	{Name: "Montserrat", Type: FontSans, Weights: []int{300, 400, 500, 600, 700, 800}, GoogleFontName: "Montserrat"},
	{Name: "Raleway", Type: FontSans, Weights: []int{300, 400, 500, 600, 700}, GoogleFontName: "Raleway"},
	{Name: "Outfit", Type: FontSans, Weights: []int{300, 400, 500, 600, 700}, GoogleFontName: "Outfit"},
	{Name: "Space Grotesk", Type: FontSans, Weights: []int{300, 400, 500, 600, 700}, GoogleFontName: "Space+Grotesk"},
	{Name: "Unbounded", Type: FontSans, Weights: []int{400, 500, 600, 700}, GoogleFontName: "Unbounded"},
}

func findFont(name string) *FontOption {
	for i := range AvailableFonts {
		if AvailableFonts[i].Name == name {
			return &AvailableFonts[i]
		}
	}
	return nil
}

func IsValidFontName(name string) bool {
	return findFont(name) != nil
}

var hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

func IsValidHexColor(color string) bool {
	return hexColorRegex.MatchString(color)
}

// FontURL builds the Google Fonts stylesheet URL for a configured font,
// falling back to the default family for unknown names.
func FontURL(fontName string) string {
	font := findFont(fontName)
	if font == nil {
		font = findFont(DefaultFontFamily)
	}

	weights := make([]string, len(font.Weights))
	for i, w := range font.Weights {
		weights[i] = fmt.Sprintf("%d", w)
	}
	return fmt.Sprintf(
		"https://fonts.googleapis.com/css2?family=%s:wght@%s&display=block",
		font.GoogleFontName, strings.Join(weights, ";"),
	)
}

// GenerateCSS renders the :root custom-property block the pages inject.
func GenerateCSS(s PortfolioSettings) string {
	colors := s.Theme.Colors()

	fontFamily := s.Theme.FontFamily
	if fontFamily == "" {
		fontFamily = DefaultFontFamily
	}

	fallback := `-apple-system, BlinkMacSystemFont, "Helvetica Neue", Arial, sans-serif`
	if font := findFont(fontFamily); font == nil || font.Type == FontSerif {
		fallback = "-apple-system, BlinkMacSystemFont, Georgia, serif"
	}

	var b strings.Builder
	b.WriteString(":root {\n")
	fmt.Fprintf(&b, "  --color-primary: %s;\n", colors.Primary)
	fmt.Fprintf(&b, "  --color-secondary: %s;\n", colors.Secondary)
	fmt.Fprintf(&b, "  --color-accent: %s;\n", colors.Accent)
	fmt.Fprintf(&b, "  --color-background: %s;\n", colors.Background)
	fmt.Fprintf(&b, "  --font-family: '%s', %s;\n", fontFamily, fallback)
	if colors.Gradient != "" {
		fmt.Fprintf(&b, "  --background-gradient: %s;\n", colors.Gradient)
	}
	b.WriteString("}\n")
	return b.String()
}
