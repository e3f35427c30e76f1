// Package styles provides shared lipgloss styles for CLI and TUI components.
package styles

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Palette defines a minimal semantic theme palette.
type Palette struct {
	Primary    lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Surface    lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
}

// DefaultTheme is the name of the default theme.
const DefaultTheme = "tokyo-night"

// themes holds the built-in named palettes.
var themes = map[string]Palette{
	"tokyo-night": {
		Primary:    lipgloss.Color("#7aa2f7"),
		Foreground: lipgloss.Color("#c0caf5"),
		Muted:      lipgloss.Color("#565f89"),
		Surface:    lipgloss.Color("#3b4261"),
		Success:    lipgloss.Color("#9ece6a"),
		Warning:    lipgloss.Color("#e0af68"),
		Error:      lipgloss.Color("#f7768e"),
	},
	"gruvbox": {
		Primary:    lipgloss.Color("#83a598"),
		Foreground: lipgloss.Color("#ebdbb2"),
		Muted:      lipgloss.Color("#665c54"),
		Surface:    lipgloss.Color("#3c3836"),
		Success:    lipgloss.Color("#b8bb26"),
		Warning:    lipgloss.Color("#fabd2f"),
		Error:      lipgloss.Color("#fb4934"),
	},
}

// ThemeNames returns sorted names of all built-in themes.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetPalette returns the palette for the given theme name.
func GetPalette(name string) (Palette, bool) {
	p, ok := themes[name]
	return p, ok
}

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Semantic color exports.
var (
	ColorPrimary    lipgloss.Color
	ColorForeground lipgloss.Color
	ColorMuted      lipgloss.Color
	ColorSurface    lipgloss.Color
	ColorSuccess    lipgloss.Color
	ColorWarning    lipgloss.Color
	ColorError      lipgloss.Color
)

// Style exports.
var (
	HeaderStyle      lipgloss.Style
	TextStyle        lipgloss.Style
	TextMutedStyle   lipgloss.Style
	TextPrimaryStyle lipgloss.Style

	// Diff line styles.
	AddedLineStyle   lipgloss.Style
	RemovedLineStyle lipgloss.Style
	ContextLineStyle lipgloss.Style

	// Inline token highlights within a changed line.
	AddedTokenStyle   lipgloss.Style
	RemovedTokenStyle lipgloss.Style

	// Decision badges.
	PendingBadgeStyle  lipgloss.Style
	IncomingBadgeStyle lipgloss.Style
	CurrentBadgeStyle  lipgloss.Style

	CursorStyle  lipgloss.Style
	WarningStyle lipgloss.Style
	HelpStyle    lipgloss.Style
)

// SetTheme applies the palette and rebuilds all exported styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	ColorPrimary = p.Primary
	ColorForeground = p.Foreground
	ColorMuted = p.Muted
	ColorSurface = p.Surface
	ColorSuccess = p.Success
	ColorWarning = p.Warning
	ColorError = p.Error

	HeaderStyle = lipgloss.NewStyle().Foreground(p.Primary).Bold(true)
	TextStyle = lipgloss.NewStyle().Foreground(p.Foreground)
	TextMutedStyle = lipgloss.NewStyle().Foreground(p.Muted)
	TextPrimaryStyle = lipgloss.NewStyle().Foreground(p.Primary)

	AddedLineStyle = lipgloss.NewStyle().Foreground(p.Success)
	RemovedLineStyle = lipgloss.NewStyle().Foreground(p.Error)
	ContextLineStyle = lipgloss.NewStyle().Foreground(p.Muted)

	AddedTokenStyle = lipgloss.NewStyle().Foreground(p.Success).Bold(true).Underline(true)
	RemovedTokenStyle = lipgloss.NewStyle().Foreground(p.Error).Bold(true).Strikethrough(true)

	PendingBadgeStyle = lipgloss.NewStyle().Foreground(p.Warning)
	IncomingBadgeStyle = lipgloss.NewStyle().Foreground(p.Success)
	CurrentBadgeStyle = lipgloss.NewStyle().Foreground(p.Error)

	CursorStyle = lipgloss.NewStyle().Background(p.Surface)
	WarningStyle = lipgloss.NewStyle().Foreground(p.Warning).Bold(true)
	HelpStyle = lipgloss.NewStyle().Foreground(p.Muted)
}

func init() {
	SetTheme(themes[DefaultTheme])
}
