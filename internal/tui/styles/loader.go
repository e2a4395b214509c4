package styles

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// ThemeFile represents a custom theme definition loaded from YAML.
type ThemeFile struct {
	// Name is the theme's display name (e.g., "Solarized Dark")
	Name string `yaml:"name"`
	// Author is the theme creator's name (optional)
	Author string `yaml:"author,omitempty"`
	// Version is the theme file format version (currently "1")
	Version string `yaml:"version"`
	// Colors defines the color palette
	Colors ThemeColors `yaml:"colors"`
}

// ThemeColors contains all color definitions for a theme.
// All colors should be hex format (#RRGGBB or #RGB).
type ThemeColors struct {
	Primary   string `yaml:"primary"`
	Secondary string `yaml:"secondary"`
	Warning   string `yaml:"warning"`
	Error     string `yaml:"error"`
	Muted     string `yaml:"muted"`
	Surface   string `yaml:"surface"`
	Text      string `yaml:"text"`
	Border    string `yaml:"border"`
}

// hexColorRegex validates hex color format.
var hexColorRegex = regexp.MustCompile(`^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)

// LoadThemeFile loads a theme from a YAML file.
func LoadThemeFile(path string) (*ThemeFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme file: %w", err)
	}

	var theme ThemeFile
	if err := yaml.Unmarshal(data, &theme); err != nil {
		return nil, fmt.Errorf("parsing theme file: %w", err)
	}

	if err := theme.Validate(); err != nil {
		return nil, fmt.Errorf("invalid theme: %w", err)
	}

	return &theme, nil
}

// Validate checks that the theme file is well-formed.
func (t *ThemeFile) Validate() error {
	if t.Name == "" {
		return errors.New("theme name is required")
	}
	if t.Version == "" {
		return errors.New("theme version is required")
	}
	if t.Version != "1" {
		return fmt.Errorf("unsupported theme version: %s (supported: 1)", t.Version)
	}

	required := map[string]string{
		"primary":   t.Colors.Primary,
		"secondary": t.Colors.Secondary,
		"warning":   t.Colors.Warning,
		"error":     t.Colors.Error,
		"muted":     t.Colors.Muted,
		"surface":   t.Colors.Surface,
		"text":      t.Colors.Text,
		"border":    t.Colors.Border,
	}
	for name, color := range required {
		if color == "" {
			return fmt.Errorf("color %q is required", name)
		}
		if !isValidHexColor(color) {
			return fmt.Errorf("color %q has invalid value %q (expected #RGB or #RRGGBB)", name, color)
		}
	}
	return nil
}

func isValidHexColor(color string) bool {
	return hexColorRegex.MatchString(color)
}

// Apply installs the theme's colors into the package-level styles.
func (t *ThemeFile) Apply() {
	PrimaryColor = lipgloss.Color(t.Colors.Primary)
	SecondaryColor = lipgloss.Color(t.Colors.Secondary)
	WarningColor = lipgloss.Color(t.Colors.Warning)
	ErrorColor = lipgloss.Color(t.Colors.Error)
	MutedColor = lipgloss.Color(t.Colors.Muted)
	SurfaceColor = lipgloss.Color(t.Colors.Surface)
	TextColor = lipgloss.Color(t.Colors.Text)
	BorderColor = lipgloss.Color(t.Colors.Border)
	rebuild()
}

// rebuild refreshes the derived styles after a color change.
func rebuild() {
	Primary = Primary.Foreground(PrimaryColor)
	Secondary = Secondary.Foreground(SecondaryColor)
	Warning = Warning.Foreground(WarningColor)
	Error = Error.Foreground(ErrorColor)
	Muted = Muted.Foreground(MutedColor)
	Text = Text.Foreground(TextColor)
	Title = Title.Foreground(PrimaryColor)
	Subtitle = Subtitle.Foreground(MutedColor)
	SegmentRow = SegmentRow.Foreground(TextColor)
	SegmentRowActive = SegmentRowActive.Foreground(TextColor).Background(SurfaceColor)
	SegmentCombine = SegmentCombine.Foreground(SecondaryColor)
	SegmentInspect = SegmentInspect.Foreground(PrimaryColor)
	SegmentSplitting = SegmentSplitting.Foreground(WarningColor)
	SegmentPlayed = SegmentPlayed.Foreground(MutedColor)
	Canvas = Canvas.Foreground(MutedColor)
	CanvasTick = CanvasTick.Foreground(WarningColor)
	ModeSegments = ModeSegments.Foreground(TextColor).Background(PrimaryColor)
	ModePreview = ModePreview.Foreground(TextColor).Background(SecondaryColor)
	Sidebar = Sidebar.BorderForeground(BorderColor)
	CombineButton = CombineButton.Foreground(TextColor).Background(SecondaryColor)
	CombineButtonOff = CombineButtonOff.Foreground(MutedColor)
	Tooltip = Tooltip.Foreground(MutedColor)
	FooterKey = FooterKey.Foreground(PrimaryColor)
	FooterText = FooterText.Foreground(MutedColor)
	StatusError = StatusError.Foreground(ErrorColor)
}

// LoadTheme resolves a theme name: the built-ins by name, otherwise
// <name>.yaml in themesDir. An empty or "default" name is a no-op.
func LoadTheme(name, themesDir string) error {
	switch strings.ToLower(name) {
	case "", "default":
		return nil
	case "mono":
		applyMono()
		return nil
	}

	theme, err := LoadThemeFile(filepath.Join(themesDir, name+".yaml"))
	if err != nil {
		return err
	}
	theme.Apply()
	return nil
}

// applyMono is the built-in colorless theme for low-color terminals.
func applyMono() {
	PrimaryColor = lipgloss.Color("15")
	SecondaryColor = lipgloss.Color("15")
	WarningColor = lipgloss.Color("7")
	ErrorColor = lipgloss.Color("15")
	MutedColor = lipgloss.Color("8")
	SurfaceColor = lipgloss.Color("0")
	TextColor = lipgloss.Color("15")
	BorderColor = lipgloss.Color("8")
	rebuild()
}
