// Package config loads segcut configuration through viper, layering the
// config file, SEGCUT_* environment variables, and defaults.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete segcut configuration
type Config struct {
	Editor  EditorConfig  `mapstructure:"editor"`
	TUI     TUIConfig     `mapstructure:"tui"`
	Render  RenderConfig  `mapstructure:"render"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// EditorConfig controls the editing session
type EditorConfig struct {
	// CanvasWidthPx is the drawing-surface width used to derive marker
	// canvas positions
	CanvasWidthPx int `mapstructure:"canvas_width_px"`
	// SettleDelayMs is how long to wait after a refresh before restoring
	// markers, so drawing surfaces can mount
	SettleDelayMs int `mapstructure:"settle_delay_ms"`
	// AllowSelection gates combine-selection toggling
	AllowSelection bool `mapstructure:"allow_selection"`
	// AllowDrag gates drag-reordering
	AllowDrag bool `mapstructure:"allow_drag"`
	// WatchCutList reloads the cut-list file when it changes on disk
	WatchCutList bool `mapstructure:"watch_cut_list"`
}

// TUIConfig controls the terminal UI behavior
type TUIConfig struct {
	// Theme is the color theme for the TUI (default: "default")
	// Built in: "default", "mono"; custom themes load from the themes dir
	Theme string `mapstructure:"theme"`
	// SidebarWidth is the width of the sidebar panel in columns
	SidebarWidth int `mapstructure:"sidebar_width"`
	// TickIntervalMs is the simulated playback clock resolution
	TickIntervalMs int `mapstructure:"tick_interval_ms"`
}

// RenderConfig holds the default render settings attached to exported
// proposals
type RenderConfig struct {
	// Formats to render: horizontal, square, vertical
	Formats []string `mapstructure:"formats"`
	// UseMusicOverlay overlays a contiguous section of the source's
	// background music instead of the per-segment audio
	UseMusicOverlay bool `mapstructure:"use_music_overlay"`
	// UseContinuousAudio uses a contiguous section of the source audio
	UseContinuousAudio bool `mapstructure:"use_continuous_audio"`
	// FadeOut fades out the end of the rendered video
	FadeOut bool `mapstructure:"fade_out"`
	// OverlayType controls where the overlay section is taken from
	OverlayType string `mapstructure:"overlay_type"`
}

// LoggingConfig controls session logging
type LoggingConfig struct {
	// Enabled turns session logging on
	Enabled bool `mapstructure:"enabled"`
	// Level is the minimum level to log: debug, info, warn, error
	Level string `mapstructure:"level"`
	// Dir is where session logs are written; empty means stderr
	Dir string `mapstructure:"dir"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Editor: EditorConfig{
			CanvasWidthPx:  200,
			SettleDelayMs:  100,
			AllowSelection: true,
			AllowDrag:      true,
			WatchCutList:   true,
		},
		TUI: TUIConfig{
			Theme:          "default",
			SidebarWidth:   36,
			TickIntervalMs: 250,
		},
		Render: RenderConfig{
			Formats: []string{"horizontal"},
		},
		Logging: LoggingConfig{
			Enabled: true,
			Level:   "info",
		},
	}
}

// SettleDelay returns the settling delay as a duration.
func (e *EditorConfig) SettleDelay() time.Duration {
	return time.Duration(e.SettleDelayMs) * time.Millisecond
}

// TickInterval returns the playback clock resolution as a duration.
func (t *TUIConfig) TickInterval() time.Duration {
	return time.Duration(t.TickIntervalMs) * time.Millisecond
}

// SetDefaults registers every default with viper so values resolve even
// without a config file.
func SetDefaults() {
	defaults := Default()

	// Editor defaults
	viper.SetDefault("editor.canvas_width_px", defaults.Editor.CanvasWidthPx)
	viper.SetDefault("editor.settle_delay_ms", defaults.Editor.SettleDelayMs)
	viper.SetDefault("editor.allow_selection", defaults.Editor.AllowSelection)
	viper.SetDefault("editor.allow_drag", defaults.Editor.AllowDrag)
	viper.SetDefault("editor.watch_cut_list", defaults.Editor.WatchCutList)

	// TUI defaults
	viper.SetDefault("tui.theme", defaults.TUI.Theme)
	viper.SetDefault("tui.sidebar_width", defaults.TUI.SidebarWidth)
	viper.SetDefault("tui.tick_interval_ms", defaults.TUI.TickIntervalMs)

	// Render defaults
	viper.SetDefault("render.formats", defaults.Render.Formats)
	viper.SetDefault("render.use_music_overlay", defaults.Render.UseMusicOverlay)
	viper.SetDefault("render.use_continuous_audio", defaults.Render.UseContinuousAudio)
	viper.SetDefault("render.fade_out", defaults.Render.FadeOut)
	viper.SetDefault("render.overlay_type", defaults.Render.OverlayType)

	// Logging defaults
	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.dir", defaults.Logging.Dir)
}

// Load reads the configuration from viper into a Config and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration (convenience function)
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		// Fall back to defaults if unmarshaling fails
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "segcut")
	}
	// Fall back to ~/.config/segcut
	home, err := os.UserHomeDir()
	if err != nil {
		return ".segcut"
	}
	return filepath.Join(home, ".config", "segcut")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// ThemesDir returns the path to the custom themes directory
func ThemesDir() string {
	return filepath.Join(ConfigDir(), "themes")
}
