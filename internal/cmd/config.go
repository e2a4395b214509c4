package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/avkit/segcut/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or modify segcut configuration",
	Long: `View or modify segcut configuration.

Without arguments, displays the current configuration.
Use subcommands to modify settings or create a config file.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value in the user's config file.

Keys use dot notation, e.g.:
  segcut config set editor.canvas_width_px 300
  segcut config set tui.theme mono
  segcut config set render.fade_out true

Valid keys:
  editor.canvas_width_px   - Marker canvas width in pixels
  editor.settle_delay_ms   - Delay before restoring markers after refresh
  editor.allow_selection   - Allow combine-selection toggling (true/false)
  editor.allow_drag        - Allow drag-reordering (true/false)
  editor.watch_cut_list    - Reload the cut list when it changes on disk
  tui.theme                - Color theme name
  tui.sidebar_width        - Sidebar width in columns
  tui.tick_interval_ms     - Playback clock resolution
  render.fade_out          - Fade out the rendered video (true/false)
  render.use_music_overlay - Overlay background music (true/false)
  render.overlay_type      - Where overlay audio is taken from
  logging.enabled          - Write session logs (true/false)
  logging.level            - Minimum log level`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	Long:  `Create a default config file at ~/.config/segcut/config.yaml with all available options.`,
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	RunE:  runConfigPath,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	fmt.Println("Current configuration:")
	fmt.Println()

	// Show where config is being read from
	if viper.ConfigFileUsed() != "" {
		fmt.Printf("Config file: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Printf("Config file: (none - using defaults)\n")
	}
	fmt.Println()

	fmt.Println("editor:")
	fmt.Printf("  canvas_width_px: %d\n", cfg.Editor.CanvasWidthPx)
	fmt.Printf("  settle_delay_ms: %d\n", cfg.Editor.SettleDelayMs)
	fmt.Printf("  allow_selection: %v\n", cfg.Editor.AllowSelection)
	fmt.Printf("  allow_drag: %v\n", cfg.Editor.AllowDrag)
	fmt.Printf("  watch_cut_list: %v\n", cfg.Editor.WatchCutList)

	fmt.Println("tui:")
	fmt.Printf("  theme: %s\n", cfg.TUI.Theme)
	fmt.Printf("  sidebar_width: %d\n", cfg.TUI.SidebarWidth)
	fmt.Printf("  tick_interval_ms: %d\n", cfg.TUI.TickIntervalMs)

	fmt.Println("render:")
	fmt.Printf("  formats: %s\n", strings.Join(cfg.Render.Formats, ", "))
	fmt.Printf("  use_music_overlay: %v\n", cfg.Render.UseMusicOverlay)
	fmt.Printf("  use_continuous_audio: %v\n", cfg.Render.UseContinuousAudio)
	fmt.Printf("  fade_out: %v\n", cfg.Render.FadeOut)
	fmt.Printf("  overlay_type: %s\n", cfg.Render.OverlayType)

	fmt.Println("logging:")
	fmt.Printf("  enabled: %v\n", cfg.Logging.Enabled)
	fmt.Printf("  level: %s\n", cfg.Logging.Level)
	fmt.Printf("  dir: %s\n", cfg.Logging.Dir)

	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key := args[0]
	value := args[1]

	// Validate the key exists
	validKeys := map[string]string{
		"editor.canvas_width_px":      "int",
		"editor.settle_delay_ms":      "int",
		"editor.allow_selection":      "bool",
		"editor.allow_drag":           "bool",
		"editor.watch_cut_list":       "bool",
		"tui.theme":                   "string",
		"tui.sidebar_width":           "int",
		"tui.tick_interval_ms":        "int",
		"render.fade_out":             "bool",
		"render.use_music_overlay":    "bool",
		"render.use_continuous_audio": "bool",
		"render.overlay_type":         "string",
		"logging.enabled":             "bool",
		"logging.level":               "string",
		"logging.dir":                 "string",
	}

	keyType, ok := validKeys[key]
	if !ok {
		return fmt.Errorf("unknown configuration key: %s\nRun 'segcut config set --help' to see valid keys", key)
	}

	// Validate the value based on type
	var typedValue interface{}
	switch keyType {
	case "string":
		typedValue = value
	case "bool":
		if value != "true" && value != "false" {
			return fmt.Errorf("invalid value for %s: expected true or false", key)
		}
		typedValue = value == "true"
	case "int":
		intVal, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid value for %s: expected integer", key)
		}
		if intVal < 0 {
			return fmt.Errorf("invalid value for %s: must be non-negative", key)
		}
		typedValue = intVal
	}

	// Ensure config directory exists
	configDir := config.ConfigDir()
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Set the value in viper
	viper.Set(key, typedValue)

	// Write to config file
	configFile := config.ConfigFile()
	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Set %s = %v\n", key, typedValue)
	fmt.Printf("Config saved to %s\n", configFile)

	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	configDir := config.ConfigDir()
	configFile := config.ConfigFile()

	// Check if config file already exists
	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("config file already exists at %s\nUse 'segcut config set' to modify values", configFile)
	}

	// Create config directory
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Generate a commented config file
	configContent := `# Segcut Configuration

editor:
  # Marker canvas width in pixels; canvas positions in the cut list are
  # derived from this, so keep it stable across sessions
  canvas_width_px: 200
  # Delay before restoring markers after a refresh, in milliseconds
  settle_delay_ms: 100
  # Allow toggling segments into the combine selection
  allow_selection: true
  # Allow reordering segments
  allow_drag: true
  # Reload the cut list when it changes on disk
  watch_cut_list: true

tui:
  # Theme: "default", "mono", or a custom theme in the themes dir
  theme: default
  # Sidebar width in columns (20-60)
  sidebar_width: 36
  # Simulated playback clock resolution in milliseconds
  tick_interval_ms: 250

render:
  # Formats to render: horizontal, square, vertical
  formats:
    - horizontal
  # Overlay a contiguous section of the source's background music
  use_music_overlay: false
  # Use a contiguous section of the source audio
  use_continuous_audio: false
  # Fade out the end of the rendered video
  fade_out: false
  # Where overlay audio is taken from:
  # video_start, video_end, variant_start, variant_end
  overlay_type: ""

logging:
  # Write session logs as JSON
  enabled: false
  # Minimum level: debug, info, warn, error
  level: info
  # Log directory; empty logs to stderr
  dir: ""
`

	if err := os.WriteFile(configFile, []byte(configContent), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Created config file at %s\n", configFile)
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	fmt.Println(config.ConfigFile())
	return nil
}
