// Package config loads kanban-sync configuration: defaults, then the
// global user config, then the vault-local file, then CLI overrides.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/tailscale/hujson"

	"github.com/saikrn112/kanban-sync/internal/policy"
)

// FileName is the vault-local config file name.
const FileName = ".kanban-sync.json"

// Config holds all configuration options.
type Config struct {
	StatusProperty    string                  `json:"status_property"`
	BoardMarker       string                  `json:"board_marker"`
	TasksDir          string                  `json:"tasks_dir"`
	ArchiveDir        string                  `json:"archive_dir"`
	ArchiveStatuses   []string                `json:"archive_statuses"`
	ShowNotifications bool                    `json:"show_notifications"`
	Debug             bool                    `json:"debug"`
	Quadrants         map[string]policy.Flags `json:"quadrants,omitempty"`
}

// Sources tracks which config files were loaded.
type Sources struct {
	Global string // Path to global config if loaded, empty otherwise
	Vault  string // Path to vault-local config if loaded, empty otherwise
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		StatusProperty:    "status",
		BoardMarker:       "kanban-plugin",
		TasksDir:          "tasks",
		ArchiveDir:        "archive",
		ArchiveStatuses:   []string{"done"},
		ShowNotifications: true,
	}
}

// IsArchival reports whether status belongs to the archival set.
func (c Config) IsArchival(status string) bool {
	return slices.Contains(c.ArchiveStatuses, status)
}

// QuadrantTable returns the effective quadrant mapping: the reserved
// default columns overlaid with any configured remappings.
func (c Config) QuadrantTable() policy.Table {
	table := policy.DefaultTable()
	for column, flags := range c.Quadrants {
		table[column] = flags
	}

	return table
}

// fileConfig mirrors Config with pointer fields so merging can tell an
// absent key from an explicit zero value.
type fileConfig struct {
	StatusProperty    *string                 `json:"status_property"`
	BoardMarker       *string                 `json:"board_marker"`
	TasksDir          *string                 `json:"tasks_dir"`
	ArchiveDir        *string                 `json:"archive_dir"`
	ArchiveStatuses   []string                `json:"archive_statuses"`
	ShowNotifications *bool                   `json:"show_notifications"`
	Debug             *bool                   `json:"debug"`
	Quadrants         map[string]policy.Flags `json:"quadrants"`
}

// globalConfigPath returns the path to the global config file:
// $XDG_CONFIG_HOME/kanban-sync/config.json, falling back to
// ~/.config/kanban-sync/config.json. Empty when neither resolves.
func globalConfigPath(env map[string]string) string {
	if xdg := env["XDG_CONFIG_HOME"]; xdg != "" {
		return filepath.Join(xdg, "kanban-sync", "config.json")
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "kanban-sync", "config.json")
	}

	home, err := os.UserHomeDir()
	if err == nil {
		return filepath.Join(home, ".config", "kanban-sync", "config.json")
	}

	return ""
}

// Load assembles the effective configuration. Precedence (highest wins):
//  1. Defaults
//  2. Global user config
//  3. Vault-local config (.kanban-sync.json, or explicitPath if set)
//
// Config trouble is never fatal: an unreadable or invalid file is
// reported through the warnings slice and its layer falls back to the
// values beneath it.
func Load(vaultDir, explicitPath string, env map[string]string) (Config, Sources, []string) {
	cfg := Default()

	var (
		sources  Sources
		warnings []string
	)

	if globalPath := globalConfigPath(env); globalPath != "" {
		layer, loaded, err := loadFile(globalPath)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("ignoring global config %s: %v", globalPath, err))
		} else if loaded {
			sources.Global = globalPath
			cfg = merge(cfg, layer)
		}
	}

	vaultPath := explicitPath
	if vaultPath == "" {
		vaultPath = filepath.Join(vaultDir, FileName)
	} else if !filepath.IsAbs(vaultPath) {
		vaultPath = filepath.Join(vaultDir, vaultPath)
	}

	layer, loaded, err := loadFile(vaultPath)

	switch {
	case err != nil:
		warnings = append(warnings, fmt.Sprintf("ignoring config %s: %v", vaultPath, err))
	case loaded:
		sources.Vault = vaultPath
		cfg = merge(cfg, layer)
	case explicitPath != "":
		warnings = append(warnings, fmt.Sprintf("config file not found: %s", explicitPath))
	}

	return cfg, sources, warnings
}

// loadFile parses one JSONC config file. Missing files are not an error;
// they report loaded=false.
func loadFile(path string) (fileConfig, bool, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is intentionally user-controlled
	if err != nil {
		if os.IsNotExist(err) {
			return fileConfig{}, false, nil
		}

		return fileConfig{}, false, fmt.Errorf("reading config: %w", err)
	}

	// Standardize JSONC to JSON.
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return fileConfig{}, false, fmt.Errorf("invalid JSONC: %w", err)
	}

	var layer fileConfig

	unmarshalErr := json.Unmarshal(standardized, &layer)
	if unmarshalErr != nil {
		return fileConfig{}, false, fmt.Errorf("invalid JSON: %w", unmarshalErr)
	}

	return layer, true, nil
}

func merge(base Config, overlay fileConfig) Config {
	if overlay.StatusProperty != nil && *overlay.StatusProperty != "" {
		base.StatusProperty = *overlay.StatusProperty
	}

	if overlay.BoardMarker != nil && *overlay.BoardMarker != "" {
		base.BoardMarker = *overlay.BoardMarker
	}

	if overlay.TasksDir != nil && *overlay.TasksDir != "" {
		base.TasksDir = *overlay.TasksDir
	}

	if overlay.ArchiveDir != nil && *overlay.ArchiveDir != "" {
		base.ArchiveDir = *overlay.ArchiveDir
	}

	if overlay.ArchiveStatuses != nil {
		base.ArchiveStatuses = overlay.ArchiveStatuses
	}

	if overlay.ShowNotifications != nil {
		base.ShowNotifications = *overlay.ShowNotifications
	}

	if overlay.Debug != nil {
		base.Debug = *overlay.Debug
	}

	if len(overlay.Quadrants) > 0 {
		if base.Quadrants == nil {
			base.Quadrants = make(map[string]policy.Flags, len(overlay.Quadrants))
		}

		for column, flags := range overlay.Quadrants {
			base.Quadrants[column] = flags
		}
	}

	return base
}

// Format returns the config as formatted JSON.
func Format(cfg Config) (string, error) {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to format config: %w", err)
	}

	return string(data), nil
}
