package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures everything hivewatch reads at startup. There is no runtime
// reconfiguration.
type Config struct {
	TickRate         time.Duration
	EnhancedGraphics bool
	ShowChart        bool
	RefreshInterval  time.Duration
	MinFetchInterval time.Duration
	SourceURL        string
	BaseURL          string
	Filters          []string
	MaxRecords       int
	LogPath          string
	Theme            string
}

const (
	defaultConfigPath       = "~/.config/hivewatch/config.toml"
	defaultLogPath          = "~/.local/state/hivewatch/hivewatch.log"
	defaultTickRate         = 250 * time.Millisecond
	defaultRefreshInterval  = 60 * time.Second
	defaultMinFetchInterval = 5 * time.Second
	defaultSourceURL        = "https://www.hiveworkshop.com/find-new/posts"
	defaultBaseURL          = "https://www.hiveworkshop.com"
	defaultMaxRecords       = 500
	defaultTheme            = "Nightfox"
)

var defaultFilters = []string{
	"Maps",
	"Models",
	"Site Discussion",
	"Multiplayer LFG",
	"Skins",
	"Something Else",
}

// Default returns the built-in configuration with paths expanded.
func Default() Config {
	return Config{
		TickRate:         defaultTickRate,
		EnhancedGraphics: true,
		ShowChart:        true,
		RefreshInterval:  defaultRefreshInterval,
		MinFetchInterval: defaultMinFetchInterval,
		SourceURL:        defaultSourceURL,
		BaseURL:          defaultBaseURL,
		Filters:          append([]string(nil), defaultFilters...),
		MaxRecords:       defaultMaxRecords,
		LogPath:          mustExpand(defaultLogPath),
		Theme:            defaultTheme,
	}
}

// Load locates and parses the hivewatch config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		TickRate         string   `toml:"tick_rate"`
		EnhancedGraphics *bool    `toml:"enhanced_graphics"`
		ShowChart        *bool    `toml:"show_chart"`
		RefreshInterval  string   `toml:"refresh_interval"`
		MinFetchInterval string   `toml:"min_fetch_interval"`
		SourceURL        string   `toml:"source_url"`
		BaseURL          string   `toml:"base_url"`
		Filters          []string `toml:"filters"`
		MaxRecords       int      `toml:"max_records"`
		LogPath          string   `toml:"log_path"`
		Theme            string   `toml:"theme"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if cfg.TickRate, err = parseDuration("tick_rate", raw.TickRate, defaultTickRate); err != nil {
		return Config{}, err
	}
	if cfg.RefreshInterval, err = parseDuration("refresh_interval", raw.RefreshInterval, defaultRefreshInterval); err != nil {
		return Config{}, err
	}
	if cfg.MinFetchInterval, err = parseDuration("min_fetch_interval", raw.MinFetchInterval, defaultMinFetchInterval); err != nil {
		return Config{}, err
	}

	if raw.EnhancedGraphics != nil {
		cfg.EnhancedGraphics = *raw.EnhancedGraphics
	}
	if raw.ShowChart != nil {
		cfg.ShowChart = *raw.ShowChart
	}
	if v := strings.TrimSpace(raw.SourceURL); v != "" {
		cfg.SourceURL = v
	}
	if v := strings.TrimSpace(raw.BaseURL); v != "" {
		cfg.BaseURL = strings.TrimRight(v, "/")
	}
	// An explicit empty list disables filtering; an absent key keeps the defaults.
	if raw.Filters != nil {
		cfg.Filters = filterStrings(raw.Filters)
	}
	if raw.MaxRecords > 0 {
		cfg.MaxRecords = raw.MaxRecords
	}
	if v := strings.TrimSpace(raw.LogPath); v != "" {
		cfg.LogPath = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.Theme); v != "" {
		cfg.Theme = v
	}

	return cfg, nil
}

func parseDuration(key, value string, fallback time.Duration) (time.Duration, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(trimmed)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if d <= 0 {
		return fallback, nil
	}
	return d, nil
}

func filterStrings(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
