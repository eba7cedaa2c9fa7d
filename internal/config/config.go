package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	_ "time/tzdata" // timezone names without a system zoneinfo database

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/playtally/internal/catalog"
)

const appName = "playtally"

type Config struct {
	Today    string `koanf:"today"`    // "YYYY-MM-DD", empty means the current date
	Timezone string `koanf:"timezone"` // IANA name, empty means local time

	// Report settings
	Report ReportConfig `koanf:"report"`

	// Songs to load into the catalog at startup
	Songs []SongConfig `koanf:"songs"`

	// Extra plays recorded after the songs are loaded
	Plays []PlayConfig `koanf:"plays"`
}

// ReportConfig controls the query parameters and layout of the printed report.
type ReportConfig struct {
	TopLimit   int `koanf:"top_limit"`   // entries in the overall top list (default: 2)
	RecentDays int `koanf:"recent_days"` // recency window in days (default: 2)
	Width      int `koanf:"width"`       // column width for song names (default: 32)

	Artist string `koanf:"artist"` // artist for the per-artist sections (default: first loaded)
}

// SongConfig is one seeded song and how many times to play it today.
type SongConfig struct {
	Name   string `koanf:"name"`
	Artist string `koanf:"artist"`
	Plays  int    `koanf:"plays"`
}

// PlayConfig records Times plays of a song on Date ("YYYY-MM-DD", empty
// means today). The song must be one of the loaded songs.
type PlayConfig struct {
	Name   string `koanf:"name"`
	Artist string `koanf:"artist"`
	Date   string `koanf:"date"`
	Times  int    `koanf:"times"`
}

// DefaultSongs is the library used when no songs are configured.
func DefaultSongs() []SongConfig {
	return []SongConfig{
		{Name: "Song A", Artist: "Artist X", Plays: 2},
		{Name: "Song B", Artist: "Artist X", Plays: 1},
		{Name: "Song C", Artist: "Artist Y", Plays: 1},
	}
}

// Load reads the user and working directory config files, then extra,
// when non-empty. Later files override earlier ones.
func Load(extra string) (*Config, error) {
	k := koanf.New(".")

	paths := getConfigPaths()
	if extra != "" {
		extra = expandPath(extra)
		if _, err := os.Stat(extra); err != nil {
			return nil, fmt.Errorf("config file: %w", err)
		}
		paths = append(paths, extra)
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("load %s: %w", path, err)
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.Today = strings.TrimSpace(cfg.Today)
	cfg.Timezone = strings.TrimSpace(cfg.Timezone)
	for i := range cfg.Plays {
		cfg.Plays[i].Date = strings.TrimSpace(cfg.Plays[i].Date)
		if cfg.Plays[i].Times <= 0 {
			cfg.Plays[i].Times = 1
		}
	}

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/playtally/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (pwd)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// Location returns the configured time zone, or time.Local when unset.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// TodayAt returns the configured date, or the date of now in the configured
// time zone when no date is set.
func (c *Config) TodayAt(now time.Time) (catalog.Date, error) {
	if c.Today != "" {
		return catalog.ParseDate(c.Today)
	}
	loc, err := c.Location()
	if err != nil {
		return catalog.Date{}, err
	}
	return catalog.DateOf(now.In(loc)), nil
}

// GetReportConfig returns the report configuration with defaults applied.
func (c *Config) GetReportConfig() ReportConfig {
	cfg := c.Report

	if cfg.TopLimit <= 0 {
		cfg.TopLimit = 2
	}
	if cfg.RecentDays <= 0 {
		cfg.RecentDays = 2
	}
	if cfg.Width < 8 {
		cfg.Width = 32
	}

	return cfg
}

// GetSongs returns the configured songs, or DefaultSongs when none are set.
func (c *Config) GetSongs() []SongConfig {
	if len(c.Songs) == 0 {
		return DefaultSongs()
	}
	songs := make([]SongConfig, len(c.Songs))
	copy(songs, c.Songs)
	for i := range songs {
		songs[i].Plays = max(songs[i].Plays, 0)
	}
	return songs
}
