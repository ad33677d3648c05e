package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/lucasb-eyer/go-colorful"
)

var (
	cfgFile    = "termblox/config.json"
	scoresFile = "termblox/hiscores.json"
	logFile    = "termblox/termblox.log"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

// EntryConfig tunes the initials entry screen.
type EntryConfig struct {
	FrameMillis    int     `json:"frame_ms"`
	DebounceMillis int     `json:"debounce_ms"`
	HoldMillis     int     `json:"hold_ms"`
	DeadZone       float64 `json:"deadzone"`
}

// Frame returns the frame period.
func (e EntryConfig) Frame() time.Duration {
	return time.Duration(e.FrameMillis) * time.Millisecond
}

// Debounce returns the cool-down between accepted moves.
func (e EntryConfig) Debounce() time.Duration {
	return time.Duration(e.DebounceMillis) * time.Millisecond
}

// Hold returns how long a key press keeps a direction held.
func (e EntryConfig) Hold() time.Duration {
	return time.Duration(e.HoldMillis) * time.Millisecond
}

// LeaderboardConfig locates the high-score table.
type LeaderboardConfig struct {
	Path string `json:"path"`
	Size int    `json:"size"`
}

type SoundConfig struct {
	Enabled bool    `json:"enabled"`
	Volume  float64 `json:"volume"`
}

type LogConfig struct {
	Level string `json:"level"`
	Path  string `json:"path"`
}

type ConfigColors struct {
	Heading   int `json:"heading"`
	Letters   int `json:"letters"`
	Hint      int `json:"hint"`
	Brick     int `json:"brick"`
	BrickEdge int `json:"brick_edge"`
	Highlight int `json:"highlight"`
}

// Theme colours the entry screen. The background wash blends between
// WashFrom and WashTo, given as "#rrggbb".
type Theme struct {
	Colors   ConfigColors `json:"colors"`
	Brick    rune         `json:"brick"`
	WashFrom string       `json:"wash_from"`
	WashTo   string       `json:"wash_to"`
}

// Wash parses the background wash endpoints.
func (t Theme) Wash() (from, to colorful.Color, err error) {
	if from, err = colorful.Hex(t.WashFrom); err != nil {
		return from, to, fmt.Errorf("theme.wash_from: %w", err)
	}
	if to, err = colorful.Hex(t.WashTo); err != nil {
		return from, to, fmt.Errorf("theme.wash_to: %w", err)
	}
	return from, to, nil
}

type Config struct {
	Entry       EntryConfig       `json:"entry"`
	Leaderboard LeaderboardConfig `json:"leaderboard"`
	Sound       SoundConfig       `json:"sound"`
	Log         LogConfig         `json:"log"`
	Theme       Theme             `json:"theme"`

	source        string
	resolvedScore bool
	resolvedLog   bool
}

// InitConfig loads the user's config file over the defaults. When no file
// exists the defaults are written out so there is one to edit.
func InitConfig() (*Config, error) {
	config := DefaultConfig
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err == nil {
		if err := readCfgFile(absPath, &config); err != nil {
			return nil, err
		}
		config.source = absPath
	}
	if err := config.resolvePaths(); err != nil {
		return nil, err
	}
	if err = config.Validate(); err != nil {
		return nil, err
	}
	if config.source == "" {
		if err := config.Save(); err != nil {
			return nil, err
		}
	}
	return &config, nil
}

// resolvePaths fills in XDG locations for paths left empty.
func (c *Config) resolvePaths() error {
	var err error
	if c.Leaderboard.Path == "" {
		if c.Leaderboard.Path, err = xdg.DataFile(scoresFile); err != nil {
			return fmt.Errorf("locate score file: %w", err)
		}
		c.resolvedScore = true
	}
	if c.Log.Path == "" {
		if c.Log.Path, err = xdg.StateFile(logFile); err != nil {
			return fmt.Errorf("locate log file: %w", err)
		}
		c.resolvedLog = true
	}
	return nil
}

func (c *Config) Validate() error {
	switch {
	case c.Entry.FrameMillis <= 0:
		return &InvalidConfig{"entry.frame_ms must be positive"}
	case c.Entry.DebounceMillis <= 0:
		return &InvalidConfig{"entry.debounce_ms must be positive"}
	case c.Entry.HoldMillis <= 0:
		return &InvalidConfig{"entry.hold_ms must be positive"}
	case c.Entry.DeadZone <= 0 || c.Entry.DeadZone >= 1:
		return &InvalidConfig{"entry.deadzone must be between 0 and 1"}
	case c.Leaderboard.Size <= 0:
		return &InvalidConfig{"leaderboard.size must be positive"}
	case c.Sound.Volume < 0 || c.Sound.Volume > 1:
		return &InvalidConfig{"sound.volume must be between 0 and 1"}
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return &InvalidConfig{err.Error()}
	}
	if r := c.Theme.Brick; r < 32 || (r >= 127 && r <= 159) {
		return &InvalidConfig{"Unicode characters 1-31 and 127-159 are not allowed"}
	}
	if _, _, err := c.Theme.Wash(); err != nil {
		return &InvalidConfig{err.Error()}
	}
	return nil
}

// SlogLevel parses the configured log level.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(l.Level))); err != nil {
		return slog.LevelInfo, fmt.Errorf("log.level %q: %w", l.Level, err)
	}
	return level, nil
}

func (c *Config) Save() error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return fmt.Errorf("locate config file: %w", err)
	}
	if err := c.saveTo(absPath); err != nil {
		return err
	}
	c.source = absPath
	return nil
}

// saveTo writes c to filePath. Paths filled in from XDG defaults are written
// empty so they are looked up again on the next start.
func (c *Config) saveTo(filePath string) error {
	out := *c
	if out.resolvedScore {
		out.Leaderboard.Path = ""
	}
	if out.resolvedLog {
		out.Log.Path = ""
	}
	return saveCfgFile(filePath, &out, 0664)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(filePath, jsonData, perm); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func readCfgFile(filePath string, a interface{}) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil
	}
	if err := json.Unmarshal(data, a); err != nil {
		return &InvalidConfig{fmt.Sprintf("%s: %s", filePath, err)}
	}
	return nil
}
