package config

import "time"

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Resolution bounds (grid slots per minute).
const (
	DefaultResolution = 4
	MinResolution     = 1
	MaxResolution     = 60
)

// Color modes for OutputConfig.Color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Layouts for OutputConfig.Layout.
const (
	LayoutCombined = "combined"
	LayoutSplit    = "split"
)

// DefaultSourceCommand exports every tracked interval as JSON.
const DefaultSourceCommand = "timew export"

// Config represents the complete .dayline.yaml configuration file.
type Config struct {
	Version int `yaml:"version" mapstructure:"version"`

	// Resolution is the number of grid slots per minute.
	Resolution int `yaml:"resolution" mapstructure:"resolution"`

	// Timezone is the IANA zone the day is rendered in. Empty means local time.
	Timezone string `yaml:"timezone" mapstructure:"timezone"`

	Tags   TagsConfig   `yaml:"tags" mapstructure:"tags"`
	Source SourceConfig `yaml:"source" mapstructure:"source"`
	Output OutputConfig `yaml:"output" mapstructure:"output"`
}

// TagsConfig controls which tag represents an interval and how tags are colored.
type TagsConfig struct {
	// High tags label an interval outright when present, in list order.
	High []string `yaml:"high" mapstructure:"high"`

	// Low tags are filler, picked only when nothing else is available.
	Low []string `yaml:"low" mapstructure:"low"`

	// Colors pins tags to specific xterm-256 color codes.
	Colors map[string]int `yaml:"colors" mapstructure:"colors"`
}

// SourceConfig controls where raw interval records come from.
type SourceConfig struct {
	// Command prints a JSON array of intervals on stdout.
	Command string `yaml:"command" mapstructure:"command"`
}

// OutputConfig controls terminal output formatting.
type OutputConfig struct {
	// Color mode: "auto", "always", or "never".
	// "auto" disables color when output is piped.
	Color string `yaml:"color" mapstructure:"color"`

	// Layout: "combined" draws labels on the colored cells, "split" puts
	// labels on their own line above the blocks.
	Layout string `yaml:"layout" mapstructure:"layout"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version:    CurrentConfigVersion,
		Resolution: DefaultResolution,
		Tags: TagsConfig{
			High:   []string{"break", "lunch"},
			Low:    []string{"obj", "obj2"},
			Colors: make(map[string]int),
		},
		Source: SourceConfig{
			Command: DefaultSourceCommand,
		},
		Output: OutputConfig{
			Color:  ColorAuto,
			Layout: LayoutCombined,
		},
	}
}

// Location resolves Timezone, falling back to the local zone when unset.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}
