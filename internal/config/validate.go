package config

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rileyhilliard/dayline/internal/errors"
	"github.com/rileyhilliard/dayline/internal/util"
)

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New(errors.ErrConfig,
			"Config is nil",
			"This is unexpected - try reloading the configuration.")
	}

	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but dayline only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Grab the latest dayline release.")
	}

	if err := ValidateResolution(cfg.Resolution); err != nil {
		return err
	}

	if cfg.Timezone != "" {
		if _, err := time.LoadLocation(cfg.Timezone); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				fmt.Sprintf("Unknown timezone '%s'", cfg.Timezone),
				"Use an IANA zone name like 'Europe/Berlin', or leave it empty for local time.")
		}
	}

	if err := validateTags(cfg.Tags); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'tags' section in your .dayline.yaml.")
	}

	if err := validateOutput(cfg.Output); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'output' section in your .dayline.yaml.")
	}

	return nil
}

// ValidateResolution checks the slots-per-minute setting.
func ValidateResolution(resolution int) error {
	if resolution < MinResolution || resolution > MaxResolution {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Resolution %d is out of range", resolution),
			fmt.Sprintf("Use a resolution between %d and %d slots per minute.", MinResolution, MaxResolution))
	}
	return nil
}

func validateTags(tags TagsConfig) error {
	high := make(map[string]bool, len(tags.High))
	for _, t := range tags.High {
		if strings.TrimSpace(t) == "" {
			return fmt.Errorf("tags.high contains an empty tag")
		}
		high[t] = true
	}
	for _, t := range tags.Low {
		if strings.TrimSpace(t) == "" {
			return fmt.Errorf("tags.low contains an empty tag")
		}
		if high[t] {
			return fmt.Errorf("tag '%s' is listed as both high and low priority", t)
		}
	}

	// Sorted so the reported tag does not depend on map order.
	names := make([]string, 0, len(tags.Colors))
	for name := range tags.Colors {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		code := tags.Colors[name]
		if code < 0 || code > 255 {
			return fmt.Errorf("color %d for tag '%s' is not an xterm-256 code (0-255)", code, name)
		}
	}
	return nil
}

func validateOutput(out OutputConfig) error {
	colors := []string{ColorAuto, ColorAlways, ColorNever}
	if !contains(colors, out.Color) {
		return fmt.Errorf("output.color must be auto, always, or never (got '%s')%s", out.Color, didYouMean(out.Color, colors))
	}

	layouts := []string{LayoutCombined, LayoutSplit}
	if !contains(layouts, out.Layout) {
		return fmt.Errorf("output.layout must be combined or split (got '%s')%s", out.Layout, didYouMean(out.Layout, layouts))
	}
	return nil
}

func contains(items []string, s string) bool {
	for _, item := range items {
		if item == s {
			return true
		}
	}
	return false
}

func didYouMean(got string, valid []string) string {
	if s := util.SuggestSimilar(got, valid, 1); len(s) > 0 {
		return fmt.Sprintf("; did you mean '%s'?", s[0])
	}
	return ""
}
