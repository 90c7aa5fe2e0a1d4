package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rileyhilliard/dayline/internal/config"
	"github.com/rileyhilliard/dayline/internal/errors"
)

// DayLayout is the --day format.
const DayLayout = "2006-01-02"

// RenderFlags holds the flags that shape a single render.
type RenderFlags struct {
	Resolution int
	Day        string
	Input      string
	Layout     string
	NoColor    bool
}

// AddRenderFlags registers --resolution, --day, --input, --layout, and --no-color.
func AddRenderFlags(cmd *cobra.Command, flags *RenderFlags) {
	cmd.Flags().IntVarP(&flags.Resolution, "resolution", "r", config.DefaultResolution, "grid slots per minute (1-60, overrides config)")
	cmd.Flags().StringVarP(&flags.Day, "day", "d", "", "day to render as YYYY-MM-DD (default: today)")
	cmd.Flags().StringVarP(&flags.Input, "input", "i", "", "read exported JSON from a file ('-' for stdin) instead of running the source command")
	cmd.Flags().StringVar(&flags.Layout, "layout", "", "combined or split (overrides config)")
	cmd.Flags().BoolVar(&flags.NoColor, "no-color", false, "disable color output")
}

// Options converts parsed flags into RenderOptions. Only flags the user set
// override the config.
func (f *RenderFlags) Options(cmd *cobra.Command) (RenderOptions, error) {
	opts := RenderOptions{
		ConfigPath: Config(),
		Day:        f.Day,
		Input:      f.Input,
		Layout:     f.Layout,
		JSON:       MachineMode(),
		Stdout:     cmd.OutOrStdout(),
		Stdin:      cmd.InOrStdin(),
	}
	if cmd.Flags().Changed("resolution") {
		if err := config.ValidateResolution(f.Resolution); err != nil {
			return opts, err
		}
		res := f.Resolution
		opts.Resolution = &res
	}
	if f.NoColor {
		opts.Color = config.ColorNever
	}
	return opts, nil
}

// ParseDay parses a --day value as midnight in loc. Empty means the day
// containing now.
func ParseDay(s string, now time.Time, loc *time.Location) (time.Time, error) {
	if s == "" {
		return now.In(loc), nil
	}

	day, err := time.ParseInLocation(DayLayout, s, loc)
	if err != nil {
		return time.Time{}, errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("'%s' doesn't look like a valid day", s),
			"Use the YYYY-MM-DD format, e.g. --day 2026-10-17.")
	}
	return day, nil
}
