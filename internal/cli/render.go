package cli

import (
	"io"
	"os"
	"time"

	"github.com/rileyhilliard/dayline/internal/config"
	"github.com/rileyhilliard/dayline/internal/errors"
	"github.com/rileyhilliard/dayline/internal/logger"
	"github.com/rileyhilliard/dayline/internal/source"
	"github.com/rileyhilliard/dayline/internal/timeline"
	"github.com/rileyhilliard/dayline/internal/ui"
)

// RenderOptions holds everything one render needs. Empty fields fall back
// to the config file, then to defaults.
type RenderOptions struct {
	ConfigPath string
	Resolution *int
	Day        string
	Input      string
	Color      string
	Layout     string
	JSON       bool

	Stdout io.Writer
	Stdin  io.Reader

	// TTY reports whether Stdout is a terminal; nil checks os.Stdout.
	TTY func() bool

	// Now is the clock for "today", running intervals, and the footer.
	Now func() time.Time
}

// Render loads config, fetches the day's intervals, and writes the timeline.
// Configuration problems are reported before anything is fetched.
func Render(opts RenderOptions) error {
	log := logger.NewEnvLogger("[dayline]")
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.TTY == nil {
		opts.TTY = func() bool { return ui.IsTerminal(os.Stdout) }
	}

	cfg, path, err := config.LoadOrDefault(opts.ConfigPath)
	if err != nil {
		return err
	}
	if path != "" {
		log.Debug("using config %s", path)
	}
	applyOverrides(cfg, opts)

	if err := config.Validate(cfg); err != nil {
		return err
	}

	loc, err := cfg.Location()
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, "Unknown timezone '"+cfg.Timezone+"'", "")
	}
	now := opts.Now().In(loc)
	day, err := ParseDay(opts.Day, now, loc)
	if err != nil {
		return err
	}

	src := newSource(cfg, opts, log)
	log.Debug("fetching from %s", src.Describe())
	records, err := src.Fetch()
	if err != nil {
		return err
	}

	tl, err := timeline.Build(records, day, now, timeline.Options{
		Resolution: cfg.Resolution,
		HighTags:   cfg.Tags.High,
		LowTags:    cfg.Tags.Low,
		TagColors:  cfg.Tags.Colors,
		Location:   loc,
		Logger:     log,
	})
	if err != nil {
		return err
	}

	if opts.JSON {
		if err := WriteJSONSuccess(opts.Stdout, NewTimelineJSON(tl)); err != nil {
			return errors.WrapWithCode(err, errors.ErrRender, "Couldn't write JSON output", "")
		}
		return nil
	}

	renderer := ui.NewTimelineRenderer(cfg.Output.Layout, ui.ColorEnabled(cfg.Output.Color, opts.TTY()))
	renderer.Now = opts.Now
	return renderer.Render(opts.Stdout, tl)
}

// applyOverrides lets flags win over the config file.
func applyOverrides(cfg *config.Config, opts RenderOptions) {
	if opts.Resolution != nil {
		cfg.Resolution = *opts.Resolution
	}
	if opts.Color != "" {
		cfg.Output.Color = opts.Color
	}
	if opts.Layout != "" {
		cfg.Output.Layout = opts.Layout
	}
}

func newSource(cfg *config.Config, opts RenderOptions, log logger.Logger) source.Source {
	if opts.Input == "" {
		return source.NewCommandSource(cfg.Source.Command, log)
	}
	src := source.NewFileSource(config.ExpandTilde(opts.Input), log)
	src.Stdin = opts.Stdin
	return src
}
