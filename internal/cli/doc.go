// Package cli implements the dayline command-line interface.
//
// The package is organized around Cobra commands, each delegating to a
// plain function that does the work (Render, Init, doctorCommand) so the
// logic can be tested without going through flag parsing.
//
// # Command Structure
//
//	dayline             - Render a day's timeline (default: today)
//	dayline init        - Create .dayline.yaml
//	dayline doctor      - Diagnose config and data source
//	dayline version     - Print build information
//
// # Render Flow
//
// Render loads and validates config before touching any data, so a bad
// resolution or timezone fails fast. It then picks the source (the
// configured export command, or --input), builds the timeline, and hands it
// to the ui renderer or, with --json, to the JSON envelope.
//
// # Flag Handling
//
// Global flags (--config, --verbose, --json) are persistent on the root
// command. Render flags (--resolution, --day, --input, --layout,
// --no-color) override the config file only when set.
//
// # Errors
//
// Every failure is a structured error with a code (CONFIG, FETCH, PARSE,
// RENDER). Execute prints it to stderr, or as a JSON error envelope in
// --json mode, and exits 1.
package cli
