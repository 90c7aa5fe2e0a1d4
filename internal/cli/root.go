package cli

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rileyhilliard/dayline/internal/logger"
	"github.com/rileyhilliard/dayline/internal/util"
)

// Global flags
var (
	cfgFile string
	verbose bool
)

var renderFlags RenderFlags

// rootCmd renders the timeline; subcommands handle setup and diagnostics.
var rootCmd = &cobra.Command{
	Use:   "dayline",
	Short: "Render a day of Timewarrior data as a terminal timeline",
	Long: `Render one calendar day of tracked time as a fixed-width timeline.

Each hour is a row of cells; each cell is a slice of a minute, colored and
labeled by the tag tracked at that moment. Intervals come from 'timew export'
(or any command printing the same JSON), or from a file with --input.

Examples:
  dayline
  dayline --day 2026-10-17
  dayline --resolution 2 --layout split
  timew export :yesterday | dayline --input - --day 2026-10-17
  dayline --json`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetVerbose(verbose)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := renderFlags.Options(cmd)
		if err != nil {
			return err
		}
		return Render(opts)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./.dayline.yaml, then ~/.config/dayline/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug logging to stderr")
	rootCmd.PersistentFlags().BoolVar(&machineMode, "json", false, "write machine-readable JSON instead of the timeline")

	AddRenderFlags(rootCmd, &renderFlags)

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(versionCmd)
}

// Config returns the --config flag value.
func Config() string {
	return cfgFile
}

// Execute runs the root command and exits non-zero on any error. In --json
// mode the error is written to stdout as a JSON envelope.
func Execute() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}

	if machineMode {
		_ = WriteJSONFromError(os.Stdout, err)
		os.Exit(1)
	}

	if isUnknownCommandError(err) {
		fmt.Fprintln(os.Stderr, err.Error())
		if name := extractUnknownCommand(err); name != "" {
			if s := util.SuggestSimilar(name, commandNames(), 3); len(s) > 0 {
				fmt.Fprintf(os.Stderr, "\nDid you mean: %s?\n", strings.Join(s, ", "))
			}
		}
		fmt.Fprintln(os.Stderr, "\nRun 'dayline --help' for usage.")
		os.Exit(1)
	}

	fmt.Fprint(os.Stderr, errorText(err))
	os.Exit(1)
}

// errorText is err's message ending in exactly one newline. Structured
// errors already end in one; cobra's flag errors do not.
func errorText(err error) string {
	msg := err.Error()
	if strings.HasSuffix(msg, "\n") {
		return msg
	}
	return msg + "\n"
}

// isUnknownCommandError reports whether cobra rejected the command line.
func isUnknownCommandError(err error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "unknown command") || strings.HasPrefix(msg, "unknown flag") ||
		strings.HasPrefix(msg, "unknown shorthand flag")
}

var unknownCommandPattern = regexp.MustCompile(`unknown command "([^"]+)"`)

// extractUnknownCommand pulls the rejected name out of cobra's error.
func extractUnknownCommand(err error) string {
	m := unknownCommandPattern.FindStringSubmatch(err.Error())
	if m == nil {
		return ""
	}
	return m[1]
}

// commandNames lists the visible subcommands.
func commandNames() []string {
	var names []string
	for _, c := range rootCmd.Commands() {
		if c.IsAvailableCommand() {
			names = append(names, c.Name())
		}
	}
	return names
}
