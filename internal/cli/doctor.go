package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/rileyhilliard/dayline/internal/config"
	"github.com/rileyhilliard/dayline/internal/doctor"
	"github.com/rileyhilliard/dayline/internal/ui"
)

var doctorFix bool

// doctorCmd diagnoses config, data source, and terminal problems.
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose configuration and data source problems",
	Long: `Check that the config file is valid, that the export command is installed
and returns JSON, and whether the timeline will be drawn in color.

Examples:
  dayline doctor
  dayline doctor --fix
  dayline doctor --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return doctorCommand(cmd.OutOrStdout())
	},
}

func init() {
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "attempt automatic fixes where possible")
}

// DoctorOutput represents the JSON output for doctor command.
type DoctorOutput struct {
	Categories []CategoryOutput `json:"categories"`
	Summary    SummaryOutput    `json:"summary"`
}

// CategoryOutput represents a category of check results.
type CategoryOutput struct {
	Name    string               `json:"name"`
	Results []doctor.CheckResult `json:"results"`
}

// SummaryOutput summarizes the check results.
type SummaryOutput struct {
	Pass     int  `json:"pass"`
	Warn     int  `json:"warn"`
	Fail     int  `json:"fail"`
	Fixable  int  `json:"fixable"`
	AllClear bool `json:"all_clear"`
}

// doctorCommand implements the doctor command logic.
func doctorCommand(out io.Writer) error {
	checks := collectChecks(Config())
	results := doctor.RunAll(checks)

	if doctorFix {
		results = attemptFixes(checks, results)
	}

	if MachineMode() {
		return WriteJSONSuccess(out, buildDoctorOutput(checks, results))
	}
	return outputDoctorText(out, checks, results)
}

// collectChecks gathers the checks. A broken config still yields source and
// terminal checks, run against defaults.
func collectChecks(cfgPath string) []doctor.Check {
	cfg, _, err := config.LoadOrDefault(cfgPath)
	if err != nil {
		cfg = config.DefaultConfig()
	}

	var checks []doctor.Check
	checks = append(checks, doctor.NewConfigChecks(cfgPath)...)
	checks = append(checks, doctor.NewSourceChecks(cfg.Source.Command)...)
	checks = append(checks, doctor.NewTerminalChecks(cfg.Output.Color)...)
	return checks
}

// attemptFixes tries to fix issues where possible.
func attemptFixes(checks []doctor.Check, results []doctor.CheckResult) []doctor.CheckResult {
	for i, result := range results {
		if result.Fixable && (result.Status == doctor.StatusFail || result.Status == doctor.StatusWarn) {
			if err := checks[i].Fix(); err == nil {
				// Re-run the check to see if it's fixed
				results[i] = checks[i].Run()
			}
		}
	}
	return results
}

// groupByCategory returns result indices per category, in CategoryOrder.
func groupByCategory(checks []doctor.Check) ([]string, map[string][]int) {
	grouped := make(map[string][]int)
	for i, check := range checks {
		grouped[check.Category()] = append(grouped[check.Category()], i)
	}

	var order []string
	for _, cat := range doctor.CategoryOrder {
		if len(grouped[cat]) > 0 {
			order = append(order, cat)
		}
	}
	return order, grouped
}

func buildDoctorOutput(checks []doctor.Check, results []doctor.CheckResult) DoctorOutput {
	order, grouped := groupByCategory(checks)

	output := DoctorOutput{Categories: make([]CategoryOutput, 0, len(order))}
	for _, cat := range order {
		co := CategoryOutput{Name: cat}
		for _, idx := range grouped[cat] {
			co.Results = append(co.Results, results[idx])
		}
		output.Categories = append(output.Categories, co)
	}

	counts := doctor.CountByStatus(results)
	output.Summary = SummaryOutput{
		Pass:     counts[doctor.StatusPass],
		Warn:     counts[doctor.StatusWarn],
		Fail:     counts[doctor.StatusFail],
		Fixable:  doctor.FixableCount(results),
		AllClear: !doctor.HasIssues(results),
	}
	return output
}

// outputDoctorText outputs results in human-readable format.
func outputDoctorText(out io.Writer, checks []doctor.Check, results []doctor.CheckResult) error {
	successStyle := lipgloss.NewStyle().Foreground(ui.ColorSuccess)
	errorStyle := lipgloss.NewStyle().Foreground(ui.ColorError)
	warnStyle := lipgloss.NewStyle().Foreground(ui.ColorWarning)
	mutedStyle := lipgloss.NewStyle().Foreground(ui.ColorMuted)
	headerStyle := lipgloss.NewStyle().Bold(true)

	fmt.Fprintln(out)
	fmt.Fprintln(out, headerStyle.Render("dayline Diagnostic Report"))
	fmt.Fprintln(out)

	order, grouped := groupByCategory(checks)
	for _, category := range order {
		fmt.Fprintln(out, headerStyle.Render(category))
		for _, idx := range grouped[category] {
			renderCheckResult(out, results[idx], successStyle, errorStyle, warnStyle, mutedStyle)
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintln(out, strings.Repeat("━", 60))
	fmt.Fprintln(out)

	if !doctor.HasIssues(results) {
		fmt.Fprintf(out, "%s %s\n", successStyle.Render(ui.SymbolSuccess), doctor.Summary(results))
	} else {
		fmt.Fprintf(out, "%s %s\n", errorStyle.Render(ui.SymbolFail), doctor.Summary(results))

		if doctor.FixableCount(results) > 0 && !doctorFix {
			fmt.Fprintln(out)
			fmt.Fprintf(out, "  Run with %s to attempt automatic fixes where possible.\n",
				mutedStyle.Render("--fix"))
		}
	}

	fmt.Fprintln(out)
	return nil
}

// renderCheckResult renders a single check result.
func renderCheckResult(out io.Writer, result doctor.CheckResult, successStyle, errorStyle, warnStyle, mutedStyle lipgloss.Style) {
	var symbol string
	var style lipgloss.Style

	switch result.Status {
	case doctor.StatusPass:
		symbol = ui.SymbolSuccess
		style = successStyle
	case doctor.StatusWarn:
		symbol = ui.SymbolWarning
		style = warnStyle
	default:
		symbol = ui.SymbolFail
		style = errorStyle
	}

	fmt.Fprintf(out, "  %s %s\n", style.Render(symbol), result.Message)

	if result.Suggestion != "" && result.Status != doctor.StatusPass {
		for _, line := range strings.Split(result.Suggestion, "\n") {
			fmt.Fprintf(out, "    %s\n", mutedStyle.Render(line))
		}
	}
}
