package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/rileyhilliard/dayline/internal/config"
	"github.com/rileyhilliard/dayline/internal/errors"
	"github.com/rileyhilliard/dayline/internal/ui"
)

var (
	initForce  bool
	initGlobal bool
)

// initCmd writes a default config file.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a .dayline.yaml configuration",
	Long: `Write a config file with the default resolution, tag priorities, and
source command, ready to edit.

By default the file is created in the current directory. With --global it
goes to ~/.config/dayline/config.yaml, which applies wherever no local
.dayline.yaml exists.

Examples:
  dayline init
  dayline init --global
  dayline init --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Init(InitOptions{
			Global:         initGlobal,
			Overwrite:      initForce,
			NonInteractive: !ui.IsTerminal(os.Stdin),
			Out:            cmd.OutOrStdout(),
		})
	},
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing config without asking")
	initCmd.Flags().BoolVar(&initGlobal, "global", false, "write ~/.config/dayline/config.yaml instead of ./.dayline.yaml")
}

// InitOptions holds options for the init command.
type InitOptions struct {
	Global         bool // Write the global config instead of the project one
	Overwrite      bool // Overwrite existing config without asking
	NonInteractive bool // Never prompt; refuse to overwrite without Overwrite
	Out            io.Writer

	// Path overrides the target file.
	Path string
}

// Init creates a new config file with defaults.
func Init(opts InitOptions) error {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	configPath := opts.Path
	if configPath == "" {
		configPath = filepath.Join(".", config.ConfigFileName)
		if opts.Global {
			configPath = config.GlobalConfigPath()
			if configPath == "" {
				return errors.New(errors.ErrConfig,
					"Couldn't determine your home directory",
					"Set HOME, or run 'dayline init' without --global.")
			}
		}
	}

	if _, err := os.Stat(configPath); err == nil && !opts.Overwrite {
		if opts.NonInteractive {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", configPath),
				"Use --force to overwrite")
		}

		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", configPath)).
					Value(&overwrite),
			),
		)

		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}

		if !overwrite {
			fmt.Fprintln(opts.Out, "Cancelled.")
			return nil
		}
	}

	if err := config.Write(configPath, config.DefaultConfig()); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Failed to write config file: %s", configPath),
			"Check directory permissions")
	}

	fmt.Fprintf(opts.Out, "%s Created %s\n\n", ui.SymbolSuccess, configPath)
	fmt.Fprintln(opts.Out, "Next steps:")
	fmt.Fprintln(opts.Out, "  dayline          - Render today's timeline")
	fmt.Fprintln(opts.Out, "  dayline doctor   - Check configuration and timew")
	return nil
}
