// Package cmd wires the tasks command line: the root command runs the
// terminal UI, and small subcommands report the version and the
// effective configuration.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/Mr-Dark-debug/tasks/internal/config"
	"github.com/Mr-Dark-debug/tasks/internal/logging"
	"github.com/Mr-Dark-debug/tasks/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Build information, set with -ldflags "-X".
var (
	Version   = "0.1.0"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// Execute runs the root command
func Execute() error {
	return NewRootCmd(viper.New()).Execute()
}

// NewRootCmd builds the command tree around v. Each call gets its own
// flag set, so tests can build as many trees as they like.
func NewRootCmd(v *viper.Viper) *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:   "tasks",
		Short: "A single-screen terminal task list",
		Long: `tasks is a minimal task list for the terminal: type a task, press
enter to add it, and delete rows you no longer need. Tasks live only
for the lifetime of the program.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(v, cfgFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, v)
		},
	}

	root.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default is "+config.ConfigFile()+")")

	flags := root.Flags()
	flags.Bool("no-alt-screen", false, "draw in the main screen instead of the alternate screen")
	flags.Bool("no-mouse", false, "disable mouse clicks on Add Task and Delete")
	flags.Bool("log", false, "write a log file")
	flags.String("log-level", "info", "log level: "+strings.Join(config.ValidLogLevels(), ", "))
	flags.String("log-file", "", "log file path")

	_ = v.BindPFlag("logging.enabled", flags.Lookup("log"))
	_ = v.BindPFlag("logging.level", flags.Lookup("log-level"))

	// The --no-* flags and --log-file only override the config when given,
	// so their zero values never shadow the file or environment.
	root.PreRunE = func(cmd *cobra.Command, args []string) error {
		applyFlags(cmd, v)
		return nil
	}

	root.AddCommand(newVersionCmd(), newConfigCmd(v))
	return root
}

// initConfig layers defaults, the config file and TASKS_* environment
// variables into v.
func initConfig(v *viper.Viper, cfgFile string) error {
	config.SetDefaultsOn(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(config.ConfigDir())
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("TASKS")
	// e.g., TASKS_UI_CHAR_LIMIT for ui.char_limit
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing default config file is fine; an explicit one must exist.
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}
	return nil
}

func applyFlags(cmd *cobra.Command, v *viper.Viper) {
	flags := cmd.Flags()
	if f := flags.Lookup("no-alt-screen"); f.Changed {
		off, _ := flags.GetBool("no-alt-screen")
		v.Set("ui.alt_screen", !off)
	}
	if f := flags.Lookup("no-mouse"); f.Changed {
		off, _ := flags.GetBool("no-mouse")
		v.Set("ui.mouse", !off)
	}
	if f := flags.Lookup("log-file"); f.Changed {
		v.Set("logging.file", f.Value.String())
	}
}

// newLogger builds the logger described by cfg. Console records go to
// the command's stderr.
func newLogger(cmd *cobra.Command, cfg config.LoggingConfig) (*logging.Logger, error) {
	opts := logging.Options{Level: cfg.Level}
	if cfg.Enabled {
		opts.File = cfg.File
	}
	if !strings.EqualFold(cfg.Console, config.ConsoleOff) {
		opts.Console = cmd.ErrOrStderr()
		opts.ConsoleLevel = cfg.Console
	}
	return logging.New(opts)
}

func runTUI(cmd *cobra.Command, v *viper.Viper) error {
	cfg, err := config.LoadFrom(v)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := newLogger(cmd, cfg.Logging)
	if err != nil {
		return err
	}
	defer logger.Close()

	logger.Info("starting", "version", Version, "config", v.ConfigFileUsed())

	opts := []tea.ProgramOption{tea.WithOutput(cmd.OutOrStdout())}
	// Leave stdin to Bubble Tea so it can fall back to the TTY when
	// stdin is redirected.
	if in := cmd.InOrStdin(); in != os.Stdin {
		opts = append(opts, tea.WithInput(in))
	}
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	p := tea.NewProgram(tui.NewModel(cfg.UI, logger), opts...)

	logger.Hold()
	final, err := p.Run()
	if err != nil {
		// Recorded in the file only; main reports the returned error.
		logger.Error("program exited with error", "error", err)
		logger.Release()
		return fmt.Errorf("running TUI: %w", err)
	}
	logger.Release()

	if m, ok := final.(tui.Model); ok {
		logger.Info("exiting", "tasks", len(m.Items()))
	}
	return nil
}
