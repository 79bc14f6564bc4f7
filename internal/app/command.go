package app

import (
	"time"

	"github.com/obentoo/updatestatus/internal/common/config"
	"github.com/obentoo/updatestatus/internal/common/logger"
	"github.com/obentoo/updatestatus/internal/common/output"
	"github.com/obentoo/updatestatus/internal/common/runner"
	"github.com/obentoo/updatestatus/internal/common/version"
	"github.com/obentoo/updatestatus/internal/status"
	"github.com/spf13/cobra"
)

// flags holds the command-line flags of one command instance
type flags struct {
	configPath string
	timeout    time.Duration
	parallel   bool
	verbose    bool
	quiet      bool
	noColor    bool
	logFile    bool
}

// CommandOption configures the root command
type CommandOption func(*commandDeps)

type commandDeps struct {
	newExecutor func(timeout time.Duration) runner.Executor
	loadConfig  func(path string) (*config.Config, error)
}

// WithExecutorFactory replaces the subprocess runner, e.g. with a ScriptedRunner in tests
func WithExecutorFactory(fn func(timeout time.Duration) runner.Executor) CommandOption {
	return func(d *commandDeps) {
		d.newExecutor = fn
	}
}

// WithConfigLoader replaces config file discovery
func WithConfigLoader(fn func(path string) (*config.Config, error)) CommandOption {
	return func(d *commandDeps) {
		d.loadConfig = fn
	}
}

func defaultLoadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}

// NewRootCommand builds the cobra command for a Variant.
// The command takes no arguments and always exits 0 once flags parse.
func NewRootCommand(v Variant, opts ...CommandOption) *cobra.Command {
	deps := &commandDeps{
		newExecutor: func(timeout time.Duration) runner.Executor {
			return runner.New(runner.WithTimeout(timeout))
		},
		loadConfig: defaultLoadConfig,
	}
	for _, opt := range opts {
		opt(deps)
	}

	f := &flags{}

	cmd := &cobra.Command{
		Use:           v.Name,
		Short:         v.Short,
		Long:          v.Long,
		Args:          cobra.NoArgs,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if f.verbose {
				logger.SetVerbose(true)
			}
			if f.quiet {
				logger.SetQuiet(true)
			}
			if f.noColor || !output.IsTerminal() {
				output.NoColor()
			}
			if f.logFile {
				if err := logger.Default().EnableFileLogging(""); err != nil {
					logger.Warn("file logging disabled: %v", err)
				}
			}
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Default().Close()
		},
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := deps.loadConfig(f.configPath)
			if err != nil {
				logger.Warn("ignoring config: %v", err)
				cfg = &config.Config{}
			}

			settings := Resolve(v, cfg)
			if cmd.Flags().Changed("timeout") {
				settings.Timeout = f.timeout
			}
			if cmd.Flags().Changed("parallel") {
				settings.Parallel = f.parallel
			}
			if cfg.LogFile != "" && !f.logFile {
				if err := logger.Default().EnableFileLogging(cfg.LogFile); err != nil {
					logger.Warn("file logging disabled: %v", err)
				}
			}

			msg := Check(cmd.Context(), v, settings, deps.newExecutor(settings.Timeout))
			if v.Colorize {
				msg = output.ColorizeLabels(msg, status.UpToDate)
			}
			output.PrintStatus(cmd.OutOrStdout(), msg)
		},
	}

	cmd.SetVersionTemplate(version.Info(v.Name) + "\n")

	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.AddCommand(newCompletionCommand(cmd))

	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "Path to a config.yaml or config.toml file")
	cmd.Flags().DurationVarP(&f.timeout, "timeout", "t", v.Timeout, "Timeout for each external command (0 waits indefinitely)")
	cmd.Flags().BoolVar(&f.parallel, "parallel", false, "Check DNF and Flatpak concurrently")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "Enable verbose output on stderr")
	cmd.Flags().BoolVarP(&f.quiet, "quiet", "q", false, "Suppress all diagnostics")
	cmd.Flags().BoolVar(&f.noColor, "no-color", false, "Disable colored output")
	cmd.Flags().BoolVar(&f.logFile, "log-file", false, "Append diagnostics to the state log file")

	return cmd
}
