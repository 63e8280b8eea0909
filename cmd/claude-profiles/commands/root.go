// Package commands implements the CLI commands for claude-profiles.
package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"claudeprofiles/cmd"
	"claudeprofiles/internal/config"
	cperrors "claudeprofiles/internal/errors"
	"claudeprofiles/internal/logging"
)

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// profilesDir holds the value of the --profiles-dir flag.
var profilesDir string

// cfg holds the configuration loaded at startup.
var cfg *config.Config

// configLoadErr holds any error that occurred during config loading.
var configLoadErr error

func init() {
	cobra.OnInitialize(initConfig)

	// Add persistent flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")
	rootCmd.PersistentFlags().StringVar(&profilesDir, "profiles-dir", "",
		"profile override directory (default: ~/.claude-profiles)")

	// Add version flag
	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("claude-profiles version {{.Version}}\n")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	// Capture load errors for later reporting
	cfg, configLoadErr = config.Load("")
}

var rootCmd = &cobra.Command{
	Use:   "claude-profiles",
	Short: "Per-stack Claude Code configuration for your projects",
	Long: `claude-profiles detects what kind of project a directory holds and
installs the matching Claude Code configuration: MCP servers, CLAUDE.md
instructions, rules, skills, and settings.

Profiles for common stacks ship built in. Drop a profile file into
~/.claude-profiles to override a built-in or add your own; user files
always win over the embedded set.

Existing project files are never clobbered silently. A CLAUDE.md that
differs from the profile is moved aside to a timestamped backup before
the new one is written, .gitignore only gains entries it is missing,
and apply reports every file it touched.`,
	Example: `  # See what this project looks like
  claude-profiles detect

  # Apply the profile for the detected stack
  claude-profiles apply auto

  # Preview changes without writing
  claude-profiles diff auto

  # List available profiles
  claude-profiles list

  See Also: claude-profiles show, claude-profiles init`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize logging first
		if err := setupLogging(cmd); err != nil {
			return err
		}
		return checkConfigLoad(cmd, args)
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return cperrors.NewUserError(nil, "cannot use --quiet and --verbose together")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity

		// CLI flags take precedence, but if not set, check env var
		if v == 0 {
			if val, ok := os.LookupEnv("CLAUDE_PROFILES_DEBUG"); ok {
				switch val {
				case "1", "true":
					v = 2 // Debug
				case "2":
					v = 3 // Trace
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var primaryHandler slog.Handler
	switch logging.Format(logFormat) {
	case logging.FormatJSON:
		primaryHandler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	default:
		primaryHandler = logging.NewHandler(cmd.ErrOrStderr(), opts)
	}

	handlers := []slog.Handler{primaryHandler}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return cperrors.NewUserError(err, "failed to open log file")
		}
		// File output uses JSON format
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{
			Level: level,
		}))
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = logging.NewMultiHandler(handlers...)
	} else {
		handler = handlers[0]
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// checkConfigLoad surfaces configuration errors captured during startup.
func checkConfigLoad(cmd *cobra.Command, _ []string) error {
	// Skip for help and version commands
	if cmd.Name() == "help" || cmd.Name() == "version" {
		return nil
	}

	if configLoadErr != nil {
		return cperrors.NewConfigError(configLoadErr)
	}

	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
