package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/slayerdex/internal/config"
	"github.com/rshade/slayerdex/internal/logging"
	"github.com/rshade/slayerdex/internal/tui"
)

// setupLogging configures logging based on config file, environment, and CLI flags.
// Interactive sessions log to a file so the browser owns the terminal.
func setupLogging(cmd *cobra.Command, lookupEnv func(string) (string, bool)) logging.LogPathResult {
	cfg := config.GetGlobalConfig()
	loggingCfg := config.GetLoggingConfig()

	interactive := cmd.Annotations[annotationInteractive] == "true" &&
		tui.DetectOutputMode(cfg.Output.Plain) == tui.OutputModeInteractive

	if interactive && loggingCfg.File == "" {
		if path, err := config.GetDefaultLogFile(); err == nil {
			loggingCfg.File = path
		}
	}

	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		loggingCfg.Level = "debug"
		if !interactive {
			loggingCfg.Format = logging.FormatConsole
			loggingCfg.File = ""
		}
	}
	if envLevel, ok := lookupEnv(config.EnvLogLevel); ok && envLevel != "" && !debug {
		loggingCfg.Level = envLevel
	}

	result := logging.NewLoggerWithPath(loggingCfg.ToLoggingConfig())
	logger = logging.ComponentLogger(result.Logger, "cli")

	if result.UsingFile && debug {
		logging.PrintLogPathMessage(cmd.ErrOrStderr(), result.FilePath)
	} else if result.FallbackUsed {
		logging.PrintFallbackWarning(cmd.ErrOrStderr(), result.FallbackReason)
	}

	ctx := cmd.Context()
	traceID := logging.GetOrGenerateTraceID(ctx)
	ctx = logging.ContextWithTraceID(ctx, traceID)
	ctx = logger.WithContext(ctx)
	cmd.SetContext(ctx)

	logger.Debug().Ctx(ctx).
		Str("command", cmd.Name()).
		Str("trace_id", traceID).
		Str("api_url", cfg.API.BaseURL).
		Bool("interactive", interactive).
		Msg("command started")

	return result
}

// cleanupLogging closes the log file handle.
func cleanupLogging(cmd *cobra.Command, logResult *logging.LogPathResult) error {
	logging.FromContext(cmd.Context()).Debug().Str("command", cmd.Name()).Msg("command finished")
	if logResult != nil {
		return logResult.Close()
	}
	return nil
}
