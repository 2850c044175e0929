package cmdutil

import (
	"time"

	"github.com/ryan-gang/pigeon/internal/config"
	"github.com/ryan-gang/pigeon/internal/logger"
	"github.com/ryan-gang/pigeon/internal/mail"
	"github.com/ryan-gang/pigeon/internal/setup"
	"github.com/spf13/cobra"
)

// StoreFromFlags opens the credential store named by --config, or the
// default one in the home directory.
func StoreFromFlags(cmd *cobra.Command) (*config.Store, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	if configPath == "" {
		return config.NewDefaultStore()
	}
	return config.NewStore(configPath), nil
}

// LoggerFromFlags builds the logger selected by --log-file and --verbose.
// Without a log file, lines go to stderr only when verbose.
func LoggerFromFlags(cmd *cobra.Command) (logger.LoggerInterface, error) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	logPath, _ := cmd.Flags().GetString("log-file")

	if logPath != "" {
		if verbose {
			return logger.NewFile(logPath, true, cmd.ErrOrStderr())
		}
		return logger.NewFile(logPath, false)
	}
	if verbose {
		return logger.New(cmd.ErrOrStderr(), true), nil
	}
	return logger.Discard(), nil
}

// CollectorFromFlags returns the terminal collector, or nil under --no-input.
func CollectorFromFlags(cmd *cobra.Command, store setup.Store, log logger.LoggerInterface) setup.Collector {
	noInput, _ := cmd.Flags().GetBool("no-input")
	if noInput {
		return nil
	}
	collector := setup.NewTerminalCollector(store, cmd.InOrStdin(), cmd.OutOrStdout())
	collector.Logger = log
	return collector
}

// NotifierFromFlags wires store, collector, logger and timeout from the
// command's flags. With interactive false no collector is attached, as
// under --no-input. The returned logger must be closed by the caller.
func NotifierFromFlags(cmd *cobra.Command, interactive bool) (*mail.Notifier, logger.LoggerInterface, error) {
	store, err := StoreFromFlags(cmd)
	if err != nil {
		return nil, nil, err
	}
	log, err := LoggerFromFlags(cmd)
	if err != nil {
		return nil, nil, err
	}

	var collector setup.Collector
	if interactive {
		collector = CollectorFromFlags(cmd, store, log)
	}
	notifier := mail.NewNotifier(store, collector)
	notifier.Logger = log

	if cmd.Flags().Lookup("mail-timeout") != nil {
		timeout, err := cmd.Flags().GetInt("mail-timeout")
		if err == nil && timeout > 0 {
			notifier.Timeout = time.Duration(timeout) * time.Second
		}
	}
	return notifier, log, nil
}
