package cmd

import (
	"os"

	"github.com/ryan-gang/pigeon/internal/util"
	"github.com/spf13/cobra"
)

// Version information - set at build time via ldflags
var Version = "dev"

// newRootCmd builds the full command tree.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "pigeon",
		Short:   "Send email notifications from scripts and terminals",
		Version: Version,
		Long: `pigeon sends plain-text notification emails through Gmail using an
app-specific password kept in ~/.email_notify_env.

If no credentials are stored yet, the first send walks you through setup.
Run 'pigeon configure' at any time to change them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			// Show help if no command is provided
			cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to credential file (default ~/.email_notify_env)")
	rootCmd.PersistentFlags().Bool("no-input", false, "Never prompt; fail if credentials are missing")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log progress to stderr")
	rootCmd.PersistentFlags().String("log-file", "", "Append log lines to this file")

	rootCmd.AddCommand(newSendCmd())
	rootCmd.AddCommand(newConfigureCmd())
	return rootCmd
}

func Execute() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		reportError(rootCmd, err)
		os.Exit(ExitCode(err))
	}
}

func reportError(cmd *cobra.Command, err error) {
	util.FprintError(cmd.ErrOrStderr(), errorContext(err), "pigeon", err)
	if hint := errorHint(err); hint != "" {
		util.Cyan.Fprintln(cmd.ErrOrStderr(), hint)
	}
}
