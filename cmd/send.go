package cmd

import (
	"io"
	"os"
	"strings"

	"github.com/lithammer/dedent"
	"github.com/ryan-gang/pigeon/internal/cmdutil"
	"github.com/ryan-gang/pigeon/internal/config"
	"github.com/ryan-gang/pigeon/internal/mail"
	"github.com/ryan-gang/pigeon/internal/util"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	helpLong = `Sends a plain-text notification email. The body comes from the second
argument or, when omitted, from standard input if it is not a terminal.
Without --to, mail goes to the stored default recipients, or to yourself.

When the body is piped in, standard input is not available for setup, so
missing credentials fail immediately; run 'pigeon configure' first.`

	helpExample = dedent.Dedent(`
		# Notify yourself
		pigeon send "Job Complete" "Your script finished successfully."

		# Notify a team, addresses separated by commas or semicolons
		pigeon send "Nightly build" "All green" --to "me@example.com; team@example.com"

		# Mail the tail of a log
		tail -n 50 train.log | pigeon send "Training finished"

		# Show what would be sent without contacting the relay
		pigeon send "Test" "Hello" --dry-run`,
	)
)

func newSendCmd() *cobra.Command {
	sendCmd := &cobra.Command{
		Use:     "send SUBJECT [BODY]",
		Short:   "Send a notification email",
		Long:    helpLong,
		Example: helpExample,
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			subject := args[0]
			body, fromStdin, err := readBody(cmd, args)
			if err != nil {
				return err
			}

			// stdin is used up by the body, so it cannot answer setup prompts
			notifier, log, err := cmdutil.NotifierFromFlags(cmd, !fromStdin)
			if err != nil {
				return err
			}
			defer log.Close()

			dryRun, _ := cmd.Flags().GetBool("dry-run")
			if dryRun {
				notifier.Dial = mail.WriterDialer(cmd.OutOrStdout())
			}

			to, _ := cmd.Flags().GetString("to")
			if err := notifier.Send(subject, body, to); err != nil {
				return err
			}

			if !dryRun {
				util.GreenBold.Fprintln(cmd.OutOrStdout(), "Notification sent")
			}
			return nil
		},
	}

	sendCmd.Flags().StringP("to", "t", "", "Recipients, separated by commas or semicolons")
	sendCmd.Flags().IntP("mail-timeout", "m", config.DefaultTimeout, "Mail timeout in seconds")
	sendCmd.Flags().Bool("dry-run", false, "Print the message instead of sending it")
	return sendCmd
}

// readBody returns the message body and whether it was read from stdin.
func readBody(cmd *cobra.Command, args []string) (string, bool, error) {
	if len(args) > 1 {
		return args[1], false, nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "", false, nil
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", true, err
	}
	return strings.TrimRight(string(data), "\n"), true, nil
}
