package cmd

import (
	"github.com/lithammer/dedent"
	"github.com/ryan-gang/pigeon/internal/cmdutil"
	"github.com/ryan-gang/pigeon/internal/setup"
	"github.com/ryan-gang/pigeon/internal/util"
	"github.com/spf13/cobra"
)

var configureExample = dedent.Dedent(`
	# Store or change the sender address, app password and default recipients
	pigeon configure

	# Get an app password first
	pigeon configure --open-help

	# Check what is stored
	pigeon configure --show`,
)

func newConfigureCmd() *cobra.Command {
	configureCmd := &cobra.Command{
		Use:   "configure",
		Short: "Configure sender credentials and default recipients",
		Long: `Prompts for your Gmail address, an app-specific password and whether
notifications go to yourself or to a list of recipients, then saves them to
the credential file. Existing values are offered as defaults.`,
		Example: configureExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if openHelp, _ := cmd.Flags().GetBool("open-help"); openHelp {
				util.Cyan.Fprintf(cmd.OutOrStdout(), "Opening %s\n", setup.AppPasswordHelpURL)
				return setup.OpenHelp()
			}

			if show, _ := cmd.Flags().GetBool("show"); show {
				return showConfiguration(cmd)
			}

			notifier, log, err := cmdutil.NotifierFromFlags(cmd, true)
			if err != nil {
				return err
			}
			defer log.Close()

			if err := notifier.Configure(); err != nil {
				return err
			}

			store, err := cmdutil.StoreFromFlags(cmd)
			if err != nil {
				return err
			}
			util.Green.Fprintf(cmd.OutOrStdout(), "Configuration saved to %s\n", store.Path())
			return nil
		},
	}

	configureCmd.Flags().Bool("open-help", false, "Open the app password page in your browser and exit")
	configureCmd.Flags().Bool("show", false, "Print the stored settings with the password masked and exit")
	return configureCmd
}

func showConfiguration(cmd *cobra.Command) error {
	store, err := cmdutil.StoreFromFlags(cmd)
	if err != nil {
		return err
	}
	record, err := store.LoadRecord()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	util.CyanBold.Fprintf(out, "Credential file: %s\n", store.Path())
	util.Cyan.Fprintf(out, "Sender:     %s\n", record.Sender)
	util.Cyan.Fprintf(out, "Password:   %s\n", util.Mask(record.Password))
	util.Cyan.Fprintf(out, "Recipients: %s\n", record.Receiver)
	if !record.Complete() {
		util.Red.Fprintln(out, "Configuration is incomplete, run 'pigeon configure'")
	}
	return nil
}
