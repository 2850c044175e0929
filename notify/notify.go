// Package notify sends plain-text email notifications using credentials kept
// in ~/.email_notify_env. When the credentials are missing, the caller's
// terminal is used to collect them before the first send.
//
//	if err := notify.Send("Job Complete", "Your script finished.", "me@example.com; team@example.com"); err != nil {
//		log.Fatal(err)
//	}
package notify

import (
	"io"
	"os"
	"strings"

	"github.com/ryan-gang/pigeon/internal/config"
	"github.com/ryan-gang/pigeon/internal/mail"
	"github.com/ryan-gang/pigeon/internal/setup"
)

var (
	ErrConfigurationIncomplete = mail.ErrConfigurationIncomplete
	ErrAuthentication          = mail.ErrAuthentication
	ErrTransport               = mail.ErrTransport
	ErrEmptyRecipientList      = mail.ErrEmptyRecipientList
	ErrPersistence             = config.ErrPersistence
)

// Send mails subject and body. Recipients are comma or semicolon separated
// lists; with none given the stored default recipients are used, then the
// sender's own address.
func Send(subject, body string, to ...string) error {
	store, err := config.NewDefaultStore()
	if err != nil {
		return err
	}
	return newNotifier(store, os.Stdin, os.Stdout).Send(subject, body, strings.Join(to, ","))
}

// Configure prompts for credentials on the terminal and saves them.
func Configure() error {
	store, err := config.NewDefaultStore()
	if err != nil {
		return err
	}
	return newNotifier(store, os.Stdin, os.Stdout).Configure()
}

func newNotifier(store *config.Store, in io.Reader, out io.Writer) *mail.Notifier {
	return mail.NewNotifier(store, setup.NewTerminalCollector(store, in, out))
}
