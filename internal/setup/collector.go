// Package setup gathers sender credentials from a person and persists them.
package setup

import (
	"errors"

	"github.com/cli/browser"
	"github.com/ryan-gang/pigeon/internal/config"
)

// AppPasswordHelpURL is where the mail provider issues app-specific passwords.
const AppPasswordHelpURL = "https://myaccount.google.com/apppasswords"

// ErrAbandoned is returned when the person leaves collection without saving.
var ErrAbandoned = errors.New("credential setup abandoned")

// Collector obtains complete credentials and saves them, blocking until
// done. It returns ErrAbandoned if the person walks away.
type Collector interface {
	Collect() error
}

// Store is the part of the credential store a collector needs.
type Store interface {
	LoadRecord() (config.Record, error)
	Save(sender, password, receiver string) error
}

// OpenHelp opens the app password page in the default browser.
func OpenHelp() error {
	return browser.OpenURL(AppPasswordHelpURL)
}

// Validate checks the fields a save requires.
func Validate(sender, password, receiver string) error {
	if sender == "" || password == "" || receiver == "" {
		return errors.New("all fields are required")
	}
	return nil
}
