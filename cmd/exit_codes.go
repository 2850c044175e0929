package cmd

import (
	"errors"
	"strings"

	"github.com/ryan-gang/pigeon/internal/config"
	"github.com/ryan-gang/pigeon/internal/mail"
	"github.com/ryan-gang/pigeon/internal/util"
)

const (
	ExitSuccess       = 0
	ExitGeneral       = 1
	ExitUsage         = 2
	ExitAuth          = 3
	ExitNotConfigured = 4
	ExitTransport     = 5
	ExitNoRecipients  = 6
	ExitPersistence   = 7
)

// ExitCode maps command errors to stable process exit codes for automation.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, mail.ErrAuthentication):
		return ExitAuth
	case errors.Is(err, mail.ErrConfigurationIncomplete):
		return ExitNotConfigured
	case errors.Is(err, mail.ErrTransport):
		return ExitTransport
	case errors.Is(err, mail.ErrEmptyRecipientList):
		return ExitNoRecipients
	case errors.Is(err, config.ErrPersistence):
		return ExitPersistence
	case isUsageError(err):
		return ExitUsage
	}
	return ExitGeneral
}

func isUsageError(err error) bool {
	msg := strings.ToLower(err.Error())
	fragments := []string{
		"unknown flag",
		"unknown command",
		"requires at least",
		"accepts between",
		"accepts at most",
		"flag needs an argument",
		"invalid argument",
	}
	for _, f := range fragments {
		if strings.Contains(msg, f) {
			return true
		}
	}
	return false
}

func errorContext(err error) util.ErrorContext {
	switch {
	case errors.Is(err, mail.ErrAuthentication), errors.Is(err, mail.ErrTransport):
		return util.MailError
	case errors.Is(err, mail.ErrConfigurationIncomplete), errors.Is(err, config.ErrPersistence):
		return util.ConfigError
	case errors.Is(err, mail.ErrEmptyRecipientList):
		return util.ValidationError
	}
	return util.ConfigError
}

func errorHint(err error) string {
	switch {
	case errors.Is(err, mail.ErrAuthentication):
		return "Check the stored app password with 'pigeon configure' (see 'pigeon configure --open-help')"
	case errors.Is(err, mail.ErrConfigurationIncomplete):
		return "Run 'pigeon configure' to store a sender address and app password"
	case errors.Is(err, mail.ErrEmptyRecipientList):
		return "Pass at least one address with --to, separated by commas or semicolons"
	}
	return ""
}
