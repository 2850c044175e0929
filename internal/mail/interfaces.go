package mail

import (
	"github.com/ryan-gang/pigeon/internal/config"

	gomail "gopkg.in/mail.v2"
)

// MailSender sends one notification; to may be empty.
type MailSender interface {
	Send(subject, body, to string) error
}

// CredentialStore is the read side of the credential file.
type CredentialStore interface {
	Load() (map[string]string, error)
}

// Dialer opens one authenticated relay session.
type Dialer interface {
	Dial() (gomail.SendCloser, error)
}

// DialerFactory builds a Dialer for the given configuration.
type DialerFactory func(cfg config.ConfigProvider) Dialer

// RelayDialer connects to the configured relay with implicit TLS. Failed
// submissions are not retried.
func RelayDialer(cfg config.ConfigProvider) Dialer {
	dialer := gomail.NewDialer(cfg.GetServer(), cfg.GetPort(), cfg.GetSender(), cfg.GetPassword())
	dialer.SSL = true
	dialer.Timeout = cfg.GetTimeout()
	dialer.RetryFailure = false
	return dialer
}
