package mail

import (
	"errors"
	"fmt"
	"net/textproto"
)

var (
	// ErrConfigurationIncomplete means no usable sender address and secret
	// were available, even after offering setup.
	ErrConfigurationIncomplete = errors.New("email credentials are not configured")
	// ErrAuthentication means the relay rejected the sender credentials.
	ErrAuthentication = errors.New("relay rejected credentials")
	// ErrTransport covers connection, DNS, TLS and submission failures.
	ErrTransport = errors.New("relay transport failed")
	// ErrEmptyRecipientList means no address survived normalization.
	ErrEmptyRecipientList = errors.New("no recipients")
)

// SMTP reply codes used for authentication failures.
var authReplyCodes = map[int]bool{
	530: true,
	534: true,
	535: true,
}

func classifyDialError(err error) error {
	var tpErr *textproto.Error
	if errors.As(err, &tpErr) && authReplyCodes[tpErr.Code] {
		return fmt.Errorf("%w: %w", ErrAuthentication, err)
	}
	return fmt.Errorf("%w: %w", ErrTransport, err)
}
