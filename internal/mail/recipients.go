package mail

import (
	"strings"
	"unicode"

	"github.com/ryan-gang/pigeon/internal/config"
)

// NormalizeRecipients turns a comma or semicolon separated list into
// addresses. All whitespace is removed, empty entries are dropped, order
// and duplicates are kept.
func NormalizeRecipients(list string) []string {
	list = strings.ReplaceAll(list, ";", ",")
	list = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, list)

	recipients := make([]string, 0)
	for _, token := range strings.Split(list, ",") {
		if token != "" {
			recipients = append(recipients, token)
		}
	}
	return recipients
}

// ResolveRecipients picks the explicit list, then the stored default, then
// the sender itself, and normalizes the winner.
func ResolveRecipients(to string, record config.Record) ([]string, error) {
	list := to
	if list == "" {
		list = record.Receiver
	}
	if list == "" {
		list = record.Sender
	}

	recipients := NormalizeRecipients(list)
	if len(recipients) == 0 {
		return nil, ErrEmptyRecipientList
	}
	return recipients, nil
}
