package mail

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	gomail "gopkg.in/mail.v2"
)

// BuildMessage assembles the plain-text notification. The To header is for
// display only; delivery uses the envelope passed to the relay.
func BuildMessage(from string, to []string, subject, body string) *gomail.Message {
	msg := gomail.NewMessage()
	msg.SetHeader("From", from)
	msg.SetHeader("To", strings.Join(to, ", "))
	msg.SetHeader("Subject", subject)
	msg.SetHeader("Message-ID", messageID(from))
	msg.SetBody("text/plain", body)
	return msg
}

func messageID(from string) string {
	domain := "localhost"
	if at := strings.LastIndex(from, "@"); at >= 0 && at < len(from)-1 {
		domain = from[at+1:]
	}
	return fmt.Sprintf("<%s@%s>", uuid.NewString(), domain)
}
