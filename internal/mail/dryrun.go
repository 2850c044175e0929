package mail

import (
	"fmt"
	"io"
	"strings"

	"github.com/ryan-gang/pigeon/internal/config"

	gomail "gopkg.in/mail.v2"
)

// WriterDialer returns a DialerFactory that prints each message to w
// instead of contacting the relay.
func WriterDialer(w io.Writer) DialerFactory {
	return func(config.ConfigProvider) Dialer {
		return writerDialer{w: w}
	}
}

type writerDialer struct {
	w io.Writer
}

func (d writerDialer) Dial() (gomail.SendCloser, error) {
	return writerSession{w: d.w}, nil
}

type writerSession struct {
	w io.Writer
}

func (s writerSession) Send(from string, to []string, msg io.WriterTo) error {
	fmt.Fprintln(s.w, strings.Repeat("=", 72))
	fmt.Fprintf(s.w, "MAIL FROM: %s\n", from)
	fmt.Fprintf(s.w, "RCPT TO:   %s\n", strings.Join(to, ", "))
	fmt.Fprintln(s.w, strings.Repeat("-", 72))
	if _, err := msg.WriteTo(s.w); err != nil {
		return err
	}
	fmt.Fprintln(s.w)
	fmt.Fprintln(s.w, strings.Repeat("=", 72))
	return nil
}

func (s writerSession) Close() error {
	return nil
}
