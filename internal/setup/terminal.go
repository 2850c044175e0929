package setup

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ryan-gang/pigeon/internal/config"
	"github.com/ryan-gang/pigeon/internal/logger"
	"github.com/ryan-gang/pigeon/internal/util"
	"golang.org/x/term"
)

// TerminalCollector prompts for credentials on a line-oriented terminal.
// The secret is read without echo when the input is a real terminal.
type TerminalCollector struct {
	store Store
	in    io.Reader
	out   io.Writer

	// ReadSecret reads the secret without echo. Nil reads a plain line.
	ReadSecret func() (string, error)
	// OpenHelp is invoked when the person types '?' at the secret prompt.
	OpenHelp func() error
	Logger   logger.LoggerInterface
}

func NewTerminalCollector(store Store, in io.Reader, out io.Writer) *TerminalCollector {
	c := &TerminalCollector{
		store:    store,
		in:       in,
		out:      out,
		OpenHelp: OpenHelp,
		Logger:   logger.Discard(),
	}
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fd := int(f.Fd())
		c.ReadSecret = func() (string, error) {
			secret, err := term.ReadPassword(fd)
			fmt.Fprintln(out)
			return string(secret), err
		}
	}
	return c
}

func (c *TerminalCollector) Collect() error {
	current, err := c.store.LoadRecord()
	if err != nil {
		return err
	}

	scanner := bufio.NewScanner(c.in)
	util.CyanBold.Fprintln(c.out, "CONFIGURE PIGEON")

	for {
		record, err := c.prompt(scanner, current)
		if errors.Is(err, io.EOF) {
			util.Red.Fprintln(c.out, "\nSetup cancelled, nothing saved")
			c.Logger.Warn("credential setup abandoned")
			return ErrAbandoned
		}
		if err != nil {
			return err
		}

		if err := Validate(record.Sender, record.Password, record.Receiver); err != nil {
			util.FprintError(c.out, util.ValidationError, "checking input", err)
			current = record
			continue
		}

		if err := c.store.Save(record.Sender, record.Password, record.Receiver); err != nil {
			return err
		}
		c.Logger.Infof("saved credentials for %s", record.Sender)
		util.Green.Fprintln(c.out, "Credentials saved")
		return nil
	}
}

func (c *TerminalCollector) prompt(scanner *bufio.Scanner, current config.Record) (config.Record, error) {
	var record config.Record
	var err error

	record.Sender, err = c.ask(scanner, "Your Gmail address", current.Sender)
	if err != nil {
		return record, err
	}

	record.Password, err = c.askSecret(scanner, current.Password)
	if err != nil {
		return record, err
	}

	toSelf := current.Receiver == "" || strings.TrimSpace(current.Receiver) == record.Sender
	toSelf, err = c.askYesNo(scanner, "Send notifications to the same address?", toSelf)
	if err != nil {
		return record, err
	}

	if toSelf {
		record.Receiver = record.Sender
		return record, nil
	}

	defaultReceiver := current.Receiver
	if defaultReceiver == record.Sender {
		defaultReceiver = ""
	}
	record.Receiver, err = c.ask(scanner, "Recipient emails (separate multiple with commas or semicolons)", defaultReceiver)
	return record, err
}

func (c *TerminalCollector) ask(scanner *bufio.Scanner, label, fallback string) (string, error) {
	if fallback != "" {
		util.Cyan.Fprintf(c.out, "%s [%s] : ", label, fallback)
	} else {
		util.Cyan.Fprintf(c.out, "%s : ", label)
	}
	answer, err := util.ScanlineTrim(scanner)
	if err != nil {
		return "", err
	}
	if answer == "" {
		return fallback, nil
	}
	return answer, nil
}

func (c *TerminalCollector) askSecret(scanner *bufio.Scanner, fallback string) (string, error) {
	for {
		if fallback != "" {
			util.Cyan.Fprintf(c.out, "App password, '?' for help [stored %s] : ", util.Mask(fallback))
		} else {
			util.Cyan.Fprint(c.out, "App password, '?' for help : ")
		}

		var answer string
		var err error
		if c.ReadSecret != nil {
			answer, err = c.ReadSecret()
			answer = strings.TrimSpace(answer)
		} else {
			answer, err = util.ScanlineTrim(scanner)
		}
		if err != nil {
			return "", err
		}

		if answer != "?" {
			if answer == "" {
				return fallback, nil
			}
			return answer, nil
		}

		util.Magenta.Fprintf(c.out, "Opening %s\n", AppPasswordHelpURL)
		if c.OpenHelp != nil {
			if err := c.OpenHelp(); err != nil {
				util.FprintError(c.out, util.SetupError, "opening browser", err)
			}
		}
	}
}

func (c *TerminalCollector) askYesNo(scanner *bufio.Scanner, label string, fallback bool) (bool, error) {
	hint := "y/N"
	if fallback {
		hint = "Y/n"
	}
	for {
		util.Cyan.Fprintf(c.out, "%s [%s] : ", label, hint)
		answer, err := util.ScanlineTrim(scanner)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "":
			return fallback, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		util.Red.Fprintln(c.out, "Please answer y or n")
	}
}
