package mail

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ryan-gang/pigeon/internal/config"
	"github.com/ryan-gang/pigeon/internal/logger"
	"github.com/ryan-gang/pigeon/internal/setup"
)

var _ MailSender = (*Notifier)(nil)

// Notifier sends plain-text notifications with the stored credentials,
// offering interactive setup first when they are missing.
type Notifier struct {
	mu        sync.Mutex
	store     CredentialStore
	collector setup.Collector

	// Timeout bounds the relay session. Zero selects config.DefaultTimeout.
	Timeout time.Duration
	Dial    DialerFactory
	Logger  logger.LoggerInterface
}

// NewNotifier creates a notifier. A nil collector makes missing
// credentials fail immediately.
func NewNotifier(store CredentialStore, collector setup.Collector) *Notifier {
	return &Notifier{
		store:     store,
		collector: collector,
		Dial:      RelayDialer,
		Logger:    logger.Discard(),
	}
}

// Send delivers one message. An empty to uses the stored default
// recipients, then the sender's own address.
func (n *Notifier) Send(subject, body, to string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	record, err := n.ensureConfigured()
	if err != nil {
		return err
	}

	recipients, err := ResolveRecipients(to, record)
	if err != nil {
		return err
	}

	msg := BuildMessage(record.Sender, recipients, subject, body)
	cfg := config.NewConfigProvider(record, n.Timeout)

	n.Logger.Infof("Sending %q from %s to %d recipient(s)", subject, record.Sender, len(recipients))
	n.Logger.Debugf("Relay %s:%d, timeout %s, envelope %v", cfg.GetServer(), cfg.GetPort(), cfg.GetTimeout(), recipients)

	session, err := n.Dial(cfg).Dial()
	if err != nil {
		err = classifyDialError(err)
		n.Logger.Errorf("Dialing relay: %v", err)
		return err
	}
	defer func() {
		if cerr := session.Close(); cerr != nil {
			n.Logger.Warnf("Closing relay session: %v", cerr)
		}
	}()

	if err := session.Send(record.Sender, recipients, msg); err != nil {
		n.Logger.Errorf("Submitting message: %v", err)
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}

	n.Logger.Infof("Sent %q to %v", subject, recipients)
	return nil
}

// Configure runs interactive setup regardless of what is stored.
func (n *Notifier) Configure() error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.collector == nil {
		return ErrConfigurationIncomplete
	}
	if err := n.collector.Collect(); err != nil {
		if errors.Is(err, setup.ErrAbandoned) {
			return fmt.Errorf("%w: %w", ErrConfigurationIncomplete, err)
		}
		return err
	}
	return nil
}

func (n *Notifier) ensureConfigured() (config.Record, error) {
	record, err := n.load()
	if err != nil || record.Complete() {
		return record, err
	}

	if n.collector == nil {
		return config.Record{}, ErrConfigurationIncomplete
	}

	n.Logger.Info("Credentials missing, starting setup")
	if err := n.collector.Collect(); err != nil && !errors.Is(err, setup.ErrAbandoned) {
		return config.Record{}, err
	}

	record, err = n.load()
	if err != nil {
		return config.Record{}, err
	}
	if !record.Complete() {
		return config.Record{}, ErrConfigurationIncomplete
	}
	return record, nil
}

func (n *Notifier) load() (config.Record, error) {
	values, err := n.store.Load()
	if err != nil {
		return config.Record{}, err
	}
	return config.RecordFromMap(values), nil
}
