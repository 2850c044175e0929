package config

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"sync"

	"github.com/natefinch/atomic"
)

const (
	SenderKey   = "EMAIL_NOTIFY_USER"
	PasswordKey = "EMAIL_NOTIFY_PASS"
	ReceiverKey = "EMAIL_NOTIFY_RECEIVER"
)

const FileName = ".email_notify_env"

const (
	DefaultServer  = "smtp.gmail.com"
	DefaultPort    = 465
	DefaultTimeout = 30
)

// ErrPersistence marks a credential file that could not be read or written.
var ErrPersistence = errors.New("credential file unavailable")

func DefaultConfigPath() (string, error) {
	user, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("couldn't get current user: %w", err)
	}
	if user.HomeDir == "" {
		return "", fmt.Errorf("user %s has no home directory", user.Username)
	}
	return filepath.Join(user.HomeDir, FileName), nil
}

// Record is the credential set kept in the store. It is always replaced
// wholesale, never patched field by field.
type Record struct {
	Sender   string
	Password string
	Receiver string
}

// Complete reports whether the record carries enough to authenticate.
// Receiver is optional and falls back to Sender at send time.
func (r Record) Complete() bool {
	return r.Sender != "" && r.Password != ""
}

// RecordFromMap picks the known keys out of a loaded mapping. Missing keys
// become empty strings and unknown keys are ignored.
func RecordFromMap(values map[string]string) Record {
	return Record{
		Sender:   values[SenderKey],
		Password: values[PasswordKey],
		Receiver: values[ReceiverKey],
	}
}

// Store reads and writes the KEY=value credential file.
type Store struct {
	mu   sync.RWMutex
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// NewDefaultStore opens the store at the well-known location in the user's
// home directory.
func NewDefaultStore() (*Store, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return NewStore(path), nil
}

func (s *Store) Path() string {
	return s.path
}

// Load parses the credential file into a key/value mapping. A missing file
// yields an empty mapping. Lines without '=' are skipped; the value is
// everything after the first '='.
func (s *Store) Load() (map[string]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	values := make(map[string]string)
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return values, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", ErrPersistence, s.path, err)
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		// values are kept verbatim so a saved secret round-trips exactly
		values[strings.TrimSpace(key)] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %w", ErrPersistence, s.path, err)
	}
	return values, nil
}

func (s *Store) LoadRecord() (Record, error) {
	values, err := s.Load()
	if err != nil {
		return Record{}, err
	}
	return RecordFromMap(values), nil
}

// Save replaces the credential file with exactly three KEY=value lines.
func (s *Store) Save(sender, password, receiver string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s=%s\n", SenderKey, sender)
	fmt.Fprintf(&buf, "%s=%s\n", PasswordKey, password)
	fmt.Fprintf(&buf, "%s=%s\n", ReceiverKey, receiver)

	if err := atomic.WriteFile(s.path, &buf); err != nil {
		return fmt.Errorf("%w: writing %s: %w", ErrPersistence, s.path, err)
	}
	return nil
}

func (s *Store) SaveRecord(r Record) error {
	return s.Save(r.Sender, r.Password, r.Receiver)
}
