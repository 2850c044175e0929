package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ryan-gang/pigeon/internal/config"
	"github.com/ryan-gang/pigeon/internal/mail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func tempStore(t *testing.T) *config.Store {
	t.Helper()
	return config.NewStore(filepath.Join(t.TempDir(), config.FileName))
}

func TestSendDryRun(t *testing.T) {
	store := tempStore(t)
	require.NoError(t, store.Save("me@x.com", "secret", "a@x.com;b@x.com"))

	out, err := executeCommand(t, "", "send", "Hi", "Body", "--dry-run", "--config", store.Path())

	require.NoError(t, err)
	assert.Contains(t, out, "MAIL FROM: me@x.com")
	assert.Contains(t, out, "RCPT TO:   a@x.com, b@x.com")
	assert.Contains(t, out, "Subject: Hi")
}

func TestSendDryRun_BodyFromStdin(t *testing.T) {
	store := tempStore(t)
	require.NoError(t, store.Save("me@x.com", "secret", ""))

	out, err := executeCommand(t, "from the pipe\n", "send", "Log tail", "--dry-run", "--to", "ops@x.com", "-c", store.Path())

	require.NoError(t, err)
	assert.Contains(t, out, "RCPT TO:   ops@x.com")
	assert.Contains(t, out, "from the pipe")
}

func TestSend_NoInputWithoutCredentials(t *testing.T) {
	store := tempStore(t)

	_, err := executeCommand(t, "", "send", "Hi", "Body", "--no-input", "--config", store.Path())

	require.Error(t, err)
	assert.True(t, errors.Is(err, mail.ErrConfigurationIncomplete))
	assert.Equal(t, ExitNotConfigured, ExitCode(err))
}

func TestSend_AbandonedSetup(t *testing.T) {
	store := tempStore(t)

	out, err := executeCommand(t, "me@x.com\n", "send", "Hi", "Body", "--dry-run", "--config", store.Path())

	assert.True(t, errors.Is(err, mail.ErrConfigurationIncomplete))
	assert.Contains(t, out, "Setup cancelled")
	assert.NotContains(t, out, "MAIL FROM")
}

func TestSend_RequiresSubject(t *testing.T) {
	_, err := executeCommand(t, "", "send")

	require.Error(t, err)
	assert.Equal(t, ExitUsage, ExitCode(err))
}

func TestSend_RequiresSubjectAfterEarlierRun(t *testing.T) {
	store := tempStore(t)
	require.NoError(t, store.Save("me@x.com", "secret", ""))

	_, err := executeCommand(t, "", "send", "Hi", "Body", "--dry-run", "--config", store.Path())
	require.NoError(t, err)

	_, err = executeCommand(t, "", "send")

	require.Error(t, err)
	assert.Equal(t, ExitUsage, ExitCode(err))
}

func TestSend_PipedBodySkipsSetup(t *testing.T) {
	store := tempStore(t)

	out, err := executeCommand(t, "me@x.com\nsecret\ny\n", "send", "Log tail", "--dry-run", "--config", store.Path())

	require.Error(t, err)
	assert.True(t, errors.Is(err, mail.ErrConfigurationIncomplete))
	assert.Equal(t, ExitNotConfigured, ExitCode(err))
	assert.NotContains(t, out, "CONFIGURE PIGEON")
	assert.NotContains(t, out, "Setup cancelled")

	record, err := store.LoadRecord()
	require.NoError(t, err)
	assert.False(t, record.Complete())
}

func TestReportError_PrintsHint(t *testing.T) {
	root := newRootCmd()
	var stderr bytes.Buffer
	root.SetErr(&stderr)

	reportError(root, mail.ErrConfigurationIncomplete)

	assert.Contains(t, stderr.String(), "pigeon")
	assert.Contains(t, stderr.String(), "Run 'pigeon configure'")
}

func TestConfigure_SavesAnswers(t *testing.T) {
	store := tempStore(t)

	out, err := executeCommand(t, "me@x.com\nsecret\nn\na@x.com, b@x.com\n", "configure", "--config", store.Path())

	require.NoError(t, err)
	assert.Contains(t, out, "Configuration saved to "+store.Path())
	record, err := store.LoadRecord()
	require.NoError(t, err)
	assert.Equal(t, config.Record{Sender: "me@x.com", Password: "secret", Receiver: "a@x.com, b@x.com"}, record)
}

func TestConfigure_Show(t *testing.T) {
	store := tempStore(t)
	require.NoError(t, store.Save("me@x.com", "secret", "team@x.com"))

	out, err := executeCommand(t, "", "configure", "--show", "--config", store.Path())

	require.NoError(t, err)
	assert.Contains(t, out, "me@x.com")
	assert.Contains(t, out, "s****t")
	assert.Contains(t, out, "team@x.com")
	assert.NotContains(t, out, "secret")
}

func TestExitCode(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{name: "success", err: nil, want: ExitSuccess},
		{name: "usage", err: errors.New("unknown flag: --oops"), want: ExitUsage},
		{name: "auth", err: fmt.Errorf("%w: 535", mail.ErrAuthentication), want: ExitAuth},
		{name: "not configured", err: mail.ErrConfigurationIncomplete, want: ExitNotConfigured},
		{name: "transport", err: fmt.Errorf("%w: dial tcp: refused", mail.ErrTransport), want: ExitTransport},
		{name: "no recipients", err: mail.ErrEmptyRecipientList, want: ExitNoRecipients},
		{name: "persistence", err: fmt.Errorf("%w: read-only", config.ErrPersistence), want: ExitPersistence},
		{name: "general", err: context.Canceled, want: ExitGeneral},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ExitCode(tc.err)
			if got != tc.want {
				t.Fatalf("ExitCode()=%d, want %d (err=%v)", got, tc.want, tc.err)
			}
		})
	}
}

func TestErrorHint(t *testing.T) {
	assert.Contains(t, errorHint(mail.ErrConfigurationIncomplete), "pigeon configure")
	assert.Empty(t, errorHint(errors.New("boom")))
}
