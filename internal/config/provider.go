package config

import "time"

// ConfigProvider defines the interface for configuration access
type ConfigProvider interface {
	GetSender() string
	GetReceiver() string
	GetPassword() string
	GetServer() string
	GetPort() int
	GetTimeout() time.Duration
}

// ConfigImpl implements ConfigProvider over a loaded credential record
// and the fixed relay endpoint.
type ConfigImpl struct {
	record  Record
	timeout time.Duration
}

// NewConfigProvider creates a new ConfigProvider instance. A non-positive
// timeout selects DefaultTimeout.
func NewConfigProvider(record Record, timeout time.Duration) ConfigProvider {
	if timeout <= 0 {
		timeout = DefaultTimeout * time.Second
	}
	return &ConfigImpl{record: record, timeout: timeout}
}

func (c *ConfigImpl) GetSender() string {
	return c.record.Sender
}

func (c *ConfigImpl) GetReceiver() string {
	return c.record.Receiver
}

func (c *ConfigImpl) GetPassword() string {
	return c.record.Password
}

func (c *ConfigImpl) GetServer() string {
	return DefaultServer
}

func (c *ConfigImpl) GetPort() int {
	return DefaultPort
}

func (c *ConfigImpl) GetTimeout() time.Duration {
	return c.timeout
}
