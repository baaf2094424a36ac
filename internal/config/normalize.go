package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Environment overrides applied on every load. They win over file values so a
// deployment can retune the supervisor without editing the config file.
const (
	// EnvQueueSize overrides worker.queue_size; the value is forwarded to
	// the worker verbatim, without interpretation.
	EnvQueueSize = "LIVEPIPE_QUEUE_SIZE"
	// EnvRestartDelay overrides supervisor.restart_delay in seconds;
	// fractional values are allowed.
	EnvRestartDelay = "LIVEPIPE_RESTART_DELAY"
)

func (c *Config) normalize() error {
	if err := c.normalizeWorker(); err != nil {
		return err
	}
	if err := c.normalizeSupervisor(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeWorker() error {
	c.Worker.Binary = strings.TrimSpace(c.Worker.Binary)
	if c.Worker.Binary == "" {
		c.Worker.Binary = defaultWorkerBinary
	}
	c.Worker.LogLevel = strings.TrimSpace(c.Worker.LogLevel)
	if c.Worker.LogLevel == "" {
		c.Worker.LogLevel = defaultWorkerLogLevel
	}
	if value, ok := os.LookupEnv(EnvQueueSize); ok && strings.TrimSpace(value) != "" {
		c.Worker.QueueSize = strings.TrimSpace(value)
	}
	c.Worker.QueueSize = strings.TrimSpace(c.Worker.QueueSize)
	if c.Worker.QueueSize == "" {
		c.Worker.QueueSize = defaultQueueSize
	}
	return nil
}

func (c *Config) normalizeSupervisor() error {
	if value, ok := os.LookupEnv(EnvRestartDelay); ok && strings.TrimSpace(value) != "" {
		delay, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvRestartDelay, err)
		}
		c.Supervisor.RestartDelay = delay
	}
	if strings.TrimSpace(c.Supervisor.LockFile) != "" {
		expanded, err := ExpandPath(c.Supervisor.LockFile)
		if err != nil {
			return fmt.Errorf("supervisor.lock_file: %w", err)
		}
		c.Supervisor.LockFile = expanded
	} else {
		c.Supervisor.LockFile = ""
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
