package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable. The worker queue size is
// intentionally not validated here; the worker program itself enforces it.
func (c *Config) Validate() error {
	if err := c.validateWorker(); err != nil {
		return err
	}
	if err := c.validateSupervisor(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateWorker() error {
	if c.Worker.Binary == "" {
		return errors.New("worker.binary must be set")
	}
	return nil
}

func (c *Config) validateSupervisor() error {
	if c.Supervisor.RestartDelay <= 0 {
		return errors.New("supervisor.restart_delay must be greater than zero")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
		return nil
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
}
