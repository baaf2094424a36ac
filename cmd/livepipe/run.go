package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"path/filepath"
	"syscall"

	"livepipe/internal/config"
	"livepipe/internal/logging"
	"livepipe/internal/services/ffmpeg"
	"livepipe/internal/supervisor"
)

// runSupervisor wires the configuration, logger, input handle, and worker
// template together and drives the restart loop until SIGINT or SIGTERM.
func runSupervisor(ctx context.Context, configPath string, args []string) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, _, _, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	// Both process-wide steps happen exactly once, before the first launch.
	supervisor.IgnoreBrokenPipe()
	input, err := supervisor.DupStdin()
	if err != nil {
		return fmt.Errorf("duplicate stdin: %w", err)
	}

	worker := ffmpeg.NewCLI(ffmpeg.Params{
		SampleRate: args[0],
		Channels:   args[1],
		QueueSize:  cfg.Worker.QueueSize,
		LogLevel:   cfg.Worker.LogLevel,
		Tail:       args[2:],
	}, ffmpeg.WithBinary(cfg.Worker.Binary))

	opts := []supervisor.Option{supervisor.WithName(filepath.Base(cfg.Worker.Binary))}
	if cfg.Supervisor.LockFile != "" {
		opts = append(opts, supervisor.WithLockFile(cfg.Supervisor.LockFile))
	}

	sup, err := supervisor.New(worker, input, cfg.RestartDelayDuration(), logger, opts...)
	if err != nil {
		return err
	}

	if err := sup.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
