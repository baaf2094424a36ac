package supervisor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"livepipe/internal/logging"
)

// Worker launches one invocation of the supervised subprocess bound to the
// shared input handle and blocks until it exits.
type Worker interface {
	Run(ctx context.Context, input *os.File) (int, error)
}

// Supervisor relaunches a worker against a single input handle until its
// context is cancelled. Invocations are strictly sequential; at most one
// worker process is alive at any instant.
type Supervisor struct {
	worker  Worker
	input   *os.File
	backoff time.Duration
	logger  *slog.Logger
	name    string

	lockPath string
	lock     *flock.Flock
}

// Option configures a Supervisor.
type Option func(*Supervisor)

// WithName sets the worker label used in log lines. Defaults to "ffmpeg".
func WithName(name string) Option {
	return func(s *Supervisor) {
		if name != "" {
			s.name = name
		}
	}
}

// WithLockFile enforces a single supervisor instance per lock path. The lock
// is taken before the first launch and held for the whole run.
func WithLockFile(path string) Option {
	return func(s *Supervisor) {
		if path != "" {
			s.lockPath = path
			s.lock = flock.New(path)
		}
	}
}

// New constructs a supervisor. The input handle must already be open; the
// supervisor borrows it for its whole lifetime and never closes it.
func New(worker Worker, input *os.File, backoff time.Duration, logger *slog.Logger, opts ...Option) (*Supervisor, error) {
	if worker == nil {
		return nil, errors.New("supervisor requires a worker")
	}
	if input == nil {
		return nil, errors.New("supervisor requires an input handle")
	}
	if backoff <= 0 {
		return nil, errors.New("supervisor backoff must be greater than zero")
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	s := &Supervisor{
		worker:  worker,
		input:   input,
		backoff: backoff,
		logger:  logging.NewComponentLogger(logger, "supervisor"),
		name:    "ffmpeg",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Run drives the restart loop until ctx is cancelled, in which case it
// returns ctx.Err(). Every worker exit — clean, failed, or never started —
// takes the same path: one log line, one backoff, one relaunch.
func (s *Supervisor) Run(ctx context.Context) error {
	if s.lock != nil {
		ok, err := s.lock.TryLock()
		if err != nil {
			return fmt.Errorf("acquire lock %s: %w", s.lockPath, err)
		}
		if !ok {
			return fmt.Errorf("another supervisor instance already holds %s", s.lockPath)
		}
		defer s.lock.Unlock() //nolint:errcheck
	}

	logger := s.logger.With(logging.String(logging.FieldRunID, uuid.NewString()))
	logger.Info("supervisor started",
		logging.Args(
			logging.String("worker", s.name),
			logging.Duration("restart_delay", s.backoff),
		)...)

	for attempt := 1; ; attempt++ {
		status, err := s.worker.Run(ctx, s.input)
		if ctx.Err() != nil {
			logger.Info("supervisor stopped", logging.Args(logging.Int(logging.FieldAttempt, attempt))...)
			return ctx.Err()
		}

		attrs := []logging.Attr{
			logging.Int(logging.FieldStatus, status),
			logging.Int(logging.FieldAttempt, attempt),
			logging.Duration(logging.FieldRetryIn, s.backoff),
		}
		if err != nil {
			attrs = append(attrs, logging.Error(err))
		}
		logger.Info(
			fmt.Sprintf("%s exited (%d); retrying in %gs", s.name, status, s.backoff.Seconds()),
			logging.Args(attrs...)...)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(s.backoff):
		}
	}
}
