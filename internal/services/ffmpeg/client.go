package ffmpeg

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

var commandContext = exec.CommandContext

// LaunchFailureStatus is reported when the worker process could not be
// started at all, mirroring the shell's command-not-found convention so the
// supervisor's log line stays uniform across launch and runtime failures.
const LaunchFailureStatus = 127

// Params describes the fixed portion of the worker invocation. SampleRate,
// Channels, and QueueSize are opaque tokens: they are spliced into the
// argument template verbatim and left for the worker to interpret.
type Params struct {
	SampleRate string
	Channels   string
	QueueSize  string
	LogLevel   string
	Tail       []string
}

// Client defines worker invocation behaviour.
type Client interface {
	Run(ctx context.Context, input *os.File) (int, error)
}

// Option configures the CLI client.
type Option func(*CLI)

// WithBinary overrides the default binary name.
func WithBinary(binary string) Option {
	return func(c *CLI) {
		if binary != "" {
			c.binary = binary
		}
	}
}

// CLI launches the worker via its command-line interface.
type CLI struct {
	binary string
	params Params
}

// NewCLI constructs a CLI client for the given invocation parameters.
func NewCLI(params Params, opts ...Option) *CLI {
	cli := &CLI{binary: "ffmpeg", params: params}
	for _, opt := range opts {
		opt(cli)
	}
	return cli
}

// Args returns the full argument template: diagnostic flags, queue-size hint,
// input framing, stdin binding, then the caller's trailing arguments in their
// original order.
func (c *CLI) Args() []string {
	args := []string{
		"-hide_banner",
		"-loglevel", c.params.LogLevel,
		"-thread_queue_size", c.params.QueueSize,
		"-f", "s16le",
		"-ar", c.params.SampleRate,
		"-ac", c.params.Channels,
		"-i", "pipe:0",
	}
	return append(args, c.params.Tail...)
}

// Run launches one worker invocation bound to the shared input handle and
// blocks until it exits. The handle is lent, not transferred: Run never
// closes it. The returned status is 0 for a clean exit, the worker's exit
// code otherwise, or LaunchFailureStatus when the process could not run.
func (c *CLI) Run(ctx context.Context, input *os.File) (int, error) {
	if input == nil {
		return LaunchFailureStatus, errors.New("input handle required")
	}

	cmd := commandContext(ctx, c.binary, c.Args()...) //nolint:gosec
	cmd.Stdin = input
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		return LaunchFailureStatus, fmt.Errorf("start %s: %w", c.binary, err)
	}

	err := cmd.Wait()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return LaunchFailureStatus, fmt.Errorf("wait %s: %w", c.binary, err)
}

var _ Client = (*CLI)(nil)
