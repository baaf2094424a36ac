package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// usageError marks invocation mistakes that must exit with the distinguished
// usage code rather than the generic failure code.
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

type runFunc func(ctx context.Context, configPath string, args []string) error

func newRootCommand() *cobra.Command {
	return newRootCommandWithRunner(runSupervisor)
}

func newRootCommandWithRunner(run runFunc) *cobra.Command {
	var configFlag string

	rootCmd := &cobra.Command{
		Use:   "livepipe <sample_rate> <channels> <worker-args...>",
		Short: "Keep a PCM-consuming worker pipeline alive across restarts",
		Long: `livepipe reads raw s16le PCM on stdin and keeps a worker subprocess
(ffmpeg by default) running against that stream. When the worker exits, for
any reason, livepipe waits a fixed delay and relaunches it against the same
input pipe, so the upstream producer never sees a broken or reopened stream.

Everything after the first two positional arguments is appended verbatim to
the worker invocation, so no -- separator is needed:

  some-capture-tool | livepipe 48000 2 -c:a aac -f flv rtmp://example/live`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          validateRunArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), configFlag, args)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	// Stop flag parsing at the first positional so the worker tail may
	// contain dashed tokens.
	rootCmd.Flags().SetInterspersed(false)
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{msg: err.Error()}
	})

	rootCmd.AddCommand(newConfigCommand(&configFlag))

	return rootCmd
}

func validateRunArgs(cmd *cobra.Command, args []string) error {
	if len(args) < 3 {
		return &usageError{msg: "requires <sample_rate>, <channels>, and at least one worker argument"}
	}
	for _, positional := range []struct {
		name  string
		value string
	}{
		{"sample_rate", args[0]},
		{"channels", args[1]},
	} {
		n, err := strconv.Atoi(positional.value)
		if err != nil || n <= 0 {
			return &usageError{msg: fmt.Sprintf("%s must be a positive integer, got %q", positional.name, positional.value)}
		}
	}
	return nil
}
