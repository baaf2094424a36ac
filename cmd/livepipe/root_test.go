package main

import (
	"bytes"
	"context"
	"errors"
	"reflect"
	"testing"
)

func executeCommand(t *testing.T, run runFunc, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommandWithRunner(run)
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func noopRun(context.Context, string, []string) error { return nil }

func TestRootRejectsTooFewArguments(t *testing.T) {
	for _, args := range [][]string{
		{},
		{"48000"},
		{"48000", "2"},
	} {
		_, err := executeCommand(t, noopRun, args...)
		if err == nil {
			t.Fatalf("expected usage error for args %v", args)
		}
		var uerr *usageError
		if !errors.As(err, &uerr) {
			t.Fatalf("expected usageError for args %v, got %T: %v", args, err, err)
		}
		if exitCode(err) != 2 {
			t.Fatalf("expected exit code 2 for args %v, got %d", args, exitCode(err))
		}
	}
}

func TestRootNeverRunsWorkerOnUsageError(t *testing.T) {
	ran := false
	run := func(context.Context, string, []string) error {
		ran = true
		return nil
	}
	if _, err := executeCommand(t, run, "48000", "2"); err == nil {
		t.Fatal("expected usage error")
	}
	if ran {
		t.Fatal("runner must not be invoked on usage errors")
	}
}

func TestRootRejectsNonPositiveFraming(t *testing.T) {
	for _, args := range [][]string{
		{"highest", "2", "-f", "null", "-"},
		{"48000", "0", "-f", "null", "-"},
		{"-48000", "2", "-f", "null", "-"},
	} {
		_, err := executeCommand(t, noopRun, args...)
		var uerr *usageError
		if !errors.As(err, &uerr) {
			t.Fatalf("expected usageError for args %v, got %v", args, err)
		}
	}
}

func TestRootForwardsWorkerTailVerbatim(t *testing.T) {
	var gotConfig string
	var gotArgs []string
	run := func(_ context.Context, configPath string, args []string) error {
		gotConfig = configPath
		gotArgs = append([]string(nil), args...)
		return nil
	}

	_, err := executeCommand(t, run, "--config", "livepipe.toml", "48000", "2", "-f", "null", "-")
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if gotConfig != "livepipe.toml" {
		t.Fatalf("expected config flag to be captured, got %q", gotConfig)
	}
	// Dashed worker tokens must survive flag parsing untouched.
	want := []string{"48000", "2", "-f", "null", "-"}
	if !reflect.DeepEqual(gotArgs, want) {
		t.Fatalf("worker arguments mangled:\n got %v\nwant %v", gotArgs, want)
	}
}

func TestExitCodeClassification(t *testing.T) {
	if got := exitCode(&usageError{msg: "bad invocation"}); got != 2 {
		t.Fatalf("expected 2 for usage errors, got %d", got)
	}
	if got := exitCode(errors.New("load config: boom")); got != 1 {
		t.Fatalf("expected 1 for generic errors, got %d", got)
	}
}

func TestRootPropagatesRunnerError(t *testing.T) {
	wantErr := errors.New("duplicate stdin: bad file descriptor")
	run := func(context.Context, string, []string) error { return wantErr }

	_, err := executeCommand(t, run, "48000", "2", "-f", "null", "-")
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected runner error to propagate, got %v", err)
	}
	if exitCode(err) != 1 {
		t.Fatalf("runner failures must exit 1, got %d", exitCode(err))
	}
}
