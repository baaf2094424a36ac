package supervisor

import (
	"os/signal"
	"syscall"
)

// IgnoreBrokenPipe installs the process-wide disposition that ignores
// SIGPIPE. A worker dying while sharing a pipe with the supervisor must not
// kill the restart loop or the input handle. Installed once at startup;
// process exit clears it.
func IgnoreBrokenPipe() {
	signal.Ignore(syscall.SIGPIPE)
}
