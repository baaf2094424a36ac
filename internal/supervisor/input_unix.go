//go:build unix

package supervisor

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// DupStdin duplicates the process's standard input onto a fresh descriptor
// and returns it as the supervisor's input handle. Call it exactly once,
// before the first worker launch: the duplicate outlives anything that later
// happens to fd 0 and is what every worker invocation reads from.
func DupStdin() (*os.File, error) {
	fd, err := unix.Dup(int(os.Stdin.Fd()))
	if err != nil {
		return nil, fmt.Errorf("dup stdin: %w", err)
	}
	return os.NewFile(uintptr(fd), "stdin"), nil
}
