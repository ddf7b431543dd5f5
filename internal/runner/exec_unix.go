//go:build !windows

package runner

import (
	"os"
	"os/exec"

	"golang.org/x/sys/unix"
)

// ReplaceSupported reports whether Replace can substitute the process image
// on this platform.
func ReplaceSupported() bool { return true }

// Replace swaps the wrapper for the wrapped CLI in place. On success it does
// not return; the wrapper's file descriptors and environment carry over
// unchanged, and no wrapper code (cleanup included) runs afterwards.
func Replace(name string, args []string) error {
	path, err := exec.LookPath(name)
	if err != nil {
		return err
	}
	argv := append([]string{path}, args...)
	return unix.Exec(path, argv, os.Environ())
}
