//go:build windows

package runner

import "errors"

// ReplaceSupported reports whether Replace can substitute the process image
// on this platform.
func ReplaceSupported() bool { return false }

// Replace is unavailable on Windows; callers fall back to Supervise.
func Replace(name string, args []string) error {
	return errors.New("process replacement is not supported on windows")
}
