// Package runner executes the wrapped CLI, either supervised or by
// replacing the wrapper's process image.
package runner

import (
	"errors"
	"os"
	"os/exec"
	"os/signal"
	"sync"
	"syscall"
)

// Handle is the single-slot reference to the running child, written once at
// spawn time and read by the signal relay.
type Handle struct {
	mu  sync.Mutex
	cmd *exec.Cmd
}

func (h *Handle) set(cmd *exec.Cmd) {
	h.mu.Lock()
	h.cmd = cmd
	h.mu.Unlock()
}

// Signal relays sig to the child. Before the child exists, or after it has
// been reaped, the signal is dropped.
func (h *Handle) Signal(sig os.Signal) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.cmd == nil || h.cmd.Process == nil {
		return
	}
	_ = h.cmd.Process.Signal(sig)
}

// Supervise runs the command with the wrapper's standard streams attached,
// forwarding interrupt and terminate signals, and returns the child's exit
// code. A non-zero exit is not an error; failing to start the child is.
func Supervise(name string, args []string) (int, error) {
	cmd := exec.Command(name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	handle := &Handle{}
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	// Stop guarantees no send is in flight, so the close below is safe and
	// lets the relay goroutine exit.
	defer func() {
		signal.Stop(sigs)
		close(sigs)
	}()
	go func() {
		for sig := range sigs {
			handle.Signal(sig)
		}
	}()

	if err := cmd.Start(); err != nil {
		return 0, err
	}
	handle.set(cmd)

	err := cmd.Wait()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	if err != nil {
		return 0, err
	}
	return 0, nil
}
