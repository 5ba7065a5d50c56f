// Package supervisor owns the lifecycle of a single child process.
//
// The supervisor moves through the states NotStarted -> Running ->
// Stopping -> Stopped. Stop asks the child to exit with SIGTERM and
// reaps it with SIGKILL if it has not exited within the grace period.
package supervisor

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sync"
	"syscall"
	"time"

	"github.com/flowspace-dev/flowspace/internal/logger"
)

type State string

const (
	NotStarted State = "not-started"
	Running    State = "running"
	Stopping   State = "stopping"
	Stopped    State = "stopped"
)

var (
	ErrAlreadyStarted = errors.New("supervisor: process already started")
	ErrNotRunning     = errors.New("supervisor: process not running")
)

type Supervisor struct {
	name string
	args []string

	mu    sync.Mutex
	state State
	cmd   *exec.Cmd
	done  chan error // closed by the waiter goroutine with the exit error
}

func New(name string, args ...string) *Supervisor {
	return &Supervisor{name: name, args: args, state: NotStarted}
}

func (s *Supervisor) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Start launches the child process. Stdout/stderr are inherited so the
// child's logs end up in the same stream as ours.
func (s *Supervisor) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == Running || s.state == Stopping {
		return ErrAlreadyStarted
	}

	cmd := exec.Command(s.name, s.args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("supervisor: start %s: %w", s.name, err)
	}

	done := make(chan error, 1)
	go func() {
		done <- cmd.Wait()
		close(done)
	}()

	s.cmd = cmd
	s.done = done
	s.state = Running
	logger.Log.Info("child process started", "command", s.name, "pid", cmd.Process.Pid)
	return nil
}

// Wait blocks until the child exits on its own and returns its exit error.
func (s *Supervisor) Wait() error {
	s.mu.Lock()
	if s.state != Running && s.state != Stopping {
		s.mu.Unlock()
		return ErrNotRunning
	}
	done := s.done
	s.mu.Unlock()

	err := <-done

	s.mu.Lock()
	s.state = Stopped
	s.mu.Unlock()
	return err
}

// Stop sends SIGTERM and waits up to gracePeriod for the child to exit.
// If the child is still alive after the grace period it is killed.
func (s *Supervisor) Stop(gracePeriod time.Duration) error {
	s.mu.Lock()
	if s.state != Running {
		s.mu.Unlock()
		return ErrNotRunning
	}
	s.state = Stopping
	cmd := s.cmd
	done := s.done
	s.mu.Unlock()

	logger.Log.Info("stopping child process", "pid", cmd.Process.Pid)
	if err := cmd.Process.Signal(syscall.SIGTERM); err != nil && !errors.Is(err, os.ErrProcessDone) {
		logger.Log.Warn("failed to signal child", "error", err)
	}

	var exitErr error
	select {
	case exitErr = <-done:
	case <-time.After(gracePeriod):
		logger.Log.Warn("child did not exit in time, killing", "pid", cmd.Process.Pid)
		_ = cmd.Process.Kill()
		exitErr = <-done
	}

	s.mu.Lock()
	s.state = Stopped
	s.mu.Unlock()

	// A SIGTERM/SIGKILL death is the expected outcome of Stop, not a failure.
	var ee *exec.ExitError
	if errors.As(exitErr, &ee) {
		return nil
	}
	return exitErr
}
