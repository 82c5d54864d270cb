package engine

import (
	"fmt"
	"io"
	"os/exec"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/google/uuid"
)

// processState represents the state of the engine process.
type processState int32

const (
	stateCreated processState = iota
	stateRunning
	stateExited
	stateKilled
)

// String returns a human-readable state name.
func (s processState) String() string {
	switch s {
	case stateCreated:
		return "created"
	case stateRunning:
		return "running"
	case stateExited:
		return "exited"
	case stateKilled:
		return "killed"
	default:
		return fmt.Sprintf("unknown(%d)", s)
	}
}

// process wraps the engine's exec.Cmd with lifecycle tracking and piped
// stdio. It is safe for concurrent use.
type process struct {
	// ID uniquely identifies this engine instance.
	ID string

	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stdout io.ReadCloser

	started time.Time
	done    chan struct{}
	state   atomic.Int32

	mu       sync.RWMutex
	exitErr  error
	waitOnce sync.Once
}

// startProcess launches the engine command with piped stdin/stdout.
func startProcess(cmd *exec.Cmd) (*process, error) {
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("stdin pipe: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("stdout pipe: %w", err)
	}

	p := &process{
		ID:     uuid.NewString(),
		cmd:    cmd,
		stdin:  stdin,
		stdout: stdout,
		done:   make(chan struct{}),
	}
	p.state.Store(int32(stateCreated))

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start engine: %w", err)
	}

	p.started = time.Now()
	p.state.Store(int32(stateRunning))
	go p.waitLoop()

	return p, nil
}

// State returns the current process state.
func (p *process) State() processState {
	return processState(p.state.Load())
}

// IsRunning returns true if the process is currently running.
func (p *process) IsRunning() bool {
	return p.State() == stateRunning
}

// Done returns a channel closed when the process exits.
func (p *process) Done() <-chan struct{} {
	return p.done
}

// ExitError returns any error from waiting on the process.
func (p *process) ExitError() error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.exitErr
}

// Stop terminates the process: SIGTERM first, then SIGKILL if it has not
// exited within the grace period.
func (p *process) Stop(grace time.Duration) error {
	if !p.IsRunning() {
		return nil
	}
	if p.cmd.Process == nil {
		return ErrNotRunning
	}

	_ = p.cmd.Process.Signal(syscall.SIGTERM)

	select {
	case <-p.done:
		return nil
	case <-time.After(grace):
	}

	if err := p.cmd.Process.Kill(); err != nil {
		return fmt.Errorf("kill engine: %w", err)
	}
	<-p.done
	return nil
}

// waitLoop waits for the process to exit and updates state.
func (p *process) waitLoop() {
	p.waitOnce.Do(func() {
		err := p.cmd.Wait()

		p.mu.Lock()
		p.exitErr = err
		p.mu.Unlock()

		state := stateExited
		if exitErr, ok := err.(*exec.ExitError); ok {
			if status, ok := exitErr.Sys().(syscall.WaitStatus); ok && status.Signaled() {
				state = stateKilled
			}
		}

		p.state.Store(int32(state))
		close(p.done)
	})
}
