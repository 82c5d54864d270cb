package engine

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"time"
)

// methodFormat is the single request the engine protocol defines.
const methodFormat = "format"

// stopGrace is how long Close waits for the engine to exit after SIGTERM
// before killing it.
const stopGrace = 2 * time.Second

// Client is an Engine backed by a child process.
//
// Format requests may be issued concurrently; responses are matched to
// callers by request ID. Cancelling a request's context abandons the
// wait but does not interrupt the engine, which runs each invocation to
// completion or rejection.
type Client struct {
	transport *Transport
	proc      *process
}

// NewClient starts the engine command and connects to it.
func NewClient(ctx context.Context, command string, args ...string) (*Client, error) {
	proc, err := startProcess(exec.Command(command, args...))
	if err != nil {
		return nil, err
	}

	t := NewTransport(proc.stdout, proc.stdin, nil)
	t.Start(ctx)

	return &Client{transport: t, proc: proc}, nil
}

// NewClientIO connects to an engine over an existing connection.
// Used when the host environment owns the engine process, and by tests.
func NewClientIO(ctx context.Context, r io.Reader, w io.Writer, c io.Closer) *Client {
	t := NewTransport(r, w, c)
	t.Start(ctx)
	return &Client{transport: t}
}

// Format implements Engine.
func (c *Client) Format(ctx context.Context, req Request) (Response, error) {
	var resp Response
	if err := c.transport.Call(ctx, methodFormat, req, &resp); err != nil {
		return Response{}, err
	}
	return resp, nil
}

// Close shuts down the transport and stops the engine process.
func (c *Client) Close() error {
	err := c.transport.Close()

	if c.proc != nil {
		if stopErr := c.proc.Stop(stopGrace); stopErr != nil && err == nil {
			err = stopErr
		}
	}
	if err != nil {
		return fmt.Errorf("closing engine client: %w", err)
	}
	return nil
}
