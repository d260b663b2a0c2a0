package banyandb

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrNotConnected is returned when an operation that needs an
	// established channel runs before Connect or after Close.
	ErrNotConnected = errors.New("client is not connected")

	// ErrUnrecognizedVariant is returned when a response carries a tag
	// value discriminant outside the known set. It indicates a schema
	// mismatch between the client and the remote server.
	ErrUnrecognizedVariant = errors.New("unrecognized tag value variant")

	// ErrProcessorStopped is returned when writes are submitted to a bulk
	// write processor after Close.
	ErrProcessorStopped = errors.New("bulk write processor is stopped")
)

// ConnectionError is returned by Connect when the transport channel could not
// be established. The caller may retry Connect.
type ConnectionError struct {
	Target string
	Err    error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("failed to connect to %s: %v", e.Target, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// RemoteCallError is returned when a query or write submission fails: the
// deadline elapsed, the channel was shut down mid-call, or the remote side
// faulted. The connection state itself is not corrupted by it.
type RemoteCallError struct {
	Op  string
	Err error
}

func (e *RemoteCallError) Error() string {
	return fmt.Sprintf("remote %s call failed: %v", e.Op, e.Err)
}

func (e *RemoteCallError) Unwrap() error { return e.Err }
