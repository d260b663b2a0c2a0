package banyandb

import (
	"context"

	"google.golang.org/grpc"

	// register the codec used by pkg/banyandbpb messages
	_ "github.com/banyandb/client-go/pkg/gogocodec"
)

// Channel is the transport a Client speaks over. It is the gRPC channel
// abstraction narrowed to what the connection controller needs: issuing calls,
// draining gracefully and tearing down immediately.
type Channel interface {
	grpc.ClientConnInterface

	// Shutdown begins a graceful shutdown and returns once outstanding
	// calls have drained or ctx expires, whichever comes first.
	Shutdown(ctx context.Context) error

	// ShutdownNow tears the channel down immediately. In-flight calls fail
	// rather than hang.
	ShutdownNow() error
}

// Dialer establishes a Channel to the given target. Clients use DialGRPC
// unless a different dialer is injected through WithDialer, which tests use to
// substitute a mock transport.
type Dialer func(ctx context.Context, target string, opts ...grpc.DialOption) (Channel, error)

// DialGRPC is the default Dialer. The target goes through grpc's own resolver
// machinery, so DNS names resolve without any process-global registration.
func DialGRPC(ctx context.Context, target string, opts ...grpc.DialOption) (Channel, error) {
	conn, err := grpc.DialContext(ctx, target, opts...)
	if err != nil {
		return nil, err
	}
	return &grpcChannel{conn: conn}, nil
}

type grpcChannel struct {
	conn *grpc.ClientConn
}

func (c *grpcChannel) Invoke(ctx context.Context, method string, args, reply interface{}, opts ...grpc.CallOption) error {
	return c.conn.Invoke(ctx, method, args, reply, opts...)
}

func (c *grpcChannel) NewStream(ctx context.Context, desc *grpc.StreamDesc, method string, opts ...grpc.CallOption) (grpc.ClientStream, error) {
	return c.conn.NewStream(ctx, desc, method, opts...)
}

// Shutdown closes the underlying connection. grpc-go cancels outstanding RPCs
// on close, so an in-flight query racing a Close fails fast instead of
// hanging.
func (c *grpcChannel) Shutdown(ctx context.Context) error {
	done := make(chan error, 1)
	go func() {
		done <- c.conn.Close()
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *grpcChannel) ShutdownNow() error {
	// a second Close after a timed-out graceful shutdown reports the
	// connection as already closing, which is exactly what we asked for
	//nolint:staticcheck
	if err := c.conn.Close(); err != nil && err != grpc.ErrClientConnClosing {
		return err
	}
	return nil
}
