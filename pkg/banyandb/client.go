package banyandb

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/grpc-ecosystem/grpc-opentracing/go/otgrpc"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/atomic"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/banyandb/client-go/pkg/banyandbpb"
)

// defaultGracePeriod bounds the wait for a graceful channel shutdown before
// Close escalates to a forced one.
const defaultGracePeriod = 5 * time.Second

// Client is a session with one BanyanDB endpoint. The zero value is not
// usable; construct it with New. A Client starts disconnected, becomes
// connected through Connect and returns to disconnected through Close.
// Connect and Close are idempotent and safe for concurrent use; queries may
// run concurrently with each other against the same channel.
type Client struct {
	host  string
	port  int
	group string
	opts  Options

	logger      log.Logger
	dial        Dialer
	gracePeriod time.Duration

	// guards every connection state transition
	connMtx   sync.Mutex
	connected atomic.Bool
	channel   Channel

	trace atomic.Value // banyandbpb.TraceServiceClient
}

// ClientOption customizes a Client beyond the connection Options.
type ClientOption func(*Client)

// WithLogger sets the logger used for connection lifecycle events.
func WithLogger(logger log.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDialer replaces the transport dialer. Tests use this to plug in a mock
// channel.
func WithDialer(dial Dialer) ClientOption {
	return func(c *Client) {
		c.dial = dial
	}
}

// New creates a disconnected client bound to host, port and group.
func New(host string, port int, group string, opts Options, clientOpts ...ClientOption) (*Client, error) {
	opts.applyDefaults()
	if err := opts.validate(); err != nil {
		return nil, err
	}

	c := &Client{
		host:        host,
		port:        port,
		group:       group,
		opts:        opts,
		logger:      log.NewNopLogger(),
		dial:        DialGRPC,
		gracePeriod: defaultGracePeriod,
	}
	for _, o := range clientOpts {
		o(c)
	}
	return c, nil
}

// Group returns the group name every query and write is scoped to.
func (c *Client) Group() string {
	return c.group
}

func (c *Client) target() string {
	return fmt.Sprintf("dns:///%s:%d", c.host, c.port)
}

// Connect establishes the transport channel and derives the service stubs
// from it. Connecting an already connected client is a no-op. On failure the
// client stays disconnected and a ConnectionError is returned; the caller may
// retry.
func (c *Client) Connect(ctx context.Context) error {
	c.connMtx.Lock()
	defer c.connMtx.Unlock()

	if c.connected.Load() {
		return nil
	}

	unary, stream := instrumentation()
	dialOpts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.MaxCallRecvMsgSize(c.opts.MaxInboundMessageSize)),
		grpc.WithChainUnaryInterceptor(unary...),
		grpc.WithChainStreamInterceptor(stream...),
	}

	channel, err := c.dial(ctx, c.target(), dialOpts...)
	if err != nil {
		return &ConnectionError{Target: c.target(), Err: err}
	}

	c.channel = channel
	c.trace.Store(banyandbpb.NewTraceServiceClient(channel))
	c.connected.Store(true)

	level.Info(c.logger).Log("msg", "connected", "target", c.target(), "group", c.group)
	return nil
}

// Close releases the channel. It first asks for a graceful shutdown bounded
// by the grace period and forces the channel closed if that is not honored,
// so Close itself always terminates. Closing a disconnected client is a
// no-op.
func (c *Client) Close() error {
	c.connMtx.Lock()
	defer c.connMtx.Unlock()

	if !c.connected.Load() {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.gracePeriod)
	defer cancel()

	if err := c.channel.Shutdown(ctx); err != nil {
		level.Warn(c.logger).Log("msg", "graceful shutdown not honored, forcing channel closed", "err", err)
		if err := c.channel.ShutdownNow(); err != nil {
			c.channel = nil
			c.connected.Store(false)
			return err
		}
	}

	c.channel = nil
	c.connected.Store(false)
	return nil
}

// traceClient returns the stub derived at Connect time. The stub outlives
// Close on purpose: a call issued against a shut-down channel fails fast with
// a transport error instead of a nil dereference.
func (c *Client) traceClient() banyandbpb.TraceServiceClient {
	v := c.trace.Load()
	if v == nil {
		return nil
	}
	return v.(banyandbpb.TraceServiceClient)
}

func instrumentation() ([]grpc.UnaryClientInterceptor, []grpc.StreamClientInterceptor) {
	return []grpc.UnaryClientInterceptor{
			otgrpc.OpenTracingClientInterceptor(opentracing.GlobalTracer()),
		}, []grpc.StreamClientInterceptor{
			otgrpc.OpenTracingStreamClientInterceptor(opentracing.GlobalTracer()),
		}
}
