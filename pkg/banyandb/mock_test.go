package banyandb

import (
	"context"
	"io"
	"sync"
	"time"

	"go.uber.org/atomic"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/banyandb/client-go/pkg/banyandbpb"
)

// mockDialer counts channel constructions so tests can prove connect() builds
// exactly one channel no matter how often or concurrently it is called.
type mockDialer struct {
	channel   *mockChannel
	err       error
	dialCount atomic.Int32
}

func (d *mockDialer) dial(_ context.Context, _ string, _ ...grpc.DialOption) (Channel, error) {
	d.dialCount.Inc()
	if d.err != nil {
		return nil, d.err
	}
	return d.channel, nil
}

// mockChannel is an in-memory stand-in for a gRPC channel.
type mockChannel struct {
	// response served to every query
	queryResponse *banyandbpb.QueryResponse
	// artificial latency before a query answers
	queryDelay time.Duration
	// simulated graceful-shutdown duration, 0 returns immediately
	shutdownDelay time.Duration

	// number of stream constructions that fail before they start succeeding
	failStreams int
	// artificial latency inside every write stream
	streamDelay time.Duration

	mtx           sync.Mutex
	closed        bool
	invokeCount   atomic.Int32
	streamCount   atomic.Int32
	activeStreams atomic.Int32
	maxStreams    atomic.Int32
	written       []*banyandbpb.WriteRequest
	forcedDown    atomic.Bool
}

func (m *mockChannel) isClosed() bool {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	return m.closed
}

func (m *mockChannel) writtenRequests() []*banyandbpb.WriteRequest {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	out := make([]*banyandbpb.WriteRequest, len(m.written))
	copy(out, m.written)
	return out
}

func (m *mockChannel) Invoke(ctx context.Context, _ string, _, reply interface{}, _ ...grpc.CallOption) error {
	m.invokeCount.Inc()

	if m.isClosed() {
		return status.Error(codes.Canceled, "the channel is shut down")
	}

	if m.queryDelay > 0 {
		select {
		case <-time.After(m.queryDelay):
		case <-ctx.Done():
			return status.FromContextError(ctx.Err()).Err()
		}
	}

	if out, ok := reply.(*banyandbpb.QueryResponse); ok && m.queryResponse != nil {
		*out = *m.queryResponse
	}
	return nil
}

func (m *mockChannel) NewStream(ctx context.Context, _ *grpc.StreamDesc, _ string, _ ...grpc.CallOption) (grpc.ClientStream, error) {
	m.streamCount.Inc()

	if m.isClosed() {
		return nil, status.Error(codes.Canceled, "the channel is shut down")
	}

	m.mtx.Lock()
	if m.failStreams > 0 {
		m.failStreams--
		m.mtx.Unlock()
		return nil, status.Error(codes.Unavailable, "stream refused")
	}
	m.mtx.Unlock()

	active := m.activeStreams.Inc()
	for {
		observed := m.maxStreams.Load()
		if active <= observed || m.maxStreams.CompareAndSwap(observed, active) {
			break
		}
	}

	return &mockWriteStream{channel: m, ctx: ctx}, nil
}

func (m *mockChannel) Shutdown(ctx context.Context) error {
	if m.shutdownDelay > 0 {
		select {
		case <-time.After(m.shutdownDelay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	m.mtx.Lock()
	m.closed = true
	m.mtx.Unlock()
	return nil
}

func (m *mockChannel) ShutdownNow() error {
	m.mtx.Lock()
	m.closed = true
	m.mtx.Unlock()
	m.forcedDown.Store(true)
	return nil
}

// mockWriteStream accumulates sent write requests on its channel and
// acknowledges each of them on Recv.
type mockWriteStream struct {
	channel *mockChannel
	ctx     context.Context

	mtx      sync.Mutex
	sent     int
	acked    int
	finished bool
	done     bool
}

func (s *mockWriteStream) Header() (metadata.MD, error) { return nil, nil }
func (s *mockWriteStream) Trailer() metadata.MD         { return nil }
func (s *mockWriteStream) Context() context.Context     { return s.ctx }

func (s *mockWriteStream) CloseSend() error {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.finished = true
	return nil
}

func (s *mockWriteStream) SendMsg(msg interface{}) error {
	if s.channel.streamDelay > 0 {
		select {
		case <-time.After(s.channel.streamDelay):
		case <-s.ctx.Done():
			return status.FromContextError(s.ctx.Err()).Err()
		}
	}

	req := msg.(*banyandbpb.WriteRequest)

	s.channel.mtx.Lock()
	s.channel.written = append(s.channel.written, req)
	s.channel.mtx.Unlock()

	s.mtx.Lock()
	s.sent++
	s.mtx.Unlock()
	return nil
}

func (s *mockWriteStream) RecvMsg(msg interface{}) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.acked < s.sent {
		s.acked++
		if out, ok := msg.(*banyandbpb.WriteResponse); ok {
			*out = banyandbpb.WriteResponse{}
		}
		return nil
	}
	if !s.done {
		s.done = true
		s.channel.activeStreams.Dec()
	}
	return io.EOF
}
