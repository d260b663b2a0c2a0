package banyandb

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/banyandb/client-go/pkg/banyandbpb"
)

func newTestClient(t *testing.T, d *mockDialer, opts Options) *Client {
	t.Helper()

	client, err := New("localhost", 17912, "sw", opts, WithDialer(d.dial))
	require.NoError(t, err)
	return client
}

func TestNewRequiresDeadline(t *testing.T) {
	_, err := New("localhost", 17912, "sw", Options{})
	require.Error(t, err)
}

func TestConnectIsIdempotent(t *testing.T) {
	d := &mockDialer{channel: &mockChannel{}}
	client := newTestClient(t, d, Options{Deadline: time.Second})

	require.NoError(t, client.Connect(context.Background()))
	require.NoError(t, client.Connect(context.Background()))

	assert.Equal(t, int32(1), d.dialCount.Load())
}

func TestConnectConcurrent(t *testing.T) {
	d := &mockDialer{channel: &mockChannel{}}
	client := newTestClient(t, d, Options{Deadline: time.Second})

	const n = 25
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, client.Connect(context.Background()))
		}()
	}
	wg.Wait()

	// exactly one channel was built no matter how many callers raced
	assert.Equal(t, int32(1), d.dialCount.Load())
}

func TestConnectFailureLeavesClientDisconnected(t *testing.T) {
	d := &mockDialer{err: errors.New("resolution failed")}
	client := newTestClient(t, d, Options{Deadline: time.Second})

	err := client.Connect(context.Background())
	require.Error(t, err)

	connErr := &ConnectionError{}
	require.ErrorAs(t, err, &connErr)
	assert.Contains(t, connErr.Target, "localhost:17912")

	// a retry goes through the dialer again
	d.err = nil
	d.channel = &mockChannel{}
	require.NoError(t, client.Connect(context.Background()))
	assert.Equal(t, int32(2), d.dialCount.Load())
}

func TestCloseWithoutConnectIsNoop(t *testing.T) {
	d := &mockDialer{channel: &mockChannel{}}
	client := newTestClient(t, d, Options{Deadline: time.Second})

	require.NoError(t, client.Close())
	require.NoError(t, client.Close())
}

func TestCloseIsIdempotent(t *testing.T) {
	ch := &mockChannel{}
	d := &mockDialer{channel: ch}
	client := newTestClient(t, d, Options{Deadline: time.Second})

	require.NoError(t, client.Connect(context.Background()))

	// close from a different goroutine than the one that connected
	done := make(chan error)
	go func() {
		done <- client.Close()
	}()
	require.NoError(t, <-done)
	require.NoError(t, client.Close())

	assert.True(t, ch.isClosed())
}

func TestCloseEscalatesToForcedShutdown(t *testing.T) {
	ch := &mockChannel{shutdownDelay: time.Minute}
	d := &mockDialer{channel: ch}
	client := newTestClient(t, d, Options{Deadline: time.Second})
	client.gracePeriod = 50 * time.Millisecond

	require.NoError(t, client.Connect(context.Background()))

	start := time.Now()
	require.NoError(t, client.Close())

	assert.Less(t, time.Since(start), time.Second)
	assert.True(t, ch.forcedDown.Load())
	assert.True(t, ch.isClosed())
}

func TestQueryWithoutConnect(t *testing.T) {
	d := &mockDialer{channel: &mockChannel{}}
	client := newTestClient(t, d, Options{Deadline: time.Second})

	_, err := client.QueryTraces(context.Background(), &TraceQuery{Name: "sw"})
	require.Error(t, err)

	callErr := &RemoteCallError{}
	require.ErrorAs(t, err, &callErr)
	assert.ErrorIs(t, err, ErrNotConnected)
}

func TestQueryAfterCloseFailsFast(t *testing.T) {
	ch := &mockChannel{}
	d := &mockDialer{channel: ch}
	client := newTestClient(t, d, Options{Deadline: 5 * time.Second})

	require.NoError(t, client.Connect(context.Background()))
	require.NoError(t, client.Close())

	start := time.Now()
	_, err := client.QueryTraces(context.Background(), &TraceQuery{Name: "sw"})
	require.Error(t, err)

	callErr := &RemoteCallError{}
	require.ErrorAs(t, err, &callErr)
	assert.Equal(t, codes.Canceled, status.Code(callErr.Err))
	// fails fast, not after the query deadline
	assert.Less(t, time.Since(start), time.Second)
}

func TestQueryDeadline(t *testing.T) {
	ch := &mockChannel{queryDelay: 5 * time.Second}
	d := &mockDialer{channel: ch}
	client := newTestClient(t, d, Options{Deadline: 100 * time.Millisecond})

	require.NoError(t, client.Connect(context.Background()))

	start := time.Now()
	_, err := client.QueryTraces(context.Background(), &TraceQuery{Name: "sw"})
	elapsed := time.Since(start)

	require.Error(t, err)
	callErr := &RemoteCallError{}
	require.ErrorAs(t, err, &callErr)
	assert.Equal(t, codes.DeadlineExceeded, status.Code(callErr.Err))

	// the deadline cut the call short, the server delay never elapsed
	assert.GreaterOrEqual(t, elapsed, 100*time.Millisecond)
	assert.Less(t, elapsed, time.Second)
}

func TestQueryDecodesEntities(t *testing.T) {
	ch := &mockChannel{
		queryResponse: &banyandbpb.QueryResponse{
			Entities: []*banyandbpb.Entity{
				{
					EntityId: "trace-1",
					Tags: []*banyandbpb.Tag{
						{
							Key:   "duration",
							Value: &banyandbpb.TagValue{Value: &banyandbpb.TagValue_Int{Int: &banyandbpb.Int{Value: 42}}},
						},
						{
							Key:   "status",
							Value: &banyandbpb.TagValue{Value: &banyandbpb.TagValue_Null{Null: banyandbpb.NullValue_NULL_VALUE}},
						},
					},
				},
			},
		},
	}
	d := &mockDialer{channel: ch}
	client := newTestClient(t, d, Options{Deadline: time.Second})

	require.NoError(t, client.Connect(context.Background()))

	resp, err := client.QueryTraces(context.Background(), &TraceQuery{Name: "sw"})
	require.NoError(t, err)
	require.Equal(t, 1, resp.Len())

	entity := resp.Entities()[0]
	assert.Equal(t, "trace-1", entity.EntityID)
	require.Len(t, entity.Tags, 2)

	duration, ok := entity.Tags[0].(LongTagPair)
	require.True(t, ok)
	assert.Equal(t, "duration", duration.TagName())
	assert.Equal(t, int64(42), duration.Value)
	assert.False(t, duration.IsNull())

	nullStatus, ok := entity.Tags[1].(NullTagPair)
	require.True(t, ok)
	assert.Equal(t, "status", nullStatus.TagName())
	assert.True(t, nullStatus.IsNull())
}

func TestQueryFailsWholeDecodeOnUnknownVariant(t *testing.T) {
	ch := &mockChannel{
		queryResponse: &banyandbpb.QueryResponse{
			Entities: []*banyandbpb.Entity{
				{
					EntityId: "trace-1",
					Tags: []*banyandbpb.Tag{
						{
							Key:   "duration",
							Value: &banyandbpb.TagValue{Value: &banyandbpb.TagValue_Int{Int: &banyandbpb.Int{Value: 42}}},
						},
						{
							Key:   "mystery",
							Value: &banyandbpb.TagValue{},
						},
					},
				},
			},
		},
	}
	d := &mockDialer{channel: ch}
	client := newTestClient(t, d, Options{Deadline: time.Second})

	require.NoError(t, client.Connect(context.Background()))

	resp, err := client.QueryTraces(context.Background(), &TraceQuery{Name: "sw"})
	assert.Nil(t, resp)
	require.ErrorIs(t, err, ErrUnrecognizedVariant)
}

func TestBuildTraceWriteProcessorRequiresConnect(t *testing.T) {
	d := &mockDialer{channel: &mockChannel{}}
	client := newTestClient(t, d, Options{Deadline: time.Second})

	_, err := client.BuildTraceWriteProcessor(10, time.Second, 1)
	require.ErrorIs(t, err, ErrNotConnected)
}
