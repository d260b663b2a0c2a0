package banyandb

import (
	"context"
	"io"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/gogo/protobuf/types"
	"github.com/grafana/dskit/backoff"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"

	"github.com/banyandb/client-go/pkg/banyandbpb"
)

var (
	metricTracesWritten = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "banyandb",
		Name:      "client_traces_written_total",
		Help:      "The total number of trace entities handed to the bulk write pipeline.",
	})
	metricFlushes = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "banyandb",
		Name:      "client_flushes_total",
		Help:      "The total number of successful bulk flushes.",
	})
	metricFailedFlushes = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "banyandb",
		Name:      "client_failed_flushes_total",
		Help:      "The total number of failed bulk flushes.",
	})
	metricFlushDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "banyandb",
		Name:      "client_flush_duration_seconds",
		Help:      "Records the amount of time to flush one bulk of trace entities.",
		Buckets:   prometheus.ExponentialBuckets(.01, 2, 10),
	})
)

// flushTimeout bounds one write stream round trip during a flush.
const flushTimeout = 15 * time.Second

// TraceWrite is one trace entity to be appended through the bulk write
// pipeline. Tag values are positional and must follow the series schema.
type TraceWrite struct {
	// Name of the trace series written to.
	Name string

	EntityID   string
	Timestamp  time.Time
	DataBinary []byte
	Tags       []*banyandbpb.TagValue
}

func (w *TraceWrite) toRequest(group string) *banyandbpb.WriteRequest {
	ts, _ := types.TimestampProto(w.Timestamp)
	return &banyandbpb.WriteRequest{
		Metadata: &banyandbpb.Metadata{
			Group: group,
			Name:  w.Name,
		},
		Entity: &banyandbpb.EntityValue{
			EntityId:   w.EntityID,
			Timestamp:  ts,
			DataBinary: w.DataBinary,
			Tags:       w.Tags,
		},
	}
}

// TraceBulkWriteProcessor batches trace writes and flushes them over the
// write stream, either when maxBulkSize entities have accumulated or when
// flushInterval elapses with a partial batch, whichever comes first. At most
// concurrency flushes are in flight at a time; accumulating further batches
// while all flush slots are busy applies backpressure to Write callers.
//
// The processor owns one background goroutine. It is bound to the channel the
// client had at build time and does not survive a client reconnect.
type TraceBulkWriteProcessor struct {
	group  string
	stub   banyandbpb.TraceServiceClient
	logger log.Logger

	maxBulkSize   int
	flushInterval time.Duration
	backoffCfg    backoff.Config

	input   chan *TraceWrite
	quit    chan struct{}
	done    chan struct{}
	flushes *errgroup.Group
	stopped atomic.Bool
}

// BuildTraceWriteProcessor creates a bulk write pipeline bound to the active
// connection and the client's group. The client must be connected.
func (c *Client) BuildTraceWriteProcessor(maxBulkSize int, flushInterval time.Duration, concurrency int) (*TraceBulkWriteProcessor, error) {
	stub := c.traceClient()
	if stub == nil {
		return nil, ErrNotConnected
	}
	if maxBulkSize <= 0 {
		return nil, errors.New("max bulk size must be positive")
	}
	if flushInterval <= 0 {
		return nil, errors.New("flush interval must be positive")
	}
	if concurrency <= 0 {
		return nil, errors.New("concurrency must be positive")
	}

	p := &TraceBulkWriteProcessor{
		group:         c.group,
		stub:          stub,
		logger:        c.logger,
		maxBulkSize:   maxBulkSize,
		flushInterval: flushInterval,
		backoffCfg: backoff.Config{
			MinBackoff: 100 * time.Millisecond,
			MaxBackoff: time.Second,
			MaxRetries: 3,
		},
		input:   make(chan *TraceWrite),
		quit:    make(chan struct{}),
		done:    make(chan struct{}),
		flushes: &errgroup.Group{},
	}
	p.flushes.SetLimit(concurrency)

	go p.run()
	return p, nil
}

// Write submits one trace entity. It blocks while the pipeline is applying
// backpressure and fails once the processor has been closed.
func (p *TraceBulkWriteProcessor) Write(w *TraceWrite) error {
	if p.stopped.Load() {
		return ErrProcessorStopped
	}

	select {
	case p.input <- w:
		metricTracesWritten.Inc()
		return nil
	case <-p.quit:
		return ErrProcessorStopped
	}
}

// Close flushes whatever is buffered, waits for in-flight flushes to finish
// and stops the background goroutine. Close is idempotent.
func (p *TraceBulkWriteProcessor) Close() error {
	if !p.stopped.CompareAndSwap(false, true) {
		return nil
	}

	close(p.quit)
	<-p.done
	return p.flushes.Wait()
}

func (p *TraceBulkWriteProcessor) run() {
	defer close(p.done)

	ticker := time.NewTicker(p.flushInterval)
	defer ticker.Stop()

	batch := make([]*TraceWrite, 0, p.maxBulkSize)
	for {
		select {
		case w := <-p.input:
			batch = append(batch, w)
			if len(batch) >= p.maxBulkSize {
				batch = p.cut(batch)
			}
		case <-ticker.C:
			if len(batch) > 0 {
				batch = p.cut(batch)
			}
		case <-p.quit:
			// a writer may have won the race against quit, pick up
			// whatever made it into the channel
			for {
				select {
				case w := <-p.input:
					batch = append(batch, w)
					continue
				default:
				}
				break
			}
			if len(batch) > 0 {
				p.cut(batch)
			}
			return
		}
	}
}

// cut hands the current batch to a flush slot and starts a fresh one. It
// blocks while all flush slots are busy.
func (p *TraceBulkWriteProcessor) cut(batch []*TraceWrite) []*TraceWrite {
	p.flushes.Go(func() error {
		p.flush(batch)
		return nil
	})
	return make([]*TraceWrite, 0, p.maxBulkSize)
}

func (p *TraceBulkWriteProcessor) flush(batch []*TraceWrite) {
	start := time.Now()

	var err error
	b := backoff.New(context.Background(), p.backoffCfg)
	for b.Ongoing() {
		err = p.writeBatch(batch)
		if err == nil {
			metricFlushes.Inc()
			metricFlushDuration.Observe(time.Since(start).Seconds())
			return
		}

		metricFailedFlushes.Inc()
		level.Error(p.logger).Log("msg", "failed to flush bulk", "size", len(batch), "err", err)
		b.Wait()
	}

	level.Error(p.logger).Log("msg", "dropping bulk after retries", "size", len(batch), "err", err)
}

func (p *TraceBulkWriteProcessor) writeBatch(batch []*TraceWrite) error {
	ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
	defer cancel()

	stream, err := p.stub.Write(ctx)
	if err != nil {
		return &RemoteCallError{Op: "write", Err: err}
	}

	for _, w := range batch {
		if err := stream.Send(w.toRequest(p.group)); err != nil {
			return &RemoteCallError{Op: "write", Err: err}
		}
	}
	if err := stream.CloseSend(); err != nil {
		return &RemoteCallError{Op: "write", Err: err}
	}

	// drain the acknowledgements, the server sends one per request
	for {
		if _, err := stream.Recv(); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return &RemoteCallError{Op: "write", Err: err}
		}
	}
}
