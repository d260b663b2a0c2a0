package banyandb

import (
	"context"
	"time"

	"github.com/gogo/protobuf/types"

	"github.com/banyandb/client-go/pkg/banyandbpb"
)

// TraceQuery is the caller-constructed criteria for one trace query. The
// group is not part of the query; it is stamped on at call time from the
// client's binding.
type TraceQuery struct {
	// Name of the trace series to query.
	Name string

	// Begin and End bound the queried time range.
	Begin time.Time
	End   time.Time

	// Projection limits which tags come back on each entity. Empty means
	// all tags.
	Projection []string

	Offset uint32
	Limit  uint32

	criteria []*banyandbpb.Condition
}

// WhereStringEquals adds an equality condition on a string tag. Conditions
// are applied in the order they were added.
func (q *TraceQuery) WhereStringEquals(key, value string) *TraceQuery {
	return q.where(key, banyandbpb.Condition_BINARY_OP_EQ, strTagValue(value))
}

// WhereLong adds a comparison condition on an integer tag.
func (q *TraceQuery) WhereLong(key string, op banyandbpb.Condition_BinaryOp, value int64) *TraceQuery {
	return q.where(key, op, longTagValue(value))
}

func (q *TraceQuery) where(key string, op banyandbpb.Condition_BinaryOp, value *banyandbpb.TagValue) *TraceQuery {
	q.criteria = append(q.criteria, &banyandbpb.Condition{
		Key:   key,
		Op:    op,
		Value: value,
	})
	return q
}

// Build compiles the query and the bound group into a wire request.
func (q *TraceQuery) Build(group string) *banyandbpb.QueryRequest {
	req := &banyandbpb.QueryRequest{
		Metadata: &banyandbpb.Metadata{
			Group: group,
			Name:  q.Name,
		},
		Offset:     q.Offset,
		Limit:      q.Limit,
		Projection: q.Projection,
		Criteria:   q.criteria,
	}

	if !q.Begin.IsZero() || !q.End.IsZero() {
		req.TimeRange = &banyandbpb.TimeRange{
			Begin: toTimestamp(q.Begin),
			End:   toTimestamp(q.End),
		}
	}

	return req
}

// TraceQueryResponse wraps one raw query reply with its entities fully
// decoded. It owns its entities and their tag pairs; nothing is cached
// beyond it.
type TraceQueryResponse struct {
	raw      *banyandbpb.QueryResponse
	entities []*TraceEntity
}

// Raw returns the undecoded wire reply.
func (r *TraceQueryResponse) Raw() *banyandbpb.QueryResponse {
	return r.raw
}

// TraceEntity is one decoded result entry.
type TraceEntity struct {
	EntityID   string
	Timestamp  time.Time
	DataBinary []byte
	Tags       []TagAndValue
}

// Entities returns the decoded result entries in wire order.
func (r *TraceQueryResponse) Entities() []*TraceEntity {
	return r.entities
}

// Len returns the number of result entries.
func (r *TraceQueryResponse) Len() int {
	return len(r.entities)
}

// QueryTraces runs one synchronous query, blocking until the response
// arrives or the configured deadline elapses. The client must be connected;
// a query against a closed channel fails with a RemoteCallError rather than
// hanging. The response is decoded all-or-nothing: an unrecognized tag
// variant fails the whole call.
func (c *Client) QueryTraces(ctx context.Context, query *TraceQuery) (*TraceQueryResponse, error) {
	stub := c.traceClient()
	if stub == nil {
		return nil, &RemoteCallError{Op: "query", Err: ErrNotConnected}
	}

	ctx, cancel := context.WithTimeout(ctx, c.opts.Deadline)
	defer cancel()

	resp, err := stub.Query(ctx, query.Build(c.group))
	if err != nil {
		return nil, &RemoteCallError{Op: "query", Err: err}
	}

	return newTraceQueryResponse(resp)
}

func newTraceQueryResponse(resp *banyandbpb.QueryResponse) (*TraceQueryResponse, error) {
	entities := make([]*TraceEntity, 0, len(resp.GetEntities()))
	for _, e := range resp.GetEntities() {
		entity := &TraceEntity{
			EntityID:   e.GetEntityId(),
			DataBinary: e.GetDataBinary(),
			Tags:       make([]TagAndValue, 0, len(e.GetTags())),
		}
		if ts := e.GetTimestamp(); ts != nil {
			t, err := types.TimestampFromProto(ts)
			if err != nil {
				return nil, &RemoteCallError{Op: "query", Err: err}
			}
			entity.Timestamp = t
		}
		for _, tag := range e.GetTags() {
			tv, err := tagAndValueFrom(tag)
			if err != nil {
				return nil, err
			}
			entity.Tags = append(entity.Tags, tv)
		}
		entities = append(entities, entity)
	}
	return &TraceQueryResponse{raw: resp, entities: entities}, nil
}

func toTimestamp(t time.Time) *types.Timestamp {
	if t.IsZero() {
		return nil
	}
	ts, _ := types.TimestampProto(t)
	return ts
}

func strTagValue(v string) *banyandbpb.TagValue {
	return &banyandbpb.TagValue{
		Value: &banyandbpb.TagValue_Str{Str: &banyandbpb.Str{Value: v}},
	}
}

func longTagValue(v int64) *banyandbpb.TagValue {
	return &banyandbpb.TagValue{
		Value: &banyandbpb.TagValue_Int{Int: &banyandbpb.Int{Value: v}},
	}
}
