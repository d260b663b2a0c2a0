package main

import (
	"context"
	"math/rand"
	"time"

	"github.com/go-kit/log/level"
	"github.com/google/uuid"

	"github.com/banyandb/client-go/pkg/banyandb"
	"github.com/banyandb/client-go/pkg/banyandbpb"
)

type writeCmd struct {
	Name  string `arg:"" help:"trace series name"`
	Count int    `help:"number of generated trace entities to write" default:"100"`

	MaxBulkSize   int           `help:"bulk size that triggers a flush" default:"20"`
	FlushInterval time.Duration `help:"max time a partial bulk waits before flushing" default:"1s"`
	Concurrency   int           `help:"max concurrent flushes" default:"2"`
}

func (cmd *writeCmd) Run(opts *globalOptions) error {
	logger := opts.logger()

	client, err := banyandb.New(opts.Host, opts.Port, opts.Group, banyandb.Options{
		Deadline: opts.Deadline,
	}, banyandb.WithLogger(logger))
	if err != nil {
		return err
	}
	if err := client.Connect(context.Background()); err != nil {
		return err
	}
	defer client.Close()

	processor, err := client.BuildTraceWriteProcessor(cmd.MaxBulkSize, cmd.FlushInterval, cmd.Concurrency)
	if err != nil {
		return err
	}

	for i := 0; i < cmd.Count; i++ {
		traceID := uuid.NewString()
		if err := processor.Write(&banyandb.TraceWrite{
			Name:       cmd.Name,
			EntityID:   traceID,
			Timestamp:  time.Now(),
			DataBinary: []byte(traceID),
			Tags: []*banyandbpb.TagValue{
				strValue(traceID),
				strValue("service-" + uuid.NewString()[:8]),
				longValue(rand.Int63n(5000)),
			},
		}); err != nil {
			return err
		}
	}

	if err := processor.Close(); err != nil {
		return err
	}

	level.Info(logger).Log("msg", "wrote generated trace entities", "count", cmd.Count, "series", cmd.Name)
	return nil
}

func strValue(v string) *banyandbpb.TagValue {
	return &banyandbpb.TagValue{
		Value: &banyandbpb.TagValue_Str{Str: &banyandbpb.Str{Value: v}},
	}
}

func longValue(v int64) *banyandbpb.TagValue {
	return &banyandbpb.TagValue{
		Value: &banyandbpb.TagValue_Int{Int: &banyandbpb.Int{Value: v}},
	}
}
