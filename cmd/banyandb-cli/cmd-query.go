package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gogo/protobuf/jsonpb"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"

	"github.com/banyandb/client-go/pkg/banyandb"
	"github.com/banyandb/client-go/pkg/banyandbpb"
)

type queryCmd struct {
	Name  string `arg:"" help:"trace series name"`
	Start string `arg:"" optional:"" help:"start time in ISO8601 format"`
	End   string `arg:"" optional:"" help:"end time in ISO8601 format"`

	Tags   []string `help:"tag=value equality conditions" name:"tag"`
	Limit  uint32   `help:"max number of entities" default:"20"`
	Offset uint32   `help:"number of entities to skip"`
	JSON   bool     `help:"dump the raw response as json instead of a table"`
}

func (cmd *queryCmd) Run(opts *globalOptions) error {
	logger := opts.logger()

	query := &banyandb.TraceQuery{
		Name:   cmd.Name,
		Limit:  cmd.Limit,
		Offset: cmd.Offset,
	}

	if cmd.Start != "" {
		start, err := time.Parse(time.RFC3339, cmd.Start)
		if err != nil {
			return err
		}
		query.Begin = start
	}
	if cmd.End != "" {
		end, err := time.Parse(time.RFC3339, cmd.End)
		if err != nil {
			return err
		}
		query.End = end
	}

	for _, cond := range cmd.Tags {
		key, value, found := strings.Cut(cond, "=")
		if !found {
			return errors.Errorf("invalid tag condition %q, expected tag=value", cond)
		}
		if i, err := strconv.ParseInt(value, 10, 64); err == nil {
			query.WhereLong(key, banyandbpb.Condition_BINARY_OP_EQ, i)
		} else {
			query.WhereStringEquals(key, value)
		}
	}

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

	resp, err := client.QueryTraces(context.Background(), query)
	if err != nil {
		return err
	}

	if cmd.JSON {
		m := jsonpb.Marshaler{Indent: "  "}
		return m.Marshal(os.Stdout, resp.Raw())
	}

	out := make([][]string, 0, resp.Len())
	for _, entity := range resp.Entities() {
		tags := make([]string, 0, len(entity.Tags))
		for _, tag := range entity.Tags {
			tags = append(tags, formatTag(tag))
		}
		out = append(out, []string{
			entity.EntityID,
			entity.Timestamp.Format(time.RFC3339Nano),
			strings.Join(tags, " "),
		})
	}

	w := tablewriter.NewWriter(os.Stdout)
	w.SetHeader([]string{"ID", "Timestamp", "Tags"})
	w.AppendBulk(out)
	w.Render()
	return nil
}

func formatTag(tag banyandb.TagAndValue) string {
	switch v := tag.(type) {
	case banyandb.StringTagPair:
		return fmt.Sprintf("%s=%s", v.TagName(), v.Value)
	case banyandb.StringArrayTagPair:
		return fmt.Sprintf("%s=%s", v.TagName(), strings.Join(v.Values, ","))
	case banyandb.LongTagPair:
		return fmt.Sprintf("%s=%d", v.TagName(), v.Value)
	case banyandb.LongArrayTagPair:
		values := make([]string, 0, len(v.Values))
		for _, i := range v.Values {
			values = append(values, strconv.FormatInt(i, 10))
		}
		return fmt.Sprintf("%s=%s", v.TagName(), strings.Join(values, ","))
	case banyandb.BinaryTagPair:
		return fmt.Sprintf("%s=<%d bytes>", v.TagName(), len(v.Value))
	default:
		return fmt.Sprintf("%s=<null>", tag.TagName())
	}
}
