package main

import (
	"time"

	"github.com/alecthomas/kong"
	"github.com/go-kit/log"
	dslog "github.com/grafana/dskit/log"

	util_log "github.com/banyandb/client-go/pkg/util/log"
)

type globalOptions struct {
	Host     string        `help:"BanyanDB server host." default:"127.0.0.1"`
	Port     int           `help:"BanyanDB server port." default:"17912"`
	Group    string        `help:"Group every query and write is scoped to." default:"default"`
	Deadline time.Duration `help:"Deadline applied to every query call." default:"15s"`
	LogLevel string        `help:"Log level." default:"info" enum:"debug,info,warn,error"`
}

func (g *globalOptions) logger() log.Logger {
	var lvl dslog.Level
	if err := lvl.Set(g.LogLevel); err != nil {
		_ = lvl.Set("info")
	}
	return util_log.InitLogger("logfmt", lvl)
}

var cli struct {
	globalOptions

	Query queryCmd `cmd:"" help:"Query trace entities from a trace series."`
	Write writeCmd `cmd:"" help:"Bulk write generated trace entities into a trace series."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("banyandb-cli"),
		kong.Description("A command line tool to query and write BanyanDB trace series."),
		kong.UsageOnError(),
	)
	err := ctx.Run(&cli.globalOptions)
	ctx.FatalIfErrorf(err)
}
