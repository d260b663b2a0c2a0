// Package banyandb is a client for a BanyanDB trace store. A Client owns a
// single logical gRPC connection to one endpoint and exposes synchronous,
// deadline-bounded trace queries plus a batched bulk write pipeline.
//
// Typical usage:
//
//	client, err := banyandb.New("localhost", 17912, "default", banyandb.Options{
//		Deadline: 15 * time.Second,
//	})
//	if err != nil { ... }
//	if err := client.Connect(context.Background()); err != nil { ... }
//	defer client.Close()
//
//	resp, err := client.QueryTraces(context.Background(), &banyandb.TraceQuery{
//		Name:  "sw",
//		Begin: start,
//		End:   end,
//	})
package banyandb
