// This is copied over from Jaeger and modified to work for the BanyanDB client

package gogocodec

import (
	"fmt"
	"reflect"
	"strings"

	gogoproto "github.com/gogo/protobuf/proto"
	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/protoadapt"
)

const (
	codecName = "proto"

	banyandbProtoGenPackage = "github.com/banyandb/client-go/pkg/banyandbpb"
)

func init() {
	encoding.RegisterCodec(NewCodec())
}

// gogoCodec forces the use of gogo proto marshalling/unmarshalling for
// the messages in pkg/banyandbpb, which are generated with protoc-gen-gogo
// and cannot be handled by the default grpc-go codec. All other messages
// are round-tripped through the regular protobuf runtime.
type gogoCodec struct{}

var _ encoding.Codec = (*gogoCodec)(nil)

func NewCodec() *gogoCodec {
	return &gogoCodec{}
}

// Name implements encoding.Codec
func (c *gogoCodec) Name() string {
	return codecName
}

// Marshal implements encoding.Codec
func (c *gogoCodec) Marshal(v any) ([]byte, error) {
	t := reflect.TypeOf(v)
	elem := t.Elem()
	// use gogo proto only for banyandbpb types
	if useGogo(elem) {
		return gogoproto.Marshal(v.(gogoproto.Message))
	}

	if msg, ok := v.(protoadapt.MessageV1); ok {
		return proto.Marshal(protoadapt.MessageV2Of(msg))
	}
	if msg, ok := v.(proto.Message); ok {
		return proto.Marshal(msg)
	}

	return nil, fmt.Errorf("unsupported marshal type %T", v)
}

// Unmarshal implements encoding.Codec
func (c *gogoCodec) Unmarshal(data []byte, v any) error {
	t := reflect.TypeOf(v)
	elem := t.Elem() // only for collections
	// use gogo proto only for banyandbpb types
	if useGogo(elem) {
		return gogoproto.Unmarshal(data, v.(gogoproto.Message))
	}

	if msg, ok := v.(protoadapt.MessageV1); ok {
		return proto.Unmarshal(data, protoadapt.MessageV2Of(msg))
	}
	if msg, ok := v.(proto.Message); ok {
		return proto.Unmarshal(data, msg)
	}

	return fmt.Errorf("unsupported unmarshal type %T", v)
}

func useGogo(t reflect.Type) bool {
	if t == nil {
		return false
	}

	return strings.HasPrefix(t.PkgPath(), banyandbProtoGenPackage)
}
