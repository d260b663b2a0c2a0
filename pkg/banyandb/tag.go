package banyandb

import (
	"github.com/pkg/errors"

	"github.com/banyandb/client-go/pkg/banyandbpb"
)

// TagAndValue is one decoded tag of a query result entity. It is always one
// of the six pair types below; the shape is fixed at decode time and never
// changes. Values are owned by the response that contains them and are never
// mutated after decoding.
type TagAndValue interface {
	// TagName returns the name of the tag.
	TagName() string
	// IsNull reports whether the tag carries the null value.
	IsNull() bool

	sealed()
}

type tagName string

func (t tagName) TagName() string { return string(t) }
func (t tagName) IsNull() bool    { return false }
func (t tagName) sealed()         {}

// StringTagPair is a tag holding a single string.
type StringTagPair struct {
	tagName
	Value string
}

// StringArrayTagPair is a tag holding an ordered list of strings.
type StringArrayTagPair struct {
	tagName
	Values []string
}

// LongTagPair is a tag holding a single 64-bit signed integer.
type LongTagPair struct {
	tagName
	Value int64
}

// LongArrayTagPair is a tag holding an ordered list of 64-bit signed
// integers.
type LongArrayTagPair struct {
	tagName
	Values []int64
}

// BinaryTagPair is a tag holding an opaque byte sequence.
type BinaryTagPair struct {
	tagName
	Value []byte
}

// NullTagPair is a tag holding the distinguished null value. IsNull is
// constant true, independent of anything inspected later.
type NullTagPair struct {
	tagName
}

// IsNull always reports true for the null pair.
func (NullTagPair) IsNull() bool { return true }

// tagAndValueFrom maps one wire-level tag onto exactly one pair type. A
// discriminant outside the known set fails with ErrUnrecognizedVariant; a
// conformant server never produces one, so hitting it means the client and
// server schemas have diverged.
//
// The decoder is pure and safe to call concurrently.
func tagAndValueFrom(tag *banyandbpb.Tag) (TagAndValue, error) {
	name := tagName(tag.GetKey())
	switch v := tag.GetValue().GetValue().(type) {
	case *banyandbpb.TagValue_Int:
		return LongTagPair{tagName: name, Value: v.Int.GetValue()}, nil
	case *banyandbpb.TagValue_Str:
		return StringTagPair{tagName: name, Value: v.Str.GetValue()}, nil
	case *banyandbpb.TagValue_IntArray:
		return LongArrayTagPair{tagName: name, Values: v.IntArray.GetValue()}, nil
	case *banyandbpb.TagValue_StrArray:
		return StringArrayTagPair{tagName: name, Values: v.StrArray.GetValue()}, nil
	case *banyandbpb.TagValue_BinaryData:
		return BinaryTagPair{tagName: name, Value: v.BinaryData}, nil
	case *banyandbpb.TagValue_Null:
		return NullTagPair{tagName: name}, nil
	default:
		return nil, errors.Wrapf(ErrUnrecognizedVariant, "tag %q", tag.GetKey())
	}
}
