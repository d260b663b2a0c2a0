package banyandb

import (
	"flag"
	"time"

	"github.com/pkg/errors"
)

const (
	// DefaultMaxInboundMessageSize caps the size of a single decoded
	// response message.
	DefaultMaxInboundMessageSize = 1024 * 1024 * 50
)

// Options configures the connection owned by a Client.
type Options struct {
	// Deadline bounds every query call. It has no default and must be set
	// explicitly.
	Deadline time.Duration `yaml:"deadline"`

	// MaxInboundMessageSize caps the size of a decoded response message.
	MaxInboundMessageSize int `yaml:"max_inbound_message_size"`
}

// RegisterFlagsAndApplyDefaults registers flags for the options.
func (o *Options) RegisterFlagsAndApplyDefaults(prefix string, f *flag.FlagSet) {
	f.DurationVar(&o.Deadline, prefix+".deadline", 15*time.Second, "Deadline applied to every query call.")
	f.IntVar(&o.MaxInboundMessageSize, prefix+".max-inbound-message-size", DefaultMaxInboundMessageSize, "Max size of a decoded response message in bytes.")
}

func (o *Options) validate() error {
	if o.Deadline <= 0 {
		return errors.New("deadline must be set")
	}
	if o.MaxInboundMessageSize < 0 {
		return errors.New("max inbound message size must not be negative")
	}
	return nil
}

func (o *Options) applyDefaults() {
	if o.MaxInboundMessageSize == 0 {
		o.MaxInboundMessageSize = DefaultMaxInboundMessageSize
	}
}
