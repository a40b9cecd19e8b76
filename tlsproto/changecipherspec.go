package tlsproto

import (
	"github.com/kcodec/tlscodec/field"
	"github.com/kcodec/tlscodec/packet"
)

// ChangeCipherSpecSchema. A single octet, always the value 1. Bound to
// RecordSchema under content_type=change_cipher_spec.
var ChangeCipherSpecSchema = &packet.Schema{
	Name: "TLSChangeCipherSpec",
	Fields: []*field.Descriptor{
		{Name: "message", Kind: field.UInt, Width: 1, Default: uint64(1)},
	},
}

func NewChangeCipherSpec() *packet.Instance { return packet.NewInstance(ChangeCipherSpecSchema) }
