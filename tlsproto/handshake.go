package tlsproto

import (
	"github.com/kcodec/tlscodec/field"
	"github.com/kcodec/tlscodec/packet"
)

// HandshakeSchema wraps every handshake message: a one-octet message
// type and a three-octet (truncated) length governing the body the
// message type binds to. Bound to RecordSchema under
// content_type=handshake.
var HandshakeSchema = &packet.Schema{
	Name: "TLSHandshake",
	Fields: []*field.Descriptor{
		{Name: "msg_type", Kind: field.EnumByte, Width: 1, EnumMap: HandshakeTypeNames, Default: uint64(HandshakeClientHello)},
		{Name: "length", Kind: field.UInt, Width: 3, LengthOf: "payload"},
	},
}

// NewHandshake returns an empty TLSHandshake instance.
func NewHandshake() *packet.Instance {
	return packet.NewInstance(HandshakeSchema)
}
