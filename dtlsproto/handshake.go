package dtlsproto

import (
	"github.com/kcodec/tlscodec/field"
	"github.com/kcodec/tlscodec/packet"
	"github.com/kcodec/tlscodec/tlsproto"
)

// HandshakeSchema adds message_seq, fragment_offset and fragment_length
// to TLS's handshake framing: RFC 6347 §4.2.2's support for a handshake
// message split across multiple datagrams. This codec does not
// reassemble fragments -- it round-trips whatever offset/length a single
// record declares -- reassembly belongs to a transport-facing caller,
// not the schema layer.
var HandshakeSchema = &packet.Schema{
	Name: "DTLSHandshake",
	Fields: []*field.Descriptor{
		{Name: "msg_type", Kind: field.EnumByte, Width: 1, EnumMap: tlsproto.HandshakeTypeNames, Default: uint64(tlsproto.HandshakeClientHello)},
		{Name: "length", Kind: field.UInt, Width: 3, LengthOf: "payload"},
		{Name: "message_seq", Kind: field.UInt, Width: 2, Default: uint64(0)},
		{Name: "fragment_offset", Kind: field.UInt, Width: 3, Default: uint64(0)},
		{Name: "fragment_length", Kind: field.UInt, Width: 3, LengthOf: "payload"},
	},
}

func NewHandshake() *packet.Instance { return packet.NewInstance(HandshakeSchema) }
