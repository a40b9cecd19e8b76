package tlsproto

import (
	"github.com/kcodec/tlscodec/field"
	"github.com/kcodec/tlscodec/packet"
)

// TLS_HEARTBEAT_MESSAGE_TYPES.
const (
	HeartbeatRequest  = 0x01
	HeartbeatResponse = 0x02
)

var HeartbeatTypeNames = map[uint64]string{
	HeartbeatRequest:  "heartbeat_request",
	HeartbeatResponse: "heartbeat_response",
}

// HeartBeatMinPadding is the minimum padding RFC 6520 requires: at least
// 16 octets, regardless of how short the payload is.
const HeartBeatMinPadding = 16

// HeartBeatSchema. Bound to RecordSchema under content_type=heartbeat.
// The payload field is named "data", not "payload" -- packet.Instance
// reserves the literal name "payload" for the next-layer sub-packet a
// schema's binder rule attaches, and TLSHeartBeat has no next layer, so
// a field actually called "payload" would always measure as size zero.
// padding is never read back from the wire as meaningful data -- RFC
// 6520 requires it be random and ignored by the receiver -- so it is
// filled with a fixed byte here rather than carrying entropy the codec
// has no use for.
var HeartBeatSchema = &packet.Schema{
	Name: "TLSHeartBeat",
	Fields: []*field.Descriptor{
		{Name: "type", Kind: field.EnumByte, Width: 1, EnumMap: HeartbeatTypeNames, Default: uint64(HeartbeatRequest)},
		{Name: "payload_length", Kind: field.UInt, Width: 2, LengthOf: "data"},
		{Name: "data", Kind: field.RawBytes, LengthFrom: "payload_length"},
		{Name: "padding", Kind: field.RawBytes, PadRelativeTo: "data", PadTo: HeartBeatMinPadding, PadByte: 0x50},
	},
}

func NewHeartBeat() *packet.Instance { return packet.NewInstance(HeartBeatSchema) }
