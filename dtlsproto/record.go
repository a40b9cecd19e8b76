// Package dtlsproto is the DTLS half of the (D)TLS schema (component 5):
// RFC 6347's datagram framing, layered over the same field/packet/binder
// engine as tlsproto, reusing tlsproto's content-type, handshake-type,
// and extension tables where DTLS and TLS agree (they do, for every
// value this codec carries).
//
// Grounded, like tlsproto, on
// _examples/original_source/src/scapy/layers/ssl_tls.py's DTLSRecord/
// DTLSHandshake/DTLSClientHello/DTLSHelloVerify classes.
package dtlsproto

import (
	"github.com/kcodec/tlscodec/field"
	"github.com/kcodec/tlscodec/packet"
	"github.com/kcodec/tlscodec/tlsproto"
)

// RecordSchema adds, relative to tlsproto.RecordSchema, the epoch and a
// 48-bit (six-octet) truncated sequence number RFC 6347 §4.1 requires
// for reordering and replay detection over an unreliable transport.
var RecordSchema = &packet.Schema{
	Name: "DTLSRecord",
	Fields: []*field.Descriptor{
		{Name: "content_type", Kind: field.EnumByte, Width: 1, EnumMap: tlsproto.ContentTypeNames, Default: uint64(tlsproto.ContentTypeHandshake)},
		{Name: "version", Kind: field.EnumUInt, Width: 2, EnumMap: tlsproto.VersionNames, Default: uint64(tlsproto.VersionDTLS12)},
		{Name: "epoch", Kind: field.UInt, Width: 2, Default: uint64(0)},
		{Name: "sequence_number", Kind: field.UInt, Width: 6, Default: uint64(0)},
		{Name: "length", Kind: field.UInt, Width: 2, LengthOf: "payload"},
	},
}

func NewRecord() *packet.Instance { return packet.NewInstance(RecordSchema) }
