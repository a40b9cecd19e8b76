package dtlsproto

import (
	"github.com/kcodec/tlscodec/clock"
	"github.com/kcodec/tlscodec/field"
	"github.com/kcodec/tlscodec/packet"
	"github.com/kcodec/tlscodec/tlsproto"
)

// ClientHelloSchema is tlsproto.ClientHelloSchema plus the cookie RFC
// 6347 §4.2.1 inserts between session_id and cipher_suites, used for the
// stateless HelloVerifyRequest round trip that makes DTLS's handshake
// start resistant to source-address spoofing. Bound to HandshakeSchema
// under msg_type=client_hello.
var ClientHelloSchema = &packet.Schema{
	Name: "DTLSClientHello",
	Fields: []*field.Descriptor{
		{Name: "version", Kind: field.EnumUInt, Width: 2, EnumMap: tlsproto.VersionNames, Default: uint64(tlsproto.VersionDTLS12)},
		{Name: "gmt_unix_time", Kind: field.UInt, Width: 4, DefaultFunc: func() any { return uint64(clock.Default.Now()) }},
		{Name: "random_bytes", Kind: field.FixedBytes, N: tlsproto.RandomBytesWidth, DefaultFunc: func() any { return clock.Default.Random(tlsproto.RandomBytesWidth) }},
		{Name: "session_id_length", Kind: field.UInt, Width: 1, LengthOf: "session_id"},
		{Name: "session_id", Kind: field.LenPrefixedBytes, LengthFrom: "session_id_length"},
		{Name: "cookie_length", Kind: field.UInt, Width: 1, LengthOf: "cookie"},
		{Name: "cookie", Kind: field.LenPrefixedBytes, LengthFrom: "cookie_length"},
		{Name: "cipher_suites_length", Kind: field.UInt, Width: 2, LengthOf: "cipher_suites"},
		{Name: "cipher_suites", Kind: field.FieldList, Inner: &field.Descriptor{Kind: field.UInt, Width: 2}, LengthFrom: "cipher_suites_length"},
		{Name: "compression_methods_length", Kind: field.UInt, Width: 1, LengthOf: "compression_methods"},
		{Name: "compression_methods", Kind: field.FieldList, Inner: &field.Descriptor{Kind: field.UInt, Width: 1}, LengthFrom: "compression_methods_length"},
		{Name: "extensions_length", Kind: field.UInt, Width: 2, LengthOf: "extensions"},
		{Name: "extensions", Kind: field.PacketList, LengthFrom: "extensions_length", NewElement: func() field.Dissector { return tlsproto.NewExtension() }},
	},
}

func NewClientHello() *packet.Instance { return packet.NewInstance(ClientHelloSchema) }
