package tlsproto

import (
	"github.com/kcodec/tlscodec/clock"
	"github.com/kcodec/tlscodec/field"
	"github.com/kcodec/tlscodec/packet"
)

// RandomBytesWidth is the length of a Hello's random_bytes field: 32
// total octets, 4 of which are the gmt_unix_time field that precedes it.
const RandomBytesWidth = 28

// ClientHelloSchema. gmt_unix_time and random_bytes both read from
// clock.Default exactly once, at instance construction -- never per
// Build call -- so repeated builds of the same unmodified instance stay
// byte-identical. Bound to HandshakeSchema under msg_type=client_hello.
var ClientHelloSchema = &packet.Schema{
	Name: "TLSClientHello",
	Fields: []*field.Descriptor{
		{Name: "version", Kind: field.EnumUInt, Width: 2, EnumMap: VersionNames, Default: uint64(VersionTLS12)},
		{Name: "gmt_unix_time", Kind: field.UInt, Width: 4, DefaultFunc: func() any { return uint64(clock.Default.Now()) }},
		{Name: "random_bytes", Kind: field.FixedBytes, N: RandomBytesWidth, DefaultFunc: func() any { return clock.Default.Random(RandomBytesWidth) }},
		{Name: "session_id_length", Kind: field.UInt, Width: 1, LengthOf: "session_id"},
		{Name: "session_id", Kind: field.LenPrefixedBytes, LengthFrom: "session_id_length"},
		{Name: "cipher_suites_length", Kind: field.UInt, Width: 2, LengthOf: "cipher_suites"},
		{Name: "cipher_suites", Kind: field.FieldList, Inner: &field.Descriptor{Kind: field.UInt, Width: 2}, LengthFrom: "cipher_suites_length"},
		{Name: "compression_methods_length", Kind: field.UInt, Width: 1, LengthOf: "compression_methods"},
		{Name: "compression_methods", Kind: field.FieldList, Inner: &field.Descriptor{Kind: field.UInt, Width: 1}, LengthFrom: "compression_methods_length"},
		// Named extensions_length, not extension_length, matching
		// RFC 5246 -- the field name governing it ("extension_length") in
		// the module this codec is descended from is a naming slip kept
		// only as a presentation label there, not followed here.
		{Name: "extensions_length", Kind: field.UInt, Width: 2, LengthOf: "extensions"},
		{Name: "extensions", Kind: field.PacketList, LengthFrom: "extensions_length", NewElement: func() field.Dissector { return NewExtension() }},
	},
}

// ServerHelloSchema. Identical framing to ClientHello except cipher
// suites and compression methods collapse from a negotiable list to the
// server's single chosen value. Bound under msg_type=server_hello.
var ServerHelloSchema = &packet.Schema{
	Name: "TLSServerHello",
	Fields: []*field.Descriptor{
		{Name: "version", Kind: field.EnumUInt, Width: 2, EnumMap: VersionNames, Default: uint64(VersionTLS12)},
		{Name: "gmt_unix_time", Kind: field.UInt, Width: 4, DefaultFunc: func() any { return uint64(clock.Default.Now()) }},
		{Name: "random_bytes", Kind: field.FixedBytes, N: RandomBytesWidth, DefaultFunc: func() any { return clock.Default.Random(RandomBytesWidth) }},
		{Name: "session_id_length", Kind: field.UInt, Width: 1, LengthOf: "session_id"},
		{Name: "session_id", Kind: field.LenPrefixedBytes, LengthFrom: "session_id_length"},
		{Name: "cipher_suite", Kind: field.EnumUInt, Width: 2, EnumMap: CipherSuiteNames, Default: uint64(CipherRSAWithAES128CBCSHA)},
		{Name: "compression_method", Kind: field.EnumByte, Width: 1, EnumMap: CompressionMethodNames, Default: uint64(CompressionNull)},
		{Name: "extensions_length", Kind: field.UInt, Width: 2, LengthOf: "extensions"},
		{Name: "extensions", Kind: field.PacketList, LengthFrom: "extensions_length", NewElement: func() field.Dissector { return NewExtension() }},
	},
}

func NewClientHello() *packet.Instance { return packet.NewInstance(ClientHelloSchema) }
func NewServerHello() *packet.Instance { return packet.NewInstance(ServerHelloSchema) }
