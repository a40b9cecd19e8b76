package tlsproto

import (
	"github.com/kcodec/tlscodec/field"
	"github.com/kcodec/tlscodec/packet"
)

// ServerKeyExchangeSchema is a u24 length followed by opaque data: which
// key exchange method's parameters those octets hold depends on the
// negotiated cipher suite, information this schema has no access to.
// Bound to HandshakeSchema under msg_type=server_key_exchange. It does
// not bind onward to TLSDHServerParams automatically -- a caller that
// knows (from cipher suite context this codec doesn't track) that the
// params are Diffie-Hellman can dissect Data against DHServerParamsSchema
// itself via NewDHServerParams.
var ServerKeyExchangeSchema = &packet.Schema{
	Name: "TLSServerKeyExchange",
	Fields: []*field.Descriptor{
		{Name: "length", Kind: field.UInt, Width: 3, LengthOf: "data"},
		{Name: "data", Kind: field.RawBytes, LengthFrom: "length"},
	},
}

// DHServerParamsSchema is ServerKeyExchange's opaque data for the
// finite-field Diffie-Hellman key exchange: modulus, generator, server
// public value, and the signature over them, each length-prefixed.
var DHServerParamsSchema = &packet.Schema{
	Name: "TLSDHServerParams",
	Fields: []*field.Descriptor{
		{Name: "p_length", Kind: field.UInt, Width: 2, LengthOf: "p"},
		{Name: "p", Kind: field.LenPrefixedBytes, LengthFrom: "p_length"},
		{Name: "g_length", Kind: field.UInt, Width: 2, LengthOf: "g"},
		{Name: "g", Kind: field.LenPrefixedBytes, LengthFrom: "g_length"},
		{Name: "public_key_length", Kind: field.UInt, Width: 2, LengthOf: "public_key"},
		{Name: "public_key", Kind: field.LenPrefixedBytes, LengthFrom: "public_key_length"},
		{Name: "signature_length", Kind: field.UInt, Width: 2, LengthOf: "signature"},
		{Name: "signature", Kind: field.LenPrefixedBytes, LengthFrom: "signature_length"},
	},
}

func NewServerKeyExchange() *packet.Instance { return packet.NewInstance(ServerKeyExchangeSchema) }
func NewDHServerParams() *packet.Instance    { return packet.NewInstance(DHServerParamsSchema) }
