package dtlsproto

import (
	"github.com/kcodec/tlscodec/field"
	"github.com/kcodec/tlscodec/packet"
	"github.com/kcodec/tlscodec/tlsproto"
)

// HelloVerifyRequestSchema is the server's stateless cookie challenge:
// the negotiated version, and a cookie for the client to echo back in
// its next ClientHello. Bound to HandshakeSchema under
// msg_type=hello_verify_request.
var HelloVerifyRequestSchema = &packet.Schema{
	Name: "DTLSHelloVerifyRequest",
	Fields: []*field.Descriptor{
		{Name: "version", Kind: field.EnumUInt, Width: 2, EnumMap: tlsproto.VersionNames, Default: uint64(tlsproto.VersionDTLS12)},
		{Name: "cookie_length", Kind: field.UInt, Width: 1, LengthOf: "cookie"},
		{Name: "cookie", Kind: field.LenPrefixedBytes, LengthFrom: "cookie_length"},
	},
}

func NewHelloVerifyRequest() *packet.Instance { return packet.NewInstance(HelloVerifyRequestSchema) }
