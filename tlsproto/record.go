package tlsproto

import (
	"github.com/kcodec/tlscodec/field"
	"github.com/kcodec/tlscodec/packet"
)

// RecordSchema is the outermost TLS unit: a one-octet content type, a
// two-octet protocol version, and a two-octet fragment length governing
// whatever payload the content type binds to. The fragment itself is
// never a field of this schema -- a caller (the ssl package, or a test
// that already has an exact-length slice) hands Dissect exactly
// header+fragment octets, and the generic engine's own "remainder after
// fields" becomes the fragment automatically.
var RecordSchema = &packet.Schema{
	Name: "TLSRecord",
	Fields: []*field.Descriptor{
		{Name: "content_type", Kind: field.EnumByte, Width: 1, EnumMap: ContentTypeNames, Default: uint64(ContentTypeHandshake)},
		{Name: "version", Kind: field.EnumUInt, Width: 2, EnumMap: VersionNames, Default: uint64(VersionTLS10)},
		{Name: "length", Kind: field.UInt, Width: 2, LengthOf: "payload"},
	},
}

// NewRecord returns an empty TLSRecord instance ready for Set/Dissect.
func NewRecord() *packet.Instance {
	return packet.NewInstance(RecordSchema)
}
