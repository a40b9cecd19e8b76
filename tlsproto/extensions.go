package tlsproto

import (
	"github.com/kcodec/tlscodec/binder"
	"github.com/kcodec/tlscodec/field"
	"github.com/kcodec/tlscodec/packet"
)

// extensionSchema is the generic TLS extension envelope: a two-octet
// type, a two-octet length, and exactly that many octets of opaque data.
// No binder rule is registered against this schema's own pointer for the
// generic payload-dispatch path the engine offers every other packet --
// extensions instead resolve their type-specific view themselves, in
// Extension.Dissect, so that the wire-true "data" field always holds the
// ground truth for Build regardless of whether a specific view exists.
var extensionSchema = &packet.Schema{
	Name: "TLSExtension",
	Fields: []*field.Descriptor{
		{Name: "type", Kind: field.EnumUInt, Width: 2, EnumMap: ExtensionTypeNames, Default: uint64(ExtServerName)},
		{Name: "length", Kind: field.UInt, Width: 2, LengthOf: "data"},
		{Name: "data", Kind: field.LenPrefixedBytes, LengthFrom: "length"},
	},
}

// Extension is one TLSClientHello/TLSServerHello extension entry. Data
// always carries the wire-true bytes; Specific, when non-nil, is a
// type-specific second look at those same bytes (TLSServerNameIndication,
// TLSExtMaxFragmentLength, TLSExtCertificateURL). Mutating Specific and
// rebuilding re-serializes it back into Data.
type Extension struct {
	*packet.Instance
	Specific *packet.Instance
}

// NewExtension returns an empty extension envelope.
func NewExtension() *Extension {
	return &Extension{Instance: packet.NewInstance(extensionSchema)}
}

// Dissect parses the envelope, then, if the extension's type has a
// registered specific schema, re-parses the envelope's data against it.
// A specific-schema parse failure is not propagated -- the envelope
// itself already dissected cleanly, so the extension is kept as opaque
// data rather than discarded.
func (e *Extension) Dissect(data []byte) (int, error) {
	n, err := e.Instance.Dissect(data)
	if err != nil {
		return n, err
	}
	raw, _ := e.Instance.Get("data")
	buf, _ := raw.([]byte)

	if child, ok := binder.Lookup(extensionSchema, e.Instance); ok {
		childSchema := child.(*packet.Schema)
		childInst := packet.NewInstance(childSchema)
		if _, derr := childInst.Dissect(buf); derr == nil {
			e.Specific = childInst
		}
	}
	return n, nil
}

// Build serializes Specific back into the wire-true data field, if a
// specific view is present and has been touched since dissection, then
// serializes the envelope.
func (e *Extension) Build() ([]byte, error) {
	if e.Specific != nil {
		b, err := e.Specific.Build()
		if err != nil {
			return nil, err
		}
		e.Instance.Set("data", b)
	}
	return e.Instance.Build()
}

// serverNameSchema: one entry of a server_name_list (name_type,
// name_length, name).
var serverNameSchema = &packet.Schema{
	Name: "TLSServerName",
	Fields: []*field.Descriptor{
		{Name: "name_type", Kind: field.UInt, Width: 1, Default: uint64(0)},
		{Name: "name_length", Kind: field.UInt, Width: 2, LengthOf: "name"},
		{Name: "name", Kind: field.LenPrefixedBytes, LengthFrom: "name_length"},
	},
}

// ServerNameIndicationSchema is the server_name extension's data, bound
// to extension type 0x0000.
var ServerNameIndicationSchema = &packet.Schema{
	Name: "TLSServerNameIndication",
	Fields: []*field.Descriptor{
		{Name: "server_name_list_length", Kind: field.UInt, Width: 2, LengthOf: "server_names"},
		{Name: "server_names", Kind: field.PacketList, LengthFrom: "server_name_list_length", NewElement: func() field.Dissector { return packet.NewInstance(serverNameSchema) }},
	},
}

// MaxFragmentLengthSchema is the max_fragment_length extension's data,
// bound to extension type 0x0001: a single enumerated octet.
var MaxFragmentLengthSchema = &packet.Schema{
	Name: "TLSExtMaxFragmentLength",
	Fields: []*field.Descriptor{
		{Name: "fragment_length", Kind: field.EnumByte, Width: 1, EnumMap: MaxFragmentLengthNames, Default: uint64(0x01)},
	},
}

// urlAndOptionalHashSchema: one entry of a client_certificate_url's
// url_and_hash_list. sha1_hash is gated by hash_present, not always
// present -- a boolean octet, not padding: 20 octets of SHA-1 digest
// follow when it is nonzero, none when it is zero.
var urlAndOptionalHashSchema = &packet.Schema{
	Name: "TLSURLAndOptionalHash",
	Fields: []*field.Descriptor{
		{Name: "url_length", Kind: field.UInt, Width: 2, LengthOf: "url"},
		{Name: "url", Kind: field.LenPrefixedBytes, LengthFrom: "url_length"},
		{Name: "hash_present", Kind: field.UInt, Width: 1, Default: uint64(0)},
		{Name: "sha1_hash", Kind: field.RawBytes, LengthFrom: "hash_present", LengthFromAdjust: func(raw uint64) int {
			if raw != 0 {
				return 20
			}
			return 0
		}},
	},
}

// CertificateURLSchema is the client_certificate_url extension's data.
//
// Preserved exactly as the module this codec descends from binds it:
// against extension type 0x0002, which RFC 6066 and this codec's own
// ExtClientCertificateURL constant both assign to client_certificate_url
// -- a name that reads as "send me a URL", the inverse of what this
// payload (a URL list the client already sent) represents. The mismatch
// is the original's, not a transcription error here; see the open
// question recorded for it.
var CertificateURLSchema = &packet.Schema{
	Name: "TLSExtCertificateURL",
	Fields: []*field.Descriptor{
		{Name: "cert_chain_type", Kind: field.UInt, Width: 1, Default: uint64(0)},
		{Name: "url_and_hash_list_length", Kind: field.UInt, Width: 2, LengthOf: "url_and_hash_list"},
		{Name: "url_and_hash_list", Kind: field.PacketList, LengthFrom: "url_and_hash_list_length", NewElement: func() field.Dissector { return packet.NewInstance(urlAndOptionalHashSchema) }},
	},
}

func init() {
	binder.Register(extensionSchema, binder.Discriminator{"type": uint64(ExtServerName)}, ServerNameIndicationSchema)
	binder.Register(extensionSchema, binder.Discriminator{"type": uint64(ExtMaxFragmentLength)}, MaxFragmentLengthSchema)
	binder.Register(extensionSchema, binder.Discriminator{"type": uint64(ExtClientCertificateURL)}, CertificateURLSchema)
}
