package tlsproto

import (
	"github.com/kcodec/tlscodec/field"
	"github.com/kcodec/tlscodec/packet"
)

// CertificateSchema is one DER-encoded certificate: a three-octet length
// followed by that many octets of opaque ASN.1. A malformed entry simply
// fails its own Dissect; CertificateListSchema's PacketList field stops
// at the first such failure and keeps every entry parsed before it,
// rather than discarding the whole list.
var CertificateSchema = &packet.Schema{
	Name: "TLSCertificate",
	Fields: []*field.Descriptor{
		{Name: "length", Kind: field.UInt, Width: 3, LengthOf: "data"},
		{Name: "data", Kind: field.RawBytes, LengthFrom: "length"},
	},
}

// CertificateListSchema is the certificate handshake message's body: a
// three-octet total length (of the serialized certificate entries, not
// their count) followed by a run of CertificateSchema entries. Bound to
// HandshakeSchema under msg_type=certificate.
var CertificateListSchema = &packet.Schema{
	Name: "TLSCertificateList",
	Fields: []*field.Descriptor{
		{Name: "certificates_length", Kind: field.UInt, Width: 3, LengthOf: "certificates"},
		{Name: "certificates", Kind: field.PacketList, LengthFrom: "certificates_length", NewElement: func() field.Dissector { return packet.NewInstance(CertificateSchema) }},
	},
}

func NewCertificateList() *packet.Instance { return packet.NewInstance(CertificateListSchema) }
