package tlsproto

import (
	"github.com/kcodec/tlscodec/field"
	"github.com/kcodec/tlscodec/packet"
)

// ApplicationDataSchema is ciphertext (or, for an unencrypted test
// fixture, plaintext) carried by content_type=application_data. This
// codec never terminates a TLS session, so it has no key material to
// decrypt it with -- the data field is opaque by construction, not by
// omission. Bound to RecordSchema under content_type=application_data.
var ApplicationDataSchema = &packet.Schema{
	Name: "TLSApplicationData",
	Fields: []*field.Descriptor{
		{Name: "data", Kind: field.RawBytes},
	},
}

func NewApplicationData() *packet.Instance { return packet.NewInstance(ApplicationDataSchema) }
