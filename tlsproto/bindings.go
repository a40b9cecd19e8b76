package tlsproto

import "github.com/kcodec/tlscodec/binder"

// init registers every TLS layer-binding rule this package owns. Rules
// are process-wide and append-only; registration order only matters
// where more than one rule could match the same parent (it does not,
// here -- every discriminator below is mutually exclusive).
func init() {
	binder.Register(RecordSchema, binder.Discriminator{"content_type": uint64(ContentTypeHandshake)}, HandshakeSchema)
	binder.Register(RecordSchema, binder.Discriminator{"content_type": uint64(ContentTypeAlert)}, AlertSchema)
	binder.Register(RecordSchema, binder.Discriminator{"content_type": uint64(ContentTypeChangeCipherSpec)}, ChangeCipherSpecSchema)
	binder.Register(RecordSchema, binder.Discriminator{"content_type": uint64(ContentTypeApplicationData)}, ApplicationDataSchema)
	binder.Register(RecordSchema, binder.Discriminator{"content_type": uint64(ContentTypeHeartbeat)}, HeartBeatSchema)

	binder.Register(HandshakeSchema, binder.Discriminator{"msg_type": uint64(HandshakeClientHello)}, ClientHelloSchema)
	binder.Register(HandshakeSchema, binder.Discriminator{"msg_type": uint64(HandshakeServerHello)}, ServerHelloSchema)
	binder.Register(HandshakeSchema, binder.Discriminator{"msg_type": uint64(HandshakeCertificate)}, CertificateListSchema)
	binder.Register(HandshakeSchema, binder.Discriminator{"msg_type": uint64(HandshakeServerKeyExchange)}, ServerKeyExchangeSchema)
}
