package dtlsproto

import (
	"github.com/kcodec/tlscodec/binder"
	"github.com/kcodec/tlscodec/tlsproto"
)

func init() {
	binder.Register(RecordSchema, binder.Discriminator{"content_type": uint64(tlsproto.ContentTypeHandshake)}, HandshakeSchema)
	binder.Register(RecordSchema, binder.Discriminator{"content_type": uint64(tlsproto.ContentTypeAlert)}, tlsproto.AlertSchema)
	binder.Register(RecordSchema, binder.Discriminator{"content_type": uint64(tlsproto.ContentTypeChangeCipherSpec)}, tlsproto.ChangeCipherSpecSchema)
	binder.Register(RecordSchema, binder.Discriminator{"content_type": uint64(tlsproto.ContentTypeApplicationData)}, tlsproto.ApplicationDataSchema)
	binder.Register(RecordSchema, binder.Discriminator{"content_type": uint64(tlsproto.ContentTypeHeartbeat)}, tlsproto.HeartBeatSchema)

	binder.Register(HandshakeSchema, binder.Discriminator{"msg_type": uint64(tlsproto.HandshakeClientHello)}, ClientHelloSchema)
	binder.Register(HandshakeSchema, binder.Discriminator{"msg_type": uint64(tlsproto.HandshakeHelloVerifyRequest)}, HelloVerifyRequestSchema)
	binder.Register(HandshakeSchema, binder.Discriminator{"msg_type": uint64(tlsproto.HandshakeCertificate)}, tlsproto.CertificateListSchema)
}
