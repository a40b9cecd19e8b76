package dtlsproto

import (
	"bytes"
	"testing"

	"github.com/kcodec/tlscodec/clock"
	"github.com/kcodec/tlscodec/tlsproto"
)

func TestClientHelloAutoDetectWithCookie(t *testing.T) {
	fixed := clock.Fixed{Timestamp: 0x11223344, Fill: 0x22}
	orig := clock.Default
	clock.Default = fixed
	defer func() { clock.Default = orig }()

	hello := NewClientHello()
	hello.Set("session_id", []byte{})
	hello.Set("cookie", []byte{0xde, 0xad, 0xbe, 0xef})
	hello.Set("cipher_suites", []uint64{tlsproto.CipherRSAWithAES128CBCSHA})
	hello.Set("compression_methods", []uint64{tlsproto.CompressionNull})

	hs := NewHandshake()
	hs.Set("msg_type", uint64(tlsproto.HandshakeClientHello))
	hs.SetPayload(hello)

	rec := NewRecord()
	rec.Set("content_type", uint64(tlsproto.ContentTypeHandshake))
	rec.Set("epoch", uint64(0))
	rec.Set("sequence_number", uint64(1))
	rec.SetPayload(hs)

	wire, err := rec.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if wire[0] != tlsproto.ContentTypeHandshake {
		t.Fatalf("content_type = %#x, want handshake", wire[0])
	}

	parsed := NewRecord()
	if _, err := parsed.Dissect(wire); err != nil {
		t.Fatalf("Dissect: %v", err)
	}
	parsedHandshake := parsed.Payload()
	if parsedHandshake == nil || parsedHandshake.Schema() != HandshakeSchema {
		t.Fatal("record did not auto-detect as a DTLS handshake")
	}
	parsedHello := parsedHandshake.Payload()
	if parsedHello == nil || parsedHello.Schema() != ClientHelloSchema {
		t.Fatal("handshake did not auto-detect its body as a DTLS ClientHello")
	}
	cookie, _ := parsedHello.Get("cookie")
	if !bytes.Equal(cookie.([]byte), []byte{0xde, 0xad, 0xbe, 0xef}) {
		t.Errorf("cookie = % x, want de ad be ef", cookie)
	}
	seq, _ := parsed.Get("sequence_number")
	if seq.(uint64) != 1 {
		t.Errorf("sequence_number = %v, want 1", seq)
	}
}
