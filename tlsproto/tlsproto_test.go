package tlsproto

import (
	"bytes"
	"testing"

	"github.com/kcodec/tlscodec/clock"
	"github.com/kcodec/tlscodec/field"
	"github.com/kcodec/tlscodec/packet"
)

func TestAlertRoundTrip(t *testing.T) {
	rec := NewRecord()
	rec.Set("content_type", uint64(ContentTypeAlert))
	alert := NewAlert()
	alert.Set("level", uint64(AlertLevelFatal))
	alert.Set("description", uint64(40)) // handshake_failure
	rec.SetPayload(alert)

	wire, err := rec.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	want := []byte{ContentTypeAlert, 0x03, 0x01, 0x00, 0x02, AlertLevelFatal, 40}
	if !bytes.Equal(wire, want) {
		t.Fatalf("built % x, want % x", wire, want)
	}

	parsed := NewRecord()
	if _, err := parsed.Dissect(wire); err != nil {
		t.Fatalf("Dissect: %v", err)
	}
	ct, _ := parsed.Get("content_type")
	if ct.(uint64) != ContentTypeAlert {
		t.Errorf("content_type = %#x, want %#x", ct, ContentTypeAlert)
	}
	payload := parsed.Payload()
	if payload == nil || payload.Schema() != AlertSchema {
		t.Fatal("record payload did not dissect as TLSAlert")
	}
	level, _ := payload.Get("level")
	if level.(uint64) != AlertLevelFatal {
		t.Errorf("level = %v, want fatal", level)
	}
}

func TestChangeCipherSpecMinimal(t *testing.T) {
	rec := NewRecord()
	rec.Set("content_type", uint64(ContentTypeChangeCipherSpec))
	rec.SetPayload(NewChangeCipherSpec())

	wire, err := rec.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(wire) != 6 {
		t.Fatalf("built %d octets, want 6 (5-octet header + 1-octet body)", len(wire))
	}

	parsed := NewRecord()
	if _, err := parsed.Dissect(wire); err != nil {
		t.Fatalf("Dissect: %v", err)
	}
	msg, ok := parsed.Payload().Get("message")
	if !ok || msg.(uint64) != 1 {
		t.Errorf("message = %v, %v; want 1, true", msg, ok)
	}
}

func TestClientHelloWithServerNameExtension(t *testing.T) {
	fixed := clock.Fixed{Timestamp: 0x5a5a5a5a, Fill: 0x11}
	orig := clock.Default
	clock.Default = fixed
	defer func() { clock.Default = orig }()

	entry := packet.NewInstance(serverNameSchema)
	entry.Set("name", []byte("example.com"))

	names := packet.NewInstance(ServerNameIndicationSchema)
	names.Set("server_names", []field.Dissector{entry})

	sni := NewExtension()
	sni.Set("type", uint64(ExtServerName))
	sni.Specific = names

	hello := NewClientHello()
	hello.Set("session_id", []byte{})
	hello.Set("cipher_suites", []uint64{CipherRSAWithAES128CBCSHA})
	hello.Set("compression_methods", []uint64{CompressionNull})
	hello.Set("extensions", []field.Dissector{sni})

	hs := NewHandshake()
	hs.Set("msg_type", uint64(HandshakeClientHello))
	hs.SetPayload(hello)

	rec := NewRecord()
	rec.Set("content_type", uint64(ContentTypeHandshake))
	rec.SetPayload(hs)

	wire, err := rec.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	parsed := NewRecord()
	if _, err := parsed.Dissect(wire); err != nil {
		t.Fatalf("Dissect: %v", err)
	}
	clientHello := parsed.Payload().Payload()
	if clientHello == nil || clientHello.Schema() != ClientHelloSchema {
		t.Fatal("did not dissect down to TLSClientHello")
	}
	extsAny, _ := clientHello.Get("extensions")
	exts, ok := extsAny.([]field.Dissector)
	if !ok || len(exts) != 1 {
		t.Fatalf("ClientHello dissected with %d extensions (ok=%v), want 1", len(exts), ok)
	}
	ext, ok := exts[0].(*Extension)
	if !ok {
		t.Fatalf("extension element has type %T, want *Extension", exts[0])
	}
	if ext.Specific == nil || ext.Specific.Schema() != ServerNameIndicationSchema {
		t.Fatal("extension did not resolve to TLSServerNameIndication")
	}
	serverNamesAny, _ := ext.Specific.Get("server_names")
	serverNames := serverNamesAny.([]field.Dissector)
	if len(serverNames) != 1 {
		t.Fatalf("server_names has %d entries, want 1", len(serverNames))
	}
	name, _ := serverNames[0].(*packet.Instance).Get("name")
	if !bytes.Equal(name.([]byte), []byte("example.com")) {
		t.Errorf("server name = %q, want %q", name, "example.com")
	}

	gmt, _ := clientHello.Get("gmt_unix_time")
	if gmt.(uint64) != uint64(fixed.Timestamp) {
		t.Errorf("gmt_unix_time = %#x, want %#x (fixed clock)", gmt, fixed.Timestamp)
	}
}

func TestHeartbeatPadsToMinimum(t *testing.T) {
	hb := NewHeartBeat()
	hb.Set("type", uint64(HeartbeatRequest))
	hb.Set("data", []byte("hi"))

	wire, err := hb.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	// type(1) + payload_length(2) + data(2) + padding(16 minimum)
	if len(wire) != 1+2+2+HeartBeatMinPadding {
		t.Fatalf("built %d octets, want %d", len(wire), 1+2+2+HeartBeatMinPadding)
	}
	if wire[1] != 0x00 || wire[2] != 0x02 {
		t.Errorf("payload_length = % x, want 00 02 (len(\"hi\"))", wire[1:3])
	}
	for _, b := range wire[5:] {
		if b != 0x50 {
			t.Errorf("padding octet = %#x, want 0x50", b)
		}
	}

	parsed := NewHeartBeat()
	if _, err := parsed.Dissect(wire); err != nil {
		t.Fatalf("Dissect: %v", err)
	}
	length, _ := parsed.Get("payload_length")
	if length.(uint64) != 2 {
		t.Errorf("dissected payload_length = %v, want 2", length)
	}
	data, _ := parsed.Get("data")
	if !bytes.Equal(data.([]byte), []byte("hi")) {
		t.Errorf("dissected data = %q, want %q", data, "hi")
	}
}

func TestServerKeyExchangeCarriesDHParams(t *testing.T) {
	params := NewDHServerParams()
	params.Set("p", []byte{0x01, 0x02, 0x03, 0x04})
	params.Set("g", []byte{0x02})
	params.Set("public_key", []byte{0xaa, 0xbb, 0xcc})
	params.Set("signature", []byte{0xde, 0xad, 0xbe, 0xef})

	paramsWire, err := params.Build()
	if err != nil {
		t.Fatalf("DHServerParams Build: %v", err)
	}

	ske := NewServerKeyExchange()
	ske.Set("data", paramsWire)
	wire, err := ske.Build()
	if err != nil {
		t.Fatalf("ServerKeyExchange Build: %v", err)
	}
	// length(3, u24) + data
	wantLen := 3 + len(paramsWire)
	if len(wire) != wantLen {
		t.Fatalf("built %d octets, want %d", len(wire), wantLen)
	}
	if wire[0] != 0x00 || wire[1] != 0x00 || wire[2] != byte(len(paramsWire)) {
		t.Errorf("length = % x, want a u24 encoding of %d", wire[0:3], len(paramsWire))
	}

	parsed := NewServerKeyExchange()
	if _, err := parsed.Dissect(wire); err != nil {
		t.Fatalf("ServerKeyExchange Dissect: %v", err)
	}
	if parsed.Payload() != nil {
		t.Fatal("ServerKeyExchange dissected a payload automatically; it must not bind onward to DHServerParams on its own")
	}
	data, _ := parsed.Get("data")
	if !bytes.Equal(data.([]byte), paramsWire) {
		t.Fatalf("dissected data = % x, want % x", data, paramsWire)
	}

	// The caller, knowing from cipher-suite context that this is a DH
	// exchange, dissects the opaque data explicitly.
	reparsed := NewDHServerParams()
	if _, err := reparsed.Dissect(data.([]byte)); err != nil {
		t.Fatalf("explicit DHServerParams Dissect: %v", err)
	}
	p, _ := reparsed.Get("p")
	g, _ := reparsed.Get("g")
	pub, _ := reparsed.Get("public_key")
	sig, _ := reparsed.Get("signature")
	if !bytes.Equal(p.([]byte), []byte{0x01, 0x02, 0x03, 0x04}) {
		t.Errorf("p = % x, want 01 02 03 04", p)
	}
	if !bytes.Equal(g.([]byte), []byte{0x02}) {
		t.Errorf("g = % x, want 02", g)
	}
	if !bytes.Equal(pub.([]byte), []byte{0xaa, 0xbb, 0xcc}) {
		t.Errorf("public_key = % x, want aa bb cc", pub)
	}
	if !bytes.Equal(sig.([]byte), []byte{0xde, 0xad, 0xbe, 0xef}) {
		t.Errorf("signature = % x, want de ad be ef", sig)
	}
}

func TestCertificateURLHashPresentGatesHashLength(t *testing.T) {
	entryWithoutHash := packet.NewInstance(urlAndOptionalHashSchema)
	entryWithoutHash.Set("url", []byte("https://example.com/cert"))
	entryWithoutHash.Set("hash_present", uint64(0))
	entryWithoutHash.Set("sha1_hash", []byte{})

	entryWithHash := packet.NewInstance(urlAndOptionalHashSchema)
	entryWithHash.Set("url", []byte("https://example.com/other"))
	entryWithHash.Set("hash_present", uint64(1))
	hash := bytes.Repeat([]byte{0x42}, 20)
	entryWithHash.Set("sha1_hash", hash)

	list := packet.NewInstance(CertificateURLSchema)
	list.Set("cert_chain_type", uint64(0))
	list.Set("url_and_hash_list", []field.Dissector{entryWithoutHash, entryWithHash})

	wire, err := list.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	parsed := packet.NewInstance(CertificateURLSchema)
	if _, err := parsed.Dissect(wire); err != nil {
		t.Fatalf("Dissect: %v", err)
	}
	entriesAny, _ := parsed.Get("url_and_hash_list")
	entries, ok := entriesAny.([]field.Dissector)
	if !ok || len(entries) != 2 {
		t.Fatalf("dissected %d entries (ok=%v), want 2", len(entries), ok)
	}

	first := entries[0].(*packet.Instance)
	firstURL, _ := first.Get("url")
	firstHash, _ := first.Get("sha1_hash")
	if !bytes.Equal(firstURL.([]byte), []byte("https://example.com/cert")) {
		t.Errorf("first url = %q, want %q", firstURL, "https://example.com/cert")
	}
	if n := len(firstHash.([]byte)); n != 0 {
		t.Errorf("first sha1_hash has %d octets, want 0 (hash_present=0)", n)
	}

	second := entries[1].(*packet.Instance)
	secondURL, _ := second.Get("url")
	secondHash, _ := second.Get("sha1_hash")
	if !bytes.Equal(secondURL.([]byte), []byte("https://example.com/other")) {
		t.Errorf("second url = %q, want %q", secondURL, "https://example.com/other")
	}
	if !bytes.Equal(secondHash.([]byte), hash) {
		t.Errorf("second sha1_hash = % x, want % x (hash_present=1)", secondHash, hash)
	}
}

func TestTruncatedHandshakeLength(t *testing.T) {
	hs := NewHandshake()
	hs.Set("msg_type", uint64(HandshakeServerHelloDone))
	hs.SetPayload(nil)
	wire, err := hs.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !bytes.Equal(wire, []byte{HandshakeServerHelloDone, 0x00, 0x00, 0x00}) {
		t.Fatalf("built % x, want a 3-octet zero length", wire)
	}

	// One octet short of the 3-octet length field.
	short := []byte{HandshakeServerHelloDone, 0x00, 0x00}
	parsed := NewHandshake()
	n, err := parsed.Dissect(short)
	if err != nil {
		t.Fatalf("Dissect on truncated length field returned an error instead of absorbing it: %v", err)
	}
	if n != 1 {
		t.Errorf("consumed %d octets of a truncated length field, want 1 (just msg_type)", n)
	}
}
