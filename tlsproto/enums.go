// Package tlsproto is the TLS half of the (D)TLS schema (component 5):
// concrete per-message-type Schemas and the enum tables RFC 5246
// assigns, expressed as schema data for the packet engine to consume.
//
// Texture and the exact numeric tables below are grounded on
// _examples/original_source/src/scapy/layers/ssl_tls.py, the module this
// codec's spec was distilled from.
package tlsproto

// TLS_CONTENT_TYPES.
const (
	ContentTypeChangeCipherSpec = 0x14
	ContentTypeAlert            = 0x15
	ContentTypeHandshake        = 0x16
	ContentTypeApplicationData  = 0x17
	ContentTypeHeartbeat        = 0x18
)

var ContentTypeNames = map[uint64]string{
	ContentTypeChangeCipherSpec: "change_cipher_spec",
	ContentTypeAlert:            "alert",
	ContentTypeHandshake:        "handshake",
	ContentTypeApplicationData:  "application_data",
	ContentTypeHeartbeat:        "heartbeat",
}

// TLS_VERSIONS (the subset the codec cares about; unknown values still
// decode, they're just absent from this presentation table).
const (
	VersionSSL30 = 0x0300
	VersionTLS10 = 0x0301
	VersionTLS11 = 0x0302
	VersionTLS12 = 0x0303
	VersionDTLS10 = 0xfeff
	VersionDTLS12 = 0xfefd
)

var VersionNames = map[uint64]string{
	VersionSSL30:  "SSL_3_0",
	VersionTLS10:  "TLS_1_0",
	VersionTLS11:  "TLS_1_1",
	VersionTLS12:  "TLS_1_2",
	VersionDTLS10: "DTLS_1_0",
	VersionDTLS12: "DTLS_1_2",
}

// TLS_HANDSHAKE_TYPES.
const (
	HandshakeHelloRequest       = 0x00
	HandshakeClientHello        = 0x01
	HandshakeServerHello        = 0x02
	HandshakeCertificate        = 0x0b
	HandshakeServerKeyExchange  = 0x0c
	HandshakeCertificateRequest = 0x0d
	HandshakeServerHelloDone    = 0x0e
	HandshakeCertificateVerify  = 0x0f
	HandshakeClientKeyExchange  = 0x10
	HandshakeFinished           = 0x14
	HandshakeHelloVerifyRequest = 0x03
	HandshakeNewSessionTicket   = 0x04
)

var HandshakeTypeNames = map[uint64]string{
	HandshakeHelloRequest:       "hello_request",
	HandshakeClientHello:        "client_hello",
	HandshakeServerHello:        "server_hello",
	HandshakeCertificate:        "certificate",
	HandshakeServerKeyExchange:  "server_key_exchange",
	HandshakeCertificateRequest: "certificate_request",
	HandshakeServerHelloDone:    "server_hello_done",
	HandshakeCertificateVerify:  "certificate_verify",
	HandshakeClientKeyExchange:  "client_key_exchange",
	HandshakeFinished:           "finished",
	HandshakeHelloVerifyRequest: "hello_verify_request",
	HandshakeNewSessionTicket:   "new_session_ticket",
}

// TLS_EXTENSION_TYPES.
const (
	ExtServerName           = 0x0000
	ExtMaxFragmentLength    = 0x0001
	ExtClientCertificateURL = 0x0002
	ExtTrustedCAKeys        = 0x0003
	ExtTruncatedHMAC        = 0x0004
	ExtStatusRequest        = 0x0005
	ExtEllipticCurves       = 0x000a
	ExtECPointFormats       = 0x000b
	ExtSignatureAlgorithms  = 0x000d
	ExtHeartbeat            = 0x000f
	ExtSessionTicketTLS     = 0x0023
	ExtNextProtocolNeg      = 0x3374
	ExtRenegotiationInfo    = 0xff01
)

var ExtensionTypeNames = map[uint64]string{
	ExtServerName:           "server_name",
	ExtMaxFragmentLength:    "max_fragment_length",
	ExtClientCertificateURL: "client_certificate_url",
	ExtTrustedCAKeys:        "trusted_ca_keys",
	ExtTruncatedHMAC:        "truncated_hmac",
	ExtStatusRequest:        "status_request",
	ExtEllipticCurves:       "elliptic_curves",
	ExtECPointFormats:       "ec_point_formats",
	ExtSignatureAlgorithms:  "signature_algorithms",
	ExtHeartbeat:            "heartbeat",
	ExtSessionTicketTLS:     "session_ticket_tls",
	ExtNextProtocolNeg:      "next_protocol_negotiation",
	ExtRenegotiationInfo:    "renegotiation_info",
}

// TLS_ALERT_LEVELS.
const (
	AlertLevelWarning = 0x01
	AlertLevelFatal   = 0x02
)

var AlertLevelNames = map[uint64]string{
	AlertLevelWarning: "warning",
	AlertLevelFatal:   "fatal",
}

// TLS_ALERT_DESCRIPTIONS.
var AlertDescriptionNames = map[uint64]string{
	0:   "close_notify",
	10:  "unexpected_message",
	20:  "bad_record_mac",
	21:  "decryption_failed_RESERVED",
	22:  "record_overflow",
	30:  "decompression_failure",
	40:  "handshake_failure",
	41:  "no_certificate_RESERVED",
	42:  "bad_certificate",
	43:  "unsupported_certificate",
	44:  "certificate_revoked",
	45:  "certificate_expired",
	46:  "certificate_unknown",
	47:  "illegal_parameter",
	48:  "unknown_ca",
	49:  "access_denied",
	50:  "decode_error",
	51:  "decrypt_error",
	60:  "export_restriction_RESERVED",
	70:  "protocol_version",
	71:  "insufficient_security",
	80:  "internal_error",
	86:  "inappropriate_fallback",
	90:  "user_canceled",
	100: "no_renegotiation",
	110: "unsupported_extension",
	111: "certificate_unobtainable",
	112: "unrecognized_name",
	113: "bad_certificate_status_response",
	114: "bad_certificate_hash_value",
}

// TLS_EXT_MAX_FRAGMENT_LENGTH_ENUM.
var MaxFragmentLengthValues = map[uint64]int{
	0x01: 512,
	0x02: 1024,
	0x03: 2048,
	0x04: 4096,
}

// MaxFragmentLengthNames is MaxFragmentLengthValues presented as the
// enum names a TLSExtMaxFragmentLength field prints.
var MaxFragmentLengthNames = map[uint64]string{
	0x01: "2^9",
	0x02: "2^10",
	0x03: "2^11",
	0x04: "2^12",
}

// TLS_CIPHER_SUITES, as TLSCipherSuite in the original. Kept to the
// suites the original module actually names.
const (
	CipherNullWithNullNull                 = 0x0000
	CipherRSAWithNullMD5                   = 0x0001
	CipherRSAWithNullSHA1                  = 0x0002
	CipherRSAExportWithRC440MD5            = 0x0003
	CipherRSAWithRC4128MD5                 = 0x0004
	CipherRSAWithRC4128SHA                 = 0x0005
	CipherRSAExportWithRC2CBC40MD5         = 0x0006
	CipherRSAWithIDEACBCSHA                = 0x0007
	CipherRSAExportWithDES40CBCSHA         = 0x0008
	CipherRSAWithDESCBCSHA                 = 0x0009
	CipherRSAWithDESEDE3CBCSHA             = 0x000a
	CipherDHEDSSExportWithDES40CBCSHA      = 0x0011
	CipherDHEDSSWithDESCBCSHA              = 0x0012
	CipherDHEDSSWithDESEDE3CBCSHA          = 0x0013
	CipherDHERSAExportWithDES40CBCSHA      = 0x0014
	CipherDHERSAWithDESCBCSHA              = 0x0015
	CipherDHERSAWithDESEDE3CBCSHA          = 0x0016
	CipherRSAExport1024WithRC456MD5        = 0x0060
	CipherRSAExport1024WithRC456SHA        = 0x0064
	CipherDHEDSSExport1024WithRC456SHA     = 0x0065
	CipherRSAExport1024WithDESCBCSHA       = 0x0062
	CipherDHEDSSExport1024WithDESCBCSHA    = 0x0063
	CipherDHEDSSWithRC4128SHA              = 0x0066
	CipherRSAWithAES128CBCSHA              = 0x002f
	CipherDHEDSSWithAES128CBCSHA           = 0x0032
	CipherDHERSAWithAES128CBCSHA           = 0x0033
	CipherRSAWithAES256CBCSHA              = 0x0035
	CipherDHEDSSWithAES256CBCSHA           = 0x0038
	CipherDHERSAWithAES256CBCSHA           = 0x0039
	CipherRSAWithNullSHA256                = 0x003b
	CipherRSAWithCamellia256CBCSHA         = 0x0084
	CipherDHEDSSWithCamellia256CBCSHA      = 0x0087
	CipherDHERSAWithCamellia256CBCSHA      = 0x0088
	CipherECDHECDSAWithAES256CBCSHA        = 0xc005
	CipherECDHEECDSAWithAES256CBCSHA       = 0xc00a
	CipherECDHRSAWithAES256CBCSHA          = 0xc00f
	CipherECDHERSAWithAES256CBCSHA         = 0xc014
	CipherSRPSHADSSWithAES256CBCSHA        = 0xc021
	CipherSRPSHARSAWithAES256CBCSHA        = 0xc022
	CipherTLSFallbackSCSV                  = 0x5600
)

var CipherSuiteNames = map[uint64]string{
	CipherNullWithNullNull:              "NULL_WITH_NULL_NULL",
	CipherRSAWithNullMD5:                "RSA_WITH_NULL_MD5",
	CipherRSAWithNullSHA1:               "RSA_WITH_NULL_SHA1",
	CipherRSAExportWithRC440MD5:         "RSA_EXPORT_WITH_RC4_40_MD5",
	CipherRSAWithRC4128MD5:              "RSA_WITH_RC4_128_MD5",
	CipherRSAWithRC4128SHA:              "RSA_WITH_RC4_128_SHA",
	CipherRSAExportWithRC2CBC40MD5:      "RSA_EXPORT_WITH_RC2_CBC_40_MD5",
	CipherRSAWithIDEACBCSHA:             "RSA_WITH_IDEA_CBC_SHA",
	CipherRSAExportWithDES40CBCSHA:      "RSA_EXPORT_WITH_DES40_CBC_SHA",
	CipherRSAWithDESCBCSHA:              "RSA_WITH_DES_CBC_SHA",
	CipherRSAWithDESEDE3CBCSHA:          "RSA_WITH_3DES_EDE_CBC_SHA",
	CipherDHEDSSExportWithDES40CBCSHA:   "DHE_DSS_EXPORT_WITH_DES40_CBC_SHA",
	CipherDHEDSSWithDESCBCSHA:           "DHE_DSS_WITH_DES_CBC_SHA",
	CipherDHEDSSWithDESEDE3CBCSHA:       "DHE_DSS_WITH_3DES_EDE_CBC_SHA",
	CipherDHERSAExportWithDES40CBCSHA:   "DHE_RSA_EXPORT_WITH_DES40_CBC_SHA",
	CipherDHERSAWithDESCBCSHA:           "DHE_RSA_WITH_DES_CBC_SHA",
	CipherDHERSAWithDESEDE3CBCSHA:       "DHE_RSA_WITH_3DES_EDE_CBC_SHA",
	CipherRSAExport1024WithRC456MD5:     "RSA_EXPORT1024_WITH_RC4_56_MD5",
	CipherRSAExport1024WithRC456SHA:     "RSA_EXPORT1024_WITH_RC4_56_SHA",
	CipherDHEDSSExport1024WithRC456SHA:  "DHE_DSS_EXPORT1024_WITH_RC4_56_SHA",
	CipherRSAExport1024WithDESCBCSHA:    "RSA_EXPORT1024_WITH_DES_CBC_SHA",
	CipherDHEDSSExport1024WithDESCBCSHA: "DHE_DSS_EXPORT1024_WITH_DES_CBC_SHA",
	CipherDHEDSSWithRC4128SHA:           "DHE_DSS_WITH_RC4_128_SHA",
	CipherRSAWithAES128CBCSHA:           "RSA_WITH_AES_128_CBC_SHA",
	CipherDHEDSSWithAES128CBCSHA:        "DHE_DSS_WITH_AES_128_CBC_SHA",
	CipherDHERSAWithAES128CBCSHA:        "DHE_RSA_WITH_AES_128_CBC_SHA",
	CipherRSAWithAES256CBCSHA:           "RSA_WITH_AES_256_CBC_SHA",
	CipherDHEDSSWithAES256CBCSHA:        "DHE_DSS_WITH_AES_256_CBC_SHA",
	CipherDHERSAWithAES256CBCSHA:        "DHE_RSA_WITH_AES_256_CBC_SHA",
	CipherRSAWithNullSHA256:             "RSA_WITH_NULL_SHA256",
	CipherRSAWithCamellia256CBCSHA:      "RSA_WITH_CAMELLIA_256_CBC_SHA",
	CipherDHEDSSWithCamellia256CBCSHA:   "DHE_DSS_WITH_CAMELLIA_256_CBC_SHA",
	CipherDHERSAWithCamellia256CBCSHA:   "DHE_RSA_WITH_CAMELLIA_256_CBC_SHA",
	CipherECDHECDSAWithAES256CBCSHA:     "ECDH_ECDSA_WITH_AES_256_CBC_SHA",
	CipherECDHEECDSAWithAES256CBCSHA:    "ECDHE_ECDSA_WITH_AES_256_CBC_SHA",
	CipherECDHRSAWithAES256CBCSHA:       "ECDH_RSA_WITH_AES_256_CBC_SHA",
	CipherECDHERSAWithAES256CBCSHA:      "ECDHE_RSA_WITH_AES_256_CBC_SHA",
	CipherSRPSHADSSWithAES256CBCSHA:     "SRP_SHA_DSS_WITH_AES_256_CBC_SHA",
	CipherSRPSHARSAWithAES256CBCSHA:     "SRP_SHA_RSA_WITH_AES_256_CBC_SHA",
	CipherTLSFallbackSCSV:               "TLS_FALLBACK_SCSV",
}

// TLS_COMPRESSION_METHODS.
const (
	CompressionNull    = 0x00
	CompressionDeflate = 0x01
)

var CompressionMethodNames = map[uint64]string{
	CompressionNull:    "NULL",
	CompressionDeflate: "DEFLATE",
}
