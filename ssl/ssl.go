// Package ssl implements the SSL compound (component 5's outermost
// layer): a greedy, order-preserving list of (D)TLS records spanning
// zero or more transport segments worth of bytes, with whatever trailing
// octets don't amount to one more complete record kept rather than
// discarded.
//
// Grounded on the SSL class's pre_dissect/do_dissect pairing in
// _examples/original_source/src/scapy/layers/ssl_tls.py, which peeks
// each record's declared length before slicing it out of the buffer so a
// truncated final record doesn't corrupt the ones already read.
package ssl

import (
	"fmt"

	"github.com/kcodec/tlscodec/binder"
	"github.com/kcodec/tlscodec/dtlsproto"
	"github.com/kcodec/tlscodec/internal/metrics"
	"github.com/kcodec/tlscodec/packet"
	"github.com/kcodec/tlscodec/tlsproto"
	"github.com/kcodec/tlscodec/transport"
)

// Compound is a dissected (or under-construction) run of records sharing
// one transport class.
type Compound struct {
	Class   transport.Class
	Records []*packet.Instance
	// Trailer holds bytes left over after the last complete record: a
	// record whose header or declared length reaches past the end of the
	// input. Preserving it, rather than erroring, is what lets a caller
	// append more bytes from the next segment and try again.
	Trailer []byte
	// RecordCount tracks how many records Dissect has successfully
	// parsed into this compound.
	RecordCount *metrics.Counter
}

// schemaFor returns the record schema this compound's transport class
// carries.
func (c *Compound) schemaFor() *packet.Schema {
	if c.Class == transport.ClassUDP {
		return dtlsproto.RecordSchema
	}
	return tlsproto.RecordSchema
}

// Dissect greedily parses data as a run of records for the given
// transport class. It never returns an error for a truncated final
// record -- that octet run becomes the Trailer instead -- but does
// return an error if a record's own fields are malformed in a way short
// input can't explain (a schema-misuse or build-time fault surfacing
// from deeper in the stack).
func Dissect(class transport.Class, data []byte) (*Compound, error) {
	c := &Compound{Class: class, RecordCount: metrics.New()}
	schema := c.schemaFor()
	headerSize := packet.FixedHeaderSize(schema)

	for len(data) > 0 {
		if len(data) < headerSize {
			c.Trailer = data
			break
		}
		header, _, err := packet.DissectHeader(schema, data)
		if err != nil {
			return nil, fmt.Errorf("ssl: peeking record header: %w", err)
		}
		declared, ok := header.Get("length")
		if !ok {
			return nil, fmt.Errorf("ssl: record header carries no length field")
		}
		total := headerSize + int(declared.(uint64))
		if total > len(data) {
			c.Trailer = data
			break
		}

		rec := packet.NewInstance(schema)
		if _, err := rec.Dissect(data[:total]); err != nil {
			return nil, fmt.Errorf("ssl: dissecting record: %w", err)
		}
		c.Records = append(c.Records, rec)
		c.RecordCount.Increment()
		data = data[total:]
	}

	return c, nil
}

// Build serializes every record in order, followed by the trailer.
func (c *Compound) Build() ([]byte, error) {
	var out []byte
	for _, rec := range c.Records {
		b, err := rec.Build()
		if err != nil {
			return nil, fmt.Errorf("ssl: building record: %w", err)
		}
		out = append(out, b...)
	}
	return append(out, c.Trailer...), nil
}

// Standard TLS/DTLS port registrations: a caller that has already
// dissected a transport segment down to a transport.Header can ask the
// binder what follows without hardcoding a schema choice, the way
// gopacket-style dispatch tables key off well-known ports.
const (
	PortHTTPS      = 443
	PortDTLSCommon = 4433
)

func init() {
	binder.Register(transport.ClassTCP, binder.Discriminator{"dport": uint64(PortHTTPS)}, tlsproto.RecordSchema)
	binder.Register(transport.ClassTCP, binder.Discriminator{"sport": uint64(PortHTTPS)}, tlsproto.RecordSchema)
	binder.Register(transport.ClassUDP, binder.Discriminator{"dport": uint64(PortDTLSCommon)}, dtlsproto.RecordSchema)
	binder.Register(transport.ClassUDP, binder.Discriminator{"sport": uint64(PortDTLSCommon)}, dtlsproto.RecordSchema)
}

// DissectTransport looks up h's port against the registered TLS/DTLS
// ports and, if it matches one, dissects data as a Compound over h's
// transport class. It returns an error for a port the binder has no
// rule for, rather than guessing.
func DissectTransport(h transport.Header, data []byte) (*Compound, error) {
	if _, ok := binder.Lookup(h.Class, h); !ok {
		return nil, fmt.Errorf("ssl: no (D)TLS record schema registered for %s port %d", h.Class, h.DstPort)
	}
	return Dissect(h.Class, data)
}
