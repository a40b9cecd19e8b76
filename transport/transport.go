// Package transport provides minimal stand-ins for the TCP/UDP layers
// that a host packet framework supplies. The (D)TLS codec never
// reassembles or dissects a transport segment itself (see spec §1,
// "out of scope: the lower-layer framing"); this package only carries
// enough of a transport header -- source and destination port -- for the
// layer binder to decide that an SSL compound follows.
//
// Adapted from the teacher's network.go, which parsed a net.Addr into
// host/port for its own BGP peer bookkeeping.
package transport

import (
	"net"
	"strconv"
	"strings"
)

// Class identifies which transport protocol a Header describes. It is
// the binder's parent-class key for transport-level rules.
type Class int

const (
	ClassTCP Class = iota
	ClassUDP
)

func (c Class) String() string {
	switch c {
	case ClassTCP:
		return "tcp"
	case ClassUDP:
		return "udp"
	default:
		return "unknown"
	}
}

// Header carries just enough of a dissected transport segment for SSL
// compound selection: which protocol, and which ports. Host frameworks
// that already dissect TCP/UDP construct one of these to ask the binder
// (or ssl.DissectTransport directly) what follows.
type Header struct {
	Class            Class
	SrcPort, DstPort uint16
}

// Value implements binder.Valuer so Header can be matched against
// registered discriminators such as {"dport": 443}.
func (h Header) Value(name string) (any, bool) {
	switch name {
	case "sport":
		return uint64(h.SrcPort), true
	case "dport":
		return uint64(h.DstPort), true
	default:
		return nil, false
	}
}

// ParseAddr splits a net.Addr of the form "host:port" into its host and
// port parts, defaulting the port to zero if it cannot be parsed.
func ParseAddr(a net.Addr) (string, uint16) {
	parts := strings.Split(a.String(), ":")
	host := parts[0]
	if len(parts) < 2 {
		return host, 0
	}
	port, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		port = 0
	}
	return host, uint16(port)
}

// FromAddrs builds a Header for class from a connection's local and
// remote addresses (e.g. net.Conn.LocalAddr/RemoteAddr), the way a
// caller that has accepted or dialed a connection already has them on
// hand, without having to pick src/dst ports out itself.
func FromAddrs(class Class, local, remote net.Addr) Header {
	_, srcPort := ParseAddr(local)
	_, dstPort := ParseAddr(remote)
	return Header{Class: class, SrcPort: srcPort, DstPort: dstPort}
}
