package transport

import (
	"net"
	"testing"
)

func TestFromAddrsSplitsHostAndPort(t *testing.T) {
	local := &net.TCPAddr{IP: net.ParseIP("10.0.0.1"), Port: 51234}
	remote := &net.TCPAddr{IP: net.ParseIP("93.184.216.34"), Port: 443}

	h := FromAddrs(ClassTCP, local, remote)
	if h.Class != ClassTCP {
		t.Errorf("Class = %v, want ClassTCP", h.Class)
	}
	if h.SrcPort != 51234 {
		t.Errorf("SrcPort = %d, want 51234", h.SrcPort)
	}
	if h.DstPort != 443 {
		t.Errorf("DstPort = %d, want 443", h.DstPort)
	}
}

func TestFromAddrsUnparseablePortDefaultsToZero(t *testing.T) {
	local := dummyAddr("no-port-here")
	remote := &net.UDPAddr{IP: net.ParseIP("127.0.0.1"), Port: 4433}

	h := FromAddrs(ClassUDP, local, remote)
	if h.SrcPort != 0 {
		t.Errorf("SrcPort = %d, want 0 for an addr with no port", h.SrcPort)
	}
	if h.DstPort != 4433 {
		t.Errorf("DstPort = %d, want 4433", h.DstPort)
	}
}

type dummyAddr string

func (d dummyAddr) Network() string { return "dummy" }
func (d dummyAddr) String() string  { return string(d) }
