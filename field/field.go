// Package field implements the elementary schema elements of the packet
// engine: fixed-width integers, enum-annotated integers, fixed and
// length-governed byte strings, homogeneous field lists, and nested
// packet lists. A Descriptor is immutable schema data; all state lives in
// the Container the descriptor is asked to operate against.
package field

import (
	"encoding/binary"
	"errors"
	"fmt"

	"golang.org/x/crypto/cryptobyte"
)

// Kind identifies the shape of a field's wire encoding.
type Kind int

const (
	// UInt is a fixed-width unsigned integer, big-endian, optionally
	// truncated to fewer bytes than its natural Go width (e.g. a 3-byte
	// length stored as a uint64 value).
	UInt Kind = iota
	// EnumUInt is a UInt whose integer space is annotated by a name
	// table. The table is presentation-only; parse preserves the raw
	// integer even when it isn't a key in the table.
	EnumUInt
	// FixedBytes is a byte string of a schema-constant length N.
	FixedBytes
	// LenPrefixedBytes is a byte string whose length is read from a
	// sibling field named by LengthFrom.
	LenPrefixedBytes
	// EnumByte is a one-byte EnumUInt. Kept distinct from EnumUInt only
	// for schema readability; encoding is identical to UInt/Width=1.
	EnumByte
	// FieldList is a homogeneous list of elementary integers (Inner),
	// whose total encoded byte length is read from a sibling field named
	// by LengthFrom.
	FieldList
	// PacketList is a list of nested packets (Dissector values), whose
	// total encoded byte length is read from a sibling field named by
	// LengthFrom.
	PacketList
	// RawBytes consumes octets governed by LengthFrom, or, when
	// LengthFrom is empty, the remainder of the current cursor. Used for
	// opaque trailers such as heartbeat padding.
	RawBytes
)

// Dissector is the minimal surface a nested packet must expose for use as
// a PacketList element. It is satisfied by *packet.Instance without
// field importing packet.
type Dissector interface {
	Dissect(data []byte) (consumed int, err error)
	Build() ([]byte, error)
}

// Container is the minimal surface a packet instance must expose so that
// Descriptor methods can read and write sibling field values and measure
// sibling sizes, without the field package depending on the packet
// package's concrete type.
type Container interface {
	// Value returns the field's current value and whether it has been
	// set (either by dissection, by explicit caller override, or by
	// resolution). Absence of a value is how the engine represents the
	// "unset" sentinel for length/count fields -- no in-band magic
	// number is used.
	Value(name string) (any, bool)
	SetValue(name string, v any)
	// SerializedSizeOf measures the would-be serialized size of a
	// sibling field without emitting any octets.
	SerializedSizeOf(name string) (int, error)
	// ElementCountOf measures a sibling FieldList/PacketList field's
	// element count.
	ElementCountOf(name string) (int, error)
}

var (
	// ErrShortInput is returned by Parse when the cursor holds fewer
	// octets than the field requires.
	ErrShortInput = errors.New("field: short input")
	// ErrUndefinedSibling is returned when a field references a sibling
	// by name that the schema does not declare. This is a schema
	// authoring fault, not a data fault.
	ErrUndefinedSibling = errors.New("field: references an undefined sibling field")
	// ErrMissingDependency is returned at build time when a length/count
	// field's target has no value and no way to derive one.
	ErrMissingDependency = errors.New("field: build-time dependency has no value")
)

// Descriptor is an immutable schema element. The zero value is not
// meaningful; construct with the literal fields needed for a Kind.
type Descriptor struct {
	Name string
	Kind Kind

	// Width is the encoded byte width of UInt/EnumUInt/EnumByte kinds.
	// Values other than 1, 2, 4, 8 are truncated integers (e.g. 3 for a
	// TLS handshake length, 6 for a DTLS sequence number).
	Width int
	// N is the fixed length, in bytes, of a FixedBytes field.
	N int

	// LengthFrom names the sibling field that governs how many octets
	// (LenPrefixedBytes, RawBytes, FieldList, PacketList) this field
	// consumes. Empty on RawBytes means "consume the rest of the
	// cursor".
	LengthFrom string
	// LengthFromAdjust, when non-nil, transforms the raw integer value
	// read from LengthFrom into the octet count to actually consume.
	// Identity by default. Used for a gate byte rather than a literal
	// count -- e.g. a boolean hash_present field that means "20 octets
	// follow" when nonzero and "none" when zero.
	LengthFromAdjust func(raw uint64) int

	// LengthOf/CountOf name the sibling data field this length/count
	// field measures. At most one should be set. Adjust, when non-nil,
	// transforms the raw measurement (e.g. "stored length = measured+1").
	LengthOf string
	CountOf  string
	Adjust   func(measured int) int

	// PadRelativeTo names a sibling data field; when set (RawBytes
	// only), an unset value resolves to PadByte repeated PadTo-size(that
	// field) times (floored at zero). Models heartbeat padding.
	PadRelativeTo string
	PadTo         int
	PadByte       byte

	// Inner describes one element of a FieldList (Kind/Width only).
	Inner *Descriptor
	// NewElement constructs one empty PacketList element ready for
	// Dissect.
	NewElement func() Dissector

	// EnumMap is presentation-only.
	EnumMap map[uint64]string

	// Default is the static value installed when a packet instance is
	// constructed and no caller override is given. DefaultFunc, when
	// set, is evaluated once at construction instead (used for
	// gmt_unix_time/random_bytes, which an injected clock/entropy
	// source resolves a single time rather than per Build call).
	Default     any
	DefaultFunc func() any
}

// IsDerived reports whether this field's value is computed from other
// fields rather than supplied directly, i.e. whether it participates in
// the build-time resolution pass.
func (d *Descriptor) IsDerived() bool {
	return d.LengthOf != "" || d.CountOf != "" || d.PadRelativeTo != ""
}

// ZeroValue returns the value a freshly constructed, otherwise-unset
// instance should hold for this field. Derived (length/count/pad) fields
// are left unset (nil, false) so the resolver can distinguish "never set"
// from "set to zero".
func (d *Descriptor) ZeroValue() (any, bool) {
	if d.IsDerived() {
		return nil, false
	}
	if d.DefaultFunc != nil {
		return d.DefaultFunc(), true
	}
	if d.Default != nil {
		return d.Default, true
	}
	switch d.Kind {
	case FixedBytes, LenPrefixedBytes, RawBytes:
		return []byte{}, true
	case FieldList:
		return []uint64{}, true
	case PacketList:
		return []Dissector{}, true
	default:
		return uint64(0), true
	}
}

// SizeOf returns the serialized octet count of this field as it currently
// stands in c.
func (d *Descriptor) SizeOf(c Container) (int, error) {
	switch d.Kind {
	case UInt, EnumUInt, EnumByte:
		return d.Width, nil
	case FixedBytes:
		return d.N, nil
	case LenPrefixedBytes, RawBytes:
		v, ok := c.Value(d.Name)
		if !ok {
			return 0, nil
		}
		return len(v.([]byte)), nil
	case FieldList:
		v, ok := c.Value(d.Name)
		if !ok {
			return 0, nil
		}
		return len(v.([]uint64)) * d.Inner.Width, nil
	case PacketList:
		v, ok := c.Value(d.Name)
		if !ok {
			return 0, nil
		}
		total := 0
		for _, elem := range v.([]Dissector) {
			b, err := elem.Build()
			if err != nil {
				return 0, err
			}
			total += len(b)
		}
		return total, nil
	default:
		return 0, fmt.Errorf("field %q: unknown kind %d", d.Name, d.Kind)
	}
}

// Serialize appends this field's octets to b.
func (d *Descriptor) Serialize(c Container, b *cryptobyte.Builder) error {
	switch d.Kind {
	case UInt, EnumUInt, EnumByte:
		v, ok := c.Value(d.Name)
		if !ok {
			return fmt.Errorf("field %q: %w", d.Name, ErrMissingDependency)
		}
		writeUintN(b, d.Width, v.(uint64))
		return nil
	case FixedBytes:
		v, _ := c.Value(d.Name)
		buf, _ := v.([]byte)
		b.AddBytes(buf)
		return nil
	case LenPrefixedBytes, RawBytes:
		v, _ := c.Value(d.Name)
		buf, _ := v.([]byte)
		b.AddBytes(buf)
		return nil
	case FieldList:
		v, _ := c.Value(d.Name)
		list, _ := v.([]uint64)
		for _, elem := range list {
			writeUintN(b, d.Inner.Width, elem)
		}
		return nil
	case PacketList:
		v, _ := c.Value(d.Name)
		list, _ := v.([]Dissector)
		for _, elem := range list {
			buf, err := elem.Build()
			if err != nil {
				return err
			}
			b.AddBytes(buf)
		}
		return nil
	default:
		return fmt.Errorf("field %q: unknown kind %d", d.Name, d.Kind)
	}
}

// Parse consumes octets from s, stores the decoded value into c under
// this field's name, and reports a short-input error if s does not hold
// enough octets.
func (d *Descriptor) Parse(c Container, s *cryptobyte.String) error {
	switch d.Kind {
	case UInt, EnumUInt, EnumByte:
		v, ok := readUintN(s, d.Width)
		if !ok {
			return ErrShortInput
		}
		c.SetValue(d.Name, v)
		return nil
	case FixedBytes:
		var buf []byte
		if !s.ReadBytes(&buf, d.N) {
			return ErrShortInput
		}
		c.SetValue(d.Name, buf)
		return nil
	case LenPrefixedBytes:
		n, err := d.resolveLengthFrom(c)
		if err != nil {
			return err
		}
		var buf []byte
		if !s.ReadBytes(&buf, n) {
			return ErrShortInput
		}
		c.SetValue(d.Name, buf)
		return nil
	case RawBytes:
		n := len(*s)
		if d.LengthFrom != "" {
			n, err := d.resolveLengthFrom(c)
			if err != nil {
				return err
			}
			var buf []byte
			if !s.ReadBytes(&buf, n) {
				return ErrShortInput
			}
			c.SetValue(d.Name, buf)
			return nil
		}
		var buf []byte
		if !s.ReadBytes(&buf, n) {
			return ErrShortInput
		}
		c.SetValue(d.Name, buf)
		return nil
	case FieldList:
		byteLen, err := d.resolveLengthFrom(c)
		if err != nil {
			return err
		}
		if byteLen%d.Inner.Width != 0 {
			return fmt.Errorf("field %q: length %d is not a multiple of element width %d", d.Name, byteLen, d.Inner.Width)
		}
		count := byteLen / d.Inner.Width
		list := make([]uint64, 0, count)
		for i := 0; i < count; i++ {
			v, ok := readUintN(s, d.Inner.Width)
			if !ok {
				return ErrShortInput
			}
			list = append(list, v)
		}
		c.SetValue(d.Name, list)
		return nil
	case PacketList:
		byteLen, err := d.resolveLengthFrom(c)
		if err != nil {
			return err
		}
		var buf []byte
		if !s.ReadBytes(&buf, byteLen) {
			return ErrShortInput
		}
		var list []Dissector
		pos := 0
		for pos < len(buf) {
			elem := d.NewElement()
			n, err := elem.Dissect(buf[pos:])
			if err != nil || n == 0 {
				break
			}
			list = append(list, elem)
			pos += n
		}
		c.SetValue(d.Name, list)
		return nil
	default:
		return fmt.Errorf("field %q: unknown kind %d", d.Name, d.Kind)
	}
}

// resolveLengthFrom looks up the sibling field named by LengthFrom and
// returns it as an int octet count.
func (d *Descriptor) resolveLengthFrom(c Container) (int, error) {
	v, ok := c.Value(d.LengthFrom)
	if !ok {
		return 0, fmt.Errorf("field %q: length_from %q: %w", d.Name, d.LengthFrom, ErrUndefinedSibling)
	}
	n, ok := v.(uint64)
	if !ok {
		return 0, fmt.Errorf("field %q: length_from %q is not an integer field", d.Name, d.LengthFrom)
	}
	if d.LengthFromAdjust != nil {
		return d.LengthFromAdjust(n), nil
	}
	return int(n), nil
}

// ResolveDefault computes the value an unset length/count/pad field
// should take, per the measured size or element count of the field it
// describes.
func (d *Descriptor) ResolveDefault(c Container) (any, error) {
	adjust := d.Adjust
	if adjust == nil {
		adjust = func(n int) int { return n }
	}
	switch {
	case d.LengthOf != "":
		n, err := c.SerializedSizeOf(d.LengthOf)
		if err != nil {
			return nil, err
		}
		return uint64(adjust(n)), nil
	case d.CountOf != "":
		n, err := c.ElementCountOf(d.CountOf)
		if err != nil {
			return nil, err
		}
		return uint64(adjust(n)), nil
	case d.PadRelativeTo != "":
		n, err := c.SerializedSizeOf(d.PadRelativeTo)
		if err != nil {
			return nil, err
		}
		pad := d.PadTo - n
		if pad < 0 {
			pad = 0
		}
		buf := make([]byte, pad)
		for i := range buf {
			buf[i] = d.PadByte
		}
		return buf, nil
	default:
		return nil, fmt.Errorf("field %q: not a derived field", d.Name)
	}
}

// writeUintN appends v to b as a big-endian integer truncated to the low
// width octets.
func writeUintN(b *cryptobyte.Builder, width int, v uint64) {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	b.AddBytes(buf[8-width:])
}

// readUintN reads width octets from s and decodes them as a big-endian
// integer, zero-padded on the left to the natural 8-byte width before
// decoding.
func readUintN(s *cryptobyte.String, width int) (uint64, bool) {
	var buf []byte
	if !s.ReadBytes(&buf, width) {
		return 0, false
	}
	var full [8]byte
	copy(full[8-width:], buf)
	return binary.BigEndian.Uint64(full[:]), true
}
