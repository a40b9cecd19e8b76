// Package packet implements the generic composite packet: an ordered
// field schema plus an optional payload sub-packet, dissected from or
// built into octets. It is the engine the (D)TLS schema in tlsproto and
// dtlsproto is expressed as data for.
package packet

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/cryptobyte"

	"github.com/kcodec/tlscodec/binder"
	"github.com/kcodec/tlscodec/field"
)

// Schema is the declarative description of one packet class: its field
// list in wire order, and the hooks the (D)TLS layer uses to customize
// dissection.
type Schema struct {
	// Name identifies the schema for error messages and for use as the
	// binder's parent-class key.
	Name string
	// Fields is the ordered field list. Order is both wire order and
	// resolution order.
	Fields []*field.Descriptor

	// PreDissect, when set, transforms the raw input before the field
	// loop runs. Identity by default.
	PreDissect func(data []byte) []byte

	// CustomDissect, when set, replaces the generic per-field loop
	// entirely. It must set every field named in Fields via Instance.Set
	// and return the unconsumed remainder. No (D)TLS schema in this
	// module sets it; TLSCertificateList dissects its entries through an
	// ordinary PacketList field.
	CustomDissect func(i *Instance, body []byte) (rest []byte, err error)
}

// Instance is a packet's runtime state: field values, an optional
// payload sub-packet (the next layer, chosen by the binder), and an
// unparsed trailer. It implements field.Container and field.Dissector.
type Instance struct {
	schema  *Schema
	values  map[string]any
	payload *Instance
	trailer []byte
	parent  *Instance
}

// NewInstance constructs an empty instance with schema defaults applied.
// Length/count/pad fields are left unset; they resolve at Build time.
func NewInstance(schema *Schema) *Instance {
	i := &Instance{schema: schema, values: map[string]any{}}
	for _, d := range schema.Fields {
		if v, ok := d.ZeroValue(); ok {
			i.values[d.Name] = v
		}
	}
	return i
}

// Schema returns the instance's schema.
func (i *Instance) Schema() *Schema { return i.schema }

// Set installs an explicit value for a named field, overriding any
// default. The engine never overwrites a value installed this way.
func (i *Instance) Set(name string, v any) *Instance {
	i.values[name] = v
	return i
}

// Get returns a field's current value.
func (i *Instance) Get(name string) (any, bool) {
	v, ok := i.values[name]
	return v, ok
}

// Payload returns the dissected next-layer sub-packet, or nil if the
// binder had no matching rule (or this packet was constructed rather
// than dissected and never given one).
func (i *Instance) Payload() *Instance { return i.payload }

// SetPayload attaches a sub-packet directly, for callers building a
// packet tree by hand rather than letting the binder choose one.
func (i *Instance) SetPayload(p *Instance) { i.payload = p }

// Trailer returns octets this instance's own schema (and, if dissected,
// its payload) did not consume.
func (i *Instance) Trailer() []byte { return i.trailer }

// field.Container implementation.

func (i *Instance) Value(name string) (any, bool) { return i.Get(name) }

func (i *Instance) SetValue(name string, v any) { i.values[name] = v }

// "payload" is a reserved sibling name: a length field may name it via
// LengthOf to measure the dissected/attached next-layer sub-packet
// instead of a field in this schema's own Fields list. TLSRecord's and
// TLSHandshake's length fields both measure their payload this way.
const payloadSibling = "payload"

func (i *Instance) SerializedSizeOf(name string) (int, error) {
	if name == payloadSibling {
		if i.payload == nil {
			return 0, nil
		}
		b, err := i.payload.Build()
		if err != nil {
			return 0, err
		}
		return len(b), nil
	}
	d := i.descriptor(name)
	if d == nil {
		return 0, fmt.Errorf("packet %s: %w %q", i.schema.Name, field.ErrUndefinedSibling, name)
	}
	return d.SizeOf(i)
}

func (i *Instance) ElementCountOf(name string) (int, error) {
	d := i.descriptor(name)
	if d == nil {
		return 0, fmt.Errorf("packet %s: %w %q", i.schema.Name, field.ErrUndefinedSibling, name)
	}
	switch v, ok := i.values[name]; {
	case !ok:
		return 0, nil
	case d.Kind == field.FieldList:
		return len(v.([]uint64)), nil
	case d.Kind == field.PacketList:
		return len(v.([]field.Dissector)), nil
	default:
		return 0, fmt.Errorf("packet %s: field %q is not a list", i.schema.Name, name)
	}
}

func (i *Instance) descriptor(name string) *field.Descriptor {
	for _, d := range i.schema.Fields {
		if d.Name == name {
			return d
		}
	}
	return nil
}

// Dissect parses data against this instance's schema, then asks the
// layer binder which class to dissect the remainder as. It implements
// field.Dissector so instances can nest as PacketList elements.
func (i *Instance) Dissect(data []byte) (int, error) {
	body := data
	if i.schema.PreDissect != nil {
		body = i.schema.PreDissect(body)
	}

	rest, short, err := i.dissectFields(body)
	if err != nil {
		return 0, fmt.Errorf("packet %s: %w", i.schema.Name, err)
	}
	if short {
		i.trailer = rest
		return len(body) - len(rest), nil
	}

	if child, ok := binder.Lookup(i.schema, i); ok {
		childSchema, ok := child.(*Schema)
		if !ok {
			return 0, fmt.Errorf("packet %s: binder registered a non-schema child %T", i.schema.Name, child)
		}
		childInstance := NewInstance(childSchema)
		childInstance.parent = i
		n, err := childInstance.Dissect(rest)
		if err != nil {
			return 0, err
		}
		i.payload = childInstance
		rest = rest[n:]
	}
	i.trailer = rest
	return len(body) - len(rest), nil
}

// dissectFields runs the field loop (or CustomDissect override) and
// reports whether it stopped early on short input.
func (i *Instance) dissectFields(body []byte) (rest []byte, short bool, err error) {
	if i.schema.CustomDissect != nil {
		rest, err := i.schema.CustomDissect(i, body)
		return rest, false, err
	}

	s := cryptobyte.String(body)
	for _, d := range i.schema.Fields {
		if err := d.Parse(i, &s); err != nil {
			if errors.Is(err, field.ErrShortInput) {
				return []byte(s), true, nil
			}
			return nil, false, err
		}
	}
	return []byte(s), false, nil
}

// Build resolves any unset length/count/pad fields, serializes the field
// list in schema order, and appends the recursively built payload. It
// implements field.Dissector.
func (i *Instance) Build() ([]byte, error) {
	for _, d := range i.schema.Fields {
		if !d.IsDerived() {
			continue
		}
		if _, ok := i.values[d.Name]; ok {
			continue
		}
		v, err := d.ResolveDefault(i)
		if err != nil {
			return nil, fmt.Errorf("packet %s: resolving %q: %w", i.schema.Name, d.Name, err)
		}
		i.values[d.Name] = v
	}

	b := cryptobyte.NewBuilder(nil)
	for _, d := range i.schema.Fields {
		if err := d.Serialize(i, b); err != nil {
			return nil, fmt.Errorf("packet %s: serializing %q: %w", i.schema.Name, d.Name, err)
		}
	}
	out, err := b.Bytes()
	if err != nil {
		return nil, fmt.Errorf("packet %s: %w", i.schema.Name, err)
	}

	if i.payload != nil {
		payloadBytes, err := i.payload.Build()
		if err != nil {
			return nil, err
		}
		out = append(out, payloadBytes...)
	}
	return out, nil
}

// DissectHeader parses only this instance's own field list (no binder
// dispatch, no trailer bookkeeping beyond the immediate remainder). It is
// used to peek at a fixed-size header -- e.g. to read a record's declared
// length before slicing the full record out of a byte stream.
func DissectHeader(schema *Schema, data []byte) (*Instance, []byte, error) {
	i := NewInstance(schema)
	rest, _, err := i.dissectFields(data)
	if err != nil {
		return nil, nil, fmt.Errorf("packet %s: %w", schema.Name, err)
	}
	return i, rest, nil
}

// FixedHeaderSize returns the sum of the schema's fields' encoded sizes,
// valid only for schemas whose every field has a size independent of
// instance state (true of every (D)TLS record header).
func FixedHeaderSize(schema *Schema) int {
	n := 0
	for _, d := range schema.Fields {
		switch d.Kind {
		case field.UInt, field.EnumUInt, field.EnumByte:
			n += d.Width
		case field.FixedBytes:
			n += d.N
		default:
			panic(fmt.Sprintf("packet %s: field %q has no fixed size", schema.Name, d.Name))
		}
	}
	return n
}
