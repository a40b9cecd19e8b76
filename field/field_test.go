package field

import (
	"testing"

	"golang.org/x/crypto/cryptobyte"
)

// memContainer is a bare-bones field.Container for exercising a single
// Descriptor in isolation, without pulling in the packet package.
type memContainer struct {
	values map[string]any
	descs  map[string]*Descriptor
}

func newMemContainer(descs ...*Descriptor) *memContainer {
	c := &memContainer{values: map[string]any{}, descs: map[string]*Descriptor{}}
	for _, d := range descs {
		c.descs[d.Name] = d
	}
	return c
}

func (c *memContainer) Value(name string) (any, bool) { v, ok := c.values[name]; return v, ok }
func (c *memContainer) SetValue(name string, v any)   { c.values[name] = v }

func (c *memContainer) SerializedSizeOf(name string) (int, error) {
	return c.descs[name].SizeOf(c)
}

func (c *memContainer) ElementCountOf(name string) (int, error) {
	v, ok := c.values[name]
	if !ok {
		return 0, nil
	}
	switch x := v.(type) {
	case []uint64:
		return len(x), nil
	case []Dissector:
		return len(x), nil
	}
	return 0, nil
}

func TestUintNRoundTripTruncatedWidths(t *testing.T) {
	values := map[int]uint64{
		1: 0xab,
		2: 0xabcd,
		3: 0xabcdef,
		4: 0xabcdef01,
		6: 0xabcdef012345,
		8: 0xabcdef0123456789,
	}
	for _, width := range []int{1, 2, 3, 4, 6, 8} {
		d := &Descriptor{Name: "v", Kind: UInt, Width: width}
		c := newMemContainer(d)
		c.SetValue("v", values[width])

		b := cryptobyte.NewBuilder(nil)
		if err := d.Serialize(c, b); err != nil {
			t.Fatalf("width %d: Serialize: %v", width, err)
		}
		out, err := b.Bytes()
		if err != nil {
			t.Fatalf("width %d: Bytes: %v", width, err)
		}
		if len(out) != width {
			t.Fatalf("width %d: encoded %d octets, want %d", width, len(out), width)
		}

		c2 := newMemContainer(d)
		s := cryptobyte.String(out)
		if err := d.Parse(c2, &s); err != nil {
			t.Fatalf("width %d: Parse: %v", width, err)
		}
		want, _ := c.Value("v")
		got, _ := c2.Value("v")
		if got != want {
			t.Errorf("width %d: round trip got %#x, want %#x", width, got, want)
		}
	}
}

func TestParseShortInput(t *testing.T) {
	d := &Descriptor{Name: "v", Kind: UInt, Width: 4}
	c := newMemContainer(d)
	s := cryptobyte.String([]byte{0x01, 0x02})
	if err := d.Parse(c, &s); err != ErrShortInput {
		t.Errorf("Parse with 2 of 4 octets = %v, want ErrShortInput", err)
	}
}

func TestLenPrefixedBytesUndefinedSibling(t *testing.T) {
	d := &Descriptor{Name: "body", Kind: LenPrefixedBytes, LengthFrom: "missing"}
	c := newMemContainer(d)
	s := cryptobyte.String([]byte{0xaa, 0xbb})
	err := d.Parse(c, &s)
	if err == nil {
		t.Fatal("Parse with undefined length_from sibling: want error, got nil")
	}
}

func TestFieldListByteLengthGovernsCount(t *testing.T) {
	lenDesc := &Descriptor{Name: "n", Kind: UInt, Width: 2}
	listDesc := &Descriptor{Name: "list", Kind: FieldList, Inner: &Descriptor{Kind: UInt, Width: 2}, LengthFrom: "n"}
	c := newMemContainer(lenDesc, listDesc)
	c.SetValue("n", uint64(6))

	s := cryptobyte.String([]byte{0x00, 0x01, 0x00, 0x02, 0x00, 0x03, 0xff})
	if err := listDesc.Parse(c, &s); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got, _ := c.Value("list")
	list := got.([]uint64)
	if len(list) != 3 || list[0] != 1 || list[1] != 2 || list[2] != 3 {
		t.Errorf("list = %v, want [1 2 3]", list)
	}
	if len(s) != 1 {
		t.Errorf("%d octets left over, want 1 (the trailing 0xff)", len(s))
	}
}

func TestPadRelativeToFloorsAtZero(t *testing.T) {
	payload := &Descriptor{Name: "payload", Kind: RawBytes}
	pad := &Descriptor{Name: "pad", Kind: RawBytes, PadRelativeTo: "payload", PadTo: 16, PadByte: 0x50}
	c := newMemContainer(payload, pad)

	c.SetValue("payload", make([]byte, 20))
	v, err := pad.ResolveDefault(c)
	if err != nil {
		t.Fatalf("ResolveDefault: %v", err)
	}
	if len(v.([]byte)) != 0 {
		t.Errorf("pad for a 20-byte payload against a 16-byte minimum = %d octets, want 0", len(v.([]byte)))
	}

	c.SetValue("payload", make([]byte, 3))
	v, err = pad.ResolveDefault(c)
	if err != nil {
		t.Fatalf("ResolveDefault: %v", err)
	}
	buf := v.([]byte)
	if len(buf) != 13 {
		t.Fatalf("pad for a 3-byte payload against a 16-byte minimum = %d octets, want 13", len(buf))
	}
	for _, b := range buf {
		if b != 0x50 {
			t.Errorf("pad octet = %#x, want 0x50", b)
		}
	}
}
