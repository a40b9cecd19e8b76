package tlsproto

import (
	"github.com/kcodec/tlscodec/field"
	"github.com/kcodec/tlscodec/packet"
)

// AlertSchema. Bound to RecordSchema under content_type=alert.
var AlertSchema = &packet.Schema{
	Name: "TLSAlert",
	Fields: []*field.Descriptor{
		{Name: "level", Kind: field.EnumByte, Width: 1, EnumMap: AlertLevelNames, Default: uint64(AlertLevelWarning)},
		{Name: "description", Kind: field.EnumByte, Width: 1, EnumMap: AlertDescriptionNames, Default: uint64(0)},
	},
}

func NewAlert() *packet.Instance { return packet.NewInstance(AlertSchema) }
