package codec

import (
	"github.com/arloliu/go-scpikit/unit"
)

// QuantityCodec sends quantities as a scientific-form scalar in the base unit of the declared dimension, which is
// what the instrument parses, and attaches the declared unit to decoded replies.
type QuantityCodec struct {
	unit unit.Unit
}

var _ Codec[unit.Quantity] = (*QuantityCodec)(nil)

// NewQuantity returns a codec for quantities declared in u.
func NewQuantity(u unit.Unit) *QuantityCodec {
	return &QuantityCodec{unit: u}
}

func (c *QuantityCodec) Kind() Kind { return KindQuantity }

// Unit returns the declared unit.
func (c *QuantityCodec) Unit() unit.Unit { return c.unit }

// Encode formats the base-unit scalar of v, so 500 mV is sent as "5.000000e-01" whatever unit the property is
// declared in. Quantities of another dimension are rejected.
func (c *QuantityCodec) Encode(v unit.Quantity) (string, error) {
	if _, err := v.In(c.unit); err != nil {
		return "", outOfDomain("%s: %v", v, err)
	}

	return FormatScientific(v.ToBase())
}

// Decode reads a base-unit scalar and expresses it in the declared unit.
func (c *QuantityCodec) Decode(text string) (unit.Quantity, error) {
	f, err := ParseNumber(text)
	if err != nil {
		return unit.Quantity{}, NewMalformedReplyError(text, KindQuantity, nil)
	}

	return unit.FromBase(f, c.unit), nil
}
