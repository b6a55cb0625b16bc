// Package codec converts typed property values into the text fragments of an instrument's command language
// and parses reply lines back into typed values.
//
// Numeric arguments sent to an instrument use a fixed scientific form: exactly six fractional digits, a lowercase
// exponent marker, an explicit exponent sign and at least two exponent digits, e.g. 1.000000e+00 or 2.048000e+03.
// Replies are parsed leniently: plain decimal ("10.0"), scientific with or without an exponent sign ("6e4",
// "8e-02") and any precision are accepted.
//
// Usage Example:
//
//	c := codec.NewQuantity(unit.Volt)
//	text, _ := c.Encode(unit.New(1, unit.Volt)) // "1.000000e+00"
//	v, err := c.Decode("10.0")                  // 10 V
//	if errors.Is(err, codec.ErrMalformedReply) {
//	    // the reply was not a number
//	}
package codec
