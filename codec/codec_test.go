package codec

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/go-scpikit/unit"
)

func TestFormatScientific(t *testing.T) {
	tests := []struct {
		description string
		input       float64
		expected    string
	}{
		{description: "one", input: 1, expected: "1.000000e+00"},
		{description: "tenth", input: 0.1, expected: "1.000000e-01"},
		{description: "sweep points", input: 2048, expected: "2.048000e+03"},
		{description: "small interval", input: 0.00001, expected: "1.000000e-05"},
		{description: "protection delay", input: 5e-02, expected: "5.000000e-02"},
		{description: "zero", input: 0, expected: "0.000000e+00"},
		{description: "negative", input: -12.5, expected: "-1.250000e+01"},
		{description: "three digit exponent", input: 1e100, expected: "1.000000e+100"},
		{description: "rounding", input: 1.23456789, expected: "1.234568e+00"},
	}

	require := require.New(t)

	for i, test := range tests {
		t.Logf("Test #%d: %s", i, test.description)
		text, err := FormatScientific(test.input)
		require.NoError(err)
		require.Equal(test.expected, text)
	}

	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := FormatScientific(f)
		require.ErrorIs(err, ErrOutOfDomain)
	}
}

func TestBooleanCodec(t *testing.T) {
	require := require.New(t)
	c := NewBoolean()
	require.Equal(KindBoolean, c.Kind())

	text, err := c.Encode(true)
	require.NoError(err)
	require.Equal("1", text)

	text, err = c.Encode(false)
	require.NoError(err)
	require.Equal("0", text)

	v, err := c.Decode("1")
	require.NoError(err)
	require.True(v)

	v, err = c.Decode("0")
	require.NoError(err)
	require.False(v)

	for _, input := range []string{"", "2", "ON", "true", " 1", "01"} {
		_, err = c.Decode(input)
		require.ErrorIs(err, ErrMalformedReply, "input %q", input)

		var malformed *MalformedReplyError
		require.ErrorAs(err, &malformed)
		require.Equal(input, malformed.Text)
		require.Equal(KindBoolean, malformed.Kind)
	}
}

func TestTokenBooleanCodec(t *testing.T) {
	require := require.New(t)
	c := NewTokenBoolean("TEXT", "NORM")

	text, err := c.Encode(true)
	require.NoError(err)
	require.Equal("TEXT", text)

	text, err = c.Encode(false)
	require.NoError(err)
	require.Equal("NORM", text)

	v, err := c.Decode("NORM")
	require.NoError(err)
	require.False(v)

	v, err = c.Decode("text")
	require.NoError(err)
	require.True(v)

	_, err = c.Decode("1")
	require.ErrorIs(err, ErrMalformedReply)
}

func TestQuantityCodec_Decode(t *testing.T) {
	tests := []struct {
		description string
		input       string
		declared    unit.Unit
		expected    unit.Quantity
	}{
		{description: "plain decimal", input: "10.0", declared: unit.Volt, expected: unit.New(10, unit.Volt)},
		{description: "scientific", input: "1.56e-05", declared: unit.Second, expected: unit.New(1.56e-05, unit.Second)},
		{description: "unsigned exponent", input: "6e4", declared: unit.Hertz, expected: unit.New(60000, unit.Hertz)},
		{description: "padded exponent", input: "8e-02", declared: unit.Second, expected: unit.New(0.08, unit.Second)},
		{description: "short exponent", input: "1e+0", declared: unit.Volt, expected: unit.New(1, unit.Volt)},
		{description: "leading dot", input: ".05", declared: unit.Ampere, expected: unit.New(0.05, unit.Ampere)},
		{description: "surrounding space", input: " 0.05 ", declared: unit.Ampere, expected: unit.New(0.05, unit.Ampere)},
	}

	require := require.New(t)

	for i, test := range tests {
		t.Logf("Test #%d: %s", i, test.description)
		c := NewQuantity(test.declared)
		q, err := c.Decode(test.input)
		require.NoError(err)
		require.Equal(test.declared, q.Unit)
		require.True(test.expected.Equal(q), "expected %s, got %s", test.expected, q)
	}
}

func TestQuantityCodec_DecodeMalformed(t *testing.T) {
	require := require.New(t)
	c := NewQuantity(unit.Volt)

	for _, input := range []string{"", "abc", "1.0V", "inf", "NaN", "1e400", "1,2"} {
		_, err := c.Decode(input)
		require.ErrorIs(err, ErrMalformedReply, "input %q", input)

		var malformed *MalformedReplyError
		require.ErrorAs(err, &malformed)
		require.Equal(KindQuantity, malformed.Kind)
		require.Equal(input, malformed.Text)
	}
}

func TestQuantityCodec_Encode(t *testing.T) {
	tests := []struct {
		description string
		input       unit.Quantity
		declared    unit.Unit
		expected    string
	}{
		{description: "volt", input: unit.New(1, unit.Volt), declared: unit.Volt, expected: "1.000000e+00"},
		{description: "amp", input: unit.New(0.1, unit.Ampere), declared: unit.Ampere, expected: "1.000000e-01"},
		{description: "millivolt converted", input: unit.New(500, unit.Millivolt), declared: unit.Volt, expected: "5.000000e-01"},
		{description: "seconds", input: unit.New(1e-05, unit.Second), declared: unit.Second, expected: "1.000000e-05"},
		{description: "milliseconds converted", input: unit.New(50, unit.Millisecond), declared: unit.Second, expected: "5.000000e-02"},
	}

	require := require.New(t)

	for i, test := range tests {
		t.Logf("Test #%d: %s", i, test.description)
		c := NewQuantity(test.declared)
		text, err := c.Encode(test.input)
		require.NoError(err)
		require.Equal(test.expected, text)

		// the device may answer with fewer digits; equality is semantic
		q, err := c.Decode(text)
		require.NoError(err)
		require.True(test.input.Equal(q))
	}

	_, err := NewQuantity(unit.Volt).Encode(unit.New(1, unit.Ampere))
	require.ErrorIs(err, ErrOutOfDomain)
	require.ErrorContains(err, "1 A")
}

func TestQuantityCodec_ScaledDeclaredUnit(t *testing.T) {
	tests := []struct {
		description string
		declared    unit.Unit
		input       unit.Quantity
		encoded     string
		reply       string
		decoded     unit.Quantity
	}{
		{
			description: "millivolt property sends volts",
			declared:    unit.Millivolt,
			input:       unit.New(1, unit.Volt),
			encoded:     "1.000000e+00",
			reply:       "10.0",
			decoded:     unit.New(10, unit.Volt),
		},
		{
			description: "millivolt input on millivolt property",
			declared:    unit.Millivolt,
			input:       unit.New(500, unit.Millivolt),
			encoded:     "5.000000e-01",
			reply:       "0.5",
			decoded:     unit.New(500, unit.Millivolt),
		},
		{
			description: "microsecond property sends seconds",
			declared:    unit.Microsecond,
			input:       unit.New(15.6, unit.Microsecond),
			encoded:     "1.560000e-05",
			reply:       "1.56e-05",
			decoded:     unit.New(15.6, unit.Microsecond),
		},
		{
			description: "kilohertz property sends hertz",
			declared:    unit.Kilohertz,
			input:       unit.New(60, unit.Kilohertz),
			encoded:     "6.000000e+04",
			reply:       "6e4",
			decoded:     unit.New(60000, unit.Hertz),
		},
	}

	require := require.New(t)

	for i, tt := range tests {
		t.Logf("Test #%d: %s", i, tt.description)
		c := NewQuantity(tt.declared)

		text, err := c.Encode(tt.input)
		require.NoError(err)
		require.Equal(tt.encoded, text)

		q, err := c.Decode(tt.reply)
		require.NoError(err)
		require.Equal(tt.declared, q.Unit)
		require.True(tt.decoded.Equal(q), "expected %s, got %s", tt.decoded, q)
	}
}

func TestIntegerCodec(t *testing.T) {
	require := require.New(t)

	plain := NewInteger()
	text, err := plain.Encode(1)
	require.NoError(err)
	require.Equal("1", text)

	text, err = plain.Encode(-42)
	require.NoError(err)
	require.Equal("-42", text)

	sci := NewScientificInteger()
	text, err = sci.Encode(2048)
	require.NoError(err)
	require.Equal("2.048000e+03", text)

	for input, expected := range map[string]int64{"5": 5, "-3": -3, "2.048000e+03": 2048, "5.0": 5, "+7": 7} {
		v, err := plain.Decode(input)
		require.NoError(err, "input %q", input)
		require.Equal(expected, v)
	}

	for _, input := range []string{"", "5.5", "five", "1e30"} {
		_, err := sci.Decode(input)
		require.ErrorIs(err, ErrMalformedReply, "input %q", input)

		var malformed *MalformedReplyError
		require.ErrorAs(err, &malformed)
		require.Equal(KindInteger, malformed.Kind)
	}
}

func TestFloatCodec(t *testing.T) {
	require := require.New(t)
	c := NewFloat()
	require.Equal(KindFloat, c.Kind())

	text, err := c.Encode(0.25)
	require.NoError(err)
	require.Equal("2.500000e-01", text)

	v, err := c.Decode("2.5e-1")
	require.NoError(err)
	require.InDelta(0.25, v, 1e-15)

	_, err = c.Decode("x")
	require.ErrorIs(err, ErrMalformedReply)
}

func TestStringCodec(t *testing.T) {
	require := require.New(t)

	q := NewQuotedString()
	text, err := q.Encode("TEST")
	require.NoError(err)
	require.Equal(`"TEST"`, text)

	text, err = q.Encode(`say "hi"`)
	require.NoError(err)
	require.Equal(`"say ""hi"""`, text)

	v, err := q.Decode(`"say ""hi"""`)
	require.NoError(err)
	require.Equal(`say "hi"`, v)

	_, err = q.Encode("two\nlines")
	require.ErrorIs(err, ErrOutOfDomain)

	plain := NewString()
	text, err = plain.Encode("HEWLETT-PACKARD,6632B,0,A.01.01")
	require.NoError(err)
	require.Equal("HEWLETT-PACKARD,6632B,0,A.01.01", text)
}

func TestMalformedReplyError(t *testing.T) {
	require := require.New(t)

	cause := errors.New("boom")
	err := NewMalformedReplyError("x", KindEnum, cause)
	require.ErrorIs(err, ErrMalformedReply)
	require.ErrorIs(err, cause)
	require.Equal(`malformed reply "x": expected enum: boom`, err.Error())
	require.Equal(`malformed reply "x": expected enum`, NewMalformedReplyError("x", KindEnum, nil).Error())
}
