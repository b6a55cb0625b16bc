package codec

import (
	"strings"
)

// StringCodec passes text through unchanged, optionally enclosing it in double quotes when encoding.
//
// A quoted string doubles embedded double quotes, the usual escape of the command language, and decoding
// strips one pair of enclosing quotes when present.
type StringCodec struct {
	quoted bool
}

var _ Codec[string] = StringCodec{}

// NewString returns the unquoted string codec.
func NewString() StringCodec {
	return StringCodec{}
}

// NewQuotedString returns the string codec that sends `"text"`.
func NewQuotedString() StringCodec {
	return StringCodec{quoted: true}
}

func (StringCodec) Kind() Kind { return KindString }

func (c StringCodec) Encode(v string) (string, error) {
	if strings.ContainsAny(v, "\r\n") {
		return "", outOfDomain("string %q contains a line terminator", v)
	}
	if !c.quoted {
		return v, nil
	}

	return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`, nil
}

func (c StringCodec) Decode(text string) (string, error) {
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		return strings.ReplaceAll(text[1:len(text)-1], `""`, `"`), nil
	}

	return text, nil
}
