package codec

import (
	"strings"
)

// BooleanCodec is the numeric boolean form: true is sent as "1", false as "0".
// Decoding accepts exactly "0" or "1".
type BooleanCodec struct{}

var _ Codec[bool] = BooleanCodec{}

// NewBoolean returns the numeric boolean codec.
func NewBoolean() BooleanCodec {
	return BooleanCodec{}
}

func (BooleanCodec) Kind() Kind { return KindBoolean }

func (BooleanCodec) Encode(v bool) (string, error) {
	if v {
		return "1", nil
	}

	return "0", nil
}

func (BooleanCodec) Decode(text string) (bool, error) {
	switch text {
	case "1":
		return true, nil
	case "0":
		return false, nil
	default:
		return false, NewMalformedReplyError(text, KindBoolean, nil)
	}
}

// TokenBooleanCodec maps a boolean onto a pair of mnemonic tokens, such as TEXT/NORM for a display mode.
// Tokens are compared case-insensitively when decoding.
type TokenBooleanCodec struct {
	trueToken  string
	falseToken string
}

var _ Codec[bool] = (*TokenBooleanCodec)(nil)

// NewTokenBoolean returns a boolean codec sending trueToken for true and falseToken for false.
func NewTokenBoolean(trueToken, falseToken string) *TokenBooleanCodec {
	return &TokenBooleanCodec{trueToken: trueToken, falseToken: falseToken}
}

func (c *TokenBooleanCodec) Kind() Kind { return KindBoolean }

func (c *TokenBooleanCodec) Encode(v bool) (string, error) {
	if v {
		return c.trueToken, nil
	}

	return c.falseToken, nil
}

func (c *TokenBooleanCodec) Decode(text string) (bool, error) {
	switch {
	case strings.EqualFold(text, c.trueToken):
		return true, nil
	case strings.EqualFold(text, c.falseToken):
		return false, nil
	default:
		return false, NewMalformedReplyError(text, KindBoolean, nil)
	}
}
