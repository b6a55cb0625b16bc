package codec

// Kind names the value kind a codec handles. It is carried by decode errors.
type Kind string

const (
	KindBoolean        Kind = "boolean"
	KindQuantity       Kind = "quantity"
	KindInteger        Kind = "integer"
	KindFloat          Kind = "float"
	KindString         Kind = "string"
	KindEnum           Kind = "enum"
	KindClassification Kind = "classification"
	KindErrorQueue     Kind = "error queue"
)

// Codec encodes values of type T into command text and decodes reply text into T.
//
// Encode fails when v lies outside the codec's domain (the error matches ErrOutOfDomain).
// Decode fails with a *MalformedReplyError when text is not of the codec's kind.
type Codec[T any] interface {
	Kind() Kind
	Encode(v T) (string, error)
	Decode(text string) (T, error)
}
