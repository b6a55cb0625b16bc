// Package registry maps between short device tokens and symbolic enum values, and classifies numeric readings
// into coarse symbolic buckets through ordered thresholds.
//
// Both structures are immutable once constructed and implement codec.Codec, so they can be bound to a property
// like any other value codec.
//
// Lookup failures are hard errors by default (ErrUnknownToken, ErrOutOfRange). A table built with WithFallback
// instead resolves every failed lookup to the given catch-all value.
package registry
