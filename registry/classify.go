package registry

import (
	"fmt"
	"math"
	"sort"

	"github.com/arloliu/go-scpikit/codec"
)

// Threshold is a classification entry: values at or above Lower (and below the next threshold) map to Value.
type Threshold[T comparable] struct {
	Lower float64
	Value T
}

// ClassificationTable maps numeric readings to symbolic buckets. A reading maps to the entry with the greatest
// lower bound not exceeding it; it is not a nearest-match lookup.
type ClassificationTable[T comparable] struct {
	entries []Threshold[T]
	policy  policy[T]
}

var _ codec.Codec[int] = (*ClassificationTable[int])(nil)

// NewClassificationTable builds a table from thresholds given in any order.
// Lower bounds and values must both be unique.
func NewClassificationTable[T comparable](thresholds []Threshold[T], opts ...Option[T]) (*ClassificationTable[T], error) {
	if len(thresholds) == 0 {
		return nil, fmt.Errorf("%w: no thresholds", ErrInvalidTable)
	}

	entries := make([]Threshold[T], len(thresholds))
	copy(entries, thresholds)
	for _, e := range entries {
		if math.IsNaN(e.Lower) {
			return nil, fmt.Errorf("%w: NaN threshold for value %v", ErrInvalidTable, e.Value)
		}
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Lower < entries[j].Lower })

	seen := make(map[T]struct{}, len(entries))
	for i, e := range entries {
		if i > 0 && entries[i-1].Lower == e.Lower {
			return nil, fmt.Errorf("%w: duplicate threshold %g", ErrInvalidTable, e.Lower)
		}
		if _, ok := seen[e.Value]; ok {
			return nil, fmt.Errorf("%w: duplicate value %v", ErrInvalidTable, e.Value)
		}
		seen[e.Value] = struct{}{}
	}

	return &ClassificationTable[T]{entries: entries, policy: newPolicy(opts)}, nil
}

// MustClassificationTable is like NewClassificationTable but panics on error.
func MustClassificationTable[T comparable](thresholds []Threshold[T], opts ...Option[T]) *ClassificationTable[T] {
	t, err := NewClassificationTable(thresholds, opts...)
	if err != nil {
		panic(err)
	}

	return t
}

// Classify returns the bucket of x. NaN belongs to no bucket and is handled like a value below the lowest threshold.
func (t *ClassificationTable[T]) Classify(x float64) (T, error) {
	// index of the first threshold strictly above x
	i := sort.Search(len(t.entries), func(i int) bool { return t.entries[i].Lower > x })
	if i == 0 || math.IsNaN(x) {
		if t.policy.hasFallback {
			return t.policy.fallback, nil
		}

		var zero T
		return zero, &OutOfRangeError{Value: x, Lower: t.entries[0].Lower}
	}

	return t.entries[i-1].Value, nil
}

// Lower returns the lower bound of the bucket v.
func (t *ClassificationTable[T]) Lower(v T) (float64, error) {
	for _, e := range t.entries {
		if e.Value == v {
			return e.Lower, nil
		}
	}

	return 0, &UnknownValueError{Value: v}
}

// Thresholds returns the entries in ascending order.
func (t *ClassificationTable[T]) Thresholds() []Threshold[T] {
	entries := make([]Threshold[T], len(t.entries))
	copy(entries, t.entries)

	return entries
}

func (t *ClassificationTable[T]) Kind() codec.Kind { return codec.KindClassification }

// Encode sends the lower bound of v's bucket in the fixed scientific form.
func (t *ClassificationTable[T]) Encode(v T) (string, error) {
	lower, err := t.Lower(v)
	if err != nil {
		return "", err
	}

	return codec.FormatScientific(lower)
}

// Decode parses text as a number and classifies it. Unparsable text is a *codec.MalformedReplyError.
func (t *ClassificationTable[T]) Decode(text string) (T, error) {
	x, err := codec.ParseNumber(text)
	if err != nil {
		var zero T
		return zero, codec.NewMalformedReplyError(text, codec.KindClassification, nil)
	}

	return t.Classify(x)
}
