// Package unit provides the physical quantities exchanged with instruments: a magnitude paired with a unit of a
// known dimension. Conversions go through the dimension's base unit (volt, ampere, second, hertz, watt).
package unit

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrIncompatible is returned when converting between units of different dimensions.
var ErrIncompatible = errors.New("incompatible units")

// Dimension identifies what a unit measures.
type Dimension string

const (
	Dimensionless Dimension = ""
	Voltage       Dimension = "voltage"
	Current       Dimension = "current"
	Time          Dimension = "time"
	Frequency     Dimension = "frequency"
	Power         Dimension = "power"
)

// Unit is a named scale of a dimension. Scale is the size of one unit expressed in the dimension's base unit.
type Unit struct {
	Symbol    string
	Dimension Dimension
	Scale     float64
}

var (
	One = Unit{Symbol: "", Dimension: Dimensionless, Scale: 1}

	Volt      = Unit{Symbol: "V", Dimension: Voltage, Scale: 1}
	Millivolt = Unit{Symbol: "mV", Dimension: Voltage, Scale: 1e-3}
	Kilovolt  = Unit{Symbol: "kV", Dimension: Voltage, Scale: 1e3}

	Ampere      = Unit{Symbol: "A", Dimension: Current, Scale: 1}
	Milliampere = Unit{Symbol: "mA", Dimension: Current, Scale: 1e-3}
	Microampere = Unit{Symbol: "uA", Dimension: Current, Scale: 1e-6}

	Second      = Unit{Symbol: "s", Dimension: Time, Scale: 1}
	Millisecond = Unit{Symbol: "ms", Dimension: Time, Scale: 1e-3}
	Microsecond = Unit{Symbol: "us", Dimension: Time, Scale: 1e-6}

	Hertz     = Unit{Symbol: "Hz", Dimension: Frequency, Scale: 1}
	Kilohertz = Unit{Symbol: "kHz", Dimension: Frequency, Scale: 1e3}

	Watt      = Unit{Symbol: "W", Dimension: Power, Scale: 1}
	Milliwatt = Unit{Symbol: "mW", Dimension: Power, Scale: 1e-3}
)

// Base returns the base unit of u's dimension.
func (u Unit) Base() Unit {
	switch u.Dimension {
	case Voltage:
		return Volt
	case Current:
		return Ampere
	case Time:
		return Second
	case Frequency:
		return Hertz
	case Power:
		return Watt
	default:
		return One
	}
}

func (u Unit) String() string { return u.Symbol }

// Quantity is a magnitude in a unit.
type Quantity struct {
	Value float64
	Unit  Unit
}

// New returns the quantity v expressed in u.
func New(v float64, u Unit) Quantity {
	return Quantity{Value: v, Unit: u}
}

// FromBase returns the quantity whose base-unit magnitude is f, expressed in u.
func FromBase(f float64, u Unit) Quantity {
	return Quantity{Value: f / u.Scale, Unit: u}
}

// ToBase returns the magnitude of q in the base unit of its dimension.
func (q Quantity) ToBase() float64 {
	return q.Value * q.Unit.Scale
}

// In converts q to u.
func (q Quantity) In(u Unit) (Quantity, error) {
	if q.Unit.Dimension != u.Dimension {
		return Quantity{}, fmt.Errorf("%w: %s to %s", ErrIncompatible, q.Unit.dimensionName(), u.dimensionName())
	}

	return FromBase(q.ToBase(), u), nil
}

// relTolerance bounds the relative error tolerated by Equal.
const relTolerance = 1e-9

// Equal reports whether q and o denote the same physical amount, regardless of the unit each is expressed in.
func (q Quantity) Equal(o Quantity) bool {
	if q.Unit.Dimension != o.Unit.Dimension {
		return false
	}

	a, b := q.ToBase(), o.ToBase()
	if a == b {
		return true
	}

	return math.Abs(a-b) <= relTolerance*math.Max(math.Abs(a), math.Abs(b))
}

func (q Quantity) String() string {
	s := strconv.FormatFloat(q.Value, 'g', -1, 64)
	if q.Unit.Symbol == "" {
		return s
	}

	return s + " " + q.Unit.Symbol
}

func (u Unit) dimensionName() string {
	if u.Dimension == Dimensionless {
		return "dimensionless"
	}

	return string(u.Dimension)
}
