// Package property binds named instrument properties to command templates and value codecs, and mediates all
// device-facing traffic for an instrument through a Session.
//
// A Session offers the three exchange primitives of the command language:
//
//   - SendCmd: a plain write; no reply is expected.
//   - Query: a write followed by exactly one reply line, which is returned to the caller.
//   - AckWrite: a write followed by exactly one reply line that only signals completion.
//
// Property[T] turns these into typed Get/Set operations. Its access mode is derived from the templates it is
// declared with: a property without a query template is write-only, one without a set template is read-only.
// Action[T] is the explicit acknowledged-write primitive for commands that look like actions but still answer.
//
// Usage Example:
//
//	s := property.NewSession(tr)
//	voltage := property.Must(property.New(s, property.Spec[unit.Quantity]{
//	    Name:  "voltage",
//	    Query: "VOLT?",
//	    Set:   "VOLT %s",
//	    Codec: codec.NewQuantity(unit.Volt),
//	}))
//	v, err := voltage.Get()                      // VOLT? -> 10.0 -> 10 V
//	err = voltage.Set(unit.New(1, unit.Volt))    // VOLT 1.000000e+00
package property
