// Package hp6632b drives the HP/Agilent 6632B system DC power supply.
//
// Every setting of the supply is a statically declared property bound to one session; Properties lists them
// with their access modes and command templates. Commands follow the supply's SCPI dialect, e.g.
//
//	psu, err := hp6632b.New(property.NewSession(tr))
//	err = psu.Voltage.Set(unit.New(5, unit.Volt))    // VOLT 5.000000e+00
//	on, err := psu.Output.Get()                      // OUTP?
//	errs, err := psu.CheckErrorQueue()               // SYST:ERR:CODE:ALL?
package hp6632b
