// Package verifier provides a scripted stand-in for an instrument's wire channel, used to validate protocol
// translation without hardware.
//
// An Exchange is created with the ordered writes the code under test must issue and the ordered reply lines the
// instrument would send. Every write must equal the next expected write byte for byte; every read is served the
// next canned reply. At teardown both scripts must be fully consumed.
//
// The first mismatch is fatal to the scenario: it is returned to the caller immediately and every later
// operation on the Exchange fails with the same error, so nothing after a protocol bug can appear to succeed.
//
// Usage Example:
//
//	func TestOutput(t *testing.T) {
//	    ex := verifier.Expect(t, []string{"OUTP?", "OUTP 1"}, []string{"0"})
//	    psu, _ := hp6632b.New(property.NewSession(ex))
//	    on, err := psu.Output.Get()    // false
//	    err = psu.Output.Set(true)
//	}
//
// Outside of tests, Scenario.Run offers the same guarantee as a scoped call.
package verifier
