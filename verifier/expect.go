package verifier

import "testing"

// Expect creates an Exchange whose teardown is validated when the test finishes.
//
// Unconsumed writes or replies fail the test. A mismatch that occurred during the test also fails it, even
// when the code under test swallowed the returned error.
func Expect(t testing.TB, writes, reads []string, opts ...Option) *Exchange {
	t.Helper()

	ex := New(writes, reads, opts...)
	t.Cleanup(func() {
		if err := ex.Verify(); err != nil {
			t.Errorf("%v", err)
		}
	})

	return ex
}
