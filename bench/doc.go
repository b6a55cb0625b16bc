// Package bench manages a set of instruments driven concurrently, one session per instrument.
//
// A single instrument only supports one exchange at a time, because replies carry nothing that ties them to
// the query they answer. Each Station therefore serializes the units of work submitted through Do, while
// different stations run independently of each other.
//
// Usage Example:
//
//	b := bench.New(bench.WithMetrics(bench.NewMetrics()))
//	psu1, _ := b.Attach("psu1", tr1)
//	psu2, _ := b.Attach("psu2", tr2)
//
//	err := b.Each(func(st *bench.Station) error {
//	    return st.Do(func(s *property.Session) error {
//	        return s.SendCmd("OUTP 0")
//	    })
//	})
package bench
