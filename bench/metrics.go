package bench

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/arloliu/go-scpikit/property"
)

// Metrics counts the exchanges of every session on a bench. It implements property.Metrics and may be
// shared by any number of sessions.
type Metrics struct {
	writes   atomic.Uint64
	queries  atomic.Uint64
	acks     atomic.Uint64
	failures atomic.Uint64
}

var _ property.Metrics = (*Metrics)(nil)

// NewMetrics creates zeroed metrics.
func NewMetrics() *Metrics {
	return &Metrics{}
}

func (m *Metrics) ObserveWrite()   { m.writes.Add(1) }
func (m *Metrics) ObserveQuery()   { m.queries.Add(1) }
func (m *Metrics) ObserveAck()     { m.acks.Add(1) }
func (m *Metrics) ObserveFailure() { m.failures.Add(1) }

// Snapshot is a point-in-time copy of the counters.
type Snapshot struct {
	Writes   uint64
	Queries  uint64
	Acks     uint64
	Failures uint64
}

// Snapshot returns the current counter values.
func (m *Metrics) Snapshot() Snapshot {
	return Snapshot{
		Writes:   m.writes.Load(),
		Queries:  m.queries.Load(),
		Acks:     m.acks.Load(),
		Failures: m.failures.Load(),
	}
}

// Register exposes the counters to reg as scpi_writes_total, scpi_queries_total, scpi_acks_total and
// scpi_failures_total.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	collectors := []prometheus.Collector{
		counterFunc("scpi_writes_total", "Commands written without reading a reply.", &m.writes),
		counterFunc("scpi_queries_total", "Queries answered with a reply.", &m.queries),
		counterFunc("scpi_acks_total", "Acknowledged writes completed.", &m.acks),
		counterFunc("scpi_failures_total", "Exchanges that failed on the transport or while decoding.", &m.failures),
	}

	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return err
		}
	}

	return nil
}

func counterFunc(name, help string, v *atomic.Uint64) prometheus.CounterFunc {
	return prometheus.NewCounterFunc(prometheus.CounterOpts{Name: name, Help: help}, func() float64 {
		return float64(v.Load())
	})
}
