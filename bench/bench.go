package bench

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/puzpuzpuz/xsync/v3"

	"github.com/arloliu/go-scpikit/logger"
	"github.com/arloliu/go-scpikit/property"
	"github.com/arloliu/go-scpikit/transport"
)

var (
	// ErrStationExists indicates an Attach with a name already in use.
	ErrStationExists = errors.New("station already attached")

	// ErrUnknownStation indicates a name that is not attached.
	ErrUnknownStation = errors.New("unknown station")

	// ErrStationDetached indicates work submitted to a detached station.
	ErrStationDetached = errors.New("station detached")
)

// Station is one instrument on a bench.
type Station struct {
	name    string
	session *property.Session

	mu       sync.Mutex
	detached bool
}

// Name returns the station name.
func (s *Station) Name() string { return s.name }

// Do runs fn with the station session. Calls on the same station never overlap, so fn may perform any
// number of complete exchanges without interleaving with other work.
func (s *Station) Do(fn func(session *property.Session) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.detached {
		return fmt.Errorf("%w: %s", ErrStationDetached, s.name)
	}

	return fn(s.session)
}

// Bench holds the attached stations by name.
type Bench struct {
	stations *xsync.MapOf[string, *Station]
	logger   logger.Logger
	metrics  *Metrics
}

// Option configures a Bench.
type Option func(*Bench)

// WithLogger sets the bench logger. Sessions created by Attach log through a child logger carrying the
// station name.
func WithLogger(l logger.Logger) Option {
	return func(b *Bench) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithMetrics makes every attached session report to m.
func WithMetrics(m *Metrics) Option {
	return func(b *Bench) {
		b.metrics = m
	}
}

// New creates an empty bench.
func New(opts ...Option) *Bench {
	b := &Bench{
		stations: xsync.NewMapOf[string, *Station](),
		logger:   logger.GetLogger(),
	}
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Attach creates a session over tr and registers it as station name.
func (b *Bench) Attach(name string, tr transport.Transport, opts ...property.SessionOption) (*Station, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty name", ErrUnknownStation)
	}

	sessionOpts := []property.SessionOption{property.WithLogger(b.logger.With("station", name))}
	if b.metrics != nil {
		sessionOpts = append(sessionOpts, property.WithMetrics(b.metrics))
	}
	sessionOpts = append(sessionOpts, opts...)

	st := &Station{name: name, session: property.NewSession(tr, sessionOpts...)}
	if _, loaded := b.stations.LoadOrStore(name, st); loaded {
		return nil, fmt.Errorf("%w: %s", ErrStationExists, name)
	}
	b.logger.Info("station attached", "station", name)

	return st, nil
}

// Station returns the station called name.
func (b *Bench) Station(name string) (*Station, bool) {
	return b.stations.Load(name)
}

// Detach removes station name. Work running on the station completes first; later Do calls fail. The
// transport is closed when it implements io.Closer.
func (b *Bench) Detach(name string) error {
	st, ok := b.stations.LoadAndDelete(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownStation, name)
	}

	st.mu.Lock()
	st.detached = true
	st.mu.Unlock()

	b.logger.Info("station detached", "station", name)

	if c, ok := st.session.Transport().(io.Closer); ok {
		return c.Close()
	}

	return nil
}

// Names returns the attached station names in sorted order.
func (b *Bench) Names() []string {
	names := make([]string, 0, b.stations.Size())
	b.stations.Range(func(name string, _ *Station) bool {
		names = append(names, name)
		return true
	})
	sort.Strings(names)

	return names
}

// Len returns the number of attached stations.
func (b *Bench) Len() int { return b.stations.Size() }

// Range calls fn for every station until fn returns false.
func (b *Bench) Range(fn func(name string, st *Station) bool) {
	b.stations.Range(fn)
}

// Each runs fn for every station concurrently, one goroutine per station, and waits for all of them.
// The returned error joins the failures, each prefixed with its station name.
func (b *Bench) Each(fn func(st *Station) error) error {
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)

	b.stations.Range(func(name string, st *Station) bool {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fn(st); err != nil {
				mu.Lock()
				errs = append(errs, fmt.Errorf("%s: %w", name, err))
				mu.Unlock()
			}
		}()

		return true
	})
	wg.Wait()

	return errors.Join(errs...)
}
