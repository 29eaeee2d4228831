package parrot

import "time"

//go:generate mockgen -source=observer.go -destination=mocks/mock_observer.go -package=mocks

// SpeedObserver is notified after every calculation made through a
// Calculator. Implementations must be safe for concurrent use when the
// Calculator is shared between goroutines.
type SpeedObserver interface {
	// Observe receives the variant requested, the speed computed (zero on
	// error), the time spent computing it and the error, if any. For a name
	// that failed to parse, v is the zero Variant.
	Observe(v Variant, speed float64, elapsed time.Duration, err error)
}

// ObserverFunc is a function adapter that implements SpeedObserver.
type ObserverFunc func(v Variant, speed float64, elapsed time.Duration, err error)

// Observe calls the underlying function.
func (f ObserverFunc) Observe(v Variant, speed float64, elapsed time.Duration, err error) {
	f(v, speed, elapsed, err)
}

// NoOpObserver discards every observation.
type NoOpObserver struct{}

// Observe does nothing.
func (NoOpObserver) Observe(Variant, float64, time.Duration, error) {}

// MultiObserver fans an observation out to each observer in order.
type MultiObserver []SpeedObserver

// Observe forwards to every observer.
func (m MultiObserver) Observe(v Variant, speed float64, elapsed time.Duration, err error) {
	for _, o := range m {
		o.Observe(v, speed, elapsed, err)
	}
}
