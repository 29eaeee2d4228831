// Package parrot computes the flight speed of a parrot from its variant and
// its load configuration.
//
// The calculation is a pure function, Speed, dispatching on a closed set of
// variants. Calculator wraps it with logging, tracing and an observer hook
// for embedders that want observability; the value it returns is always the
// value Speed returns.
package parrot
