// Package apperrors defines structured error types for the parrot speed
// calculator, allowing callers to distinguish an unrecognised variant from an
// invalid runtime option while still carrying the underlying cause.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with %w.
// Wrapping types implement Unwrap() and the sentinel-backed types implement
// Is() so that errors.Is and errors.As work across the chain.
package apperrors
