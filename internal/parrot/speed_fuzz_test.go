package parrot

import (
	"errors"
	"math"
	"testing"

	apperrors "github.com/agbru/parrotcalc/internal/errors"
)

// FuzzSpeed checks that Speed never panics and that every result is either a
// known-variant speed within bounds or an UnknownVariantError.
func FuzzSpeed(f *testing.F) {
	f.Add(uint8(1), uint(0), 0.0, false)
	f.Add(uint8(2), uint(1), 0.0, false)
	f.Add(uint8(2), uint(2), 0.0, false)
	f.Add(uint8(3), uint(0), 1.5, true)
	f.Add(uint8(3), uint(0), 1.5, false)
	f.Add(uint8(3), uint(0), 2.0, false)
	f.Add(uint8(3), uint(0), 4.0, false)
	f.Add(uint8(0), uint(0), 0.0, false)
	f.Add(uint8(200), uint(7), 3.0, true)
	f.Add(uint8(3), uint(0), math.NaN(), false)

	f.Fuzz(func(t *testing.T, raw uint8, coconuts uint, voltage float64, nailed bool) {
		v := Variant(raw)
		s, err := Speed(v, Config{NumberOfCoconuts: coconuts, Voltage: voltage, Nailed: nailed})

		if !v.Valid() {
			if !errors.Is(err, apperrors.ErrUnknownVariant) {
				t.Fatalf("Speed(%s) error = %v, want ErrUnknownVariant", v, err)
			}
			return
		}
		if err != nil {
			t.Fatalf("Speed(%s) unexpected error: %v", v, err)
		}
		if math.IsNaN(s) {
			t.Fatalf("Speed(%s, voltage=%v, nailed=%v) = NaN", v, voltage, nailed)
		}
		if voltage < 0 {
			return
		}
		if s < 0 || s > FixedBaseSpeed {
			t.Errorf("Speed(%s, coconuts=%d, voltage=%v, nailed=%v) = %v out of [0, %v]",
				v, coconuts, voltage, nailed, s, FixedBaseSpeed)
		}
	})
}
