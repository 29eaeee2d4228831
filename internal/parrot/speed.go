package parrot

import (
	"math"

	apperrors "github.com/agbru/parrotcalc/internal/errors"
)

// Config is the load a parrot flies with. Fields are independent and a
// variant reads only the ones its formula needs.
type Config struct {
	NumberOfCoconuts uint
	Voltage          float64
	Nailed           bool
}

// Parrot pairs a variant with its configuration.
type Parrot struct {
	variant Variant
	config  Config
}

// New creates a Parrot. The variant is not checked here; an unknown variant
// surfaces as an error from Speed.
func New(v Variant, cfg Config) Parrot {
	return Parrot{variant: v, config: cfg}
}

// Variant returns the parrot's variant.
func (p Parrot) Variant() Variant { return p.variant }

// Config returns the parrot's configuration.
func (p Parrot) Config() Config { return p.config }

// Speed returns the parrot's flight speed.
func (p Parrot) Speed() (float64, error) {
	return Speed(p.variant, p.config)
}

// Speed computes the flight speed for the given variant and configuration.
//
//   - European: BaseSpeed.
//   - African: BaseSpeed less LoadFactor per coconut, never below zero.
//   - NorwegianBlue: zero when nailed, otherwise Voltage*BaseSpeed capped at
//     FixedBaseSpeed. A NaN voltage flies at FixedBaseSpeed.
//
// Any other variant value returns an apperrors.UnknownVariantError.
func Speed(v Variant, cfg Config) (float64, error) {
	switch v {
	case European:
		return BaseSpeed, nil
	case African:
		return math.Max(0, BaseSpeed-LoadFactor*float64(cfg.NumberOfCoconuts)), nil
	case NorwegianBlue:
		if cfg.Nailed {
			return 0, nil
		}
		s := cfg.Voltage * BaseSpeed
		if math.IsNaN(s) {
			return FixedBaseSpeed, nil
		}
		return math.Min(s, FixedBaseSpeed), nil
	default:
		return 0, apperrors.NewUnknownVariantError(v.String())
	}
}
