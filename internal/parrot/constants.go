package parrot

// ─────────────────────────────────────────────────────────────────────────────
// Speed Model Constants
// ─────────────────────────────────────────────────────────────────────────────

const (
	// BaseSpeed is the unladen speed shared by every variant, and the
	// per-volt speed of a Norwegian Blue.
	BaseSpeed = 12.0

	// LoadFactor is the speed an African parrot loses per coconut carried.
	LoadFactor = 9.0

	// FixedBaseSpeed caps the voltage-driven speed of a Norwegian Blue.
	FixedBaseSpeed = 24.0
)
