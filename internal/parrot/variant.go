package parrot

import (
	"sort"
	"strconv"
	"strings"

	apperrors "github.com/agbru/parrotcalc/internal/errors"
)

// Variant selects the speed formula. The zero value is deliberately not a
// variant so that an unset field is caught by Speed.
type Variant uint8

// Recognised variants, in declaration order.
const (
	European Variant = iota + 1
	African
	NorwegianBlue
)

var variantNames = map[Variant]string{
	European:      "european",
	African:       "african",
	NorwegianBlue: "norwegian_blue",
}

// aliases accepted by ParseVariant in addition to the canonical names.
var variantAliases = map[string]Variant{
	"norwegian-blue": NorwegianBlue,
	"norwegianblue":  NorwegianBlue,
}

// String returns the canonical lower-case name, or "Variant(N)" for values
// outside the enumeration.
func (v Variant) String() string {
	if name, ok := variantNames[v]; ok {
		return name
	}
	return "Variant(" + strconv.Itoa(int(v)) + ")"
}

// Valid reports whether v is one of the recognised variants.
func (v Variant) Valid() bool {
	_, ok := variantNames[v]
	return ok
}

// ParseVariant resolves a variant from its name. Matching is case-insensitive
// and ignores surrounding whitespace. An unrecognised name yields an
// apperrors.UnknownVariantError carrying the name as given.
func ParseVariant(name string) (Variant, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for v, n := range variantNames {
		if n == key {
			return v, nil
		}
	}
	if v, ok := variantAliases[key]; ok {
		return v, nil
	}
	return 0, apperrors.NewUnknownVariantError(name)
}

// Variants returns every recognised variant in declaration order.
func Variants() []Variant {
	return []Variant{European, African, NorwegianBlue}
}

// Names returns the canonical variant names, sorted alphabetically.
func Names() []string {
	names := make([]string, 0, len(variantNames))
	for _, n := range variantNames {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
