// Package units provides conversion of coordinate units to SI base units.
package units

import (
	"fmt"
	"strings"
)

// Canonical length unit names as they appear on grid coordinates.
const (
	Metres     = "m"
	Kilometres = "km"
)

// metresPerUnit maps recognised length unit spellings to their size in
// metres.
var metresPerUnit = map[string]float64{
	"m":          1,
	"metre":      1,
	"metres":     1,
	"meter":      1,
	"meters":     1,
	"km":         1000,
	"kilometre":  1000,
	"kilometres": 1000,
	"kilometer":  1000,
	"kilometers": 1000,
}

// angularUnits are units of angle, which cannot be converted to a length
// without a local scale factor.
var angularUnits = map[string]bool{
	"degrees": true,
	"degree":  true,
	"radians": true,
	"radian":  true,
}

// IsLength reports whether the unit is a recognised length unit.
func IsLength(unit string) bool {
	_, ok := metresPerUnit[normalize(unit)]
	return ok
}

// IsAngular reports whether the unit measures angle rather than length.
func IsAngular(unit string) bool {
	return angularUnits[normalize(unit)]
}

// ToMetres converts a length in the named unit to metres.
func ToMetres(value float64, unit string) (float64, error) {
	scale, ok := metresPerUnit[normalize(unit)]
	if !ok {
		return 0, fmt.Errorf("cannot convert unit %q to metres", unit)
	}
	return value * scale, nil
}

func normalize(unit string) string {
	return strings.ToLower(strings.TrimSpace(unit))
}
