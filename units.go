/*
Copyright © 2026 the AtmoDens authors.
This file is part of AtmoDens.

AtmoDens is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

AtmoDens is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with AtmoDens.  If not, see <http://www.gnu.org/licenses/>.
*/

package atmodens

import (
	"fmt"
	"math"

	"github.com/ctessum/unit"
)

// Dimension sets for the quantities handled by this package.
var (
	// Density is mass per unit volume [kg m-3].
	Density = unit.Dimensions{unit.MassDim: 1, unit.LengthDim: -3}

	// ColumnDensity is mass per unit area [kg m-2].
	ColumnDensity = unit.Dimensions{unit.MassDim: 1, unit.LengthDim: -2}

	// Angle is a plane angle [rad].
	Angle = unit.Dimensions{unit.AngleDim: 1}
)

// An OutputUnit is a named unit that quantities can be expressed in for
// input and output. The value of a *unit.Unit is always held in SI base
// units; an OutputUnit holds the scale factor relating one such unit to SI.
type OutputUnit struct {
	name string
	si   float64 // value of one of this unit in SI base units
	dims unit.Dimensions
}

// Units accepted by ParseOutputUnit.
var (
	Meter      = OutputUnit{"m", 1, unit.Meter}
	Kilometer  = OutputUnit{"km", 1000, unit.Meter}
	Centimeter = OutputUnit{"cm", 0.01, unit.Meter}

	KilogramPerCubicMeter  = OutputUnit{"kg/m3", 1, Density}
	GramPerCubicCentimeter = OutputUnit{"g/cm3", 1000, Density}

	KilogramPerSquareMeter  = OutputUnit{"kg/m2", 1, ColumnDensity}
	GramPerSquareCentimeter = OutputUnit{"g/cm2", 10, ColumnDensity}
)

func (u OutputUnit) String() string { return u.name }

// Quantity returns the quantity corresponding to the value v expressed in
// unit u.
func (u OutputUnit) Quantity(v float64) *unit.Unit {
	return unit.New(v*u.si, u.dims)
}

// In returns the value of q expressed in unit u. It returns an error if the
// dimensions of q do not match those of u.
func (u OutputUnit) In(q *unit.Unit) (float64, error) {
	if err := q.Check(u.dims); err != nil {
		return math.NaN(), fmt.Errorf("atmodens: converting to %s: %v", u.name, err)
	}
	return q.Value() / u.si, nil
}

// ParseOutputUnit returns the OutputUnit with the given name.
func ParseOutputUnit(name string) (OutputUnit, error) {
	units := []OutputUnit{
		Meter, Kilometer, Centimeter,
		KilogramPerCubicMeter, GramPerCubicCentimeter,
		KilogramPerSquareMeter, GramPerSquareCentimeter,
	}
	for _, u := range units {
		if u.name == name {
			return u, nil
		}
	}
	return OutputUnit{}, fmt.Errorf("atmodens: '%s' is not a valid unit; valid options are m, km, cm, kg/m3, g/cm3, kg/m2, and g/cm2", name)
}

// Degrees returns an angle quantity for a value in degrees.
func Degrees(v float64) *unit.Unit {
	return unit.New(v*math.Pi/180, Angle)
}

// Radians returns an angle quantity for a value in radians.
func Radians(v float64) *unit.Unit {
	return unit.New(v, Angle)
}

// checkDims panics if the dimensions of q do not match want. Dimension
// mismatches in query arguments are programming errors and are handled the
// same way as in the arithmetic functions of the unit package.
func checkDims(q *unit.Unit, want unit.Dimensions, context string) {
	if err := q.Check(want); err != nil {
		panic(fmt.Errorf("atmodens: %s: %v", context, err))
	}
}
