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
	"math"

	"github.com/ctessum/unit"
)

// A DensityProfile is a model of atmosphere mass density as a function of
// height above sea level.
//
// Implementations are only guaranteed to give meaningful results within
// their fitted or tabulated height domain; queries outside that domain are
// not checked and yield extrapolated values.
type DensityProfile interface {
	// Density returns the density [kg m-3] at the given height.
	// It panics if height is not length-dimensioned.
	Density(height *unit.Unit) *unit.Unit

	// ColumnDensity returns the integral of the density from the given
	// height to the top of the atmosphere [kg m-2], i.e. the total mass
	// per unit area above that height. It panics if height is not
	// length-dimensioned.
	ColumnDensity(height *unit.Unit) *unit.Unit
}

// LineOfSightIntegral returns the column density [kg m-2] along a line of
// sight from the given distance to the top of the atmosphere, in the
// direction specified by the zenith angle:
//
//	X(d, ψ) = ColumnDensity(d·cos ψ) / cos ψ
//
// The atmosphere is assumed to be a flat, horizontally stratified slab, so
// the slant distance projects onto the vertical axis with cos ψ and the
// vertical column density scales back with the 1/cos ψ air-mass factor. As
// the zenith angle approaches 90° the result grows without bound; callers
// must guard near-horizontal lines of sight themselves.
//
// The same formula applies to every profile implementation; it is defined
// here once rather than on the interface so that implementations cannot
// diverge in it.
func LineOfSightIntegral(p DensityProfile, distance, zenithAngle *unit.Unit) *unit.Unit {
	checkDims(distance, unit.Meter, "line-of-sight distance")
	checkDims(zenithAngle, Angle, "zenith angle")
	cosZ := unit.New(math.Cos(zenithAngle.Value()), unit.Dimless)
	return unit.Div(p.ColumnDensity(unit.Mul(distance, cosZ)), cosZ)
}
