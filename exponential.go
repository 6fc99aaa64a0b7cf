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

// An ExponentialProfile models the atmosphere density as a single
// exponential,
//
//	ρ(h) = ρ0·exp(−h/h0),
//
// where h0 is the scale height and ρ0 the density at sea level. The column
// density integral has the closed form X(h) = ρ0·h0·exp(−h/h0), so the
// profile is defined (and exact) at every height.
type ExponentialProfile struct {
	scaleHeight  float64 // m
	scaleDensity float64 // kg m-3
}

// NewExponentialProfile creates an ExponentialProfile from the given scale
// height (length) and scale density (mass/volume). It returns an error if
// either parameter has the wrong dimensions.
func NewExponentialProfile(scaleHeight, scaleDensity *unit.Unit) (*ExponentialProfile, error) {
	if err := scaleHeight.Check(unit.Meter); err != nil {
		return nil, fmt.Errorf("atmodens: exponential profile scale height: %v", err)
	}
	if err := scaleDensity.Check(Density); err != nil {
		return nil, fmt.Errorf("atmodens: exponential profile scale density: %v", err)
	}
	return &ExponentialProfile{
		scaleHeight:  scaleHeight.Value(),
		scaleDensity: scaleDensity.Value(),
	}, nil
}

// DefaultExponentialProfile returns an ExponentialProfile with the standard
// sea-level-normalized parameters h0 = 8 km and ρ0 = 0.00125 g/cm3.
func DefaultExponentialProfile() *ExponentialProfile {
	return &ExponentialProfile{scaleHeight: 8000, scaleDensity: 1.25}
}

// Density returns the density [kg m-3] at the given height.
func (p *ExponentialProfile) Density(height *unit.Unit) *unit.Unit {
	checkDims(height, unit.Meter, "height")
	return unit.New(p.scaleDensity*math.Exp(-height.Value()/p.scaleHeight), Density)
}

// ColumnDensity returns the integral of the density from the given height
// to infinity [kg m-2].
func (p *ExponentialProfile) ColumnDensity(height *unit.Unit) *unit.Unit {
	checkDims(height, unit.Meter, "height")
	return unit.New(p.scaleDensity*p.scaleHeight*math.Exp(-height.Value()/p.scaleHeight),
		ColumnDensity)
}
