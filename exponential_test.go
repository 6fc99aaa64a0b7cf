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
	"testing"

	"github.com/ctessum/unit"
)

func TestExponentialProfile(t *testing.T) {
	const tolerance = 1.e-12

	p := DefaultExponentialProfile()

	rho0, err := GramPerCubicCentimeter.In(p.Density(Kilometer.Quantity(0)))
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(rho0-0.00125) > tolerance {
		t.Errorf("sea level density: want 0.00125 g/cm3, got %g", rho0)
	}

	x0, err := GramPerSquareCentimeter.In(p.ColumnDensity(Kilometer.Quantity(0)))
	if err != nil {
		t.Fatal(err)
	}
	// ρ0·h0 = 0.00125 g/cm3 × 8×10⁵ cm = 1000 g/cm2.
	if math.Abs(x0-1000) > 1000*tolerance {
		t.Errorf("sea level column density: want 1000 g/cm2, got %g", x0)
	}

	rho8 := p.Density(Kilometer.Quantity(8)).Value()
	if want := 1.25 / math.E; math.Abs(rho8-want) > want*tolerance {
		t.Errorf("density at scale height: want %g kg/m3, got %g", want, rho8)
	}
}

func TestExponentialProfileMonotonic(t *testing.T) {
	p := DefaultExponentialProfile()
	prev := math.Inf(1)
	for h := 0.; h <= 100; h += 5 {
		x := p.ColumnDensity(Kilometer.Quantity(h)).Value()
		if x > prev {
			t.Errorf("column density not monotonically non-increasing at %g km: %g > %g",
				h, x, prev)
		}
		prev = x
	}
}

// The density must equal the negated derivative of the column density.
func TestExponentialProfileDerivative(t *testing.T) {
	const (
		dh        = 1. // m
		tolerance = 1.e-6
	)
	p := DefaultExponentialProfile()
	for _, h := range []float64{0, 1000, 8000, 25000, 80000} {
		rho := p.Density(unit.New(h, unit.Meter)).Value()
		diff := (p.ColumnDensity(unit.New(h-dh, unit.Meter)).Value() -
			p.ColumnDensity(unit.New(h+dh, unit.Meter)).Value()) / (2 * dh)
		if math.Abs(diff-rho) > rho*tolerance {
			t.Errorf("at %g m: want density %g, got finite difference %g", h, rho, diff)
		}
	}
}

func TestNewExponentialProfileDimensions(t *testing.T) {
	h0 := Kilometer.Quantity(8)
	rho0 := GramPerCubicCentimeter.Quantity(0.00125)

	if _, err := NewExponentialProfile(h0, rho0); err != nil {
		t.Errorf("valid parameters: unexpected error %v", err)
	}
	if _, err := NewExponentialProfile(rho0, rho0); err == nil {
		t.Error("density-dimensioned scale height: want error, got nil")
	}
	if _, err := NewExponentialProfile(h0, h0); err == nil {
		t.Error("length-dimensioned scale density: want error, got nil")
	}
}
