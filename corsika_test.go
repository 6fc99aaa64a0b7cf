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

// The parameterization is fit to be continuous, so the column density
// computed by the layers on either side of each interior boundary must
// agree.
func TestUSStandardAtmosphereContinuity(t *testing.T) {
	const (
		dh        = 1.e-3 // m
		tolerance = 1.e-3 // relative
	)
	p := USStandardAtmosphere()
	for _, bound := range p.Table().Height[1:] {
		below := p.ColumnDensity(unit.New(bound-dh, unit.Meter)).Value()
		above := p.ColumnDensity(unit.New(bound+dh, unit.Meter)).Value()
		if math.Abs(below-above) > below*tolerance {
			t.Errorf("discontinuity at %g m: below %g, above %g", bound, below, above)
		}
	}
}

func TestUSStandardAtmosphereSeaLevel(t *testing.T) {
	const tolerance = 0.01 // g/cm2
	p := USStandardAtmosphere()
	got, err := GramPerSquareCentimeter.In(p.ColumnDensity(Kilometer.Quantity(0)))
	if err != nil {
		t.Fatal(err)
	}
	// a1 + b1 at h=0.
	if want := -186.555305 + 1222.6562; math.Abs(got-want) > tolerance {
		t.Errorf("sea level grammage: want %g g/cm2, got %g", want, got)
	}
}

// The column density of the linear top layer runs out at the top of the
// modeled atmosphere, about 112.8 km.
func TestUSStandardAtmosphereTop(t *testing.T) {
	p := USStandardAtmosphere()
	x112 := p.ColumnDensity(Kilometer.Quantity(112.8)).Value()
	if math.Abs(x112) > 1.e-3 { // kg/m2
		t.Errorf("column density at 112.8 km: want ≈0, got %g", x112)
	}
	x100 := p.ColumnDensity(Kilometer.Quantity(100)).Value()
	if x100 <= 0 {
		t.Errorf("column density at 100 km: want positive, got %g", x100)
	}
}

func TestUSStandardAtmosphereMonotonic(t *testing.T) {
	p := USStandardAtmosphere()
	prev := math.Inf(1)
	for h := 0.; h <= 110; h += 0.5 {
		x := p.ColumnDensity(Kilometer.Quantity(h)).Value()
		if x > prev {
			t.Errorf("column density not monotonically non-increasing at %g km: %g > %g",
				h, x, prev)
		}
		prev = x
	}
}
