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
	"strings"
	"testing"

	"github.com/ctessum/unit"
)

// The interpolation must pass through its own knots.
func TestTableProfileKnots(t *testing.T) {
	const tolerance = 1.e-8
	table := sampleExponentialTable(0, 100, 51)
	p, err := NewTableProfile(table)
	if err != nil {
		t.Fatal(err)
	}
	for i, h := range table.Height {
		height := unit.New(h, unit.Meter)
		if got, want := p.Density(height).Value(), table.Density[i]; math.Abs(got-want) > want*tolerance {
			t.Errorf("density at knot %g m: want %g, got %g", h, want, got)
		}
		if got, want := p.ColumnDensity(height).Value(), table.ColumnDensity[i]; math.Abs(got-want) > want*tolerance {
			t.Errorf("column density at knot %g m: want %g, got %g", h, want, got)
		}
	}
}

// An exponential profile is linear in log space, so the log-space spline
// must reproduce it closely between the knots as well.
func TestTableProfileBetweenKnots(t *testing.T) {
	const tolerance = 1.e-9
	want := DefaultExponentialProfile()
	p, err := NewTableProfile(sampleExponentialTable(0, 100, 51))
	if err != nil {
		t.Fatal(err)
	}
	for h := 1.; h < 100; h += 2 { // offset from the 2 km knot spacing
		height := Kilometer.Quantity(h)
		w := want.ColumnDensity(height).Value()
		if got := p.ColumnDensity(height).Value(); math.Abs(got-w) > w*tolerance {
			t.Errorf("at %g km: want %g, got %g", h, w, got)
		}
	}
}

// The interpolated profile should agree with the five-layer model it is
// tabulated from to well within a percent between the knots.
func TestTableProfileMatchesFiveLayer(t *testing.T) {
	const tolerance = 1.e-3
	want := USStandardAtmosphere()
	table := new(ProfileTable)
	for h := 0.; h <= 90; h++ {
		height := Kilometer.Quantity(h)
		table.Height = append(table.Height, height.Value())
		table.Density = append(table.Density, want.Density(height).Value())
		table.ColumnDensity = append(table.ColumnDensity, want.ColumnDensity(height).Value())
	}
	p, err := NewTableProfile(table)
	if err != nil {
		t.Fatal(err)
	}
	for h := 0.5; h < 90; h += 1.5 {
		height := Kilometer.Quantity(h)
		w := want.ColumnDensity(height).Value()
		if got := p.ColumnDensity(height).Value(); math.Abs(got-w) > w*tolerance {
			t.Errorf("at %g km: want %g, got %g", h, w, got)
		}
	}
}

func TestTableProfileMissingColumn(t *testing.T) {
	table := sampleExponentialTable(0, 100, 51)
	table.ColumnDensity = nil
	_, err := NewTableProfile(table)
	if err == nil {
		t.Fatal("missing column_density column: want error, got nil")
	}
	if !strings.Contains(err.Error(), "column_density") {
		t.Errorf("error does not name the missing column: %v", err)
	}
}

func TestTableProfileColumnLengths(t *testing.T) {
	table := sampleExponentialTable(0, 100, 51)
	table.Density = table.Density[:50]
	if _, err := NewTableProfile(table); err == nil {
		t.Error("mismatched column lengths: want error, got nil")
	}
}

// Rows with negative heights or non-positive values are dropped at
// construction.
func TestTableProfileFilter(t *testing.T) {
	table := sampleExponentialTable(0, 100, 51)
	table.Height[0] = -1000 // dropped: negative height
	table.Density[1] = 0    // dropped: non-positive density
	table.ColumnDensity[2] = -5
	p, err := NewTableProfile(table)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := p.Table().Len(), 48; got != want {
		t.Errorf("filtered rows: want %d, got %d", want, got)
	}
}
