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
	"gonum.org/v1/gonum/interp"
)

// A ProfileTable holds tabulated atmosphere profile support points. All
// values are in SI base units: Height in m, Density in kg/m3, and
// ColumnDensity in kg/m2. Heights must be sorted in increasing order.
type ProfileTable struct {
	Height        []float64
	Density       []float64
	ColumnDensity []float64
}

// Len returns the number of rows in the table.
func (t *ProfileTable) Len() int { return len(t.Height) }

// A TableProfile interpolates a table that holds both the density and its
// pre-computed column density integral.
//
// The interpolation is done with cubic splines over log10 of the tabulated
// values to minimize spline wobble, given that real atmosphere density
// curves are roughly exponential. Heights are normalized to kilometers
// before fitting so that the conditioning of the fit does not depend on the
// magnitude of the inputs.
//
// Queries are only meaningful within the tabulated height range;
// out-of-range heights return extrapolated values.
type TableProfile struct {
	table         *ProfileTable
	density       interp.NaturalCubic // log10(density [kg m-3]) vs height [km]
	columnDensity interp.NaturalCubic // log10(column density [kg m-2]) vs height [km]
}

// NewTableProfile creates a TableProfile from the given table. Rows with
// negative heights or non-positive density or column density are dropped;
// the remaining rows must have strictly increasing heights. It returns an
// error if a required column is missing, if the columns have different
// lengths, or if the interpolator fit fails.
func NewTableProfile(table *ProfileTable) (*TableProfile, error) {
	for _, col := range []struct {
		name string
		data []float64
	}{
		{"height", table.Height},
		{"density", table.Density},
		{"column_density", table.ColumnDensity},
	} {
		if len(col.data) == 0 {
			return nil, fmt.Errorf("atmodens: missing expected column: %s in profile table", col.name)
		}
	}
	if len(table.Density) != len(table.Height) || len(table.ColumnDensity) != len(table.Height) {
		return nil, fmt.Errorf("atmodens: profile table columns have different lengths: height %d, density %d, column_density %d",
			len(table.Height), len(table.Density), len(table.ColumnDensity))
	}

	filtered := new(ProfileTable)
	for i, h := range table.Height {
		if h >= 0 && table.Density[i] > 0 && table.ColumnDensity[i] > 0 {
			filtered.Height = append(filtered.Height, h)
			filtered.Density = append(filtered.Density, table.Density[i])
			filtered.ColumnDensity = append(filtered.ColumnDensity, table.ColumnDensity[i])
		}
	}

	heightKm := make([]float64, filtered.Len())
	logDensity := make([]float64, filtered.Len())
	logColumnDensity := make([]float64, filtered.Len())
	for i, h := range filtered.Height {
		heightKm[i] = h / Kilometer.si
		logDensity[i] = math.Log10(filtered.Density[i])
		logColumnDensity[i] = math.Log10(filtered.ColumnDensity[i])
	}

	p := &TableProfile{table: filtered}
	if err := p.density.Fit(heightKm, logDensity); err != nil {
		return nil, fmt.Errorf("atmodens: fitting density interpolator: %v", err)
	}
	if err := p.columnDensity.Fit(heightKm, logColumnDensity); err != nil {
		return nil, fmt.Errorf("atmodens: fitting column density interpolator: %v", err)
	}
	return p, nil
}

// Table returns the filtered table the profile was built from.
func (p *TableProfile) Table() *ProfileTable { return p.table }

// Density returns the interpolated density [kg m-3] at the given height.
func (p *TableProfile) Density(height *unit.Unit) *unit.Unit {
	checkDims(height, unit.Meter, "height")
	return unit.New(math.Pow(10, p.density.Predict(height.Value()/Kilometer.si)), Density)
}

// ColumnDensity returns the interpolated column density [kg m-2] above the
// given height.
func (p *TableProfile) ColumnDensity(height *unit.Unit) *unit.Unit {
	checkDims(height, unit.Meter, "height")
	return unit.New(math.Pow(10, p.columnDensity.Predict(height.Value()/Kilometer.si)), ColumnDensity)
}
