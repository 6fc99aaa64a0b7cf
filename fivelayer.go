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
	"sort"

	"github.com/ctessum/sparse"
	"github.com/ctessum/unit"
)

// nLayers is the number of layers in the CORSIKA atmosphere
// parameterization.
const nLayers = 5

// A LayerTable holds the parameters of a five-layer atmosphere model, one
// row per layer ordered from the bottom of the atmosphere up. All values
// are in SI base units: Height (the lower boundary of each layer) and C in
// m, A and B in kg/m2.
type LayerTable struct {
	Height []float64
	A      []float64
	B      []float64
	C      []float64
}

// A layer is one segment of a FiveLayerProfile: the height of its lower
// boundary [m], its column density function [kg m-2] and the derivative of
// that function with respect to height [kg m-3].
type layer struct {
	bound         float64
	columnDensity func(h float64) float64
	derivative    func(h float64) float64
}

// A FiveLayerProfile is the CORSIKA five-layer atmosphere model. The column
// density of layers 1–4 is modeled as
//
//	X(h) = a + b·exp(−h/c)
//
// and that of layer 5 as
//
//	X(h) = a − b·h/c.
//
// The density at a height is −X′(h) for the layer containing that height. A
// height exactly at a layer boundary belongs to the layer above the
// boundary; heights below the first boundary evaluate the first layer.
//
// References
//
// D. Heck and T. Pierog, "Extensive Air Shower Simulation with CORSIKA:
// A User's Guide", 2021, Appendix F.
type FiveLayerProfile struct {
	table  *LayerTable
	layers [nLayers]layer
	bounds []float64 // m, ascending lower boundaries
}

// NewFiveLayerProfile creates a FiveLayerProfile from the given parameter
// table, which must have exactly 5 rows with ascending heights.
func NewFiveLayerProfile(table *LayerTable) (*FiveLayerProfile, error) {
	for _, col := range []struct {
		name string
		data []float64
	}{
		{"height", table.Height},
		{"a", table.A},
		{"b", table.B},
		{"c", table.C},
	} {
		if len(col.data) != nLayers {
			return nil, fmt.Errorf("atmodens: five-layer profile requires exactly %d rows; column %s has %d",
				nLayers, col.name, len(col.data))
		}
	}

	p := &FiveLayerProfile{table: table, bounds: table.Height}
	for i := 0; i < nLayers; i++ {
		a, b, c := table.A[i], table.B[i], table.C[i]
		p.layers[i].bound = table.Height[i]
		if i < nLayers-1 { // exponential layers
			p.layers[i].columnDensity = func(h float64) float64 { return a + b*math.Exp(-h/c) }
			p.layers[i].derivative = func(h float64) float64 { return -b / c * math.Exp(-h/c) }
		} else { // linear top layer
			p.layers[i].columnDensity = func(h float64) float64 { return a - b*h/c }
			p.layers[i].derivative = func(h float64) float64 { return -b / c }
		}
	}
	return p, nil
}

// FiveLayerProfileFromArray creates a FiveLayerProfile from a 5×5 block of
// numbers with columns [height, a, b, c, 1/c] in units of
// [cm, g/cm2, g/cm2, cm, cm-1], the form in which air-shower simulation
// data formats deliver atmosphere parameters. The reciprocal column is
// redundant and is ignored. It returns an error if the shape of the block
// is not exactly (5, 5).
func FiveLayerProfileFromArray(block *sparse.DenseArray) (*FiveLayerProfile, error) {
	if len(block.Shape) != 2 || block.Shape[0] != nLayers || block.Shape[1] != nLayers {
		return nil, fmt.Errorf("atmodens: expected a block with shape (5, 5), got %v", block.Shape)
	}
	t := &LayerTable{
		Height: make([]float64, nLayers),
		A:      make([]float64, nLayers),
		B:      make([]float64, nLayers),
		C:      make([]float64, nLayers),
	}
	for i := 0; i < nLayers; i++ {
		t.Height[i] = block.Get(i, 0) * Centimeter.si
		t.A[i] = block.Get(i, 1) * GramPerSquareCentimeter.si
		t.B[i] = block.Get(i, 2) * GramPerSquareCentimeter.si
		t.C[i] = block.Get(i, 3) * Centimeter.si
	}
	return NewFiveLayerProfile(t)
}

// Table returns the parameter table the profile was built from.
func (p *FiveLayerProfile) Table() *LayerTable { return p.table }

// layerAt returns the layer whose boundary interval contains the height h
// [m]: the layer with the largest lower boundary ≤ h, following bucketed
// histogram semantics. Heights below the first boundary select the first
// layer.
func (p *FiveLayerProfile) layerAt(h float64) layer {
	i := sort.Search(len(p.bounds), func(i int) bool { return p.bounds[i] > h }) - 1
	if i < 0 {
		i = 0
	}
	return p.layers[i]
}

// Density returns the density [kg m-3] at the given height, defined as the
// negated derivative of the column density of the layer containing the
// height.
func (p *FiveLayerProfile) Density(height *unit.Unit) *unit.Unit {
	checkDims(height, unit.Meter, "height")
	return unit.New(-p.layerAt(height.Value()).derivative(height.Value()), Density)
}

// ColumnDensity returns the column density [kg m-2] above the given height.
func (p *FiveLayerProfile) ColumnDensity(height *unit.Unit) *unit.Unit {
	checkDims(height, unit.Meter, "height")
	return unit.New(p.layerAt(height.Value()).columnDensity(height.Value()), ColumnDensity)
}
