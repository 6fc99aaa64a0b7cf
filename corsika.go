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

// usStandardAtmosphere holds Linsley's parameterization of the U.S.
// standard atmosphere (CORSIKA atmosphere model 1). Columns are the layer
// lower boundary [km] and the parameters a [g/cm2], b [g/cm2] and c [cm],
// as published in the CORSIKA user's guide.
var usStandardAtmosphere = [nLayers][4]float64{
	{0, -186.555305, 1222.6562, 994186.38},
	{4, -94.919, 1144.9069, 878153.55},
	{10, 0.61289, 1305.5948, 636143.04},
	{40, 0.0, 540.1778, 772170.16},
	{100, 0.01128292, 1, 1e9},
}

// USStandardAtmosphere returns the five-layer parameterization of the U.S.
// standard atmosphere. The parameterization is fit to be continuous across
// its layer boundaries and is valid up to a height of 112.8 km, where the
// column density of the linear top layer reaches zero.
func USStandardAtmosphere() *FiveLayerProfile {
	t := &LayerTable{
		Height: make([]float64, nLayers),
		A:      make([]float64, nLayers),
		B:      make([]float64, nLayers),
		C:      make([]float64, nLayers),
	}
	for i, row := range usStandardAtmosphere {
		t.Height[i] = row[0] * Kilometer.si
		t.A[i] = row[1] * GramPerSquareCentimeter.si
		t.B[i] = row[2] * GramPerSquareCentimeter.si
		t.C[i] = row[3] * Centimeter.si
	}
	p, err := NewFiveLayerProfile(t)
	if err != nil {
		panic(err) // can't happen: the table always has 5 rows.
	}
	return p
}
