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

package atmodensutil

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/spatialmodel/atmodens"
)

// readCSV reads the CSV file at path and returns its columns keyed by the
// names in the header row.
func readCSV(path string) (map[string][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("atmodensutil: opening profile file: %v", err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("atmodensutil: reading %s: %v", path, err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("atmodensutil: %s has no data rows", path)
	}
	columns := make(map[string][]float64)
	for j, name := range records[0] {
		col := make([]float64, 0, len(records)-1)
		for i, record := range records[1:] {
			v, err := strconv.ParseFloat(record[j], 64)
			if err != nil {
				return nil, fmt.Errorf("atmodensutil: %s row %d column %s: %v", path, i+2, name, err)
			}
			col = append(col, v)
		}
		columns[name] = col
	}
	return columns, nil
}

// LoadProfileTable loads atmosphere profile support points from a CSV file
// with columns "height" [km], "density" [g/cm3], and "column_density"
// [g/cm2].
func LoadProfileTable(path string) (*atmodens.ProfileTable, error) {
	columns, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	table := new(atmodens.ProfileTable)
	for _, h := range columns["height"] {
		table.Height = append(table.Height, atmodens.Kilometer.Quantity(h).Value())
	}
	for _, d := range columns["density"] {
		table.Density = append(table.Density, atmodens.GramPerCubicCentimeter.Quantity(d).Value())
	}
	for _, x := range columns["column_density"] {
		table.ColumnDensity = append(table.ColumnDensity, atmodens.GramPerSquareCentimeter.Quantity(x).Value())
	}
	Log.WithFields(logrus.Fields{
		"file": path,
		"rows": table.Len(),
	}).Info("loaded atmosphere profile table")
	return table, nil
}

// LoadLayerTable loads five-layer atmosphere model parameters from a CSV
// file with columns "height" [km], "a" [g/cm2], "b" [g/cm2], and "c" [km],
// one row per layer.
func LoadLayerTable(path string) (*atmodens.LayerTable, error) {
	columns, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	table := new(atmodens.LayerTable)
	for _, h := range columns["height"] {
		table.Height = append(table.Height, atmodens.Kilometer.Quantity(h).Value())
	}
	for _, a := range columns["a"] {
		table.A = append(table.A, atmodens.GramPerSquareCentimeter.Quantity(a).Value())
	}
	for _, b := range columns["b"] {
		table.B = append(table.B, atmodens.GramPerSquareCentimeter.Quantity(b).Value())
	}
	for _, c := range columns["c"] {
		table.C = append(table.C, atmodens.Kilometer.Quantity(c).Value())
	}
	Log.WithFields(logrus.Fields{
		"file":   path,
		"layers": len(table.Height),
	}).Info("loaded atmosphere layer parameters")
	return table, nil
}
