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
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"github.com/spatialmodel/atmodens"
)

// Profile creates the atmosphere density profile specified by the
// configuration.
func Profile(cfg *viper.Viper) (atmodens.DensityProfile, error) {
	typ := cfg.GetString("Profile.Type")
	Log.WithFields(logrus.Fields{
		"type": typ,
	}).Info("constructing atmosphere density profile")
	switch typ {
	case "exponential":
		return atmodens.NewExponentialProfile(
			atmodens.Kilometer.Quantity(cfg.GetFloat64("Profile.ScaleHeight")),
			atmodens.GramPerCubicCentimeter.Quantity(cfg.GetFloat64("Profile.ScaleDensity")),
		)
	case "table":
		table, err := LoadProfileTable(os.ExpandEnv(cfg.GetString("Profile.TableFile")))
		if err != nil {
			return nil, err
		}
		return atmodens.NewTableProfile(table)
	case "fivelayer":
		layers, err := LoadLayerTable(os.ExpandEnv(cfg.GetString("Profile.LayerFile")))
		if err != nil {
			return nil, err
		}
		return atmodens.NewFiveLayerProfile(layers)
	case "usstandard":
		return atmodens.USStandardAtmosphere(), nil
	default:
		return nil, fmt.Errorf("atmodensutil: invalid profile type '%s'; valid options are exponential, table, fivelayer, and usstandard", typ)
	}
}

// getFloat64Slice returns the configuration value with the given key as a
// slice of numbers.
func getFloat64Slice(cfg *viper.Viper, key string) ([]float64, error) {
	s := cfg.GetStringSlice(key)
	o := make([]float64, len(s))
	for i, v := range s {
		f, err := cast.ToFloat64E(v)
		if err != nil {
			return nil, fmt.Errorf("atmodensutil: parsing %s: %v", key, err)
		}
		o[i] = f
	}
	return o, nil
}
