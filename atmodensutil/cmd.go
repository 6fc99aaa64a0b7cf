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

// Package atmodensutil holds the configuration and commands of the
// atmodens command-line interface.
package atmodensutil

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/spatialmodel/atmodens"
)

// Log is the logger the commands report progress to.
var Log logrus.FieldLogger = logrus.StandardLogger()

// Cfg holds configuration information.
var Cfg *viper.Viper

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	// Options are the configuration options available to AtmoDens.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "Profile.Type",
			usage: `
              Profile.Type specifies the atmosphere density model to use. Valid
              options are "exponential", "table", "fivelayer", and "usstandard".`,
			shorthand:  "p",
			defaultVal: "usstandard",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "Profile.ScaleHeight",
			usage: `
              Profile.ScaleHeight is the scale height [km] of the exponential
              profile. It is only used when Profile.Type is "exponential".`,
			defaultVal: 8.0,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "Profile.ScaleDensity",
			usage: `
              Profile.ScaleDensity is the sea-level density [g/cm3] of the
              exponential profile. It is only used when Profile.Type is
              "exponential".`,
			defaultVal: 0.00125,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "Profile.TableFile",
			usage: `
              Profile.TableFile is the path to a CSV file with columns "height"
              [km], "density" [g/cm3], and "column_density" [g/cm2] holding
              profile support points. It is only used when Profile.Type is
              "table". It can contain environment variables.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "Profile.LayerFile",
			usage: `
              Profile.LayerFile is the path to a CSV file with columns "height"
              [km], "a" [g/cm2], "b" [g/cm2], and "c" [km] holding five-layer
              model parameters, one row per layer. It is only used when
              Profile.Type is "fivelayer". It can contain environment variables.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "Heights",
			usage: `
              Heights lists the heights above sea level [km] to evaluate the
              profile at.`,
			defaultVal: []string{"0", "5", "10", "20", "50"},
			flagsets:   []*pflag.FlagSet{densityCmd.Flags(), integralCmd.Flags()},
		},
		{
			name: "Distances",
			usage: `
              Distances lists the line-of-sight distances [km] to integrate the
              profile over.`,
			defaultVal: []string{"0", "5", "10", "20", "50"},
			flagsets:   []*pflag.FlagSet{losCmd.Flags()},
		},
		{
			name: "ZenithAngle",
			usage: `
              ZenithAngle is the zenith angle [degrees] of the line of sight.
              Angles at or near 90 degrees make the flat-atmosphere
              approximation diverge.`,
			shorthand:  "z",
			defaultVal: 0.0,
			flagsets:   []*pflag.FlagSet{losCmd.Flags()},
		},
		{
			name: "OutputUnits",
			usage: `
              OutputUnits specifies the unit column densities are reported in.
              Valid options are "g/cm2" and "kg/m2".`,
			defaultVal: "g/cm2",
			flagsets:   []*pflag.FlagSet{integralCmd.Flags(), losCmd.Flags()},
		},
		{
			name: "DensityUnits",
			usage: `
              DensityUnits specifies the unit densities are reported in. Valid
              options are "g/cm3" and "kg/m3".`,
			defaultVal: "g/cm3",
			flagsets:   []*pflag.FlagSet{densityCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("ATMODENS")

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case []string:
				if option.shorthand == "" {
					set.StringSlice(option.name, option.defaultVal.([]string), option.usage)
				} else {
					set.StringSliceP(option.name, option.shorthand, option.defaultVal.([]string), option.usage)
				}
			case float64:
				if option.shorthand == "" {
					set.Float64(option.name, option.defaultVal.(float64), option.usage)
				} else {
					set.Float64P(option.name, option.shorthand, option.defaultVal.(float64), option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(densityCmd)
	Root.AddCommand(integralCmd)
	Root.AddCommand(losCmd)
}

// setConfig finds and reads in the configuration file, if there is one.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("atmodens: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "atmodens",
	Short: "A model of atmosphere density as a function of height.",
	Long: `AtmoDens models the density of the Earth's atmosphere as a function of
height and converts between height and column density (grammage) along
vertical or slanted lines of sight.

Refer to the subcommand documentation for configuration options and default
settings. Configuration can be changed by using a configuration file (and
providing the path to the file using the --config flag), by using
command-line arguments, or by setting environment variables in the format
'ATMODENS_var' where 'var' is the name of the variable to be set.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of AtmoDens.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("AtmoDens v%s\n", atmodens.Version)
	},
	DisableAutoGenTag: true,
}

// densityCmd evaluates the density of the configured profile.
var densityCmd = &cobra.Command{
	Use:   "density",
	Short: "Calculate atmosphere density.",
	Long: `density calculates the density of the configured atmosphere profile
at the configured heights.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := Profile(Cfg)
		if err != nil {
			return err
		}
		units, err := atmodens.ParseOutputUnit(Cfg.GetString("DensityUnits"))
		if err != nil {
			return err
		}
		heights, err := getFloat64Slice(Cfg, "Heights")
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
		fmt.Fprintf(w, "height [km]\tdensity [%s]\n", units)
		for _, h := range heights {
			v, err := units.In(p.Density(atmodens.Kilometer.Quantity(h)))
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%g\t%g\n", h, v)
		}
		return w.Flush()
	},
	DisableAutoGenTag: true,
}

// integralCmd evaluates the vertical column density of the configured
// profile.
var integralCmd = &cobra.Command{
	Use:   "integral",
	Short: "Calculate vertical column density.",
	Long: `integral calculates the column density of the configured atmosphere
profile above the configured heights.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := Profile(Cfg)
		if err != nil {
			return err
		}
		units, err := atmodens.ParseOutputUnit(Cfg.GetString("OutputUnits"))
		if err != nil {
			return err
		}
		heights, err := getFloat64Slice(Cfg, "Heights")
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
		fmt.Fprintf(w, "height [km]\tcolumn density [%s]\n", units)
		for _, h := range heights {
			v, err := units.In(p.ColumnDensity(atmodens.Kilometer.Quantity(h)))
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%g\t%g\n", h, v)
		}
		return w.Flush()
	},
	DisableAutoGenTag: true,
}

// losCmd evaluates the line-of-sight integral of the configured profile.
var losCmd = &cobra.Command{
	Use:   "los",
	Short: "Calculate line-of-sight column density.",
	Long: `los calculates the column density of the configured atmosphere profile
along lines of sight at the configured zenith angle, starting from the
configured distances.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := Profile(Cfg)
		if err != nil {
			return err
		}
		units, err := atmodens.ParseOutputUnit(Cfg.GetString("OutputUnits"))
		if err != nil {
			return err
		}
		distances, err := getFloat64Slice(Cfg, "Distances")
		if err != nil {
			return err
		}
		zenith := Cfg.GetFloat64("ZenithAngle")
		Log.WithFields(logrus.Fields{
			"zenithAngle": zenith,
		}).Info("calculating line-of-sight integrals")
		w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
		fmt.Fprintf(w, "distance [km]\tcolumn density [%s]\n", units)
		for _, d := range distances {
			v, err := units.In(atmodens.LineOfSightIntegral(p,
				atmodens.Kilometer.Quantity(d), atmodens.Degrees(zenith)))
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%g\t%g\n", d, v)
		}
		return w.Flush()
	},
	DisableAutoGenTag: true,
}
