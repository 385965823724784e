/*
Copyright © 2026 the PlantEnergy authors.
This file is part of the PlantEnergy wake model.

The PlantEnergy wake model is free software: you can redistribute it and/or
modify it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

The PlantEnergy wake model is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with the PlantEnergy wake model.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package wakeutil holds the configuration and command-line plumbing around
// the wake model kernel.
package wakeutil

import (
	"fmt"

	"github.com/lnashier/viper"
	"github.com/plantenergy/wake"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	// Options are the configuration options available to the model.
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
			name: "LayoutFile",
			usage: `
              LayoutFile is the path to a TOML file holding the farm layout:
              one [[turbine]] table per turbine with x, y, z,
              rotor_diameter, and axial_induction fields.`,
			shorthand:  "l",
			defaultVal: "layout.toml",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "OutputFile",
			usage: `
              OutputFile is the path where the per-turbine velocity table
              will be written, in CSV format.`,
			shorthand:  "o",
			defaultVal: "velocities.csv",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "WindSpeed",
			usage: `
              WindSpeed is the freestream wind speed in m/s.`,
			defaultVal: 8.0,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "WindDirections",
			usage: `
              WindDirections lists the wind directions to evaluate, in
              meteorological degrees (clockwise from north, naming the
              direction the wind comes from). Each direction is evaluated
              independently and concurrently.`,
			defaultVal: []string{"270"},
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "Model.Variant",
			usage: `
              Model.Variant chooses the deficit law: TopHat, Cosine, or
              CosineFast. CosineFast is a faster backend for Cosine that
              produces equivalent results.`,
			defaultVal: "Cosine",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "Model.Alpha",
			usage: `
              Model.Alpha is the dimensionless wake expansion coefficient.`,
			defaultVal: 0.1,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "Model.SpreadAngle",
			usage: `
              Model.SpreadAngle is the wake half-angle in degrees. It must
              be strictly between 0 and 90.`,
			defaultVal: 20.0,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "Model.RelaxationFactor",
			usage: `
              Model.RelaxationFactor is the wake-expansion continuation
              parameter; 1 gives the nominal wake and larger values widen
              the effective wake cone.`,
			defaultVal: 1.0,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "Model.RadiusMultiplier",
			usage: `
              Model.RadiusMultiplier scales the reference rotor radius used
              to place the apparent wake origin.`,
			defaultVal: 1.0,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "Model.LossExponent",
			usage: `
              Model.LossExponent is the power applied to each pairwise
              deficit before summation. 2 reproduces the original
              formulation; 1 gives the textbook Jensen combination.`,
			defaultVal: 2,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("WAKE")

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
			case int:
				if option.shorthand == "" {
					set.Int(option.name, option.defaultVal.(int), option.usage)
				} else {
					set.IntP(option.name, option.shorthand, option.defaultVal.(int), option.usage)
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
	Root.AddCommand(runCmd)
}

// setConfig finds and reads in the configuration file, if there is one.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("wake: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "wake",
	Short: "A wind farm wake model.",
	Long: `wake estimates the wind speed experienced by each turbine in a wind
farm, accounting for the velocity deficits that upstream turbines cast on
downstream ones.

Configuration can be changed by using a configuration file (and providing
the path to the file using the --config flag), by using command-line
arguments, or by setting environment variables in the format 'WAKE_var'
where 'var' is the name of the variable to be set.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of the wake model.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("wake v%s\n", wake.Version)
	},
	DisableAutoGenTag: true,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Evaluate the wake model.",
	Long: `run evaluates hub velocities for the farm layout in LayoutFile at
every configured wind direction and writes them to OutputFile.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		variant, err := wake.ParseVariant(Cfg.GetString("Model.Variant"))
		if err != nil {
			return err
		}
		var directions []float64
		for _, s := range Cfg.GetStringSlice("WindDirections") {
			dir, err := cast.ToFloat64E(s)
			if err != nil {
				return fmt.Errorf("wake: problem parsing wind direction %q: %v", s, err)
			}
			directions = append(directions, dir)
		}
		c := &wake.Config{
			WindSpeed:        Cfg.GetFloat64("WindSpeed"),
			Alpha:            Cfg.GetFloat64("Model.Alpha"),
			SpreadAngle:      Cfg.GetFloat64("Model.SpreadAngle"),
			RelaxationFactor: Cfg.GetFloat64("Model.RelaxationFactor"),
			RadiusMultiplier: Cfg.GetFloat64("Model.RadiusMultiplier"),
			LossExponent:     Cfg.GetInt("Model.LossExponent"),
		}
		return Run(Cfg.GetString("LayoutFile"), Cfg.GetString("OutputFile"),
			directions, variant, c)
	},
	DisableAutoGenTag: true,
}
