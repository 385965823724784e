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

package wakeutil

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"strconv"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/ctessum/geom"
	"github.com/plantenergy/wake"
	"github.com/plantenergy/wake/science/deficit/jensencos"
	"github.com/plantenergy/wake/science/deficit/jensentophat"
	"github.com/plantenergy/wake/windframe"
)

// NewModel returns the deficit model identified by the given variant.
func NewModel(v wake.Variant) (wake.Model, error) {
	switch v {
	case wake.TopHat:
		return jensentophat.Model{}, nil
	case wake.Cosine:
		return jensencos.Model{}, nil
	case wake.CosineFast:
		return jensencos.Model{Fast: true}, nil
	default:
		return nil, fmt.Errorf("wake: no model for variant %s: %w",
			v, wake.ErrInvalidInput)
	}
}

// Evaluate is the boundary contract consumed by host optimization
// frameworks: given wind-aligned turbine positions [m], rotor diameters
// [m], axial induction factors, the freestream wind speed [m/s], the wake
// expansion coefficient, the wake half-angle in degrees, and the
// relaxation factor, it returns the effective hub velocity [m/s] at each
// turbine under the chosen variant. It is a pure function: repeated calls
// with identical inputs return identical results, and calls do not affect
// one another.
func Evaluate(x, y, rotorDiameter, axialInduction []float64,
	windSpeed, alpha, spreadAngle, relaxationFactor float64,
	variant wake.Variant) ([]float64, error) {
	farm, err := wake.NewFarm(x, y, nil, rotorDiameter, axialInduction)
	if err != nil {
		return nil, err
	}
	c := wake.DefaultConfig()
	c.WindSpeed = windSpeed
	c.Alpha = alpha
	c.SpreadAngle = spreadAngle
	c.RelaxationFactor = relaxationFactor
	m, err := NewModel(variant)
	if err != nil {
		return nil, err
	}
	return wake.Run(farm, c, m)
}

// A Layout describes the turbines in a farm in global coordinates, as read
// from a TOML layout file.
type Layout struct {
	Turbine []struct {
		X, Y, Z        float64
		RotorDiameter  float64 `toml:"rotor_diameter"`
		AxialInduction float64 `toml:"axial_induction"`
	}
}

// ReadLayout reads a farm layout from the TOML file at path.
func ReadLayout(path string) (*Layout, error) {
	var l Layout
	if _, err := toml.DecodeFile(path, &l); err != nil {
		return nil, fmt.Errorf("wake: problem reading layout file %s: %v", path, err)
	}
	if len(l.Turbine) == 0 {
		return nil, fmt.Errorf("wake: layout file %s contains no turbines: %w",
			path, wake.ErrInvalidInput)
	}
	return &l, nil
}

// Points returns the global turbine positions in the layout.
func (l *Layout) Points() []geom.Point {
	pts := make([]geom.Point, len(l.Turbine))
	for i, t := range l.Turbine {
		pts[i] = geom.Point{X: t.X, Y: t.Y}
	}
	return pts
}

// Run reads the farm layout at layoutFile, evaluates hub velocities for
// every wind direction with the given variant and configuration, and
// writes the results to outputFile as CSV. The directions are independent
// of each other, so they are evaluated concurrently.
func Run(layoutFile, outputFile string, directions []float64,
	variant wake.Variant, c *wake.Config) error {
	log.Println("Reading farm layout...")
	layout, err := ReadLayout(layoutFile)
	if err != nil {
		return err
	}
	m, err := NewModel(variant)
	if err != nil {
		return err
	}
	pts := layout.Points()
	z := make([]float64, len(layout.Turbine))
	diam := make([]float64, len(layout.Turbine))
	induction := make([]float64, len(layout.Turbine))
	for i, t := range layout.Turbine {
		z[i] = t.Z
		diam[i] = t.RotorDiameter
		induction[i] = t.AxialInduction
	}

	log.Printf("Evaluating %d turbines at %d wind directions with the %s variant...",
		len(pts), len(directions), variant)
	velocities := make([][]float64, len(directions))
	errs := make([]error, len(directions))
	var wg sync.WaitGroup
	wg.Add(len(directions))
	for di, dir := range directions {
		go func(di int, dir float64) {
			defer wg.Done()
			xw, yw := windframe.Align(pts, dir)
			farm, err := wake.NewFarm(xw, yw, z, diam, induction)
			if err != nil {
				errs[di] = err
				return
			}
			velocities[di], errs[di] = wake.Run(farm, c, m)
		}(di, dir)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	log.Println("Writing velocities...")
	if err := writeVelocities(outputFile, directions, velocities); err != nil {
		return err
	}
	log.Println("Finished.")
	return nil
}

// writeVelocities writes one CSV row per (direction, turbine) pair.
func writeVelocities(path string, directions []float64, velocities [][]float64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("wake: problem creating output file: %v", err)
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err := w.Write([]string{"direction", "turbine", "velocity"}); err != nil {
		return err
	}
	for di, dir := range directions {
		for i, v := range velocities[di] {
			err := w.Write([]string{
				strconv.FormatFloat(dir, 'g', -1, 64),
				strconv.Itoa(i),
				strconv.FormatFloat(v, 'g', -1, 64),
			})
			if err != nil {
				return err
			}
		}
	}
	w.Flush()
	return w.Error()
}
