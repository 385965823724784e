/*
Copyright © 2025 the PlantEnergy authors.
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

// Package jensencos implements the Jensen wake deficit law with
// raised-cosine angular smoothing. The smoothing makes the velocity field
// continuous and differentiable across the wake edge, which keeps
// finite-difference derivatives taken by a surrounding optimizer smooth.
package jensencos

import (
	"math"

	"github.com/ctessum/sparse"
	"github.com/plantenergy/wake"
)

// Model fulfils the github.com/plantenergy/wake.Model interface.
type Model struct {
	// Fast selects the fused single-pass backend, which computes the
	// angular smoothing factors on the fly instead of building the full
	// factor matrix first. Both backends evaluate the same expressions
	// in the same order and produce numerically equivalent results.
	Fast bool
}

// Velocities returns the effective hub velocity at each turbine. For each
// ordered pair where turbine j is strictly upstream of turbine i
// (dx = x_i - x_j > 0), the pairwise deficit is
//
//	2·a_j·(f_ji·r_j/(r_j+α·dx))²
//
// where f_ji is the angular smoothing factor; the deficits are combined by
// the wake.Superpose rule.
func (m Model) Velocities(f *wake.Farm, c *wake.Config) ([]float64, error) {
	if err := wake.Validate(f, c); err != nil {
		return nil, err
	}
	if m.Fast {
		return m.fast(f, c), nil
	}
	n := f.Len()
	r0 := f.RotorRadius[0] * c.RadiusMultiplier
	fTheta := wake.CosineFactors(f.X, f.Y, r0, c.BoundAngle(), c.RelaxationFactor)
	deficits := sparse.ZerosDense(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			dx := f.X[i] - f.X[j]
			if dx > 0 {
				r := f.RotorRadius[j]
				d := fTheta.Get(j, i) * r / (r + c.Alpha*dx)
				deficits.Set(2*f.AxialInduction[j]*d*d, j, i)
			}
		}
	}
	return wake.Superpose(deficits, c), nil
}

// fast is the fused backend: one pass over the pairs with the geometry,
// taper, and deficit inlined, and no factor matrix allocated.
func (m Model) fast(f *wake.Farm, c *wake.Config) []float64 {
	n := f.Len()
	boundAngle := c.BoundAngle()
	q := math.Pi / boundAngle
	r0 := f.RotorRadius[0] * c.RadiusMultiplier
	z := wake.WakeOffset(r0, boundAngle, c.RelaxationFactor)
	deficits := sparse.ZerosDense(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			dx := f.X[i] - f.X[j]
			if dx <= 0 {
				continue
			}
			theta := wake.Theta(f.X[j], f.Y[j], f.X[i], f.Y[i], z)
			if theta <= -boundAngle || theta >= boundAngle {
				continue
			}
			fTheta := (1 + math.Cos(q*theta)) / 2
			r := f.RotorRadius[j]
			d := fTheta * r / (r + c.Alpha*dx)
			deficits.Set(2*f.AxialInduction[j]*d*d, j, i)
		}
	}
	return wake.Superpose(deficits, c)
}
