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

package wake

import (
	"math"

	"github.com/ctessum/sparse"
	"gonum.org/v1/gonum/floats"
)

// Superpose combines pairwise velocity deficits into effective hub
// velocities. Element (j, i) of deficits is the deficit fraction that
// turbine j's wake imposes on turbine i; rows that are not upstream of a
// turbine must be zero. Each deficit is raised to c.LossExponent, the
// contributions on each turbine are summed, and the square root of the sum
// is the total fractional loss, so that with the textbook exponent of 1 the
// deficits add in quadrature.
//
// The total loss is deliberately not clamped: a densely packed farm can
// produce a loss above 1 and therefore a negative hub velocity, which is
// surfaced as-is so that an optimizer sees a smooth (if unphysical)
// landscape rather than a kink.
func Superpose(deficits *sparse.DenseArray, c *Config) []float64 {
	n := deficits.Shape[0]
	v := make([]float64, n)
	for i := 0; i < n; i++ {
		sum := 0.
		for j := 0; j < n; j++ {
			d := deficits.Get(j, i)
			if d == 0 {
				continue
			}
			term := d
			for k := 1; k < c.LossExponent; k++ {
				term *= d
			}
			sum += term
		}
		v[i] = -math.Sqrt(sum)
	}
	// v currently holds -totalLoss; turn it into (1-totalLoss)*WindSpeed.
	floats.AddConst(1, v)
	floats.Scale(c.WindSpeed, v)
	return v
}

// Run evaluates the given deficit model on a farm after validating the
// inputs. It is a convenience wrapper for library use; the model's
// Velocities method does its own validation as well.
func Run(f *Farm, c *Config, m Model) ([]float64, error) {
	if err := Validate(f, c); err != nil {
		return nil, err
	}
	return m.Velocities(f, c)
}
