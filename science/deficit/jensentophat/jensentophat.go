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

// Package jensentophat implements the classic Jensen wake deficit law with
// binary ("top hat") wake membership: a downstream turbine is either wholly
// inside an upstream wake or wholly outside it. The velocity field is
// discontinuous at the wake edge, so this law is not used where an
// optimizer needs smooth derivatives.
package jensentophat

import (
	"math"

	"github.com/ctessum/sparse"
	"github.com/plantenergy/wake"
)

// Model fulfils the github.com/plantenergy/wake.Model interface.
type Model struct{}

// Velocities returns the effective hub velocity at each turbine. A turbine
// at downwind distance dx from an upstream turbine j sits in j's wake when
// its lateral offset is smaller than the expanded wake radius r_j + α·dx,
// in which case the pairwise deficit is 2·a_j·(r_j/(r_j+α·dx))²; otherwise
// the pair contributes nothing. Deficits combine by the wake.Superpose
// rule.
func (Model) Velocities(f *wake.Farm, c *wake.Config) ([]float64, error) {
	if err := wake.Validate(f, c); err != nil {
		return nil, err
	}
	n := f.Len()
	deficits := sparse.ZerosDense(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			dx := f.X[i] - f.X[j]
			if dx <= 0 {
				continue
			}
			r := f.RotorRadius[j]
			wakeRadius := r + c.Alpha*dx
			if math.Abs(f.Y[i]-f.Y[j]) >= wakeRadius {
				continue
			}
			d := r / wakeRadius
			deficits.Set(2*f.AxialInduction[j]*d*d, j, i)
		}
	}
	return wake.Superpose(deficits, c), nil
}
