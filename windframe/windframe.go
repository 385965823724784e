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

// Package windframe rotates turbine positions from the global frame into
// the wind-aligned frame the wake kernel works in, where +x points
// downwind. It sits upstream of the kernel: the kernel itself never
// performs coordinate rotation.
package windframe

import (
	"math"

	"github.com/ctessum/geom"
)

// Align rotates the given global turbine positions into a frame aligned
// with a wind blowing from direction dir, in meteorological convention:
// degrees clockwise from north, naming the direction the wind comes from,
// so dir=270 is a westerly wind blowing toward +x and Align is the
// identity.
func Align(turbines []geom.Point, dir float64) (x, y []float64) {
	w := (270 - dir) * math.Pi / 180
	sin, cos := math.Sin(w), math.Cos(w)
	x = make([]float64, len(turbines))
	y = make([]float64, len(turbines))
	for i, p := range turbines {
		x[i] = p.X*cos + p.Y*sin
		y[i] = -p.X*sin + p.Y*cos
	}
	return x, y
}
