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
)

// WakeOffset returns the distance z [m] by which the apparent origin of a
// wake cone sits upstream of the turbine that casts it. r0 is the reference
// rotor radius [m], boundAngle the wake half-angle [radians], and xi the
// relaxation factor. Growing xi moves the origin further upstream, which
// widens the cone a downstream turbine sees and so smooths the optimization
// landscape; xi=1 recovers the nominal cone with its apex a distance
// r0/tan(boundAngle) upstream.
func WakeOffset(r0, boundAngle, xi float64) float64 {
	gamma := math.Pi/2 - boundAngle
	return xi * r0 * math.Sin(gamma) / math.Sin(boundAngle)
}

// Theta returns the angular offset [radians] of the downstream point
// (xj, yj) from the wake cone axis of an upstream turbine at (xi, yi) whose
// apparent wake origin sits a distance z upstream. The caller must ensure
// xi < xj. If the downstream point sits directly beside the wake origin
// (xj-xi+z == 0), the offset takes its limiting value of ±π/2, which always
// falls outside any valid wake cone; it is not an error.
func Theta(xi, yi, xj, yj, z float64) float64 {
	return math.Atan2(yj-yi, xj-xi+z)
}

// CosineFactors computes the angular smoothing factors describing how fully
// each turbine sits inside each other turbine's wake cone. x and y are
// wind-aligned turbine positions [m] (+x downwind), r0 the reference rotor
// radius [m], boundAngle the wake half-angle [radians, in (0, π/2)], and xi
// the relaxation factor.
//
// Element (i, j) of the result is the raised-cosine taper
// (1+cos(π·theta/boundAngle))/2 of the angle theta between turbine j and the
// axis of turbine i's wake: 1 on the wake axis, falling continuously to 0 at
// the cone edge. It is zero whenever turbine j is not strictly downstream of
// turbine i or lies outside the cone, including on the diagonal; the matrix
// is therefore not symmetric. The matrix is freshly allocated on every call.
func CosineFactors(x, y []float64, r0, boundAngle, xi float64) *sparse.DenseArray {
	n := len(x)
	f := sparse.ZerosDense(n, n)
	q := math.Pi / boundAngle
	z := WakeOffset(r0, boundAngle, xi)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if x[i] >= x[j] {
				continue // only downstream turbines sit in the wake.
			}
			theta := Theta(x[i], y[i], x[j], y[j], z)
			if -boundAngle < theta && theta < boundAngle {
				f.Set((1+math.Cos(q*theta))/2, i, j)
			}
		}
	}
	return f
}
