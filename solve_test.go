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
	"testing"

	"github.com/ctessum/sparse"
)

func TestSuperpose(t *testing.T) {
	c := DefaultConfig()
	d := sparse.ZerosDense(2, 2)
	d.Set(0.131687243, 0, 1) // turbine 0 wakes turbine 1

	v := Superpose(d, c)
	if v[0] != c.WindSpeed {
		t.Errorf("v[0] = %g, want the freestream speed %g exactly", v[0], c.WindSpeed)
	}
	// With a single upstream pair, squaring then square-rooting returns
	// the pairwise deficit itself.
	if absDifferent(v[1], (1-0.131687243)*c.WindSpeed) {
		t.Errorf("v[1] = %g, want %g", v[1], (1-0.131687243)*c.WindSpeed)
	}
}

// Two equal upstream deficits must combine in quadrature, not linearly.
func TestSuperposeQuadrature(t *testing.T) {
	c := DefaultConfig()
	d := sparse.ZerosDense(3, 3)
	d.Set(0.1, 0, 2)
	d.Set(0.1, 1, 2)
	v := Superpose(d, c)
	want := (1 - math.Sqrt(2)*0.1) * c.WindSpeed
	if different(v[2], want, testTolerance) {
		t.Errorf("v[2] = %g, want %g", v[2], want)
	}
}

// A total loss above 1 must surface as a negative velocity rather than
// being clamped.
func TestSuperposeNoClamping(t *testing.T) {
	c := DefaultConfig()
	d := sparse.ZerosDense(2, 2)
	d.Set(1.5, 0, 1)
	v := Superpose(d, c)
	want := (1 - 1.5) * c.WindSpeed
	if absDifferent(v[1], want) {
		t.Errorf("v[1] = %g, want %g (not clamped at zero)", v[1], want)
	}
}

func TestSuperposeLossExponent(t *testing.T) {
	d := sparse.ZerosDense(2, 2)
	d.Set(0.04, 0, 1)

	c := DefaultConfig() // LossExponent 2
	if v := Superpose(d, c); absDifferent(v[1], (1-0.04)*c.WindSpeed) {
		t.Errorf("exponent 2: v[1] = %g, want %g", v[1], (1-0.04)*c.WindSpeed)
	}
	c.LossExponent = 1
	if v := Superpose(d, c); absDifferent(v[1], (1-0.2)*c.WindSpeed) {
		t.Errorf("exponent 1: v[1] = %g, want %g", v[1], (1-0.2)*c.WindSpeed)
	}
}
