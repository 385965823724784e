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

// Package eval holds model-evaluation tests that characterize the wake
// model's behavior rather than checking individual functions.
package eval

import (
	"math"
	"testing"

	"github.com/GaryBoone/GoStats/stats"
	"github.com/plantenergy/wake"
	"github.com/plantenergy/wake/science/deficit/jensencos"
)

// The deficit a single aligned upstream turbine imposes falls off with the
// expanded wake radius r+α·dx as a power law whose exponent is set by the
// loss exponent: on the wake axis the pairwise deficit is proportional to
// (r/(r+α·dx))², and the superposition rule turns that into
// (r+α·dx)^(-2) for the original double-squared formulation and
// (r+α·dx)^(-1) for the corrected mode. Linear regression in log-log space
// recovers those exponents.
func TestDeficitFalloff(t *testing.T) {
	distances := []float64{100, 200, 400, 800, 1600, 3200}

	for _, test := range []struct {
		lossExponent int
		wantSlope    float64
	}{
		{2, -2},
		{1, -1},
	} {
		c := wake.DefaultConfig()
		c.LossExponent = test.lossExponent

		logR := make([]float64, len(distances))
		logDeficit := make([]float64, len(distances))
		for i, dx := range distances {
			farm, err := wake.NewFarm([]float64{0, dx}, []float64{0, 0}, nil,
				[]float64{80, 80}, []float64{1. / 3., 1. / 3.})
			if err != nil {
				t.Fatal(err)
			}
			v, err := wake.Run(farm, c, jensencos.Model{})
			if err != nil {
				t.Fatal(err)
			}
			logR[i] = math.Log(40 + c.Alpha*dx)
			logDeficit[i] = math.Log(1 - v[1]/c.WindSpeed)
		}

		slope, _, rsquared, _, _, _ := stats.LinearRegression(logR, logDeficit)
		if math.Abs(slope-test.wantSlope) > 1e-6 {
			t.Errorf("loss exponent %d: falloff slope = %g, want %g",
				test.lossExponent, slope, test.wantSlope)
		}
		if rsquared < 1-1e-9 {
			t.Errorf("loss exponent %d: falloff is not a power law (r² = %g)",
				test.lossExponent, rsquared)
		}
	}
}
