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
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"testing"

	"github.com/plantenergy/wake"
)

const testTolerance = 1.e-6

func TestEvaluate(t *testing.T) {
	x := []float64{0, 500}
	y := []float64{0, 0}
	d := []float64{80, 80}
	a := []float64{1. / 3., 1. / 3.}

	for _, variant := range []wake.Variant{wake.TopHat, wake.Cosine, wake.CosineFast} {
		t.Run(variant.String(), func(t *testing.T) {
			v, err := Evaluate(x, y, d, a, 8, 0.1, 20, 1, variant)
			if err != nil {
				t.Fatal(err)
			}
			if len(v) != len(x) {
				t.Fatalf("got %d velocities for %d turbines", len(v), len(x))
			}
			// Aligned turbines on the wake axis: every variant
			// reduces to the same Jensen deficit here.
			if v[0] != 8 || absDifferent(v[1], 6.946502058) {
				t.Errorf("v = %v, want [8 6.946502058]", v)
			}
		})
	}
}

func TestEvaluateInvalid(t *testing.T) {
	x := []float64{0, 500}
	y := []float64{0, 0}
	d := []float64{80, 80}
	a := []float64{1. / 3., 1. / 3.}

	if _, err := Evaluate(x, y[:1], d, a, 8, 0.1, 20, 1, wake.Cosine); !errors.Is(err, wake.ErrInvalidInput) {
		t.Errorf("length mismatch: err = %v, want ErrInvalidInput", err)
	}
	if _, err := Evaluate(x, y, d, a, 8, 0.1, 95, 1, wake.Cosine); !errors.Is(err, wake.ErrDomain) {
		t.Errorf("bad spread angle: err = %v, want ErrDomain", err)
	}
	if _, err := NewModel(wake.Variant(99)); !errors.Is(err, wake.ErrInvalidInput) {
		t.Errorf("unknown variant: err = %v, want ErrInvalidInput", err)
	}
}

const testLayout = `
[[turbine]]
x = 0.0
y = 0.0
z = 150.0
rotor_diameter = 80.0
axial_induction = 0.3333333333333333

[[turbine]]
x = 500.0
y = 0.0
z = 150.0
rotor_diameter = 80.0
axial_induction = 0.3333333333333333
`

func TestReadLayout(t *testing.T) {
	f, err := os.Create("tmp_layout.toml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove("tmp_layout.toml")
	fmt.Fprint(f, testLayout)
	f.Close()

	l, err := ReadLayout("tmp_layout.toml")
	if err != nil {
		t.Fatal(err)
	}
	if len(l.Turbine) != 2 {
		t.Fatalf("read %d turbines, want 2", len(l.Turbine))
	}
	if l.Turbine[1].X != 500 || l.Turbine[1].RotorDiameter != 80 {
		t.Errorf("turbine 1 = %+v", l.Turbine[1])
	}
	pts := l.Points()
	if pts[1].X != 500 || pts[1].Y != 0 {
		t.Errorf("point 1 = %+v, want {500 0}", pts[1])
	}
}

func TestRun(t *testing.T) {
	f, err := os.Create("tmp_layout.toml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove("tmp_layout.toml")
	fmt.Fprint(f, testLayout)
	f.Close()
	defer os.Remove("tmp_velocities.csv")

	// In a westerly wind the second turbine is waked; in an easterly wind
	// the roles swap.
	err = Run("tmp_layout.toml", "tmp_velocities.csv", []float64{270, 90},
		wake.Cosine, wake.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	out, err := os.Open("tmp_velocities.csv")
	if err != nil {
		t.Fatal(err)
	}
	defer out.Close()
	rows, err := csv.NewReader(out).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 5 { // header + 2 directions × 2 turbines
		t.Fatalf("output has %d rows, want 5", len(rows))
	}
	want := [][2]float64{{0, 8}, {1, 6.946502058}, {0, 6.946502058}, {1, 8}}
	for i, row := range rows[1:] {
		v, err := strconv.ParseFloat(row[2], 64)
		if err != nil {
			t.Fatal(err)
		}
		if absDifferent(v, want[i][1]) {
			t.Errorf("row %d: velocity = %g, want %g", i+1, v, want[i][1])
		}
	}
}

func absDifferent(a, b float64) bool {
	if math.Abs(a-b) > testTolerance {
		return true
	}
	return false
}
