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

// Package wake estimates the wind speed experienced by each turbine in a
// wind farm, accounting for the velocity deficits ("wakes") that upstream
// turbines cast on downstream ones. It implements the Jensen (1983) wake
// model with the raised-cosine angular smoothing used by wake-expansion
// continuation optimization.
//
// The kernel is a pure function of the turbine state and the model
// parameters: it holds no state between calls, performs no I/O, and is safe
// to call concurrently from multiple goroutines. It is designed to be driven
// repeatedly by an outer layout optimizer, including finite-difference
// evaluations with infinitesimally perturbed inputs.
package wake

import (
	"errors"
	"fmt"
	"math"
)

// Version gives the model version number.
const Version = "0.1.0"

// ErrDomain indicates a model parameter outside the domain where the
// governing equations are defined.
var ErrDomain = errors.New("parameter outside valid domain")

// ErrInvalidInput indicates missing, inconsistent, or physically
// meaningless input data.
var ErrInvalidInput = errors.New("invalid input")

// Model is an interface for wake deficit models. Implementations must be
// pure: given the same farm and configuration they must return the same
// velocities, with no retained references to either argument or to the
// returned slice.
type Model interface {
	// Velocities returns the effective hub-height wind speed [m/s]
	// experienced by each turbine in f, in turbine order.
	Velocities(f *Farm, c *Config) ([]float64, error)
}

// Farm holds the state of the turbines in a wind farm for a single model
// evaluation. Positions are in a wind-aligned frame where +x points
// downwind. A Farm is treated as immutable for the duration of a call.
type Farm struct {
	X, Y, Z []float64 // turbine positions [m], wind-aligned

	RotorRadius []float64 // rotor radii [m]

	AxialInduction []float64 // axial induction factors, each in [0,1)

	// The fields below are accepted for compatibility with host
	// optimization frameworks but are not used by the deficit laws in
	// this package.
	Yaw       []float64 // yaw angles [deg]
	HubHeight []float64 // hub heights [m]
	Ct        []float64 // thrust coefficients
}

// NewFarm creates a Farm from the given turbine positions [m] (in a
// wind-aligned frame), rotor diameters [m], and axial induction factors.
// z may be nil, in which case all hub positions are taken to be at the
// same height.
func NewFarm(x, y, z, rotorDiameter, axialInduction []float64) (*Farm, error) {
	n := len(x)
	if len(y) != n || len(rotorDiameter) != n || len(axialInduction) != n {
		return nil, fmt.Errorf("wake: input length mismatch: x=%d, y=%d, "+
			"rotorDiameter=%d, axialInduction=%d: %w",
			n, len(y), len(rotorDiameter), len(axialInduction), ErrInvalidInput)
	}
	if z != nil && len(z) != n {
		return nil, fmt.Errorf("wake: input length mismatch: x=%d, z=%d: %w",
			n, len(z), ErrInvalidInput)
	}
	if z == nil {
		z = make([]float64, n)
	}
	r := make([]float64, n)
	for i, d := range rotorDiameter {
		if d < 0 {
			return nil, fmt.Errorf("wake: turbine %d has negative rotor "+
				"diameter %g m: %w", i, d, ErrInvalidInput)
		}
		r[i] = d / 2
	}
	for i, a := range axialInduction {
		if a < 0 || a >= 1 {
			return nil, fmt.Errorf("wake: turbine %d has axial induction "+
				"factor %g outside [0,1): %w", i, a, ErrInvalidInput)
		}
	}
	return &Farm{
		X:              x,
		Y:              y,
		Z:              z,
		RotorRadius:    r,
		AxialInduction: axialInduction,
	}, nil
}

// Len returns the number of turbines in the farm.
func (f *Farm) Len() int { return len(f.X) }

// Config holds the wake model parameters for one evaluation. The
// configuration may be shared by reference across concurrent evaluations as
// long as it is not mutated while they are in flight.
type Config struct {
	// WindSpeed is the freestream wind speed [m/s].
	WindSpeed float64

	// Alpha is the wake expansion coefficient (dimensionless,
	// typically ~0.1).
	Alpha float64

	// SpreadAngle is the wake half-angle in degrees. It must be strictly
	// between 0° and 90°.
	SpreadAngle float64

	// RelaxationFactor (ξ) is a continuation parameter that moves the
	// apparent wake origin upstream, widening the effective wake cone.
	// 1 is the nominal wake; it must not be negative.
	RelaxationFactor float64

	// RadiusMultiplier scales the reference turbine radius used to place
	// the wake origin.
	RadiusMultiplier float64

	// LossExponent is the power applied to each pairwise deficit before
	// the deficits are summed and square-rooted. 2 reproduces the
	// original formulation; 1 gives the textbook Jensen
	// root-sum-square combination.
	LossExponent int
}

// DefaultConfig returns a configuration with the customary parameter
// values: 8 m/s freestream, 0.1 expansion coefficient, 20° wake half-angle,
// nominal relaxation, and the original loss exponent.
func DefaultConfig() *Config {
	return &Config{
		WindSpeed:        8,
		Alpha:            0.1,
		SpreadAngle:      20,
		RelaxationFactor: 1,
		RadiusMultiplier: 1,
		LossExponent:     2,
	}
}

// BoundAngle returns the wake half-angle in radians.
func (c *Config) BoundAngle() float64 { return c.SpreadAngle * math.Pi / 180 }

// Valid checks the configuration, returning an error wrapping ErrDomain or
// ErrInvalidInput if a parameter is unusable. It must be called before the
// geometry calculations so that undefined trigonometric ratios never
// propagate as NaN.
func (c *Config) Valid() error {
	if c.SpreadAngle <= 0 || c.SpreadAngle >= 90 {
		return fmt.Errorf("wake: wake half-angle must be strictly between "+
			"0° and 90° but is %g°: %w", c.SpreadAngle, ErrDomain)
	}
	if c.Alpha < 0 {
		return fmt.Errorf("wake: wake expansion coefficient is negative "+
			"(%g): %w", c.Alpha, ErrInvalidInput)
	}
	if c.RelaxationFactor < 0 {
		return fmt.Errorf("wake: relaxation factor is negative (%g): %w",
			c.RelaxationFactor, ErrInvalidInput)
	}
	if c.LossExponent < 1 {
		return fmt.Errorf("wake: loss exponent must be at least 1 but is "+
			"%d: %w", c.LossExponent, ErrInvalidInput)
	}
	return nil
}

// Validate checks a farm and configuration pair before an evaluation.
func Validate(f *Farm, c *Config) error {
	if f == nil || f.Len() == 0 {
		return fmt.Errorf("wake: farm has no turbines: %w", ErrInvalidInput)
	}
	n := f.Len()
	for name, s := range map[string][]float64{
		"y": f.Y, "z": f.Z, "rotorRadius": f.RotorRadius,
		"axialInduction": f.AxialInduction,
	} {
		if len(s) != n {
			return fmt.Errorf("wake: input length mismatch: x=%d, %s=%d: %w",
				n, name, len(s), ErrInvalidInput)
		}
	}
	// Compatibility fields are ignored by the deficit laws but must still
	// be shaped like the rest of the farm when they are present.
	for name, s := range map[string][]float64{
		"yaw": f.Yaw, "hubHeight": f.HubHeight, "ct": f.Ct,
	} {
		if s != nil && len(s) != n {
			return fmt.Errorf("wake: input length mismatch: x=%d, %s=%d: %w",
				n, name, len(s), ErrInvalidInput)
		}
	}
	return c.Valid()
}
