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

import "fmt"

// Variant identifies one of the built-in deficit-law implementations. It is
// a closed enumeration so that model selection happens once, at
// configuration time, rather than by comparing strings inside the
// evaluation loop.
type Variant int

const (
	// TopHat is the Jensen model with binary wake membership. It has a
	// hard discontinuity at the wake edge and so is unsuitable where an
	// optimizer needs smooth derivatives.
	TopHat Variant = iota

	// Cosine is the Jensen model with raised-cosine angular smoothing.
	Cosine

	// CosineFast is a fused single-pass implementation of Cosine. It is
	// a performance backend, not a different model: it must produce
	// results numerically equivalent to Cosine.
	CosineFast
)

var variantNames = map[Variant]string{
	TopHat:     "TopHat",
	Cosine:     "Cosine",
	CosineFast: "CosineFast",
}

func (v Variant) String() string {
	if s, ok := variantNames[v]; ok {
		return s
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// ParseVariant converts a configuration string such as "Cosine" into a
// Variant.
func ParseVariant(s string) (Variant, error) {
	for v, name := range variantNames {
		if s == name {
			return v, nil
		}
	}
	return 0, fmt.Errorf("wake: unknown wake model variant %q (valid "+
		"variants are TopHat, Cosine, and CosineFast): %w", s, ErrInvalidInput)
}
