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

// Command wake is a command-line interface for the PlantEnergy wind farm
// wake model.
package main

import (
	"fmt"
	"os"

	"github.com/plantenergy/wake/wakeutil"
)

func main() {
	if err := wakeutil.Root.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
