// This file is part of Hdlview.
//
// Hdlview is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Hdlview is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Hdlview.  If not, see <https://www.gnu.org/licenses/>.

// Package specification describes the geometry of the visible raster. The
// geometry is shared implicitly between the simulation loop and the design
// being simulated: the design must drive coordinates that fit the geometry and
// must reach the frame boundary coordinate once per frame.
package specification

import "fmt"

// Geometry is the size of the visible raster in pixels.
type Geometry struct {
	Width  int
	Height int
}

// VGA is the 640x480 geometry used by the reference designs.
var VGA = Geometry{Width: 640, Height: 480}

func (g Geometry) String() string {
	return fmt.Sprintf("%dx%d", g.Width, g.Height)
}

// Pixels returns the number of pixels in the visible raster.
func (g Geometry) Pixels() int {
	return g.Width * g.Height
}

// Contains returns true if the coordinate is inside the visible raster.
func (g Geometry) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.Width && y < g.Height
}

// IsFrameBoundary returns true if the coordinate is the first coordinate of
// the vertical blanking interval. This is the point at which a frame has been
// fully rasterised.
//
// The predicate carries no state. A design with malformed timing that never
// produces the coordinate will never complete a frame.
func (g Geometry) IsFrameBoundary(x, y int) bool {
	return y == g.Height && x == 0
}
