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

// Package vga implements the raster counter shared by the reference designs.
// The counter runs over the whole of the 800x525 line timing of a 640x480
// display. Only the top-left 640x480 of the raster is visible.
package vga

import "github.com/hdlview/hdlview/specification"

// Line timing of the counter, including the blanking intervals.
const (
	TotalWidth  = 800
	TotalHeight = 525
)

// Visible is the geometry of the visible raster.
var Visible = specification.VGA

// Edge detects the rising edge of a clock line.
type Edge struct {
	prev bool
}

// Rising should be called once per Eval() with the current level of the
// clock. It returns true if the level has changed from low to high since the
// previous call.
func (e *Edge) Rising(clk bool) bool {
	r := clk && !e.prev
	e.prev = clk
	return r
}

// Counter is the horizontal and vertical position of the raster beam.
type Counter struct {
	X int
	Y int
}

// Reset the counter to the top-left of the raster.
func (c *Counter) Reset() {
	c.X = 0
	c.Y = 0
}

// Tick advances the counter by one pixel clock. It returns true when the
// counter enters the first line of the vertical blanking interval.
func (c *Counter) Tick() bool {
	c.X++
	if c.X < TotalWidth {
		return false
	}

	c.X = 0
	c.Y++
	if c.Y >= TotalHeight {
		c.Y = 0
	}

	return c.Y == Visible.Height
}

// DataEnable returns true if the counter is within the visible raster.
func (c *Counter) DataEnable() bool {
	return c.X < Visible.Width && c.Y < Visible.Height
}
