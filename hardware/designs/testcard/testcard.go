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

// Package testcard is a reference design that draws vertical colour bars. The
// movement input is ignored.
package testcard

import (
	"github.com/hdlview/hdlview/hardware/designs/vga"
	"github.com/hdlview/hdlview/hardware/signals"
)

// the colour bars from left to right
var bars = [...][3]uint8{
	{0xff, 0xff, 0xff},
	{0xff, 0xff, 0x00},
	{0x00, 0xff, 0xff},
	{0x00, 0xff, 0x00},
	{0xff, 0x00, 0xff},
	{0xff, 0x00, 0x00},
	{0x00, 0x00, 0xff},
	{0x00, 0x00, 0x00},
}

// NumBars is the number of colour bars in the visible raster.
const NumBars = len(bars)

// Testcard implements the signals.Design interface.
type Testcard struct {
	reset bool
	clk   bool

	edge vga.Edge
	beam vga.Counter

	de      bool
	r, g, b uint8
}

// NewTestcard is the preferred method of initialisation for the Testcard type.
func NewTestcard() *Testcard {
	return &Testcard{}
}

func (tc *Testcard) String() string {
	return "testcard"
}

// SetReset implements the signals.Clocked interface.
func (tc *Testcard) SetReset(v bool) {
	tc.reset = v
}

// SetClock implements the signals.Clocked interface.
func (tc *Testcard) SetClock(v bool) {
	tc.clk = v
}

// SetMovement implements the signals.Inputs interface.
func (tc *Testcard) SetMovement(_ signals.Movement) {
}

// Eval implements the signals.Clocked interface.
func (tc *Testcard) Eval() {
	if tc.edge.Rising(tc.clk) {
		if tc.reset {
			tc.beam.Reset()
		} else {
			tc.beam.Tick()
		}
	}

	tc.de = tc.beam.DataEnable()
	if !tc.de {
		tc.r, tc.g, tc.b = 0, 0, 0
		return
	}

	c := bars[tc.beam.X*NumBars/vga.Visible.Width]
	tc.r, tc.g, tc.b = c[0], c[1], c[2]
}

// Final implements the signals.Design interface.
func (tc *Testcard) Final() {
}

// X implements the signals.Outputs interface.
func (tc *Testcard) X() int {
	return tc.beam.X
}

// Y implements the signals.Outputs interface.
func (tc *Testcard) Y() int {
	return tc.beam.Y
}

// DataEnable implements the signals.Outputs interface.
func (tc *Testcard) DataEnable() bool {
	return tc.de
}

// Red implements the signals.Outputs interface.
func (tc *Testcard) Red() uint8 {
	return tc.r
}

// Green implements the signals.Outputs interface.
func (tc *Testcard) Green() uint8 {
	return tc.g
}

// Blue implements the signals.Outputs interface.
func (tc *Testcard) Blue() uint8 {
	return tc.b
}
