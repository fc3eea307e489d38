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

// Package bounce is a reference design that draws a square on a plain
// background. The square is moved one pixel per frame according to the
// movement input.
package bounce

import (
	"github.com/hdlview/hdlview/hardware/designs/vga"
	"github.com/hdlview/hdlview/hardware/signals"
)

// Size of the square in pixels.
const Size = 32

// Bounce implements the signals.Design interface.
type Bounce struct {
	reset    bool
	clk      bool
	movement signals.Movement

	edge vga.Edge
	beam vga.Counter

	// top-left of the square. registered
	sqX int
	sqY int

	// combinational outputs
	de      bool
	r, g, b uint8
}

// NewBounce is the preferred method of initialisation for the Bounce type.
func NewBounce() *Bounce {
	bn := &Bounce{}
	bn.home()
	return bn
}

func (bn *Bounce) home() {
	bn.sqX = (vga.Visible.Width - Size) / 2
	bn.sqY = (vga.Visible.Height - Size) / 2
}

func (bn *Bounce) String() string {
	return "bounce"
}

// SetReset implements the signals.Clocked interface.
func (bn *Bounce) SetReset(v bool) {
	bn.reset = v
}

// SetClock implements the signals.Clocked interface.
func (bn *Bounce) SetClock(v bool) {
	bn.clk = v
}

// SetMovement implements the signals.Inputs interface.
func (bn *Bounce) SetMovement(m signals.Movement) {
	bn.movement = m
}

// Eval implements the signals.Clocked interface.
func (bn *Bounce) Eval() {
	if bn.edge.Rising(bn.clk) {
		if bn.reset {
			bn.beam.Reset()
			bn.home()
		} else if bn.beam.Tick() {
			bn.move()
		}
	}

	bn.de = bn.beam.DataEnable()
	if !bn.de {
		bn.r, bn.g, bn.b = 0, 0, 0
		return
	}

	if bn.beam.X >= bn.sqX && bn.beam.X < bn.sqX+Size && bn.beam.Y >= bn.sqY && bn.beam.Y < bn.sqY+Size {
		bn.r, bn.g, bn.b = 0xff, 0xd0, 0x40
	} else {
		bn.r, bn.g, bn.b = 0x10, 0x20, 0x60
	}
}

// move the square once per frame. the square never leaves the visible area
func (bn *Bounce) move() {
	if bn.movement.Has(signals.MoveUp) && bn.sqY > 0 {
		bn.sqY--
	}
	if bn.movement.Has(signals.MoveDown) && bn.sqY < vga.Visible.Height-Size {
		bn.sqY++
	}
	if bn.movement.Has(signals.MoveLeft) && bn.sqX > 0 {
		bn.sqX--
	}
	if bn.movement.Has(signals.MoveRight) && bn.sqX < vga.Visible.Width-Size {
		bn.sqX++
	}
}

// Final implements the signals.Design interface.
func (bn *Bounce) Final() {
}

// Square returns the top-left coordinate of the square.
func (bn *Bounce) Square() (int, int) {
	return bn.sqX, bn.sqY
}

// X implements the signals.Outputs interface.
func (bn *Bounce) X() int {
	return bn.beam.X
}

// Y implements the signals.Outputs interface.
func (bn *Bounce) Y() int {
	return bn.beam.Y
}

// DataEnable implements the signals.Outputs interface.
func (bn *Bounce) DataEnable() bool {
	return bn.de
}

// Red implements the signals.Outputs interface.
func (bn *Bounce) Red() uint8 {
	return bn.r
}

// Green implements the signals.Outputs interface.
func (bn *Bounce) Green() uint8 {
	return bn.g
}

// Blue implements the signals.Outputs interface.
func (bn *Bounce) Blue() uint8 {
	return bn.b
}
