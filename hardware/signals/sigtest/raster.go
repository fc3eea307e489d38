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

// Package sigtest provides a minimal implementation of the signals.Design
// interface for use in tests.
package sigtest

import (
	"fmt"

	"github.com/hdlview/hdlview/hardware/signals"
)

// Raster is a design that scans a raster of Width by Height visible pixels,
// followed by a single blanking line, filling every visible pixel with the
// same colour.
//
// The raster counters are registered and advance on the rising edge of the
// clock. After reset the coordinate is (0,0).
type Raster struct {
	Width  int
	Height int

	R, G, B uint8

	// if Observer is not nil it is called with a short description of every
	// input change, every Eval() and the call to Final()
	Observer func(call string)

	reset    bool
	clock    bool
	prev     bool
	movement signals.Movement

	x, y int

	// number of calls to Eval() and Final()
	Evals  int
	Finals int

	// number of rising clock edges seen while reset was not asserted
	Edges int

	// the movement value most recently set
	LastMovement signals.Movement
}

func (r *Raster) observe(call string) {
	if r.Observer != nil {
		r.Observer(call)
	}
}

// SetReset implements the signals.Design interface.
func (r *Raster) SetReset(v bool) {
	r.reset = v
	r.observe(fmt.Sprintf("reset=%v", v))
}

// SetClock implements the signals.Design interface.
func (r *Raster) SetClock(v bool) {
	r.clock = v
	r.observe(fmt.Sprintf("clock=%v", v))
}

// SetMovement implements the signals.Design interface.
func (r *Raster) SetMovement(m signals.Movement) {
	r.movement = m
	r.LastMovement = m
	r.observe(fmt.Sprintf("movement=%s", m))
}

// Clock returns the current state of the clock input.
func (r *Raster) Clock() bool {
	return r.clock
}

// Reset returns the current state of the reset input.
func (r *Raster) Reset() bool {
	return r.reset
}

// Eval implements the signals.Design interface.
func (r *Raster) Eval() {
	r.Evals++
	r.observe("eval")

	rising := r.clock && !r.prev
	r.prev = r.clock
	if !rising {
		return
	}

	if r.reset {
		r.x = 0
		r.y = 0
		return
	}

	r.Edges++
	r.x++
	if r.x >= r.Width {
		r.x = 0
		r.y++
		if r.y > r.Height {
			r.y = 0
		}
	}
}

// Final implements the signals.Design interface.
func (r *Raster) Final() {
	r.Finals++
	r.observe("final")
}

// X implements the signals.Design interface.
func (r *Raster) X() int { return r.x }

// Y implements the signals.Design interface.
func (r *Raster) Y() int { return r.y }

// DataEnable implements the signals.Design interface.
func (r *Raster) DataEnable() bool {
	return r.x < r.Width && r.y < r.Height
}

// Red implements the signals.Design interface.
func (r *Raster) Red() uint8 { return r.R }

// Green implements the signals.Design interface.
func (r *Raster) Green() uint8 { return r.G }

// Blue implements the signals.Design interface.
func (r *Raster) Blue() uint8 { return r.B }

// CyclesPerFrame returns the number of clock cycles in one full scan of the
// raster, including the blanking line.
func (r *Raster) CyclesPerFrame() int {
	return r.Width * (r.Height + 1)
}
