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

// Package clock drives a simulated design through reset and clock cycles.
//
// A single call to Step() is one logical clock cycle: two edges and three
// evaluations of the design.
//
//	clock low  -> eval
//	clock high -> eval (rising edge, registered state changes)
//	clock low  -> eval
//
// The first evaluation makes sure combinational outputs reflect any input
// changes made since the previous cycle (for example, a new movement value)
// before the rising edge is presented.
package clock

import (
	"github.com/hdlview/hdlview/hardware/signals"
)

// Reset drives the design through the synchronous reset sequence. It must be
// called once before the first call to Step().
func Reset(d signals.Clocked) {
	d.SetReset(true)
	d.SetClock(false)
	d.Eval()

	d.SetClock(true)
	d.Eval()

	d.SetReset(false)
	d.SetClock(false)
	d.Eval()
}

// Step advances the design by exactly one clock cycle. The clock line is low
// when the function returns.
func Step(d signals.Clocked) {
	d.SetClock(false)
	d.Eval()

	d.SetClock(true)
	d.Eval()

	d.SetClock(false)
	d.Eval()
}

// Sequencer drives a design and counts the number of cycles since the most
// recent reset.
type Sequencer struct {
	design signals.Clocked
	cycles uint64
}

// NewSequencer is the preferred method of initialisation for the Sequencer type.
func NewSequencer(d signals.Clocked) *Sequencer {
	return &Sequencer{design: d}
}

// Reset the design and the cycle count.
func (sq *Sequencer) Reset() {
	Reset(sq.design)
	sq.cycles = 0
}

// Step the design by one cycle.
func (sq *Sequencer) Step() {
	Step(sq.design)
	sq.cycles++
}

// Cycles returns the number of cycles since the most recent reset.
func (sq *Sequencer) Cycles() uint64 {
	return sq.cycles
}
