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

// Package signals defines the interface between the simulation loop and a
// simulated video-generating hardware design.
//
// The design is a black box. Inputs are set with the Set*() functions and take
// effect on the next call to Eval(), which recomputes every output from the
// current inputs. A synchronous design changes its registered state only when
// Eval() sees a rising edge on the clock input but combinational outputs may
// change on any call to Eval().
package signals

// Clocked is the subset of the Design interface required to drive the design
// through clock edges.
type Clocked interface {
	// synchronous reset. active while asserted
	SetReset(bool)

	// logical clock line
	SetClock(bool)

	// recompute all outputs from the current inputs
	Eval()
}

// Inputs are the signals driven into the design.
type Inputs interface {
	Clocked

	// directional command, sampled by the design once per frame
	SetMovement(Movement)
}

// Outputs are the signals driven by the design after every call to Eval().
type Outputs interface {
	// current raster coordinate
	X() int
	Y() int

	// asserted while the coordinate is within the visible raster
	DataEnable() bool

	// colour channels for the current coordinate
	Red() uint8
	Green() uint8
	Blue() uint8
}

// Design is a complete simulated hardware design.
type Design interface {
	Inputs
	Outputs

	// Final must be called exactly once when the simulation is finished
	Final()
}
