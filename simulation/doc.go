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

// Package simulation drives a hardware design cycle-by-cycle and presents the
// raster it generates.
//
// The Simulation type owns the design, the frame buffer and the counters. It
// moves through the states Resetting, Running, Terminating and Terminated.
// While Running, every cycle is stepped with the clock sequencer and the
// design outputs are accumulated into the frame buffer. At a frame boundary
// the input bridge is serviced and the frame is presented.
//
// The Running state ends only at a frame boundary. Either because the input
// source requested termination, because the context has been cancelled, or
// because the surface failed to present the frame. In all cases the design is
// finalised before the surface is destroyed.
//
// The frame buffer is never cleared between frames. Pixels that the design
// does not redraw persist from one frame to the next.
package simulation
