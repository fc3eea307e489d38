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

// Package framebuffer accumulates the pixels driven by a simulated design into
// a fixed size frame.
//
// The Frame is owned by the simulation loop and is written to every cycle in
// which the design asserts data enable. It is only ever handed to a
// presentation surface as a read-only View, and only at a frame boundary.
//
// The frame is never cleared between frames. If a design stops driving part
// of the visible raster then the pixels from the last time it was driven
// persist, in the same way that they would on a display with persistence. This
// is a known quirk and not something the loop tries to correct.
package framebuffer
