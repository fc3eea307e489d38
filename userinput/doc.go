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

// Package userinput translates the state of the keyboard, as sampled by a
// presentation surface, into the movement signal and the quit request.
//
// Input is only ever sampled at a frame boundary. A key that is pressed and
// released entirely within a single frame may therefore be missed, which is
// how the input of the design would behave on real hardware sampling once per
// frame.
package userinput
