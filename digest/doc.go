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

// Package digest fingerprints the frames presented by a simulation. The Video
// type wraps any gui.Surface and chains a SHA-1 hash through every frame that
// passes through it. Two runs of the same design with the same input produce
// the same hash, which makes the hash useful for regression checks.
package digest
