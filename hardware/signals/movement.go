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

package signals

import "strings"

// Movement is the 4-bit directional command. Bit order, from most to least
// significant, is up, down, left, right.
type Movement uint8

// List of valid Movement bits.
const (
	MoveRight Movement = 1 << iota
	MoveLeft
	MoveDown
	MoveUp

	MoveNone Movement = 0
)

// Has returns true if all the bits in d are set.
func (m Movement) Has(d Movement) bool {
	return m&d == d
}

// String returns the movement as a four digit binary number.
func (m Movement) String() string {
	s := strings.Builder{}
	for _, d := range []Movement{MoveUp, MoveDown, MoveLeft, MoveRight} {
		if m.Has(d) {
			s.WriteRune('1')
		} else {
			s.WriteRune('0')
		}
	}
	return s.String()
}
