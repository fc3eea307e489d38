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

package headless

import (
	"github.com/hdlview/hdlview/userinput"
)

// list of ASCII codes for non-alphanumeric characters
const (
	keyInterrupt = 3 // end-of-text character
	keyEsc       = 27
)

// list of ASCII codes for characters that can follow keyEsc and then
// escCursor or escAppCursor in a cursor key sequence
const (
	escCursor    = '['
	escAppCursor = 'O'

	cursorUp       = 'A'
	cursorDown     = 'B'
	cursorForward  = 'C'
	cursorBackward = 'D'
)

// decoder turns raw terminal bytes into logical key presses. escape sequences
// may be split across reads so the decoder keeps track of how far through a
// sequence it is.
type decoder struct {
	// 0 = not in sequence, 1 = seen keyEsc, 2 = seen keyEsc and escCursor or
	// escAppCursor
	esc int
}

func (dec *decoder) decode(b []byte) (keys userinput.Keys, quit bool) {
	for _, c := range b {
		switch dec.esc {
		case 1:
			dec.esc = 0
			if c == escCursor || c == escAppCursor {
				dec.esc = 2
				continue
			}
			// a lone escape. the byte is an ordinary key
		case 2:
			dec.esc = 0
			switch c {
			case cursorUp:
				keys[userinput.KeyUp] = true
			case cursorDown:
				keys[userinput.KeyDown] = true
			case cursorForward:
				keys[userinput.KeyRight] = true
			case cursorBackward:
				keys[userinput.KeyLeft] = true
			}
			continue
		}

		switch c {
		case keyEsc:
			dec.esc = 1
		case keyInterrupt:
			quit = true
		case 'q', 'Q':
			keys[userinput.KeyQuit] = true
		case 'w', 'W':
			keys[userinput.KeyUp] = true
		case 's', 'S':
			keys[userinput.KeyDown] = true
		case 'a', 'A':
			keys[userinput.KeyLeft] = true
		case 'd', 'D':
			keys[userinput.KeyRight] = true
		}
	}

	return keys, quit
}
