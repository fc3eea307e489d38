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
	"testing"

	"github.com/hdlview/hdlview/test"
	"github.com/hdlview/hdlview/userinput"
)

func TestDecodeLetters(t *testing.T) {
	var dec decoder

	keys, quit := dec.decode([]byte("wd"))
	test.ExpectFailure(t, quit)
	test.ExpectSuccess(t, keys[userinput.KeyUp])
	test.ExpectSuccess(t, keys[userinput.KeyRight])
	test.ExpectFailure(t, keys[userinput.KeyDown])
	test.ExpectFailure(t, keys[userinput.KeyLeft])

	keys, _ = dec.decode([]byte("q"))
	test.ExpectSuccess(t, keys[userinput.KeyQuit])

	_, quit = dec.decode([]byte{keyInterrupt})
	test.ExpectSuccess(t, quit)
}

func TestDecodeCursorKeys(t *testing.T) {
	var dec decoder

	keys, _ := dec.decode([]byte{keyEsc, escCursor, cursorUp, keyEsc, escCursor, cursorBackward})
	test.ExpectSuccess(t, keys[userinput.KeyUp])
	test.ExpectSuccess(t, keys[userinput.KeyLeft])
	test.ExpectFailure(t, keys[userinput.KeyRight])

	// sequence split over two reads
	keys, _ = dec.decode([]byte{keyEsc})
	test.ExpectEquality(t, keys, userinput.Keys{})
	keys, _ = dec.decode([]byte{escCursor, cursorDown})
	test.ExpectSuccess(t, keys[userinput.KeyDown])

	// the 'A' of a cursor sequence is not the 'a' key
	keys, _ = dec.decode([]byte{keyEsc, escCursor, cursorUp})
	test.ExpectFailure(t, keys[userinput.KeyLeft])
}

func TestDecodeApplicationCursorKeys(t *testing.T) {
	var dec decoder

	keys, _ := dec.decode([]byte{keyEsc, escAppCursor, cursorUp, keyEsc, escAppCursor, cursorForward})
	test.ExpectSuccess(t, keys[userinput.KeyUp])
	test.ExpectSuccess(t, keys[userinput.KeyRight])
	test.ExpectFailure(t, keys[userinput.KeyLeft])
	test.ExpectFailure(t, keys[userinput.KeyDown])
}

func TestDecodeLoneEscape(t *testing.T) {
	var dec decoder

	// escape on its own followed by the quit key in the next read
	keys, _ := dec.decode([]byte{keyEsc})
	test.ExpectEquality(t, keys, userinput.Keys{})
	keys, _ = dec.decode([]byte("q"))
	test.ExpectSuccess(t, keys[userinput.KeyQuit])

	// escape followed by an interrupt in the same read
	_, quit := dec.decode([]byte{keyEsc, keyInterrupt})
	test.ExpectSuccess(t, quit)

	// escape followed by a second escape sequence
	keys, _ = dec.decode([]byte{keyEsc, keyEsc, escCursor, cursorDown})
	test.ExpectSuccess(t, keys[userinput.KeyDown])
}

func TestSampleLatching(t *testing.T) {
	hl, err := NewHeadless(0, false)
	test.DemandSuccess(t, err)
	defer hl.Destroy()

	hl.press(userinput.KeyUp)
	hl.press(userinput.KeyRight)

	s := hl.Sample()
	test.ExpectEquality(t, s.Movement().String(), "1001")
	test.ExpectFailure(t, s.Terminate())

	// presses are reported for one frame only
	s = hl.Sample()
	test.ExpectEquality(t, s.Movement().String(), "0000")

	hl.quit.Store(true)
	test.ExpectSuccess(t, hl.Sample().Terminate())
	test.ExpectSuccess(t, hl.Sample().Terminate())
}
