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

package sdlscreen

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/hdlview/hdlview/userinput"
)

// physical keys for each logical key
var bindings = [...]struct {
	key       userinput.Key
	scancodes []sdl.Scancode
}{
	{key: userinput.KeyUp, scancodes: []sdl.Scancode{sdl.SCANCODE_UP, sdl.SCANCODE_W}},
	{key: userinput.KeyDown, scancodes: []sdl.Scancode{sdl.SCANCODE_DOWN, sdl.SCANCODE_S}},
	{key: userinput.KeyLeft, scancodes: []sdl.Scancode{sdl.SCANCODE_LEFT, sdl.SCANCODE_A}},
	{key: userinput.KeyRight, scancodes: []sdl.Scancode{sdl.SCANCODE_RIGHT, sdl.SCANCODE_D}},
	{key: userinput.KeyQuit, scancodes: []sdl.Scancode{sdl.SCANCODE_Q}},
}

// Sample implements the userinput.Source interface.
//
// The event queue is drained and a quit event anywhere in the queue is
// latched. Key state is read from SDL's live keyboard state, which is kept up
// to date by the event polling.
//
// MUST ONLY be called from the #mainthread
func (scr *Screen) Sample() userinput.Snapshot {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev.(type) {
		case *sdl.QuitEvent:
			scr.quit = true
		}
	}

	var s userinput.Snapshot
	s.QuitEvent = scr.quit

	state := sdl.GetKeyboardState()
	for _, b := range bindings {
		for _, sc := range b.scancodes {
			if int(sc) < len(state) && state[sc] != 0 {
				s.Keys[b.key] = true
			}
		}
	}

	return s
}
