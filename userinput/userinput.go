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

package userinput

import (
	"github.com/hdlview/hdlview/hardware/signals"
)

// Key is a logical key. Physical keys are mapped to logical keys by the
// presentation surface.
type Key int

// List of valid Key values.
const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyQuit

	numKeys
)

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyQuit:
		return "quit"
	}
	return "unknown"
}

// Keys is a snapshot of which logical keys are currently held down.
type Keys [numKeys]bool

// Snapshot is the input state sampled at a frame boundary. It is not
// retained beyond the frame boundary it was sampled at.
type Snapshot struct {
	Keys Keys

	// a quit event (eg. window close) was pending in the event queue
	QuitEvent bool
}

// Movement encodes the directional keys as a movement signal.
func (s Snapshot) Movement() signals.Movement {
	var m signals.Movement
	if s.Keys[KeyUp] {
		m |= signals.MoveUp
	}
	if s.Keys[KeyDown] {
		m |= signals.MoveDown
	}
	if s.Keys[KeyLeft] {
		m |= signals.MoveLeft
	}
	if s.Keys[KeyRight] {
		m |= signals.MoveRight
	}
	return m
}

// Terminate returns true if the snapshot contains a quit event or the quit
// key is held.
func (s Snapshot) Terminate() bool {
	return s.QuitEvent || s.Keys[KeyQuit]
}

// Source is implemented by types that can sample the current input state.
// Sample() is called once per frame boundary.
type Source interface {
	Sample() Snapshot
}
