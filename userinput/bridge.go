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

// Bridge connects an input Source to the movement input of a design.
type Bridge struct {
	src Source

	// the most recent movement written to the design
	Movement signals.Movement

	// is true if the most recent call to Service() resulted in a request to
	// terminate
	Quit bool
}

// NewBridge is the preferred method of initialisation for the Bridge type.
func NewBridge(src Source) *Bridge {
	return &Bridge{src: src}
}

// Service samples the input source. If the sample does not request
// termination the movement signal is written to the design. Returns true if
// the simulation should terminate.
//
// Should only be called at a frame boundary.
func (br *Bridge) Service(design signals.Inputs) bool {
	s := br.src.Sample()

	br.Quit = s.Terminate()
	if br.Quit {
		return true
	}

	br.Movement = s.Movement()
	design.SetMovement(br.Movement)

	return false
}
