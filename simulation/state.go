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

package simulation

// State indicates the simulation's state.
type State int

// List of possible simulation states. Resetting is the initial state and
// Terminated is the final state. A simulation never returns to an earlier
// state.
const (
	Resetting State = iota
	Running
	Terminating
	Terminated
)

func (s State) String() string {
	switch s {
	case Resetting:
		return "Resetting"
	case Running:
		return "Running"
	case Terminating:
		return "Terminating"
	case Terminated:
		return "Terminated"
	}
	return ""
}
