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

package logger

// Permission is passed with every log request. An entry is only made if
// AllowLogging() returns true at the time of the request.
//
// The simulation logs its state transitions with Allow. Other
// implementations can gate entries, for example to silence a noisy surface.
type Permission interface {
	AllowLogging() bool
}

// always implements Permission and never refuses a request
type always struct{}

func (_ always) AllowLogging() bool {
	return true
}

// Allow is the Permission used by every component of hdlview. Log entries
// made with Allow are always recorded.
var Allow Permission = always{}
