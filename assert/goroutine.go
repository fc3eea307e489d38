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

// Package assert contains checks for conditions that should never happen in a
// correctly written program. Failed checks are reported by the caller.
package assert

import (
	"bytes"
	"runtime"
	"strconv"
)

// GoroutineID returns the ID of the calling goroutine. The value is parsed
// from the header of the goroutine's stack trace and is zero if the header
// cannot be parsed.
func GoroutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	if i := bytes.IndexByte(b, ' '); i >= 0 {
		b = b[:i]
	}
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

// Owner records the goroutine that created a resource.
type Owner struct {
	id uint64
}

// NewOwner returns an Owner for the calling goroutine.
func NewOwner() Owner {
	return Owner{id: GoroutineID()}
}

// IsOwner returns true if the calling goroutine is the owner.
func (o Owner) IsOwner() bool {
	return o.id == GoroutineID()
}

func (o Owner) String() string {
	return strconv.FormatUint(o.id, 10)
}
