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

package specification_test

import (
	"testing"

	"github.com/hdlview/hdlview/specification"
	"github.com/hdlview/hdlview/test"
)

func TestFrameBoundary(t *testing.T) {
	g := specification.VGA
	test.ExpectSuccess(t, g.IsFrameBoundary(0, 480))
	test.ExpectFailure(t, g.IsFrameBoundary(1, 480))
	test.ExpectFailure(t, g.IsFrameBoundary(0, 479))
	test.ExpectFailure(t, g.IsFrameBoundary(0, 0))
	test.ExpectFailure(t, g.IsFrameBoundary(0, 481))
}

func TestContains(t *testing.T) {
	g := specification.Geometry{Width: 2, Height: 2}
	test.ExpectEquality(t, g.Pixels(), 4)
	test.ExpectSuccess(t, g.Contains(0, 0))
	test.ExpectSuccess(t, g.Contains(1, 1))
	test.ExpectFailure(t, g.Contains(2, 0))
	test.ExpectFailure(t, g.Contains(0, 2))
	test.ExpectFailure(t, g.Contains(-1, 0))
	test.ExpectEquality(t, g.String(), "2x2")
}
