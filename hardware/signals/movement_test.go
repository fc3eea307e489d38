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

package signals_test

import (
	"testing"

	"github.com/hdlview/hdlview/hardware/signals"
	"github.com/hdlview/hdlview/test"
)

func TestMovementBits(t *testing.T) {
	test.ExpectEquality(t, signals.MoveUp, signals.Movement(0b1000))
	test.ExpectEquality(t, signals.MoveDown, signals.Movement(0b0100))
	test.ExpectEquality(t, signals.MoveLeft, signals.Movement(0b0010))
	test.ExpectEquality(t, signals.MoveRight, signals.Movement(0b0001))
}

func TestMovementString(t *testing.T) {
	test.ExpectEquality(t, signals.MoveNone.String(), "0000")
	test.ExpectEquality(t, signals.MoveUp.String(), "1000")
	test.ExpectEquality(t, (signals.MoveUp | signals.MoveRight).String(), "1001")
	test.ExpectEquality(t, (signals.MoveDown | signals.MoveLeft).String(), "0110")
}

func TestMovementHas(t *testing.T) {
	m := signals.MoveUp | signals.MoveRight
	test.ExpectSuccess(t, m.Has(signals.MoveUp))
	test.ExpectSuccess(t, m.Has(signals.MoveRight))
	test.ExpectSuccess(t, m.Has(m))
	test.ExpectFailure(t, m.Has(signals.MoveDown))
	test.ExpectFailure(t, m.Has(signals.MoveUp|signals.MoveLeft))
}
