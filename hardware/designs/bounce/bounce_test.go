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

package bounce_test

import (
	"testing"

	"github.com/hdlview/hdlview/hardware/clock"
	"github.com/hdlview/hdlview/hardware/designs/bounce"
	"github.com/hdlview/hdlview/hardware/signals"
	"github.com/hdlview/hdlview/specification"
	"github.com/hdlview/hdlview/test"
)

const cyclesToBoundary = 480 * 800

func TestReset(t *testing.T) {
	bn := bounce.NewBounce()
	clock.Reset(bn)

	test.ExpectEquality(t, bn.X(), 0)
	test.ExpectEquality(t, bn.Y(), 0)
	test.ExpectSuccess(t, bn.DataEnable())
}

func TestBoundary(t *testing.T) {
	bn := bounce.NewBounce()
	clock.Reset(bn)

	for i := 1; i < cyclesToBoundary; i++ {
		clock.Step(bn)
		if specification.VGA.IsFrameBoundary(bn.X(), bn.Y()) {
			t.Fatalf("unexpected frame boundary after %d cycles", i)
		}
	}

	clock.Step(bn)
	test.ExpectSuccess(t, specification.VGA.IsFrameBoundary(bn.X(), bn.Y()))
	test.ExpectFailure(t, bn.DataEnable())
	test.ExpectEquality(t, bn.Red(), uint8(0))
}

func TestMovement(t *testing.T) {
	bn := bounce.NewBounce()
	clock.Reset(bn)
	x, y := bn.Square()

	bn.SetMovement(signals.MoveRight | signals.MoveDown)
	for i := 0; i < cyclesToBoundary; i++ {
		clock.Step(bn)
	}

	nx, ny := bn.Square()
	test.ExpectEquality(t, nx, x+1)
	test.ExpectEquality(t, ny, y+1)

	// the square only moves once per frame
	clock.Step(bn)
	nx, ny = bn.Square()
	test.ExpectEquality(t, nx, x+1)
	test.ExpectEquality(t, ny, y+1)

	// reset returns the square to the centre
	clock.Reset(bn)
	nx, ny = bn.Square()
	test.ExpectEquality(t, nx, x)
	test.ExpectEquality(t, ny, y)
}

func TestSquareColour(t *testing.T) {
	bn := bounce.NewBounce()
	clock.Reset(bn)

	// background at the top-left
	bg := [3]uint8{bn.Red(), bn.Green(), bn.Blue()}

	x, y := bn.Square()
	for i := 0; i < y*800+x; i++ {
		clock.Step(bn)
	}
	test.DemandEquality(t, bn.X(), x)
	test.DemandEquality(t, bn.Y(), y)
	test.ExpectInequality(t, [3]uint8{bn.Red(), bn.Green(), bn.Blue()}, bg)
}
