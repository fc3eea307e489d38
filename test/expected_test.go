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

package test_test

import (
	"errors"
	"testing"

	"github.com/hdlview/hdlview/test"
)

func TestExpectations(t *testing.T) {
	test.ExpectSuccess(t, true)
	test.ExpectSuccess(t, nil)
	test.ExpectFailure(t, false)
	test.ExpectFailure(t, errors.New("test"))

	var err error
	test.ExpectSuccess(t, err)
}

func TestEquality(t *testing.T) {
	test.ExpectEquality(t, 10, 10)
	test.ExpectEquality(t, "foo", "foo")
	test.ExpectInequality(t, uint8(1), 2)
}

func TestCompareWriter(t *testing.T) {
	w := &test.CompareWriter{}
	_, _ = w.Write([]byte("hello "))
	_, _ = w.Write([]byte("world"))
	test.ExpectSuccess(t, w.Compare("hello world"))

	w.Clear()
	test.ExpectSuccess(t, w.Compare(""))
}
