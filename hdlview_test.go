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

package main

import (
	"strings"
	"testing"

	"github.com/hdlview/hdlview/test"
)

func TestPerformanceMode(t *testing.T) {
	out := &test.CompareWriter{}
	errOut := &test.CompareWriter{}

	v := launch(out, errOut, []string{"PERFORMANCE", "-design", "testcard", "-duration", "10ms"})
	test.ExpectEquality(t, v, 0)
	test.ExpectEquality(t, errOut.String(), "")
	test.ExpectSuccess(t, strings.HasPrefix(out.String(), "fps: "))
	test.ExpectSuccess(t, strings.Contains(out.String(), "cycles: "))
}

func TestHelp(t *testing.T) {
	out := &test.CompareWriter{}
	errOut := &test.CompareWriter{}

	v := launch(out, errOut, []string{"-help"})
	test.ExpectEquality(t, v, 0)
	test.ExpectSuccess(t, strings.Contains(out.String(), "available sub-modes: RUN, PERFORMANCE, VERSION"))

	out.Clear()
	v = launch(out, errOut, []string{"PERFORMANCE", "-help"})
	test.ExpectEquality(t, v, 0)
	test.ExpectSuccess(t, strings.Contains(out.String(), "-duration"))
}

func TestArgumentErrors(t *testing.T) {
	for _, args := range [][]string{
		{"PERFORMANCE", "-design", "foo"},
		{"PERFORMANCE", "-duration", "0s"},
		{"PERFORMANCE", "-profile", "foo"},
		{"PERFORMANCE", "-foo"},
		{"PERFORMANCE", "extra"},
		{"RUN", "-scale", "0"},
		{"RUN", "-design", "foo"},
	} {
		out := &test.CompareWriter{}
		errOut := &test.CompareWriter{}

		v := launch(out, errOut, args)
		test.ExpectEquality(t, v, exitArguments, args)
		test.ExpectSuccess(t, strings.HasPrefix(errOut.String(), "* error in "), args)
	}
}

func TestVersionMode(t *testing.T) {
	out := &test.CompareWriter{}
	v := launch(out, &test.CompareWriter{}, []string{"version"})
	test.ExpectEquality(t, v, 0)
	test.ExpectSuccess(t, strings.HasPrefix(out.String(), "hdlview "))
}
