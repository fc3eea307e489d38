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

// Package designs lists the reference designs that can be simulated without
// an external hardware model.
package designs

import (
	"sort"
	"strings"

	"github.com/hdlview/hdlview/curated"
	"github.com/hdlview/hdlview/hardware/designs/bounce"
	"github.com/hdlview/hdlview/hardware/designs/testcard"
	"github.com/hdlview/hdlview/hardware/designs/vga"
	"github.com/hdlview/hdlview/hardware/signals"
	"github.com/hdlview/hdlview/specification"
)

// Sentinal error returned by New() when the design name is not recognised.
const UnknownDesign = "designs: unknown design (%s)"

// Default is the name of the design used when none is specified.
const Default = "bounce"

var constructors = map[string]func() signals.Design{
	"bounce":   func() signals.Design { return bounce.NewBounce() },
	"testcard": func() signals.Design { return testcard.NewTestcard() },
}

// Geometry is the visible raster geometry shared by all the reference designs.
func Geometry() specification.Geometry {
	return vga.Visible
}

// Names returns the sorted list of design names.
func Names() []string {
	n := make([]string, 0, len(constructors))
	for k := range constructors {
		n = append(n, k)
	}
	sort.Strings(n)
	return n
}

// New returns a new instance of the named design. The name is not case
// sensitive.
func New(name string) (signals.Design, error) {
	c, ok := constructors[strings.ToLower(name)]
	if !ok {
		return nil, curated.Errorf(UnknownDesign, name)
	}
	return c(), nil
}
