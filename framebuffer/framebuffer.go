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

package framebuffer

import (
	"github.com/hdlview/hdlview/curated"
	"github.com/hdlview/hdlview/hardware/signals"
	"github.com/hdlview/hdlview/specification"
)

// Pixel is a single 8-bit per channel pixel.
type Pixel struct {
	A uint8
	R uint8
	G uint8
	B uint8
}

// Opaque alpha value. Every pixel written by Accumulate() is opaque.
const Opaque = 0xff

// Sentinal error pattern returned by NewFrame().
const InvalidGeometry = "framebuffer: invalid geometry (%v)"

// Frame is a bounds checked, fixed size pixel buffer.
type Frame struct {
	geom   specification.Geometry
	pixels []Pixel

	// number of writes that were discarded because the coordinate was
	// outside the geometry
	discarded uint64
}

// NewFrame is the preferred method of initialisation for the Frame type.
func NewFrame(geom specification.Geometry) (*Frame, error) {
	if geom.Width <= 0 || geom.Height <= 0 {
		return nil, curated.Errorf(InvalidGeometry, geom)
	}
	return &Frame{
		geom:   geom,
		pixels: make([]Pixel, geom.Pixels()),
	}, nil
}

// Geometry returns the dimensions of the frame.
func (f *Frame) Geometry() specification.Geometry {
	return f.geom
}

// Set the pixel at the coordinate. Returns false if the coordinate is outside
// the geometry, in which case the write is discarded.
func (f *Frame) Set(x, y int, p Pixel) bool {
	if !f.geom.Contains(x, y) {
		f.discarded++
		return false
	}
	f.pixels[y*f.geom.Width+x] = p
	return true
}

// Accumulate samples the outputs of the design. If data enable is asserted
// then the pixel at the design's coordinate is set to the design's colour
// outputs. Returns true if a pixel was written.
func (f *Frame) Accumulate(out signals.Outputs) bool {
	if !out.DataEnable() {
		return false
	}
	return f.Set(out.X(), out.Y(), Pixel{
		A: Opaque,
		R: out.Red(),
		G: out.Green(),
		B: out.Blue(),
	})
}

// Discarded returns the number of writes that were outside the geometry.
func (f *Frame) Discarded() uint64 {
	return f.discarded
}

// View returns a read-only view of the frame.
func (f *Frame) View() View {
	return View{f: f}
}
