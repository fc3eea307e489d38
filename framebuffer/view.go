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
	"github.com/hdlview/hdlview/specification"
)

// View is a read-only view of a Frame. A View should not be retained beyond
// the present call it was passed to because the underlying frame continues to
// be written to when the simulation resumes.
type View struct {
	f *Frame
}

// Sentinal error pattern returned by CopyRGBA().
const ShortBuffer = "framebuffer: buffer too small for %v frame with pitch %d"

// BytesPerPixel is the number of bytes written per pixel by CopyRGBA().
const BytesPerPixel = 4

// Geometry returns the dimensions of the frame.
func (v View) Geometry() specification.Geometry {
	return v.f.geom
}

// At returns the pixel at the coordinate. The zero Pixel is returned for
// coordinates outside the geometry.
func (v View) At(x, y int) Pixel {
	if !v.f.geom.Contains(x, y) {
		return Pixel{}
	}
	return v.f.pixels[y*v.f.geom.Width+x]
}

// CopyRGBA copies the frame into dst as a sequence of red, green, blue, alpha
// bytes. The pitch is the number of bytes between the start of one row and
// the next and must be at least Width * BytesPerPixel.
func (v View) CopyRGBA(dst []byte, pitch int) error {
	g := v.f.geom
	if pitch < g.Width*BytesPerPixel || len(dst) < pitch*(g.Height-1)+g.Width*BytesPerPixel {
		return curated.Errorf(ShortBuffer, g, pitch)
	}

	for y := 0; y < g.Height; y++ {
		row := dst[y*pitch:]
		src := v.f.pixels[y*g.Width : (y+1)*g.Width]
		for x, p := range src {
			i := x * BytesPerPixel
			row[i] = p.R
			row[i+1] = p.G
			row[i+2] = p.B
			row[i+3] = p.A
		}
	}

	return nil
}
