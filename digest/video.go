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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/hdlview/hdlview/curated"
	"github.com/hdlview/hdlview/framebuffer"
	"github.com/hdlview/hdlview/gui"
)

// Video implements the gui.Surface interface. All calls are forwarded to the
// wrapped surface.
type Video struct {
	gui.Surface

	digest [sha1.Size]byte

	// the previous digest followed by the pixel data of the most recent
	// frame, ready for hashing
	pixels []byte

	frames int
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo(surface gui.Surface) *Video {
	if surface == nil {
		surface = gui.Stub{}
	}
	return &Video{Surface: surface}
}

// Hash returns the digest of all frames presented so far.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// Frames returns the number of frames included in the digest.
func (dig *Video) Frames() int {
	return dig.frames
}

// ResetDigest clears the digest.
func (dig *Video) ResetDigest() {
	dig.digest = [sha1.Size]byte{}
	dig.frames = 0
}

// Present implements the gui.Surface interface. The frame is only added to the
// digest if the wrapped surface presents it successfully.
func (dig *Video) Present(view framebuffer.View) error {
	if err := dig.Surface.Present(view); err != nil {
		return err
	}

	geom := view.Geometry()
	l := len(dig.digest) + geom.Pixels()*framebuffer.BytesPerPixel
	if len(dig.pixels) != l {
		dig.pixels = make([]byte, l)
	}

	// chain fingerprints by copying the previous digest to the head of the
	// pixel data
	copy(dig.pixels, dig.digest[:])
	err := view.CopyRGBA(dig.pixels[len(dig.digest):], geom.Width*framebuffer.BytesPerPixel)
	if err != nil {
		return curated.Errorf("digest: %v", err)
	}

	dig.digest = sha1.Sum(dig.pixels)
	dig.frames++

	return nil
}
