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

// Package gui defines the presentation surface. A surface presents frames
// and is the source of user input. Implementations are found in the sdlscreen
// and headless sub-packages.
package gui

import (
	"github.com/hdlview/hdlview/framebuffer"
	"github.com/hdlview/hdlview/userinput"
)

// Surface defines the operations that can be performed on a presentation
// surface. All functions MUST ONLY be called from the #mainthread.
type Surface interface {
	userinput.Source

	// Present the frame. The view must not be retained after the function
	// returns. This may block, for example until the next vertical sync.
	Present(view framebuffer.View) error

	// Destroy releases all resources used by the surface. The surface can not
	// be used after Destroy() has been called.
	Destroy()
}

// Stub is a surface that presents nothing and never requests termination.
type Stub struct{}

// Sample implements the userinput.Source interface.
func (_ Stub) Sample() userinput.Snapshot {
	return userinput.Snapshot{}
}

// Present implements the Surface interface.
func (_ Stub) Present(_ framebuffer.View) error {
	return nil
}

// Destroy implements the Surface interface.
func (_ Stub) Destroy() {
}
