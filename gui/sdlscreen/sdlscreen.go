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

// Package sdlscreen is a presentation surface using SDL2. Frames are uploaded
// to a streaming texture of the same size as the frame and presented with
// vertical sync, which makes Present() the only point at which the simulation
// loop blocks.
package sdlscreen

import (
	"runtime"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/hdlview/hdlview/assert"
	"github.com/hdlview/hdlview/curated"
	"github.com/hdlview/hdlview/framebuffer"
	"github.com/hdlview/hdlview/logger"
	"github.com/hdlview/hdlview/specification"
	"github.com/hdlview/hdlview/version"
)

// Sentinal error patterns. The SDL diagnostic is the value in each case.
const (
	SubsystemError = "sdlscreen: windowing subsystem: %v"
	WindowError    = "sdlscreen: window: %v"
	RendererError  = "sdlscreen: renderer: %v"
	TextureError   = "sdlscreen: texture: %v"
	PresentError   = "sdlscreen: present: %v"
)

// Screen implements the gui.Surface interface.
type Screen struct {
	geom specification.Geometry

	// the goroutine that created the screen. all other calls must be made
	// from the same goroutine
	owner assert.Owner

	// sdl stuff
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// whether sdl.Init() has succeeded and sdl.Quit() must be called
	initialised bool

	// a quit event has been seen in the event queue. once seen the value
	// stays true
	quit bool
}

// NewScreen is the preferred method of initialisation for the Screen type.
//
// The window is scale times the size of the geometry. If vsync is false then
// presentation is not rate limited.
//
// MUST ONLY be called from the #mainthread
func NewScreen(geom specification.Geometry, scale int, vsync bool) (*Screen, error) {
	runtime.LockOSThread()

	if scale < 1 {
		scale = 1
	}

	scr := &Screen{
		geom:  geom,
		owner: assert.NewOwner(),
	}

	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, curated.Errorf(SubsystemError, err)
	}
	scr.initialised = true

	// mouse motion events fill the event queue and we have no use for them
	sdl.EventState(sdl.MOUSEMOTION, sdl.IGNORE)

	scr.window, err = sdl.CreateWindow(version.ApplicationName,
		int32(sdl.WINDOWPOS_CENTERED), int32(sdl.WINDOWPOS_CENTERED),
		int32(geom.Width*scale), int32(geom.Height*scale),
		uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		scr.Destroy()
		return nil, curated.Errorf(WindowError, err)
	}

	flags := uint32(sdl.RENDERER_ACCELERATED)
	if vsync {
		flags |= uint32(sdl.RENDERER_PRESENTVSYNC)
	}
	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, flags)
	if err != nil {
		scr.Destroy()
		return nil, curated.Errorf(RendererError, err)
	}

	// the texture is the same size as the frame. scaling to the window size
	// happens when the texture is copied to the renderer
	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING),
		int32(geom.Width), int32(geom.Height))
	if err != nil {
		scr.Destroy()
		return nil, curated.Errorf(TextureError, err)
	}

	logger.Logf(logger.Allow, "sdlscreen", "%v window (scale %d, vsync %v)", geom, scale, vsync)

	return scr, nil
}

// Destroy implements the gui.Surface interface. Resources are released in the
// reverse order to which they were created: texture, renderer, window and
// then the SDL subsystem. Safe to call on a partially initialised Screen.
//
// MUST ONLY be called from the #mainthread
func (scr *Screen) Destroy() {
	if scr.texture != nil {
		if err := scr.texture.Destroy(); err != nil {
			logger.Log(logger.Allow, "sdlscreen", err)
		}
		scr.texture = nil
	}
	if scr.renderer != nil {
		if err := scr.renderer.Destroy(); err != nil {
			logger.Log(logger.Allow, "sdlscreen", err)
		}
		scr.renderer = nil
	}
	if scr.window != nil {
		if err := scr.window.Destroy(); err != nil {
			logger.Log(logger.Allow, "sdlscreen", err)
		}
		scr.window = nil
	}
	if scr.initialised {
		sdl.Quit()
		scr.initialised = false
	}
}

// Present implements the gui.Surface interface.
//
// MUST ONLY be called from the #mainthread
func (scr *Screen) Present(view framebuffer.View) error {
	if !scr.owner.IsOwner() {
		return curated.Errorf(PresentError, "not called from the #mainthread")
	}

	pixels, pitch, err := scr.texture.Lock(nil)
	if err != nil {
		return curated.Errorf(PresentError, err)
	}
	err = view.CopyRGBA(pixels, pitch)
	scr.texture.Unlock()
	if err != nil {
		return curated.Errorf(PresentError, err)
	}

	err = scr.renderer.Clear()
	if err != nil {
		return curated.Errorf(PresentError, err)
	}

	err = scr.renderer.Copy(scr.texture, nil, nil)
	if err != nil {
		return curated.Errorf(PresentError, err)
	}

	// blocks until vsync if the renderer was created with PRESENTVSYNC
	scr.renderer.Present()

	return nil
}
