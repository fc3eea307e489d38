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

// Package headless is a presentation surface that presents nothing. Input is
// read from the controlling terminal, which is put into raw mode for the
// lifetime of the surface.
//
// A terminal does not report key releases, so a key press is latched until
// the next frame boundary at which point it is reported as held for that one
// frame. A quit request remains latched once seen.
//
// Presentation can optionally be limited to a fixed rate, standing in for the
// vertical sync of a real display.
package headless

import (
	"errors"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/term"

	"github.com/hdlview/hdlview/curated"
	"github.com/hdlview/hdlview/framebuffer"
	"github.com/hdlview/hdlview/logger"
	"github.com/hdlview/hdlview/performance/limiter"
	"github.com/hdlview/hdlview/userinput"
)

// Sentinal error pattern returned by NewHeadless().
const TerminalError = "headless: terminal: %v"

// the device opened for input
const ttyDevice = "/dev/tty"

// how long a read on the terminal can block before the reader checks whether
// it should stop
const readTimeout = 100 * time.Millisecond

// Headless implements the gui.Surface interface.
type Headless struct {
	tty  *term.Term
	lmtr *limiter.FpsLimiter

	// keys pressed since the last call to Sample(). one bit per userinput.Key
	pressed atomic.Uint32
	quit    atomic.Bool

	done chan bool
	wg   sync.WaitGroup
}

// NewHeadless is the preferred method of initialisation for the Headless
// type. If fps is greater than zero then Present() is limited to that rate.
// If useTerminal is false then no input is read and the surface never
// requests termination.
func NewHeadless(fps int, useTerminal bool) (*Headless, error) {
	hl := &Headless{
		done: make(chan bool),
	}

	if fps > 0 {
		var err error
		hl.lmtr, err = limiter.NewFPSLimiter(fps)
		if err != nil {
			return nil, curated.Errorf("headless: %v", err)
		}
		logger.Logf(logger.Allow, "headless", "present limited to one frame every %v", hl.lmtr.SecondsPerFrame())
	}

	if useTerminal {
		var err error
		hl.tty, err = term.Open(ttyDevice, term.RawMode, term.ReadTimeout(readTimeout))
		if err != nil {
			if hl.lmtr != nil {
				hl.lmtr.Stop()
			}
			return nil, curated.Errorf(TerminalError, err)
		}

		hl.wg.Add(1)
		go hl.reader()

		logger.Log(logger.Allow, "headless", "reading input from terminal (q to quit)")
	}

	return hl, nil
}

// reader runs as a goroutine and latches key presses until Destroy() is
// called.
func (hl *Headless) reader() {
	defer hl.wg.Done()

	var dec decoder
	buf := make([]byte, 16)

	for {
		select {
		case <-hl.done:
			return
		default:
		}

		n, err := hl.tty.Read(buf)
		if err != nil && !errors.Is(err, io.EOF) {
			logger.Log(logger.Allow, "headless", err)
			return
		}

		keys, quit := dec.decode(buf[:n])
		if quit {
			hl.quit.Store(true)
		}
		for k, v := range keys {
			if v {
				hl.press(userinput.Key(k))
			}
		}
	}
}

func (hl *Headless) press(k userinput.Key) {
	for {
		o := hl.pressed.Load()
		if hl.pressed.CompareAndSwap(o, o|1<<uint(k)) {
			return
		}
	}
}

// Sample implements the userinput.Source interface.
func (hl *Headless) Sample() userinput.Snapshot {
	var s userinput.Snapshot

	p := hl.pressed.Swap(0)
	for k := range s.Keys {
		s.Keys[k] = p&(1<<uint(k)) != 0
	}
	s.QuitEvent = hl.quit.Load()

	return s
}

// Present implements the gui.Surface interface.
func (hl *Headless) Present(_ framebuffer.View) error {
	if hl.lmtr != nil {
		hl.lmtr.Wait()
	}
	return nil
}

// Destroy implements the gui.Surface interface. The terminal is restored to
// the mode it was in before NewHeadless() was called.
func (hl *Headless) Destroy() {
	close(hl.done)
	hl.wg.Wait()

	if hl.tty != nil {
		if err := hl.tty.Restore(); err != nil {
			logger.Log(logger.Allow, "headless", err)
		}
		if err := hl.tty.Close(); err != nil {
			logger.Log(logger.Allow, "headless", err)
		}
		hl.tty = nil

		// raw mode leaves the cursor wherever the last output put it
		os.Stdout.WriteString("\r")
	}

	if hl.lmtr != nil {
		hl.lmtr.Stop()
		hl.lmtr = nil
	}
}
