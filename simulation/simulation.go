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

package simulation

import (
	"context"

	"github.com/hdlview/hdlview/curated"
	"github.com/hdlview/hdlview/framebuffer"
	"github.com/hdlview/hdlview/gui"
	"github.com/hdlview/hdlview/hardware/clock"
	"github.com/hdlview/hdlview/hardware/signals"
	"github.com/hdlview/hdlview/logger"
	"github.com/hdlview/hdlview/performance"
	"github.com/hdlview/hdlview/specification"
	"github.com/hdlview/hdlview/userinput"
)

// Sentinal error patterns returned by the simulation package.
const (
	PresentFailed = "simulation: present: %v"
	AlreadyRun    = "simulation: Run() can only be called once"
)

// Simulation is the cycle loop. It must be used from a single goroutine. For
// the SDL surface that goroutine must be the main thread.
type Simulation struct {
	design  signals.Design
	surface gui.Surface
	geom    specification.Geometry

	seq    *clock.Sequencer
	frame  *framebuffer.Frame
	bridge *userinput.Bridge

	// the number of frames successfully presented and the elapsed time of the
	// Running state
	Reporter *performance.Reporter

	state State
}

// NewSimulation is the preferred method of initialisation for the Simulation
// type. The Simulation takes ownership of the design and the surface. The clk
// argument can be nil, in which case the system clock is used.
func NewSimulation(design signals.Design, surface gui.Surface, geom specification.Geometry, clk performance.Clock) (*Simulation, error) {
	frame, err := framebuffer.NewFrame(geom)
	if err != nil {
		return nil, curated.Errorf("simulation: %v", err)
	}

	sim := &Simulation{
		design:   design,
		surface:  surface,
		geom:     geom,
		seq:      clock.NewSequencer(design),
		frame:    frame,
		bridge:   userinput.NewBridge(surface),
		Reporter: performance.NewReporter(clk),
		state:    Resetting,
	}

	return sim, nil
}

// State returns the current state of the simulation.
func (sim *Simulation) State() State {
	return sim.state
}

// Cycles returns the number of cycles stepped since the reset sequence.
func (sim *Simulation) Cycles() uint64 {
	return sim.seq.Cycles()
}

// Frames returns the number of frames successfully presented.
func (sim *Simulation) Frames() uint64 {
	return sim.Reporter.Frames()
}

// Movement returns the most recent movement value written to the design.
func (sim *Simulation) Movement() signals.Movement {
	return sim.bridge.Movement
}

func (sim *Simulation) setState(state State) {
	logger.Logf(logger.Allow, "simulation", "%s -> %s", sim.state, state)
	sim.state = state
}

// Run the simulation until the input source requests termination, the context
// is cancelled, or the surface fails to present a frame. The context is only
// checked at frame boundaries.
//
// The design is finalised and the surface destroyed before Run() returns.
// The returned error is the presentation error, if any.
func (sim *Simulation) Run(ctx context.Context) error {
	if sim.state != Resetting {
		return curated.Errorf(AlreadyRun)
	}

	var err error

	for sim.state != Terminated {
		switch sim.state {
		case Resetting:
			sim.seq.Reset()
			sim.Reporter.Start()
			sim.setState(Running)

		case Running:
			err = sim.running(ctx)
			sim.setState(Terminating)

		case Terminating:
			sim.Reporter.Stop()
			sim.teardown()
		}
	}

	return err
}

// Close finalises the design and destroys the surface if Run() has not already
// done so. It is safe to call Close() after Run() and to call it more than
// once. A Simulation can not be run after Close() has been called.
func (sim *Simulation) Close() {
	if sim.state == Terminated {
		return
	}
	sim.setState(Terminating)
	sim.teardown()
}

// teardown is the work of the Terminating state. the design is finalised
// before the surface is destroyed
func (sim *Simulation) teardown() {
	sim.design.Final()
	sim.surface.Destroy()

	if n := sim.frame.Discarded(); n > 0 {
		logger.Logf(logger.Allow, "simulation", "%d out of range pixels discarded", n)
	}
	logger.Logf(logger.Allow, "simulation", "%d cycles, %d frames", sim.seq.Cycles(), sim.Reporter.Frames())

	sim.setState(Terminated)
}

// running steps the design until a guarded transition out of the Running
// state occurs at a frame boundary.
func (sim *Simulation) running(ctx context.Context) error {
	for {
		sim.seq.Step()
		sim.frame.Accumulate(sim.design)

		if !sim.geom.IsFrameBoundary(sim.design.X(), sim.design.Y()) {
			continue
		}

		if err := ctx.Err(); err != nil {
			logger.Logf(logger.Allow, "simulation", "stopping: %v", err)
			return nil
		}

		if sim.bridge.Service(sim.design) {
			logger.Log(logger.Allow, "simulation", "quit requested")
			return nil
		}

		if err := sim.surface.Present(sim.frame.View()); err != nil {
			return curated.Errorf(PresentFailed, err)
		}
		sim.Reporter.Frame()
	}
}
