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
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/hdlview/hdlview/curated"
	"github.com/hdlview/hdlview/digest"
	"github.com/hdlview/hdlview/gui"
	"github.com/hdlview/hdlview/gui/headless"
	"github.com/hdlview/hdlview/gui/sdlscreen"
	"github.com/hdlview/hdlview/hardware/designs"
	"github.com/hdlview/hdlview/logger"
	"github.com/hdlview/hdlview/modalflag"
	"github.com/hdlview/hdlview/performance"
	"github.com/hdlview/hdlview/simulation"
	"github.com/hdlview/hdlview/statsview"
	"github.com/hdlview/hdlview/version"
)

// exit values
const (
	exitArguments = 10
	exitRuntime   = 20
)

// errors in the command line arguments
const argumentError = "arguments: %v"

// #mainthread
func init() {
	// SDL requires that all window and event handling happens on the main
	// thread. the simulation loop runs in the main goroutine so we lock it to
	// the main thread before main() is called
	runtime.LockOSThread()
}

func main() {
	os.Exit(launch(os.Stdout, os.Stderr, os.Args[1:]))
}

// launch parses the arguments and runs the selected mode. the return value is
// the process exit value.
func launch(output io.Writer, errOutput io.Writer, args []string) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("RUN", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(errOutput, "* error: %v\n", err)
		return exitArguments
	}

	// cancelled on interrupt. the simulation notices at the next frame
	// boundary
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch md.Mode() {
	case "RUN":
		err = run(ctx, md)
	case "PERFORMANCE":
		err = perform(ctx, md)
	case "VERSION":
		fmt.Fprintln(output, version.String())
	}

	if err != nil {
		fmt.Fprintf(errOutput, "* error in %s mode: %s\n", md, err)
		if curated.Has(err, argumentError) {
			return exitArguments
		}
		return exitRuntime
	}

	return 0
}

func run(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()

	design := md.AddString("design", designs.Default, fmt.Sprintf("hardware design: %v", designs.Names()))
	scale := md.AddInt("scale", 1, "integer window scaling")
	useHeadless := md.AddBool("headless", false, "no window. keyboard input from the terminal")
	fps := md.AddInt("fps", 60, "frame rate limit (only valid if -headless=true)")
	log := md.AddBool("log", false, "echo log to stdout")
	profile := md.AddString("profile", "none", "run with profiling: CPU, MEM, TRACE, ALL (comma separated)")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return curated.Errorf(argumentError, err)
	}

	if len(md.RemainingArgs()) > 0 {
		return curated.Errorf(argumentError, fmt.Sprintf("too many arguments for %s mode", md))
	}

	if *scale < 1 {
		return curated.Errorf(argumentError, "scale must be one or more")
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return curated.Errorf(argumentError, err)
	}

	if *log {
		logger.SetEcho(md.Output)
	}
	logger.Log(logger.Allow, "hdlview", version.String())

	if stats != nil && *stats {
		statsview.Launch(md.Output)
	}

	dsgn, err := designs.New(*design)
	if err != nil {
		return curated.Errorf(argumentError, err)
	}

	var scr gui.Surface
	if *useHeadless {
		scr, err = headless.NewHeadless(*fps, true)
	} else {
		scr, err = sdlscreen.NewScreen(designs.Geometry(), *scale, true)
	}
	if err != nil {
		dsgn.Final()
		return err
	}

	sim, err := simulation.NewSimulation(dsgn, scr, designs.Geometry(), nil)
	if err != nil {
		dsgn.Final()
		scr.Destroy()
		return err
	}

	// Run() normally tears down the design and surface. Close() makes sure
	// that happens even if the profiler fails before Run() is called
	defer sim.Close()

	err = performance.RunProfiler(prf, "run", func() error {
		return sim.Run(ctx)
	})
	if err != nil {
		return err
	}

	sim.Reporter.Write(md.Output)

	return nil
}

func perform(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()

	design := md.AddString("design", designs.Default, fmt.Sprintf("hardware design: %v", designs.Names()))
	duration := md.AddDuration("duration", 5*time.Second, "run duration")
	profile := md.AddString("profile", "none", "run with profiling: CPU, MEM, TRACE, ALL (comma separated)")
	hash := md.AddBool("digest", false, "print the digest of all presented frames")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return curated.Errorf(argumentError, err)
	}

	if len(md.RemainingArgs()) > 0 {
		return curated.Errorf(argumentError, fmt.Sprintf("too many arguments for %s mode", md))
	}

	if *duration <= 0 {
		return curated.Errorf(argumentError, "duration must be positive")
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return curated.Errorf(argumentError, err)
	}

	dsgn, err := designs.New(*design)
	if err != nil {
		return curated.Errorf(argumentError, err)
	}

	// no frame rate limit and no terminal input. the run ends when the
	// duration expires
	hl, err := headless.NewHeadless(0, false)
	if err != nil {
		dsgn.Final()
		return err
	}
	scr := digest.NewVideo(hl)

	sim, err := simulation.NewSimulation(dsgn, scr, designs.Geometry(), nil)
	if err != nil {
		dsgn.Final()
		scr.Destroy()
		return err
	}

	// Run() normally tears down the design and surface. Close() makes sure
	// that happens even if the profiler fails before Run() is called
	defer sim.Close()

	ctx, cancel := context.WithTimeout(ctx, *duration)
	defer cancel()

	err = performance.RunProfiler(prf, "performance", func() error {
		return sim.Run(ctx)
	})
	if err != nil {
		return err
	}

	sim.Reporter.Write(md.Output)

	if secs := sim.Reporter.Elapsed().Seconds(); secs > 0 {
		fmt.Fprintf(md.Output, "cycles: %d (%.2f MHz)\n", sim.Cycles(), float64(sim.Cycles())/secs/1e6)
	}

	if *hash {
		fmt.Fprintf(md.Output, "digest: %s (%d frames)\n", scr.Hash(), scr.Frames())
	}

	return nil
}
