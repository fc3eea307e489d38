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

package performance

import (
	"fmt"
	"io"
	"time"
)

// Clock is the source of timestamps for the Reporter.
type Clock interface {
	Now() time.Time
}

// SystemClock implements the Clock interface using time.Now().
type SystemClock struct{}

// Now implements the Clock interface.
func (_ SystemClock) Now() time.Time {
	return time.Now()
}

// Reporter measures throughput as frames presented over elapsed time.
type Reporter struct {
	clk Clock

	start time.Time
	end   time.Time

	frames uint64
}

// NewReporter is the preferred method of initialisation for the Reporter
// type. A nil Clock is replaced with SystemClock.
func NewReporter(clk Clock) *Reporter {
	if clk == nil {
		clk = SystemClock{}
	}
	return &Reporter{clk: clk}
}

// Start records the start timestamp and resets the frame count.
func (rep *Reporter) Start() {
	rep.start = rep.clk.Now()
	rep.end = time.Time{}
	rep.frames = 0
}

// Frame should be called once for every successful presentation.
func (rep *Reporter) Frame() {
	rep.frames++
}

// Stop records the end timestamp.
func (rep *Reporter) Stop() {
	rep.end = rep.clk.Now()
}

// Frames returns the number of frames counted since Start().
func (rep *Reporter) Frames() uint64 {
	return rep.frames
}

// Elapsed returns the time between Start() and Stop().
func (rep *Reporter) Elapsed() time.Duration {
	return rep.end.Sub(rep.start)
}

// FPS returns the average frames-per-second between Start() and Stop().
func (rep *Reporter) FPS() float64 {
	return CalcFPS(rep.frames, rep.Elapsed())
}

// Write the average frames-per-second to io.Writer.
func (rep *Reporter) Write(output io.Writer) {
	output.Write([]byte(fmt.Sprintf("fps: %.1f\n", rep.FPS())))
}
