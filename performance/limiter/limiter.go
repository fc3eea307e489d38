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

// Package limiter provides a rough and ready way of limiting events to a fixed
// rate.
//
// A new FpsLimiter can be created with (error handling removed for clarity):
//
//	fps, _ := limiter.NewFPSLimiter(60)
//	defer fps.Stop()
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		fps.Wait()
//		renderImage()
//	}
package limiter

import (
	"time"

	"github.com/hdlview/hdlview/curated"
)

// Sentinal error pattern returned by NewFPSLimiter().
const InvalidRate = "limiter: invalid rate (%d)"

// FpsLimiter will trigger every frames per second
type FpsLimiter struct {
	secondsPerFrame time.Duration

	ticker *time.Ticker
}

// NewFPSLimiter is the preferred method of initialisation for FpsLimiter type
func NewFPSLimiter(framesPerSecond int) (*FpsLimiter, error) {
	if framesPerSecond <= 0 {
		return nil, curated.Errorf(InvalidRate, framesPerSecond)
	}

	lim := &FpsLimiter{
		secondsPerFrame: time.Second / time.Duration(framesPerSecond),
	}
	lim.ticker = time.NewTicker(lim.secondsPerFrame)

	return lim, nil
}

// Wait will block until trigger. The ticker drops ticks if the caller falls
// behind so a slow caller is never asked to catch up.
func (lim *FpsLimiter) Wait() {
	<-lim.ticker.C
}

// Stop the limiter. Wait() must not be called after Stop().
func (lim *FpsLimiter) Stop() {
	lim.ticker.Stop()
}

// SecondsPerFrame returns the period of the limiter.
func (lim *FpsLimiter) SecondsPerFrame() time.Duration {
	return lim.secondsPerFrame
}
