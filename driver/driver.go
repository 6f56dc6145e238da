// This file is part of bk2gbi.
//
// bk2gbi is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// bk2gbi is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with bk2gbi.  If not, see <https://www.gnu.org/licenses/>.

package driver

import (
	"github.com/gbiconv/bk2gbi/curated"
	"github.com/gbiconv/bk2gbi/engine"
	"github.com/gbiconv/bk2gbi/input"
	"github.com/gbiconv/bk2gbi/sampling"
)

// Sentinal errors.
const (
	RunError       = "driver: engine run failed with status %d (frame %d)"
	NoProgress     = "driver: engine produced no samples (frame %d)"
	OvershootError = "driver: engine overshot the frame by %d samples (frame %d)"
)

// FrameNotifier is told whenever a logical frame has been completed. The
// call must not block.
type FrameNotifier interface {
	FrameReady()
}

// Driver steps the native engine one logical frame at a time. It is not safe
// for concurrent use.
type Driver struct {
	eng engine.Engine
	rec *sampling.Recorder

	cadence Cadence
	policy  policy

	// the absolute sample clock
	clock uint64

	// samples produced by the current logical frame beyond or short of
	// SamplesPerFrame. always less than SamplesPerFrame between frames
	overflow uint32

	frames int

	// number of calls to RunFor() over the lifetime of the driver
	runs int

	notifier FrameNotifier

	// the first error stops the driver for good
	err error
}

// New is the preferred method of initialisation for the Driver type. The
// Recorder is registered with the engine and must not be registered with
// any other engine.
func New(eng engine.Engine, rec *sampling.Recorder, cadence Cadence) *Driver {
	drv := &Driver{
		eng:     eng,
		rec:     rec,
		cadence: cadence,
		policy:  cadence.policy(),
	}
	eng.SetInputGetter(rec)
	return drv
}

// SetNotifier sets the FrameNotifier. A nil value stops notifications.
func (drv *Driver) SetNotifier(n FrameNotifier) {
	drv.notifier = n
}

// Step runs the engine for one logical frame with the input state held.
func (drv *Driver) Step(in input.State) error {
	if drv.err != nil {
		return drv.err
	}

	drv.rec.SetInput(in)

	state := accumulatingOverflow
	for state != frameComplete {
		samples := SamplesPerFrame - drv.overflow

		drv.rec.SetBase(drv.clock)
		status := drv.eng.RunFor(&samples)
		drv.runs++

		if status != 0 {
			drv.err = curated.Errorf(RunError, status, drv.frames)
			return drv.err
		}
		drv.clock += uint64(samples)
		state, drv.overflow = drv.policy(drv.overflow + samples)

		// a run that produces nothing would be repeated forever
		if state == accumulatingOverflow && samples == 0 {
			drv.err = curated.Errorf(NoProgress, drv.frames)
			return drv.err
		}

		if drv.overflow >= SamplesPerFrame {
			drv.err = curated.Errorf(OvershootError, drv.overflow, drv.frames)
			return drv.err
		}
	}

	drv.frames++

	if drv.notifier != nil {
		drv.notifier.FrameReady()
	}

	return nil
}

// Cadence returns the cadence chosen when the Driver was created.
func (drv *Driver) Cadence() Cadence {
	return drv.cadence
}

// Clock returns the total number of samples produced so far.
func (drv *Driver) Clock() uint64 {
	return drv.clock
}

// Overflow returns the number of samples carried into the next frame.
func (drv *Driver) Overflow() uint32 {
	return drv.overflow
}

// Frames returns the number of logical frames completed.
func (drv *Driver) Frames() int {
	return drv.frames
}

// Runs returns the number of calls made to the engine's RunFor() function.
func (drv *Driver) Runs() int {
	return drv.runs
}

// Err returns the error that stopped the driver, if any.
func (drv *Driver) Err() error {
	return drv.err
}

// Destroy releases the engine. The driver cannot be used afterwards.
func (drv *Driver) Destroy() {
	drv.eng.Destroy()
}
