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

// Package enginetest provides an implementation of the engine.Engine
// interface for use in tests. It produces samples according to a fixed
// pattern and reads the joypad at fixed offsets, so that the timing of every
// read is known in advance.
package enginetest

import (
	"github.com/gbiconv/bk2gbi/engine"
	"github.com/gbiconv/bk2gbi/input"
)

// Engine implements the engine.Engine interface.
type Engine struct {
	// the distance to the next video frame boundary for each call to
	// RunFor(), used in turn and repeated. the engine stops at the boundary
	// or at the requested sample count, whichever comes first. an empty
	// pattern means the boundary is never reached
	Pattern []uint32

	// added to the sample count when the requested count is reached before
	// the boundary
	Overshoot uint32

	// sample offsets at which the joypad is read during every call to
	// RunFor(). an offset equal to the number of samples produced is a read
	// on the last sample of the run. offsets beyond that are ignored
	Reads []uint32

	// status values returned by the corresponding functions
	BIOSStatus int
	LoadStatus int
	RunStatus  int

	// fail the RunFor() call with this index with RunStatus. negative
	// values mean every call fails when RunStatus is non-zero
	FailAt int

	// values received through the interface
	BIOS      []byte
	ROM       []byte
	Flags     engine.LoadFlags
	RTCOffset int32
	Getter    engine.InputGetter
	Pixels    []byte
	Pitch     int
	Destroyed bool

	// the input returned by every read, in order
	Inputs []input.State

	// the number of calls to RunFor()
	Calls int

	patternIdx int
}

// New returns an Engine that produces samples according to the pattern.
func New(pattern ...uint32) *Engine {
	return &Engine{
		Pattern: pattern,
		FailAt:  -1,
	}
}

// LoadBIOS implements the engine.Engine interface.
func (eng *Engine) LoadBIOS(data []byte) int {
	eng.BIOS = data
	return eng.BIOSStatus
}

// Load implements the engine.Engine interface.
func (eng *Engine) Load(data []byte, flags engine.LoadFlags) int {
	eng.ROM = data
	eng.Flags = flags
	return eng.LoadStatus
}

// SetRTCDivisorOffset implements the engine.Engine interface.
func (eng *Engine) SetRTCDivisorOffset(offset int32) {
	eng.RTCOffset = offset
}

// SetInputGetter implements the engine.Engine interface.
func (eng *Engine) SetInputGetter(g engine.InputGetter) {
	eng.Getter = g
}

// SetVideoBuffer implements the engine.Engine interface.
func (eng *Engine) SetVideoBuffer(pixels []byte, pitch int) {
	eng.Pixels = pixels
	eng.Pitch = pitch
}

// RunFor implements the engine.Engine interface.
func (eng *Engine) RunFor(samples *uint32) int {
	call := eng.Calls
	eng.Calls++

	if eng.RunStatus != 0 && (eng.FailAt < 0 || eng.FailAt == call) {
		return eng.RunStatus
	}

	n := *samples
	if len(eng.Pattern) > 0 {
		boundary := eng.Pattern[eng.patternIdx%len(eng.Pattern)]
		eng.patternIdx++
		if boundary < n {
			n = boundary
		} else {
			n += eng.Overshoot
		}
	} else {
		n += eng.Overshoot
	}

	if eng.Getter != nil {
		for _, o := range eng.Reads {
			if o <= n {
				eng.Inputs = append(eng.Inputs, eng.Getter.GetInput(o))
			}
		}
	}

	*samples = n
	return 0
}

// Destroy implements the engine.Engine interface.
func (eng *Engine) Destroy() {
	eng.Destroyed = true
}
