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

package sampling

import (
	"fmt"

	"github.com/gbiconv/bk2gbi/input"
)

// Sample is a single joypad read.
type Sample struct {
	Index uint64
	Input input.State
}

func (s Sample) String() string {
	return fmt.Sprintf("%d: %s", s.Index, s.Input)
}

// Recorder implements the engine.InputGetter interface.
//
// The Recorder is only ever touched from the goroutine that steps the engine
// because the engine calls GetInput() synchronously from inside RunFor().
type Recorder struct {
	current input.State
	base    uint64
	samples []Sample
}

// NewRecorder is the preferred method of initialisation for the Recorder
// type.
func NewRecorder() *Recorder {
	return &Recorder{
		samples: make([]Sample, 0, 4096),
	}
}

// SetInput changes the input that will be returned by subsequent reads.
func (rec *Recorder) SetInput(s input.State) {
	rec.current = s
}

// SetBase sets the absolute sample index that offsets given to GetInput() are
// relative to.
func (rec *Recorder) SetBase(base uint64) {
	rec.base = base
}

// GetInput implements the engine.InputGetter interface.
func (rec *Recorder) GetInput(sampleOffset uint32) input.State {
	rec.samples = append(rec.samples, Sample{
		Index: rec.base + uint64(sampleOffset),
		Input: rec.current,
	})
	return rec.current
}

// Len returns the number of reads recorded so far.
func (rec *Recorder) Len() int {
	return len(rec.samples)
}

// Samples returns a copy of the recorded reads in the order they happened.
// It must not be called while the engine is running.
func (rec *Recorder) Samples() []Sample {
	c := make([]Sample, len(rec.samples))
	copy(c, rec.samples)
	return c
}
