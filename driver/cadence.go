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

// SamplesPerFrame is the nominal number of samples in a logical frame. The
// value is the number of 2MiHz audio samples in one Game Boy video frame.
const SamplesPerFrame uint32 = 35112

// Cadence selects how the variable length engine runs are turned into
// logical frames.
type Cadence int

// List of valid Cadence values.
const (
	Legacy Cadence = iota
	Exact
)

func (c Cadence) String() string {
	switch c {
	case Legacy:
		return "legacy"
	case Exact:
		return "exact"
	}
	return "unknown"
}

// CadenceFromSettings returns the cadence implied by the EqualLengthFrames
// field of the movie's sync settings.
func CadenceFromSettings(equalLengthFrames bool) Cadence {
	if equalLengthFrames {
		return Exact
	}
	return Legacy
}

// the two states of the step loop.
type stepState int

const (
	accumulatingOverflow stepState = iota
	frameComplete
)

// policy is called after every engine run with the overflow accumulated so
// far in the logical frame. it returns the next state of the step loop and
// the new overflow value.
type policy func(overflow uint32) (stepState, uint32)

func legacyPolicy(_ uint32) (stepState, uint32) {
	return frameComplete, 0
}

func exactPolicy(overflow uint32) (stepState, uint32) {
	if overflow >= SamplesPerFrame {
		return frameComplete, overflow - SamplesPerFrame
	}
	return accumulatingOverflow, overflow
}

func (c Cadence) policy() policy {
	if c == Exact {
		return exactPolicy
	}
	return legacyPolicy
}
