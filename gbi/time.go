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

package gbi

// StartupLatency is the number of samples between the playback device
// powering the console and the first sample of the emulation.
const StartupLatency uint64 = 484500

// timeShift is the power-of-two scale between samples and device time units.
const timeShift = 10

// Time converts a sample index to device time.
func Time(sample uint64) uint64 {
	return (sample + StartupLatency + sample + StartupLatency) >> timeShift
}

// MidpointTime converts a sample index to device time using the index of the
// preceding joypad read as the second term.
func MidpointTime(sample uint64, previous uint64) uint64 {
	return (sample + StartupLatency + previous + StartupLatency) >> timeShift
}

// Options for Convert().
type Options struct {
	// Use MidpointTime() rather than Time(). This is the formula used by
	// earlier converters and is required to reproduce their scripts exactly.
	Midpoint bool
}

func (o Options) time(sample uint64, previous uint64) uint64 {
	if o.Midpoint {
		return MidpointTime(sample, previous)
	}
	return Time(sample)
}
