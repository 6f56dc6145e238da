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

import (
	"fmt"

	"github.com/gbiconv/bk2gbi/input"
	"github.com/gbiconv/bk2gbi/sampling"
)

// Event is a single line of the GBI script.
type Event struct {
	Time  uint64
	Input input.State
}

func (e Event) String() string {
	return fmt.Sprintf("%08X %04X", e.Time, e.Input.Bits())
}

// Convert the chronologically ordered list of joypad reads to a list of
// Events. An Event is created at the first read of each new input state.
//
// The list always starts with the neutral Event at time zero. Times are
// strictly increasing: if two changes convert to the same time the later
// state replaces the earlier one, and the Event is dropped altogether if
// that leaves two consecutive Events with the same input.
func Convert(samples []sampling.Sample, opts Options) []Event {
	events := []Event{{Time: 0, Input: input.Neutral}}

	current := input.Neutral
	var previous uint64

	for _, s := range samples {
		if s.Input != current {
			current = s.Input
			events = appendEvent(events, Event{
				Time:  opts.time(s.Index, previous),
				Input: s.Input,
			})
		}
		previous = s.Index
	}

	return events
}

func appendEvent(events []Event, e Event) []Event {
	last := len(events) - 1
	if e.Time > events[last].Time {
		return append(events, e)
	}

	// the first event is never replaced. no converted time can be zero
	events[last].Input = e.Input
	if last > 0 && events[last-1].Input == e.Input {
		events = events[:last]
	}
	return events
}
