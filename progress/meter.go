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

package progress

import (
	"fmt"
	"io"
	"os"
)

// the number of frames between updates of the meter
const updateInterval = 60

// Meter shows the number of frames stepped so far.
type Meter struct {
	output io.Writer
	label  string
	total  int
	last   int
	shown  bool
}

// NewMeter returns a Meter writing to w. If w is a file then the Meter does
// nothing unless the file is a terminal.
func NewMeter(w io.Writer, label string, total int) *Meter {
	if f, ok := w.(*os.File); ok && !IsTerminal(f) {
		return NewMeterWriter(nil, label, total)
	}
	return NewMeterWriter(w, label, total)
}

// NewMeterWriter returns a Meter that writes to any io.Writer. A nil writer
// disables the Meter.
func NewMeterWriter(w io.Writer, label string, total int) *Meter {
	return &Meter{
		output: w,
		label:  label,
		total:  total,
		last:   -updateInterval,
	}
}

// Update the meter with the current frame number.
func (m *Meter) Update(frame int) {
	if m.output == nil {
		return
	}
	if frame-m.last < updateInterval && frame != m.total {
		return
	}
	m.last = frame
	m.shown = true

	if m.total <= 0 {
		fmt.Fprintf(m.output, "\r%s: %d", m.label, frame)
		return
	}

	fmt.Fprintf(m.output, "\r%s: %d/%d (%.1f%%)", m.label, frame, m.total, 100*float64(frame)/float64(m.total))
}

// Done ends the meter line.
func (m *Meter) Done() {
	if m.output == nil || !m.shown {
		return
	}
	fmt.Fprintln(m.output)
	m.shown = false
}
