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

package movie

import (
	"bufio"
	"io"
	"strings"

	"github.com/gbiconv/bk2gbi/curated"
	"github.com/gbiconv/bk2gbi/input"
)

// FrameMarker is the first character of every line in the input log that
// describes a frame.
const FrameMarker = '|'

// the marker character for each button in the input log
var buttonMarkers = [...]struct {
	marker byte
	button input.State
}{
	{'D', input.Down},
	{'U', input.Up},
	{'L', input.Left},
	{'R', input.Right},
	{'S', input.Start},
	{'s', input.Select},
	{'B', input.B},
	{'A', input.A},
}

// DecodeLine returns the input state for a single line of the input log. The
// boolean result is false if the line does not describe a frame.
func DecodeLine(line string) (input.State, bool) {
	if len(line) == 0 || line[0] != FrameMarker {
		return input.Neutral, false
	}

	s := input.Neutral
	for _, m := range buttonMarkers {
		if strings.IndexByte(line, m.marker) >= 0 {
			s = s.With(m.button)
		}
	}
	return s, true
}

// EncodeLine is the reverse of DecodeLine. The returned line contains exactly
// the marker characters of the buttons held in s.
func EncodeLine(s input.State) string {
	b := strings.Builder{}
	b.WriteByte(FrameMarker)
	for _, m := range buttonMarkers {
		if s.Has(m.button) {
			b.WriteByte(m.marker)
		} else {
			b.WriteByte('.')
		}
	}
	b.WriteByte(FrameMarker)
	return b.String()
}

// DecodeInputLog reads every line from the input log and returns the input
// state of each frame, in order.
func DecodeInputLog(r io.Reader) ([]input.State, error) {
	var frames []input.State

	// lines are not limited in length
	br := bufio.NewReader(r)

	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			if s, ok := DecodeLine(line); ok {
				frames = append(frames, s)
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, curated.Errorf("movie: input log: %v", err)
		}
	}

	return frames, nil
}
