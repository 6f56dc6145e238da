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

package input

import "strings"

// State is the set of joypad buttons held during a logical frame. The bit
// values match the byte handed back to the engine by the input getter and
// the value written to the GBI script.
type State uint8

// The closed list of buttons. A State is any combination of these.
const (
	A State = 1 << iota
	B
	Select
	Start
	Right
	Left
	Up
	Down
)

// Neutral is the State with no buttons held.
const Neutral State = 0

// Buttons lists every button in bit order.
var Buttons = [...]State{A, B, Select, Start, Right, Left, Up, Down}

var buttonNames = map[State]string{
	A:      "A",
	B:      "B",
	Select: "Select",
	Start:  "Start",
	Right:  "Right",
	Left:   "Left",
	Up:     "Up",
	Down:   "Down",
}

// Has returns true if every button in b is held in s.
func (s State) Has(b State) bool {
	return s&b == b
}

// With returns the union of s and b.
func (s State) With(b State) State {
	return s | b
}

// IsNeutral returns true if no button is held.
func (s State) IsNeutral() bool {
	return s == Neutral
}

// Bits returns the raw bitmask.
func (s State) Bits() uint16 {
	return uint16(s)
}

func (s State) String() string {
	if s == Neutral {
		return "Neutral"
	}

	// iterate in reverse so that the d-pad comes first
	var names []string
	for i := len(Buttons) - 1; i >= 0; i-- {
		if s.Has(Buttons[i]) {
			names = append(names, buttonNames[Buttons[i]])
		}
	}
	return strings.Join(names, "+")
}
