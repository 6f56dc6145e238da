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

// Package movie reads BizHawk BK2 movie files recorded with the Gambatte core.
//
// A BK2 file is a zip archive. Two members are required:
//
//	Input Log.txt      one line per recorded frame
//	SyncSettings.json  emulator settings the movie was recorded with
//
// A line in the input log is a frame only if it begins with the '|'
// character. All other lines (the LogKey line, the [Input] markers, etc.) are
// ignored. The buttons held on a frame are found by looking for the marker
// character of each button anywhere on the line. Matching is case-sensitive;
// 'S' is Start and 's' is Select.
//
// The sync settings must describe a Gambatte movie recorded in GBA CGB mode.
// Anything else is rejected. The RTCDivisorOffset and EqualLengthFrames
// settings are optional and default to 0 and false, with a warning in the
// log.
//
// The Header.txt member is optional. When it contains a SHA1 line the value
// can be checked against the ROM being used with Header.CheckHash().
package movie
