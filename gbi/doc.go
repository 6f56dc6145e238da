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

// Package gbi converts the joypad reads recorded while the engine was running
// into a GBI timing script. The script is a list of input changes, one per
// line, with the time of the change followed by the new button bitmask, both
// in upper case hexadecimal:
//
//	00000000 0000
//	000003F6 0001
//	00000480 0002
//	000004C4 0000
//
// The first line is always the neutral input at time zero.
//
// Times are in the clock domain of the playback device. A raw sample index is
// converted by adding the startup latency of the device and halving, except
// that the latency is added twice and the sum of the two terms is divided by
// 1024. See the Time() function.
package gbi
