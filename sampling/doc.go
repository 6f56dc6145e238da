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

// Package sampling records the moments at which the emulated program reads
// the joypad. Each read is stored as a Sample: the absolute sample index at
// which the read happened and the input that was returned to the engine.
//
// The Recorder implements the engine.InputGetter interface. The driver moves
// the base of the Recorder to the current sample clock before every call to
// RunFor() so that the relative offsets reported by the engine can be turned
// into absolute indexes.
package sampling
