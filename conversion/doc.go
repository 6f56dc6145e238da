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

// Package conversion is the complete bk2gbi pipeline. The boot ROM and the
// cartridge are loaded into the engine, the engine is configured from the
// movie's sync settings and then stepped once for every frame of the movie.
// After the movie's input has been exhausted the engine is stepped for a
// number of frames with neutral input, so that any reads of the joypad that
// happen after the last frame of the movie are recorded. Finally, the
// recorded reads are converted to GBI events.
//
// The engine is destroyed when Run() returns, whether successfully or not.
package conversion
