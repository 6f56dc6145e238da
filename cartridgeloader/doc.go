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

// Package cartridgeloader is used to specify the data that is to be loaded
// into the emulation engine. Both the cartridge ROM and the boot ROM (BIOS)
// are loaded with the same type.
//
// When the data is required the Load() function should be used. The Load()
// function handles loading of data from different sources. Supported are
// local files, files inside zip archives, data over HTTP and archives in any of
// the formats understood by the romloader package (zip, 7z, gzip, tar.gz and
// RAR). When an archive is loaded the first member with a recognised file
// extension is used.
//
// The simplest instance of the Loader type:
//
//	cl := cartridgeloader.Loader{
//		Filename: "roms/tetris.gb",
//	}
//
// A file inside a zip archive is specified by treating the archive as a
// directory:
//
//	cl := cartridgeloader.NewLoader("roms/collection.zip/tetris.gb")
package cartridgeloader
