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

// Package archivefs allows paths to reach inside zip archives. A zip archive
// anywhere along a path is treated as a directory, so a member of a BK2 movie
// can be referred to as "run.bk2/Input Log.txt" and a zipped ROM as
// "roms.zip/game.gbc".
package archivefs

import (
	"io"
	"path/filepath"
)

// Open is a convenience function that sets the path, opens the file and
// closes the path. The returned io.ReadSeeker remains valid after the path
// has been closed.
func Open(filename string) (io.ReadSeeker, int, error) {
	var afs Path
	err := afs.Set(filename)
	if err != nil {
		return nil, 0, err
	}
	defer afs.Close()
	return afs.Open()
}

// ReadAll returns the entire contents of the file at filename.
func ReadAll(filename string) ([]byte, error) {
	r, _, err := Open(filename)
	if err != nil {
		return nil, err
	}
	if c, ok := r.(io.Closer); ok {
		defer c.Close()
	}
	return io.ReadAll(r)
}

// Member joins the path of an archive with the name of one of its members.
func Member(archive string, member string) string {
	return filepath.Join(archive, member)
}
