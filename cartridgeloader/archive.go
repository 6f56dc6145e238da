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

package cartridgeloader

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/user-none/eblitui/romloader"

	"github.com/gbiconv/bk2gbi/archivefs"
	"github.com/gbiconv/bk2gbi/curated"
)

// MaxSize is the largest amount of data that will be loaded. It is the same
// limit imposed by the romloader package on files and archive members.
const MaxSize = 8 * 1024 * 1024

// readMax reads from r up to MaxSize bytes. used for sources that do not go
// through the romloader package.
func readMax(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > MaxSize {
		return nil, curated.Errorf(TooLarge, MaxSize)
	}
	return data, nil
}

func loadFile(filename string) ([]byte, string, error) {
	// a path that does not exist on disk may still be a path into a zip
	// archive
	if _, err := os.Stat(filename); err != nil {
		r, _, err := archivefs.Open(filename)
		if err != nil {
			return nil, "", err
		}
		data, err := readMax(r)
		if err != nil {
			return nil, "", err
		}
		return data, filepath.Base(filename), nil
	}

	// zip, 7z, gzip, tar.gz and RAR archives are searched for the first
	// member with a ROM extension
	data, name, err := romloader.Load(filename, FileExtensions[:])
	switch {
	case err == nil:
		return data, name, nil
	case errors.Is(err, romloader.ErrNoFile):
		return nil, "", curated.Errorf(NoROMFile, filepath.Base(filename))
	case errors.Is(err, romloader.ErrFileTooLarge):
		return nil, "", curated.Errorf(TooLarge, MaxSize)
	case errors.Is(err, romloader.ErrUnsupportedFormat):
		// not an archive and without a ROM extension. boot ROM dumps are
		// often named like this so the file is read as it is
		f, err := os.Open(filename)
		if err != nil {
			return nil, "", err
		}
		defer f.Close()
		data, err := readMax(f)
		if err != nil {
			return nil, "", err
		}
		return data, filepath.Base(filename), nil
	}
	return nil, "", err
}
