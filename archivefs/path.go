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

package archivefs

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// Node represents a single entry in a directory or archive listing.
type Node struct {
	Name string

	// a directory has the the field of IsDir set to true
	IsDir bool

	// a recognised archive file has IsArchive set to true. note that an
	// archive file is also considered to be directory
	IsArchive bool
}

func (e Node) String() string {
	return e.Name
}

// Path represents a single destination in the file system. A zip archive
// in the path is treated as though it were a directory. For example, the
// path:
//
//	movies/run.bk2/Input Log.txt
//
// refers to the "Input Log.txt" member of the run.bk2 zip archive.
type Path struct {
	current string
	isDir   bool

	zf *zip.ReadCloser

	// if the path is inside a zip file, we split the in-zip path into the path
	// to a file and the file itself
	inZipPath string
	inZipFile string
}

// String returns the current path.
func (afs Path) String() string {
	return afs.current
}

// IsDir returns true if Path is currently set to a directory. For the purposes
// of archivefs, the root of an archive is treated as a directory.
func (afs Path) IsDir() bool {
	return afs.isDir
}

// InArchive returns true if path is currently inside an archive.
func (afs Path) InArchive() bool {
	return afs.zf != nil
}

// Open and return an io.ReadSeeker for the filename previously set by the Set()
// function.
//
// Returns the io.ReadSeeker, the size of the data behind the ReadSeeker and any
// errors.
func (afs Path) Open() (io.ReadSeeker, int, error) {
	if afs.isDir {
		return nil, 0, fmt.Errorf("archivefs: open: %s is a directory", afs.current)
	}

	if afs.zf != nil {
		f, err := afs.zf.Open(path.Join(afs.inZipPath, afs.inZipFile))
		if err != nil {
			return nil, 0, fmt.Errorf("archivefs: open: %w", err)
		}
		defer f.Close()

		b, err := io.ReadAll(f)
		if err != nil {
			return nil, 0, fmt.Errorf("archivefs: open: %w", err)
		}

		return bytes.NewReader(b), len(b), nil
	}

	f, err := os.Open(afs.current)
	if err != nil {
		return nil, 0, fmt.Errorf("archivefs: open: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, fmt.Errorf("archivefs: open: %w", err)
	}

	return f, int(info.Size()), nil
}

// Close any open zip files and reset path.
func (afs *Path) Close() {
	afs.current = ""
	afs.isDir = false
	afs.inZipPath = ""
	afs.inZipFile = ""
	if afs.zf != nil {
		afs.zf.Close()
		afs.zf = nil
	}
}

// List returns the child entries for the current path location. If the current
// path is a file then the list will be the contents of the containing directory
// of that file.
func (afs *Path) List() ([]Node, error) {
	var ent []Node

	if afs.zf != nil {
		// directories are not always stored in a zip file so they are
		// inferred from the names of the members
		seen := make(map[string]bool)

		for _, f := range afs.zf.File {
			// zip member names always use forward slashes
			rel := strings.TrimSuffix(f.Name, "/")
			if afs.inZipPath != "" {
				if !strings.HasPrefix(rel, afs.inZipPath+"/") {
					continue
				}
				rel = strings.TrimPrefix(rel, afs.inZipPath+"/")
			}

			parts := strings.SplitN(rel, "/", 2)
			if seen[parts[0]] {
				continue
			}
			seen[parts[0]] = true

			ent = append(ent, Node{
				Name:  parts[0],
				IsDir: len(parts) > 1 || f.FileInfo().IsDir(),
			})
		}
	} else {
		p := afs.current
		if !afs.isDir {
			p = filepath.Dir(p)
		}

		dir, err := os.ReadDir(p)
		if err != nil {
			return []Node{}, fmt.Errorf("archivefs: entries: %w", err)
		}

		for _, d := range dir {
			// using os.Stat() to get file information otherwise links to
			// directories do not have the IsDir() property
			fi, err := os.Stat(filepath.Join(p, d.Name()))
			if err != nil {
				continue
			}

			if fi.IsDir() {
				ent = append(ent, Node{
					Name:  d.Name(),
					IsDir: true,
				})
				continue
			}

			zf, err := zip.OpenReader(filepath.Join(p, d.Name()))
			if err == nil {
				zf.Close()
				ent = append(ent, Node{
					Name:      d.Name(),
					IsDir:     true,
					IsArchive: true,
				})
			} else {
				ent = append(ent, Node{
					Name: d.Name(),
				})
			}
		}
	}

	// sort alphabetically (case insensitive)
	sort.SliceStable(ent, func(i int, j int) bool {
		return strings.ToLower(ent[i].Name) < strings.ToLower(ent[j].Name)
	})

	return ent, nil
}

// Set the path. Any zip archive encountered along the path becomes the
// current archive and later elements of the path are looked for inside it.
func (afs *Path) Set(pth string) error {
	afs.Close()

	// clean path and split into parts
	pth = filepath.Clean(pth)
	lst := strings.Split(pth, string(filepath.Separator))

	// strings.Split will remove a leading filepath.Separator. we need to add
	// one back so that filepath.Join() works as expected
	if lst[0] == "" {
		lst[0] = string(filepath.Separator)
	}

	// reuse path string
	pth = ""

	for _, l := range lst {
		pth = filepath.Join(pth, l)

		if afs.zf != nil {
			p := path.Join(afs.inZipPath, l)

			zf, err := afs.zf.Open(p)
			if err != nil {
				afs.Close()
				return fmt.Errorf("archivefs: set: %w", err)
			}

			zfi, err := zf.Stat()
			zf.Close()
			if err != nil {
				afs.Close()
				return fmt.Errorf("archivefs: set: %w", err)
			}

			afs.isDir = zfi.IsDir()
			if afs.isDir {
				afs.inZipPath = p
				afs.inZipFile = ""
			} else {
				afs.inZipFile = l
			}

		} else {
			fi, err := os.Stat(pth)
			if err != nil {
				afs.Close()
				return fmt.Errorf("archivefs: set: %w", err)
			}

			afs.isDir = fi.IsDir()
			if afs.isDir {
				continue
			}

			afs.zf, err = zip.OpenReader(pth)
			if err == nil {
				// the root of an archive file is considered to be a directory
				afs.isDir = true
				continue
			}
			afs.zf = nil

			if !errors.Is(err, zip.ErrFormat) {
				afs.Close()
				return fmt.Errorf("archivefs: set: %w", err)
			}
		}
	}

	// make sure path is clean
	afs.current = filepath.Clean(pth)

	return nil
}
