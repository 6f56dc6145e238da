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
	"crypto/sha1"
	"fmt"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/gbiconv/bk2gbi/curated"
	"github.com/gbiconv/bk2gbi/logger"
)

// Sentinal errors.
const (
	LoadError         = "cartridgeloader: %v"
	NoROMFile         = "cartridgeloader: no ROM file found in archive (%s)"
	TooLarge          = "cartridgeloader: file exceeds maximum size of %d bytes"
	UnexpectedHash    = "cartridgeloader: unexpected hash value"
	UnsupportedScheme = "cartridgeloader: unsupported URL scheme (%s)"
	EmptyFile         = "cartridgeloader: file is empty (%s)"
)

// Loader is used to specify the data to load into the emulation engine.
type Loader struct {
	// filename of the data to load. may be a URL, a path to a file in a zip
	// archive, or a path to an archive
	Filename string

	// expected hash of the loaded data. empty string indicates that the hash
	// is unknown and need not be validated. after a load operation the value
	// will be the hash of the loaded data
	Hash string

	// the name of the file that was loaded. for archives this is the name of
	// the archive member
	Name string

	// copy of the loaded data. subsequent calls to Load() will not reload
	// the data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: filename,
	}
}

// ShortName returns a shortened version of the Loader filename.
func (cl Loader) ShortName() string {
	name := cl.Name
	if name == "" {
		name = cl.Filename
	}
	name = filepath.Base(name)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

// Load the data. Loader filenames with a valid schema will use that method to
// load the data. Currently supported schemes are HTTP and local files.
func (cl *Loader) Load() error {
	if len(cl.Data) > 0 {
		return nil
	}

	scheme := "file"

	u, err := url.Parse(cl.Filename)
	if err == nil {
		scheme = u.Scheme
	}

	// a windows drive letter looks like a scheme to the url package
	if len(scheme) == 1 {
		scheme = "file"
	}

	var data []byte
	var name string

	switch scheme {
	case "http":
		fallthrough
	case "https":
		resp, err := http.Get(cl.Filename)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf(LoadError, resp.Status)
		}

		data, err = readMax(resp.Body)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}
		name = filepath.Base(u.Path)

	case "file":
		fallthrough

	case "":
		data, name, err = loadFile(cl.Filename)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}

	default:
		return curated.Errorf(UnsupportedScheme, scheme)
	}

	if len(data) == 0 {
		return curated.Errorf(EmptyFile, cl.Filename)
	}

	// generate hash
	hash := fmt.Sprintf("%x", sha1.Sum(data))

	// check for hash consistency
	if cl.Hash != "" && cl.Hash != hash {
		return curated.Errorf(UnexpectedHash)
	}

	cl.Hash = hash
	cl.Name = name
	cl.Data = data

	logger.Logf("cartridgeloader", "%s: %d bytes (sha1 %s)", name, len(data), hash)

	return nil
}
