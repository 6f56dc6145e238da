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

package movie

import (
	"fmt"
	"strings"

	"github.com/gbiconv/bk2gbi/archivefs"
	"github.com/gbiconv/bk2gbi/curated"
	"github.com/gbiconv/bk2gbi/input"
	"github.com/gbiconv/bk2gbi/logger"
)

// Names of the members of a BK2 archive.
const (
	InputLogMember     = "Input Log.txt"
	SyncSettingsMember = "SyncSettings.json"
	HeaderMember       = "Header.txt"
)

// Sentinal errors returned by Open.
const (
	NotAnArchive  = "movie: %s is not a movie archive"
	MissingMember = "movie: %s is missing from the movie archive"
	MemberError   = "movie: %s: %v"
)

// Movie is a decoded BK2 file.
type Movie struct {
	Filename string

	// the input state for each frame of the movie, in order
	Inputs []input.State

	Sync SyncSettings

	// empty if the movie has no header
	Header Header
}

func (mv Movie) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s: %d frames", mv.Filename, len(mv.Inputs)))
	if n, ok := mv.Header[HeaderGameName]; ok {
		s.WriteString(fmt.Sprintf(" of %s", n))
	}
	return s.String()
}

// Open reads and decodes the BK2 file at filename.
func Open(filename string) (*Movie, error) {
	var afs archivefs.Path
	defer afs.Close()

	err := afs.Set(filename)
	if err != nil {
		return nil, curated.Errorf(MemberError, filename, err)
	}
	if !afs.InArchive() || !afs.IsDir() {
		return nil, curated.Errorf(NotAnArchive, filename)
	}

	nodes, err := afs.List()
	if err != nil {
		return nil, curated.Errorf(MemberError, filename, err)
	}

	members := make(map[string]bool)
	for _, n := range nodes {
		if !n.IsDir {
			members[n.Name] = true
		}
	}

	for _, m := range []string{InputLogMember, SyncSettingsMember} {
		if !members[m] {
			return nil, curated.Errorf(MissingMember, m)
		}
	}

	mv := &Movie{
		Filename: filename,
		Header:   make(Header),
	}

	// sync settings are decoded first so that an unsupported movie is
	// rejected before the (possibly large) input log is read
	data, err := archivefs.ReadAll(archivefs.Member(filename, SyncSettingsMember))
	if err != nil {
		return nil, curated.Errorf(MemberError, SyncSettingsMember, err)
	}
	mv.Sync, err = DecodeSyncSettings(data)
	if err != nil {
		return nil, err
	}

	r, _, err := archivefs.Open(archivefs.Member(filename, InputLogMember))
	if err != nil {
		return nil, curated.Errorf(MemberError, InputLogMember, err)
	}
	mv.Inputs, err = DecodeInputLog(r)
	if err != nil {
		return nil, err
	}

	if members[HeaderMember] {
		data, err := archivefs.ReadAll(archivefs.Member(filename, HeaderMember))
		if err != nil {
			return nil, curated.Errorf(MemberError, HeaderMember, err)
		}
		mv.Header = DecodeHeader(data)
	}

	logger.Logf("movie", "%s", mv)

	return mv, nil
}
