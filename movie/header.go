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
	"bufio"
	"bytes"
	"strings"

	"github.com/gbiconv/bk2gbi/logger"
)

// Header is the key/value content of the optional Header.txt member. Each
// line of the member is a key followed by a space and the value.
type Header map[string]string

// Keys in the header that are used by bk2gbi.
const (
	HeaderSHA1     = "SHA1"
	HeaderCore     = "Core"
	HeaderPlatform = "Platform"
	HeaderGameName = "GameName"
)

// DecodeHeader parses the contents of a Header.txt member. Lines without a
// value are recorded with an empty value.
func DecodeHeader(data []byte) Header {
	hdr := make(Header)

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		key, value, _ := strings.Cut(line, " ")
		hdr[key] = strings.TrimSpace(value)
	}

	return hdr
}

// CheckHash compares the SHA1 value in the header with the hash of the ROM
// being used. A mismatch is not an error because a movie can be played back
// with a patched or differently dumped ROM, but the result will probably not
// be what was recorded. Returns false if the hashes differ.
func (hdr Header) CheckHash(romHash string) bool {
	h, ok := hdr[HeaderSHA1]
	if !ok || h == "" {
		return true
	}
	if !strings.EqualFold(h, romHash) {
		logger.Logf("movie", "WARNING: ROM hash (%s) does not match the hash recorded in the movie (%s)", romHash, h)
		return false
	}
	return true
}
