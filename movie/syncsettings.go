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
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/gbiconv/bk2gbi/curated"
	"github.com/gbiconv/bk2gbi/logger"
)

// SyncSettingsType is the label that must appear in the $type field of the
// sync settings.
const SyncSettingsType = "GambatteSyncSettings"

// Default values of the optional sync settings.
const (
	DefaultRTCDivisorOffset  int32 = 0
	DefaultEqualLengthFrames       = false
)

// Sentinal errors returned by DecodeSyncSettings.
const (
	SyncSettingsInvalid  = "movie: sync settings: %v"
	SyncSettingsNoObject = "movie: sync settings: no settings object"
	SyncSettingsBadType  = "movie: sync settings: $type is not a valid string"
	NotGambatteMovie     = "movie: sync settings: not a Gambatte movie (%s)"
	NotGBACGB            = "movie: sync settings: movie does not use CGB in GBA mode"
)

// SyncSettings are the emulator settings the movie was recorded with. The
// settings are immutable once decoded.
type SyncSettings struct {
	Type string

	// always true for a supported movie
	GBACGB bool

	RTCDivisorOffset int32

	// whether frames were recorded with the newer equal length timing
	EqualLengthFrames bool
}

// DecodeSyncSettings parses the contents of a SyncSettings.json member.
//
// The sync settings object is found under the "o" key. The $type and GBACGB
// fields must be present and correct. The RTCDivisorOffset and
// EqualLengthFrames fields are optional; if either is missing or of the wrong
// type a warning is logged and the default value is used.
func DecodeSyncSettings(data []byte) (SyncSettings, error) {
	var doc map[string]interface{}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return SyncSettings{}, curated.Errorf(SyncSettingsInvalid, err)
	}

	o, ok := doc["o"].(map[string]interface{})
	if !ok {
		return SyncSettings{}, curated.Errorf(SyncSettingsNoObject)
	}

	var ss SyncSettings

	ss.Type, ok = o["$type"].(string)
	if !ok {
		return SyncSettings{}, curated.Errorf(SyncSettingsBadType)
	}
	if !strings.Contains(ss.Type, SyncSettingsType) {
		return SyncSettings{}, curated.Errorf(NotGambatteMovie, ss.Type)
	}

	ss.GBACGB, ok = o["GBACGB"].(bool)
	if !ok || !ss.GBACGB {
		return SyncSettings{}, curated.Errorf(NotGBACGB)
	}

	ss.RTCDivisorOffset, ok = asInt32(o["RTCDivisorOffset"])
	if !ok {
		logger.Logf("movie", "WARNING: no valid RTCDivisorOffset found in sync settings, assuming %d", DefaultRTCDivisorOffset)
		ss.RTCDivisorOffset = DefaultRTCDivisorOffset
	}

	ss.EqualLengthFrames, ok = o["EqualLengthFrames"].(bool)
	if !ok {
		logger.Logf("movie", "WARNING: no valid EqualLengthFrames found in sync settings, assuming %v", DefaultEqualLengthFrames)
		ss.EqualLengthFrames = DefaultEqualLengthFrames
	}

	return ss, nil
}

// asInt32 converts a decoded JSON value to an int32. Only integer numbers
// that fit into 32 bits are accepted.
func asInt32(v interface{}) (int32, bool) {
	n, ok := v.(json.Number)
	if !ok {
		return 0, false
	}
	i, err := strconv.ParseInt(n.String(), 10, 32)
	if err != nil {
		return 0, false
	}
	return int32(i), true
}
