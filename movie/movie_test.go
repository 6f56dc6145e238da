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

package movie_test

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gbiconv/bk2gbi/curated"
	"github.com/gbiconv/bk2gbi/input"
	"github.com/gbiconv/bk2gbi/logger"
	"github.com/gbiconv/bk2gbi/movie"
	"github.com/gbiconv/bk2gbi/test"
)

const validSettings = `{"o":{"$type":"BizHawk.Emulation.Cores.Nintendo.Gameboy.Gameboy+GambatteSyncSettings, BizHawk.Emulation.Cores","EnableBIOS":true,"GBACGB":true,"RTCDivisorOffset":-3,"EqualLengthFrames":true}}`

const inputLog = `[Input]
LogKey:#Up|Down|Left|Right|Start|Select|B|A|Power|
|........A.|
|.......B..|
|U.........|
|....S.....|
|.....s....|
[/Input]
`

// writeMovie creates a BK2 archive in a temporary directory containing the
// supplied members.
func writeMovie(t *testing.T, members map[string]string) string {
	t.Helper()

	filename := filepath.Join(t.TempDir(), "test.bk2")
	f, err := os.Create(filename)
	test.DemandSuccess(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	for name, content := range members {
		w, err := zw.Create(name)
		test.DemandSuccess(t, err)
		_, err = io.WriteString(w, content)
		test.DemandSuccess(t, err)
	}
	test.DemandSuccess(t, zw.Close())

	return filename
}

// warnings returns the number of warnings in the central log.
func warnings() int {
	n := 0
	for _, e := range logger.Copy() {
		if e.Tag == "movie" && strings.HasPrefix(e.Detail, "WARNING:") {
			n++
		}
	}
	return n
}

func TestLineRoundTrip(t *testing.T) {
	for i := 0; i <= 0xff; i++ {
		s := input.State(i)
		line := movie.EncodeLine(s)
		d, ok := movie.DecodeLine(line)
		test.ExpectSuccess(t, ok, line)
		test.ExpectEquality(t, d, s, line)
	}
}

func TestCaseSensitivity(t *testing.T) {
	s, ok := movie.DecodeLine("|S|")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, s, input.Start)

	s, ok = movie.DecodeLine("|s|")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, s, input.Select)

	// lowercase versions of the other markers mean nothing
	s, ok = movie.DecodeLine("|udlrba|")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, s, input.Neutral)
}

func TestNonFrameLines(t *testing.T) {
	_, ok := movie.DecodeLine("")
	test.ExpectFailure(t, ok)
	_, ok = movie.DecodeLine("[Input]")
	test.ExpectFailure(t, ok)
	_, ok = movie.DecodeLine(" |UDLR|")
	test.ExpectFailure(t, ok)
	_, ok = movie.DecodeLine("LogKey:#Up|Down|Left|Right|Start|Select|B|A|Power|")
	test.ExpectFailure(t, ok)
}

func TestDecodeInputLog(t *testing.T) {
	frames, err := movie.DecodeInputLog(strings.NewReader(inputLog))
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(frames), 5)
	test.ExpectEquality(t, frames[0], input.A)
	test.ExpectEquality(t, frames[1], input.B)
	test.ExpectEquality(t, frames[2], input.Up)
	test.ExpectEquality(t, frames[3], input.Start)
	test.ExpectEquality(t, frames[4], input.Select)

	// no frame lines at all
	frames, err = movie.DecodeInputLog(strings.NewReader("[Input]\n[/Input]\n"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(frames), 0)
}

func TestDecodeInputLogLongLines(t *testing.T) {
	comment := "; " + strings.Repeat("x", 256*1024)
	frame := "|" + strings.Repeat(".", 128*1024) + "A|"
	log := "[Input]\r\n" + comment + "\r\n" + frame + "\r\n|.......B..|"

	frames, err := movie.DecodeInputLog(strings.NewReader(log))
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(frames), 2)
	test.ExpectEquality(t, frames[0], input.A)
	test.ExpectEquality(t, frames[1], input.B)
}

func TestSyncSettings(t *testing.T) {
	logger.Clear()
	ss, err := movie.DecodeSyncSettings([]byte(validSettings))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, ss.GBACGB)
	test.ExpectSuccess(t, ss.EqualLengthFrames)
	test.ExpectEquality(t, ss.RTCDivisorOffset, int32(-3))
	test.ExpectEquality(t, warnings(), 0)
}

func TestSyncSettingsDefaults(t *testing.T) {
	logger.Clear()
	ss, err := movie.DecodeSyncSettings([]byte(`{"o":{"$type":"GambatteSyncSettings","GBACGB":true}}`))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ss.RTCDivisorOffset, movie.DefaultRTCDivisorOffset)
	test.ExpectEquality(t, ss.EqualLengthFrames, movie.DefaultEqualLengthFrames)
	test.ExpectEquality(t, warnings(), 2)

	// wrong types are treated the same as missing fields
	logger.Clear()
	ss, err = movie.DecodeSyncSettings([]byte(`{"o":{"$type":"GambatteSyncSettings","GBACGB":true,"RTCDivisorOffset":"12","EqualLengthFrames":1}}`))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ss.RTCDivisorOffset, int32(0))
	test.ExpectEquality(t, ss.EqualLengthFrames, false)
	test.ExpectEquality(t, warnings(), 2)

	// a number that isn't a 32 bit integer
	logger.Clear()
	ss, err = movie.DecodeSyncSettings([]byte(`{"o":{"$type":"GambatteSyncSettings","GBACGB":true,"RTCDivisorOffset":1.5,"EqualLengthFrames":false}}`))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ss.RTCDivisorOffset, int32(0))
	test.ExpectEquality(t, warnings(), 1)

	logger.Clear()
	_, err = movie.DecodeSyncSettings([]byte(`{"o":{"$type":"GambatteSyncSettings","GBACGB":true,"RTCDivisorOffset":4294967296,"EqualLengthFrames":false}}`))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, warnings(), 1)
}

func TestSyncSettingsFatal(t *testing.T) {
	var err error

	_, err = movie.DecodeSyncSettings([]byte(`{"o":{"$type":"GambatteSyncSettings","GBACGB":false}}`))
	test.ExpectSuccess(t, curated.Is(err, movie.NotGBACGB))

	_, err = movie.DecodeSyncSettings([]byte(`{"o":{"$type":"GambatteSyncSettings"}}`))
	test.ExpectSuccess(t, curated.Is(err, movie.NotGBACGB))

	_, err = movie.DecodeSyncSettings([]byte(`{"o":{"$type":"SameBoySyncSettings","GBACGB":true}}`))
	test.ExpectSuccess(t, curated.Is(err, movie.NotGambatteMovie))

	_, err = movie.DecodeSyncSettings([]byte(`{"o":{"$type":10,"GBACGB":true}}`))
	test.ExpectSuccess(t, curated.Is(err, movie.SyncSettingsBadType))

	_, err = movie.DecodeSyncSettings([]byte(`{"GBACGB":true}`))
	test.ExpectSuccess(t, curated.Is(err, movie.SyncSettingsNoObject))

	_, err = movie.DecodeSyncSettings([]byte(`not json`))
	test.ExpectSuccess(t, curated.Is(err, movie.SyncSettingsInvalid))
}

func TestHeader(t *testing.T) {
	hdr := movie.DecodeHeader([]byte("MovieVersion BizHawk v2.0\nPlatform GB\nSHA1 0123ABCD\n\nCore Gambatte\n"))
	test.ExpectEquality(t, hdr[movie.HeaderPlatform], "GB")
	test.ExpectEquality(t, hdr[movie.HeaderCore], "Gambatte")
	test.ExpectEquality(t, hdr["MovieVersion"], "BizHawk v2.0")

	logger.Clear()
	test.ExpectSuccess(t, hdr.CheckHash("0123abcd"))
	test.ExpectFailure(t, hdr.CheckHash("ffffffff"))
	test.ExpectEquality(t, warnings(), 1)

	// no hash in header means any ROM is acceptable
	test.ExpectSuccess(t, movie.Header{}.CheckHash("ffffffff"))
}

func TestOpen(t *testing.T) {
	filename := writeMovie(t, map[string]string{
		movie.InputLogMember:     inputLog,
		movie.SyncSettingsMember: validSettings,
		movie.HeaderMember:       "GameName Test Game\nSHA1 0123ABCD\n",
	})

	mv, err := movie.Open(filename)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(mv.Inputs), 5)
	test.ExpectSuccess(t, mv.Sync.EqualLengthFrames)
	test.ExpectEquality(t, mv.Header[movie.HeaderGameName], "Test Game")
	test.ExpectEquality(t, mv.String(), filename+": 5 frames of Test Game")
}

func TestOpenWithoutHeader(t *testing.T) {
	filename := writeMovie(t, map[string]string{
		movie.InputLogMember:     inputLog,
		movie.SyncSettingsMember: validSettings,
	})

	mv, err := movie.Open(filename)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(mv.Header), 0)
}

func TestOpenFailures(t *testing.T) {
	var err error

	filename := writeMovie(t, map[string]string{
		movie.SyncSettingsMember: validSettings,
	})
	_, err = movie.Open(filename)
	test.ExpectSuccess(t, curated.Is(err, movie.MissingMember))

	filename = writeMovie(t, map[string]string{
		movie.InputLogMember: inputLog,
	})
	_, err = movie.Open(filename)
	test.ExpectSuccess(t, curated.Is(err, movie.MissingMember))

	// unsupported settings abort the whole decoding
	filename = writeMovie(t, map[string]string{
		movie.InputLogMember:     inputLog,
		movie.SyncSettingsMember: `{"o":{"$type":"GambatteSyncSettings","GBACGB":false}}`,
	})
	_, err = movie.Open(filename)
	test.ExpectSuccess(t, curated.Is(err, movie.NotGBACGB))

	// a plain file is not a movie
	filename = filepath.Join(t.TempDir(), "plain.bk2")
	test.DemandSuccess(t, os.WriteFile(filename, []byte(inputLog), 0o644))
	_, err = movie.Open(filename)
	test.ExpectSuccess(t, curated.Is(err, movie.NotAnArchive))

	_, err = movie.Open(filepath.Join(t.TempDir(), "missing.bk2"))
	test.ExpectFailure(t, err)
}
