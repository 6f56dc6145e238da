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

package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/gbiconv/bk2gbi/cartridgeloader"
	"github.com/gbiconv/bk2gbi/conversion"
	"github.com/gbiconv/bk2gbi/display/sdlscreen"
	"github.com/gbiconv/bk2gbi/driver"
	"github.com/gbiconv/bk2gbi/engine/gambatte"
	"github.com/gbiconv/bk2gbi/gbi"
	"github.com/gbiconv/bk2gbi/logger"
	"github.com/gbiconv/bk2gbi/modalflag"
	"github.com/gbiconv/bk2gbi/movie"
	"github.com/gbiconv/bk2gbi/progress"
	"github.com/gbiconv/bk2gbi/statsview"
	"github.com/gbiconv/bk2gbi/version"
)

const defaultBIOS = "gbc_bios.bin"

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout, os.Stderr))
}

// launch returns the exit value of the program. stdout receives the GBI
// script (or the movie information) and nothing else.
func launch(args []string, stdout io.Writer, stderr io.Writer) int {
	logger.SetEcho(stderr)
	defer logger.SetEcho(nil)

	md := &modalflag.Modes{Output: stderr}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("CONVERT", "INFO", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(stderr, "* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "CONVERT":
		err = convert(md, stdout, stderr)

	case "INFO":
		err = info(md, stdout)

	case "VERSION":
		fmt.Fprintln(stdout, version.String())
	}

	if err != nil {
		fmt.Fprintf(stderr, "* error in %s mode: %s\n", md.String(), err)
		return 20
	}

	return 0
}

func convert(md *modalflag.Modes, stdout io.Writer, stderr io.Writer) error {
	md.NewMode()
	md.Arguments("ROM", "MOVIE")

	bios := md.AddString("bios", defaultBIOS, "boot ROM file")
	display := md.AddBool("display", false, "show the engine output in a window")
	scale := md.AddInt("scale", 3, "window scaling")
	midpoint := md.AddBool("midpoint", false, "time changes from the midpoint of the previous joypad read")
	flush := md.AddInt("flush", conversion.DefaultFlush, "neutral frames stepped after the end of the movie")
	meter := md.AddBool("progress", false, "show progress when stderr is a terminal")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	if err := md.ExpectArgs(); err != nil {
		return err
	}

	logger.Log("bk2gbi", version.String())

	if *stats {
		statsview.Launch()
		defer statsview.Stop()
	}

	mov, err := movie.Open(md.GetArg(1))
	if err != nil {
		return err
	}

	biosLoad := cartridgeloader.NewLoader(*bios)
	romLoad := cartridgeloader.NewLoader(md.GetArg(0))

	opts := conversion.DefaultOptions()
	opts.Flush = *flush
	opts.Midpoint = *midpoint

	if *meter {
		opts.Meter = progress.NewMeter(stderr, "frames", len(mov.Inputs)+*flush)
	}

	eng, err := gambatte.Create()
	if err != nil {
		return err
	}

	if *display {
		scr, err := sdlscreen.Start(*scale)
		if err != nil {
			eng.Destroy()
			return err
		}
		defer scr.Stop()
		opts.Screen = scr
	}

	res, err := conversion.Run(eng, mov, &biosLoad, &romLoad, opts)
	if err != nil {
		return err
	}

	return gbi.Write(stdout, res.Events)
}

func info(md *modalflag.Modes, stdout io.Writer) error {
	md.NewMode()
	md.Arguments("MOVIE")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	if err := md.ExpectArgs(); err != nil {
		return err
	}

	mov, err := movie.Open(md.GetArg(0))
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "%s\n", mov)
	fmt.Fprintf(stdout, "  frames: %d\n", len(mov.Inputs))
	fmt.Fprintf(stdout, "  cadence: %s\n", driver.CadenceFromSettings(mov.Sync.EqualLengthFrames))
	fmt.Fprintf(stdout, "  rtc divisor offset: %d\n", mov.Sync.RTCDivisorOffset)

	keys := make([]string, 0, len(mov.Header))
	for k := range mov.Header {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(stdout, "  %s: %s\n", k, mov.Header[k])
	}

	return nil
}
