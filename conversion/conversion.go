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

package conversion

import (
	"fmt"

	"github.com/gbiconv/bk2gbi/cartridgeloader"
	"github.com/gbiconv/bk2gbi/curated"
	"github.com/gbiconv/bk2gbi/driver"
	"github.com/gbiconv/bk2gbi/engine"
	"github.com/gbiconv/bk2gbi/gbi"
	"github.com/gbiconv/bk2gbi/input"
	"github.com/gbiconv/bk2gbi/logger"
	"github.com/gbiconv/bk2gbi/movie"
	"github.com/gbiconv/bk2gbi/sampling"
)

// DefaultFlush is the number of frames of neutral input stepped after the
// movie's input has been exhausted.
const DefaultFlush = 1000

// Sentinal errors.
const (
	BIOSError  = "conversion: engine failed to load boot ROM %s (status %d)"
	LoadError  = "conversion: engine failed to load ROM %s (status %d)"
	StepError  = "conversion: %v"
	NoMovie    = "conversion: no movie"
	BadOptions = "conversion: flush frame count cannot be negative (%d)"
)

// Screen is an optional destination for the frames drawn by the engine.
type Screen interface {
	driver.FrameNotifier

	// memory must remain valid until Run() returns
	VideoBuffer() (pixels []byte, pitch int)
}

// Meter is an optional progress meter.
type Meter interface {
	Update(frame int)
	Done()
}

// Options for the Run() function.
type Options struct {
	// number of neutral frames stepped after the end of the movie
	Flush int

	// use the midpoint time formula. see gbi.MidpointTime()
	Midpoint bool

	Screen Screen
	Meter  Meter
}

// DefaultOptions returns the Options used when nothing else is specified.
func DefaultOptions() Options {
	return Options{
		Flush: DefaultFlush,
	}
}

// Result of the conversion.
type Result struct {
	Events []gbi.Event

	Cadence driver.Cadence
	Frames  int
	Samples uint64
	Reads   int
	Runs    int
}

func (r Result) String() string {
	return fmt.Sprintf("%d frames (%s cadence), %d samples in %d runs, %d reads, %d events",
		r.Frames, r.Cadence, r.Samples, r.Runs, r.Reads, len(r.Events))
}

// Run the conversion. The BIOS and ROM will be loaded if they have not been
// already. The engine is destroyed before the function returns.
func Run(eng engine.Engine, mov *movie.Movie, bios *cartridgeloader.Loader, rom *cartridgeloader.Loader, opts Options) (*Result, error) {
	if mov == nil {
		eng.Destroy()
		return nil, curated.Errorf(NoMovie)
	}
	if opts.Flush < 0 {
		eng.Destroy()
		return nil, curated.Errorf(BadOptions, opts.Flush)
	}

	if err := load(eng, mov, bios, rom); err != nil {
		eng.Destroy()
		return nil, err
	}

	rec := sampling.NewRecorder()
	drv := driver.New(eng, rec, driver.CadenceFromSettings(mov.Sync.EqualLengthFrames))
	defer drv.Destroy()

	logger.Logf("conversion", "%s cadence", drv.Cadence())

	if opts.Screen != nil {
		eng.SetVideoBuffer(opts.Screen.VideoBuffer())
		drv.SetNotifier(opts.Screen)

		// the screen memory is not owned by the engine
		defer eng.SetVideoBuffer(nil, 0)
	}

	if err := step(drv, mov.Inputs, opts); err != nil {
		return nil, err
	}

	res := &Result{
		Events:  gbi.Convert(rec.Samples(), gbi.Options{Midpoint: opts.Midpoint}),
		Cadence: drv.Cadence(),
		Frames:  drv.Frames(),
		Samples: drv.Clock(),
		Reads:   rec.Len(),
		Runs:    drv.Runs(),
	}

	logger.Log("conversion", res)

	return res, nil
}

func load(eng engine.Engine, mov *movie.Movie, bios *cartridgeloader.Loader, rom *cartridgeloader.Loader) error {
	if err := bios.Load(); err != nil {
		return err
	}
	if err := rom.Load(); err != nil {
		return err
	}

	mov.Header.CheckHash(rom.Hash)

	if status := eng.LoadBIOS(bios.Data); status != 0 {
		return curated.Errorf(BIOSError, bios.Name, status)
	}
	if status := eng.Load(rom.Data, engine.GBACGB); status != 0 {
		return curated.Errorf(LoadError, rom.Name, status)
	}

	eng.SetRTCDivisorOffset(mov.Sync.RTCDivisorOffset)

	return nil
}

func step(drv *driver.Driver, inputs []input.State, opts Options) error {
	total := len(inputs) + opts.Flush

	if opts.Meter != nil {
		defer opts.Meter.Done()
	}

	for i, in := range inputs {
		if err := drv.Step(in); err != nil {
			return curated.Errorf(StepError, err)
		}
		if opts.Meter != nil {
			opts.Meter.Update(i + 1)
		}
	}

	for i := 0; i < opts.Flush; i++ {
		if err := drv.Step(input.Neutral); err != nil {
			return curated.Errorf(StepError, err)
		}
		if opts.Meter != nil {
			opts.Meter.Update(len(inputs) + i + 1)
		}
	}

	logger.Logf("conversion", "stepped %d of %d frames", drv.Frames(), total)

	return nil
}
