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

// Package sdlscreen shows the frames drawn by the engine in an SDL window.
// The window is owned by a background goroutine that is locked to its OS
// thread. The goroutine redraws the window when a frame notification arrives
// or after a short timeout, whichever happens first.
//
// Rendering is for diagnostic purposes only. Frames may be torn or skipped.
package sdlscreen

import (
	"runtime"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/gbiconv/bk2gbi/curated"
	"github.com/gbiconv/bk2gbi/display"
	"github.com/gbiconv/bk2gbi/logger"
)

// Dimensions of the Game Boy screen.
const (
	Width  = 160
	Height = 144
)

const windowTitle = "gambatte output"

// the longest the worker waits for a notification before polling SDL events
const pollInterval = 10 * time.Millisecond

// Sentinal errors.
const (
	SDLError = "sdlscreen: %v"
	BadScale = "sdlscreen: scale must be between 1 and 10 (%d)"
)

// Screen implements the driver.FrameNotifier interface.
type Screen struct {
	scale    int
	notifier *display.Notifier

	// XRGB8888 pixel data of the surface. the memory is owned by SDL
	pixels []byte
	pitch  int

	done chan struct{}
}

// Start the worker goroutine and open the window. The function returns once
// the window is open or has failed to open.
func Start(scale int) (*Screen, error) {
	if scale < 1 || scale > 10 {
		return nil, curated.Errorf(BadScale, scale)
	}

	scr := &Screen{
		scale:    scale,
		notifier: display.NewNotifier(),
		done:     make(chan struct{}),
	}

	ready := make(chan error)
	go scr.worker(ready)

	if err := <-ready; err != nil {
		return nil, err
	}

	return scr, nil
}

// VideoBuffer returns the pixel memory and the pitch (in pixels) that the
// engine should draw into. The memory is valid until Stop() is called.
func (scr *Screen) VideoBuffer() ([]byte, int) {
	return scr.pixels, scr.pitch
}

// FrameReady implements the driver.FrameNotifier interface.
func (scr *Screen) FrameReady() {
	scr.notifier.FrameReady()
}

// Stop the worker and close the window. The engine must no longer be drawing
// into the video buffer.
func (scr *Screen) Stop() {
	scr.notifier.Close()
	<-scr.done

	posted, dropped := scr.notifier.Counts()
	logger.Logf("sdlscreen", "%d frames shown, %d skipped", posted, dropped)
}

func (scr *Screen) worker(ready chan<- error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	defer close(scr.done)

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		ready <- curated.Errorf(SDLError, err)
		return
	}
	defer sdl.Quit()

	window, err := sdl.CreateWindow(windowTitle,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(Width*scr.scale), int32(Height*scr.scale),
		sdl.WINDOW_SHOWN)
	if err != nil {
		ready <- curated.Errorf(SDLError, err)
		return
	}
	defer window.Destroy()

	surface, err := sdl.CreateRGBSurface(0, Width, Height, 32, 0x00ff0000, 0x0000ff00, 0x000000ff, 0)
	if err != nil {
		ready <- curated.Errorf(SDLError, err)
		return
	}
	defer surface.Free()

	scr.pixels = surface.Pixels()
	scr.pitch = int(surface.Pitch) / 4

	ready <- nil

	logger.Logf("sdlscreen", "window open (%dx%d)", Width*scr.scale, Height*scr.scale)

	for {
		for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
			if _, ok := ev.(*sdl.QuitEvent); ok {
				// closing the window does not stop the conversion
				logger.Log("sdlscreen", "close requested. ignored until conversion ends")
			}
		}

		if err := scr.present(window, surface); err != nil {
			logger.Log("sdlscreen", err)
		}

		select {
		case _, ok := <-scr.notifier.C():
			if !ok {
				return
			}
		case <-time.After(pollInterval):
		}
	}
}

func (scr *Screen) present(window *sdl.Window, surface *sdl.Surface) error {
	ws, err := window.GetSurface()
	if err != nil {
		return curated.Errorf(SDLError, err)
	}
	if err := surface.BlitScaled(nil, ws, nil); err != nil {
		return curated.Errorf(SDLError, err)
	}
	if err := window.UpdateSurface(); err != nil {
		return curated.Errorf(SDLError, err)
	}
	return nil
}
