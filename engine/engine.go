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

// Package engine defines the interface to the native emulation engine. The
// engine is treated as a black box: bk2gbi never looks at how it emulates the
// Game Boy, only at how many audio samples each call to RunFor() produces and
// at when the engine asks for the state of the joypad.
//
// The gambatte sub-package is the real implementation. Test code provides
// its own implementations of the Engine interface.
package engine

import (
	"github.com/gbiconv/bk2gbi/input"
)

// LoadFlags are passed to the Load() function of the Engine.
type LoadFlags uint32

// List of valid LoadFlags. The values are those of libgambatte.
const (
	ForceDMG        LoadFlags = 1
	GBACGB          LoadFlags = 2
	MultiCartCompat LoadFlags = 4
)

// InputGetter is called by the engine whenever the emulated program reads the
// joypad. The sampleOffset argument is the number of samples that have been
// produced by the current RunFor() call at the moment of the read.
//
// The InputGetter is called from within RunFor() and on the same goroutine.
type InputGetter interface {
	GetInput(sampleOffset uint32) input.State
}

// Engine is the interface to a native emulation engine instance. An Engine is
// not safe for concurrent use. Only one call may be in progress at any time.
type Engine interface {
	// LoadBIOS loads the boot ROM. A non-zero status indicates failure.
	LoadBIOS(data []byte) int

	// Load a cartridge ROM. A non-zero status indicates failure.
	Load(data []byte, flags LoadFlags) int

	SetRTCDivisorOffset(offset int32)

	// SetInputGetter registers the InputGetter for the lifetime of the engine.
	// The engine will hold on to the InputGetter until Destroy() is called.
	SetInputGetter(g InputGetter)

	// SetVideoBuffer sets the memory the engine draws frames into. The pitch
	// is measured in pixels (uint32 values). The memory must not be managed
	// by the Go garbage collector; it must remain valid and at the same
	// address until Destroy() is called.
	SetVideoBuffer(pixels []byte, pitch int)

	// RunFor runs the emulation until either the number of samples pointed to
	// has been produced or until the end of a video frame, whichever comes
	// first. On return samples holds the number of samples actually produced.
	// Any non-zero status indicates an error.
	RunFor(samples *uint32) int

	// Destroy releases all native resources. The Engine cannot be used
	// afterwards.
	Destroy()
}
