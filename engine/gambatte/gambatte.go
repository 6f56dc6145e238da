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

//go:build gambatte

package gambatte

/*
#cgo LDFLAGS: -lgambatte -lstdc++ -lm
#include <stdint.h>
#include <stdlib.h>

void *gambatte_create(void);
void gambatte_destroy(void *g);
int gambatte_load(void *g, char const *romfiledata, unsigned romfilelength, unsigned flags);
int gambatte_loadbios(void *g, char const *biosfiledata, unsigned size);
int gambatte_runfor(void *g, unsigned *samples);
void gambatte_setvideobuffer(void *g, uint32_t *videoBuf, int pitch);
void gambatte_setrtcdivisoroffset(void *g, int rtcDivisorOffset);
void gambatte_setinputgetter(void *g, unsigned (*getinput)(void *, unsigned), void *context);

unsigned inputGetterTrampoline(void *context, unsigned sampleOffset);

static void setInputGetter(void *g, void *context) {
	gambatte_setinputgetter(g, inputGetterTrampoline, context);
}
*/
import "C"

import (
	"runtime/cgo"
	"unsafe"

	"github.com/gbiconv/bk2gbi/curated"
	"github.com/gbiconv/bk2gbi/engine"
)

// Gambatte implements the engine.Engine interface.
type Gambatte struct {
	gb unsafe.Pointer

	// C allocated slot holding the handle of the registered InputGetter. the
	// address of the slot is what the engine sees as the callback context
	context *C.uintptr_t
	handle  cgo.Handle
}

// Available returns true if the package has been built with libgambatte.
func Available() bool {
	return true
}

// Create a new instance of the engine.
func Create() (engine.Engine, error) {
	gb := C.gambatte_create()
	if gb == nil {
		return nil, curated.Errorf(CreateError)
	}
	return &Gambatte{gb: gb}, nil
}

// LoadBIOS implements the engine.Engine interface.
func (g *Gambatte) LoadBIOS(data []byte) int {
	if len(data) == 0 {
		return -1
	}
	return int(C.gambatte_loadbios(g.gb, (*C.char)(unsafe.Pointer(&data[0])), C.uint(len(data))))
}

// Load implements the engine.Engine interface.
func (g *Gambatte) Load(data []byte, flags engine.LoadFlags) int {
	if len(data) == 0 {
		return -1
	}
	return int(C.gambatte_load(g.gb, (*C.char)(unsafe.Pointer(&data[0])), C.uint(len(data)), C.uint(flags)))
}

// SetRTCDivisorOffset implements the engine.Engine interface.
func (g *Gambatte) SetRTCDivisorOffset(offset int32) {
	C.gambatte_setrtcdivisoroffset(g.gb, C.int(offset))
}

// SetInputGetter implements the engine.Engine interface.
func (g *Gambatte) SetInputGetter(ig engine.InputGetter) {
	oldContext := g.context
	oldHandle := g.handle

	g.handle = cgo.NewHandle(ig)
	g.context = (*C.uintptr_t)(C.malloc(C.size_t(unsafe.Sizeof(C.uintptr_t(0)))))
	*g.context = C.uintptr_t(g.handle)
	C.setInputGetter(g.gb, unsafe.Pointer(g.context))

	// the previous context is no longer visible to the engine
	if oldContext != nil {
		oldHandle.Delete()
		C.free(unsafe.Pointer(oldContext))
	}
}

// SetVideoBuffer implements the engine.Engine interface.
func (g *Gambatte) SetVideoBuffer(pixels []byte, pitch int) {
	if len(pixels) == 0 {
		C.gambatte_setvideobuffer(g.gb, nil, 0)
		return
	}
	C.gambatte_setvideobuffer(g.gb, (*C.uint32_t)(unsafe.Pointer(&pixels[0])), C.int(pitch))
}

// RunFor implements the engine.Engine interface.
//
// The value returned by gambatte_runfor() is the sample offset at which a
// video frame was completed, or -1 if no frame was completed. It is not an
// error indication and so the status returned by this function is always
// zero.
func (g *Gambatte) RunFor(samples *uint32) int {
	n := C.uint(*samples)
	C.gambatte_runfor(g.gb, &n)
	*samples = uint32(n)
	return 0
}

// Destroy implements the engine.Engine interface.
func (g *Gambatte) Destroy() {
	if g.gb == nil {
		return
	}
	C.gambatte_destroy(g.gb)
	g.gb = nil

	// the context must outlive the engine instance
	if g.context != nil {
		g.handle.Delete()
		C.free(unsafe.Pointer(g.context))
		g.context = nil
	}
}
