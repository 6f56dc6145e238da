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

// no definitions are allowed in the preamble of a file that uses //export

/*
#include <stdint.h>
*/
import "C"

import (
	"runtime/cgo"
	"unsafe"

	"github.com/gbiconv/bk2gbi/engine"
)

//export inputGetterTrampoline
func inputGetterTrampoline(context unsafe.Pointer, sampleOffset C.uint) C.uint {
	h := cgo.Handle(*(*C.uintptr_t)(context))
	ig := h.Value().(engine.InputGetter)
	return C.uint(ig.GetInput(uint32(sampleOffset)))
}
