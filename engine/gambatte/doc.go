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

// Package gambatte is the binding to the C interface of libgambatte. It is an
// optional package that is built only when the "gambatte" build constraint is
// present, because it requires libgambatte to be installed:
//
//	go build -tags gambatte
//
// Without the constraint Create() always fails and Available() returns false.
//
// The engine calls back into Go whenever the emulated program reads the
// joypad. The callback is given an opaque context pointer that the engine
// holds for its whole lifetime. Go memory cannot be used for this because
// the engine keeps the pointer between calls, so the context is a small block
// of C memory holding a cgo.Handle of the engine.InputGetter. The block is
// allocated when the InputGetter is registered and freed when it is replaced
// or by Destroy(), so its address never changes while the engine can see it.
package gambatte

// Sentinal errors.
const (
	NotAvailable = "gambatte: not available (build with the gambatte tag)"
	CreateError  = "gambatte: failed to create engine instance"
)
