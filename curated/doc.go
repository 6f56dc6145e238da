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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error. The pattern is kept with the error
// and is what identifies it.
//
//	const RunForError = "driver: run_for returned status %d at frame %d"
//
//	e := curated.Errorf(RunForError, status, frame)
//
//	if curated.Is(e, RunForError) {
//		fmt.Println("engine failure")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	f := curated.Errorf("conversion: %v", e)
//
//	curated.Has(f, RunForError)   // true
//	curated.Is(f, RunForError)    // false
//
// The IsAny() function answers whether the error was created by
// curated.Errorf(). Put another way, it returns true if the error is an
// expected failure of the converter and false if it is something unexpected.
//
// The Error() function implementation ensures that the error chain does not
// contain duplicate adjacent parts. This means packages can wrap errors with
// their own prefix without worrying about whether a callee has already added
// the same prefix:
//
//	movie: movie: missing member
//
// is printed as
//
//	movie: missing member
package curated
