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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectSuccess and ExpectFailure functions test for failure and success
// under generic conditions. A bool is a success when it is true and an error
// is a success when it is nil. It is worth pointing out that an untyped nil is
// also considered a success. This is because of how errors usually work (nil to
// indicate no error) and we need to interpret nil in this way.
//
// ExpectEquality and ExpectInequality compare values of the same comparable
// type. The Demand* variants stop the test immediately rather than allowing it
// to continue after reporting.
//
// The Writer type implements the io.Writer interface and should be used to
// capture output. The Writer.Compare() function can then be used to test for
// equality.
package test
