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

package gbi

import (
	"bufio"
	"fmt"
	"io"

	"github.com/gbiconv/bk2gbi/curated"
)

// WriteError is returned by Write() when the script cannot be written.
const WriteError = "gbi: %v"

// Write the Events as a GBI script.
func Write(w io.Writer, events []Event) error {
	b := bufio.NewWriter(w)
	for _, e := range events {
		if _, err := fmt.Fprintf(b, "%08X %04X\n", e.Time, e.Input.Bits()); err != nil {
			return curated.Errorf(WriteError, err)
		}
	}
	if err := b.Flush(); err != nil {
		return curated.Errorf(WriteError, err)
	}
	return nil
}
