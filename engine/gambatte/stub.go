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

//go:build !gambatte

package gambatte

import (
	"github.com/gbiconv/bk2gbi/curated"
	"github.com/gbiconv/bk2gbi/engine"
)

// Available returns true if the package has been built with libgambatte.
func Available() bool {
	return false
}

// Create always fails unless the package has been built with libgambatte.
func Create() (engine.Engine, error) {
	return nil, curated.Errorf(NotAvailable)
}
