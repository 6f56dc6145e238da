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

//go:build !statsview

package statsview

import "github.com/gbiconv/bk2gbi/logger"

// Launch logs that the stats server is not available.
func Launch() {
	logger.Log("statsview", "not available (build with the statsview tag)")
}

// Stop does nothing.
func Stop() {
}

// Available returns true if a statsview is available to launch.
func Available() bool {
	return false
}
