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

package sdlscreen_test

import (
	"testing"

	"github.com/gbiconv/bk2gbi/curated"
	"github.com/gbiconv/bk2gbi/display/sdlscreen"
	"github.com/gbiconv/bk2gbi/driver"
	"github.com/gbiconv/bk2gbi/test"
)

var _ driver.FrameNotifier = (*sdlscreen.Screen)(nil)

// opening a window is not possible in most test environments so only the
// argument checking is tested
func TestBadScale(t *testing.T) {
	for _, s := range []int{0, -1, 11} {
		scr, err := sdlscreen.Start(s)
		test.ExpectSuccess(t, curated.Is(err, sdlscreen.BadScale), s)
		test.ExpectSuccess(t, scr == nil, s)
	}
}
