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

//go:build statsview

package statsview

import (
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"

	"github.com/gbiconv/bk2gbi/logger"
)

var mgr *statsview.ViewManager

// Launch a new goroutine running the statsview.
func Launch() {
	if mgr != nil {
		return
	}

	viewer.SetConfiguration(viewer.WithAddr(Address))
	mgr = statsview.New()
	go mgr.Start()

	logger.Logf("statsview", "stats server available at %s%s", Address, url)
}

// Stop the statsview server if it has been launched.
func Stop() {
	if mgr == nil {
		return
	}
	mgr.Stop()
	mgr = nil
}

// Available returns true if a statsview is available to launch.
func Available() bool {
	return true
}
