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

// Package display connects the stepping loop with an optional screen. The
// stepping loop must never wait for the screen, so frame notifications are
// posted to a channel with room for a single pending notification. If a
// notification is already pending the new one is dropped.
//
// The Notifier implements the driver.FrameNotifier interface.
package display
