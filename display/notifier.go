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

package display

import "sync/atomic"

// Notifier posts frame ready notifications.
type Notifier struct {
	ch chan struct{}

	posted  atomic.Int64
	dropped atomic.Int64
}

// NewNotifier is the preferred method of initialisation for the Notifier
// type.
func NewNotifier() *Notifier {
	return &Notifier{
		ch: make(chan struct{}, 1),
	}
}

// FrameReady implements the driver.FrameNotifier interface. It never blocks.
func (n *Notifier) FrameReady() {
	select {
	case n.ch <- struct{}{}:
		n.posted.Add(1)
	default:
		n.dropped.Add(1)
	}
}

// C returns the channel that notifications arrive on. The channel is closed
// by Close().
func (n *Notifier) C() <-chan struct{} {
	return n.ch
}

// Close the notification channel. FrameReady() must not be called
// afterwards.
func (n *Notifier) Close() {
	close(n.ch)
}

// Counts returns the number of notifications posted and dropped.
func (n *Notifier) Counts() (posted int, dropped int) {
	return int(n.posted.Load()), int(n.dropped.Load())
}
