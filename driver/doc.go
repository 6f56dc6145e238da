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

// Package driver advances the native engine by one logical frame per call to
// Step(). The engine does not run for a fixed number of samples: it stops
// early at the end of each of its own video frames and it may overshoot the
// request slightly. The Driver hides this behind a cadence policy.
//
// Under the Legacy cadence the first boundary the engine reports is taken as
// the end of the logical frame, whatever its length. Under the Exact cadence
// the driver keeps running the engine until at least SamplesPerFrame samples
// have been produced and carries any excess into the next logical frame, so
// that over many frames the sample clock advances by exactly SamplesPerFrame
// per frame.
//
// The Driver registers the sampling.Recorder with the engine when it is
// created and moves the Recorder's base to the sample clock before every
// call to RunFor().
package driver
