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

package driver_test

import (
	"testing"

	"github.com/gbiconv/bk2gbi/curated"
	"github.com/gbiconv/bk2gbi/driver"
	"github.com/gbiconv/bk2gbi/engine"
	"github.com/gbiconv/bk2gbi/engine/enginetest"
	"github.com/gbiconv/bk2gbi/input"
	"github.com/gbiconv/bk2gbi/sampling"
	"github.com/gbiconv/bk2gbi/test"
)

type counter int

func (c *counter) FrameReady() {
	*c++
}

func TestCadenceFromSettings(t *testing.T) {
	test.ExpectEquality(t, driver.CadenceFromSettings(false), driver.Legacy)
	test.ExpectEquality(t, driver.CadenceFromSettings(true), driver.Exact)
	test.ExpectEquality(t, driver.Exact.String(), "exact")
}

func TestRegistersRecorder(t *testing.T) {
	eng := enginetest.New()
	rec := sampling.NewRecorder()
	_ = driver.New(eng, rec, driver.Legacy)
	test.ExpectEquality[engine.InputGetter](t, eng.Getter, rec)
}

func TestLegacyCadence(t *testing.T) {
	eng := enginetest.New(20000, 35112, 30000)
	eng.Overshoot = 4
	drv := driver.New(eng, sampling.NewRecorder(), driver.Legacy)

	var expected uint64
	for i := 0; i < 30; i++ {
		test.DemandSuccess(t, drv.Step(input.Neutral))
		test.ExpectEquality(t, drv.Overflow(), uint32(0), i)

		switch i % 3 {
		case 0:
			expected += 20000
		case 1:
			expected += 35116
		case 2:
			expected += 30000
		}
		test.ExpectEquality(t, drv.Clock(), expected, i)
	}

	// exactly one engine run per logical frame
	test.ExpectEquality(t, drv.Frames(), 30)
	test.ExpectEquality(t, drv.Runs(), 30)
	test.ExpectEquality(t, eng.Calls, 30)
}

func TestExactCadence(t *testing.T) {
	eng := enginetest.New(20000, 40000, 12345, 35112, 7)
	eng.Overshoot = 3
	drv := driver.New(eng, sampling.NewRecorder(), driver.Exact)

	const frames = 1000
	for n := 1; n <= frames; n++ {
		test.DemandSuccess(t, drv.Step(input.A))

		overflow := drv.Overflow()
		test.ExpectSuccess(t, overflow < driver.SamplesPerFrame, n)

		// the clock is within one frame of the nominal sample count
		nominal := uint64(n) * uint64(driver.SamplesPerFrame)
		test.ExpectEquality(t, drv.Clock(), nominal+uint64(overflow), n)
	}

	test.ExpectEquality(t, drv.Frames(), frames)
	test.ExpectSuccess(t, drv.Runs() > frames)
}

func TestExactCarriesOverflow(t *testing.T) {
	eng := enginetest.New()
	eng.Overshoot = 10
	drv := driver.New(eng, sampling.NewRecorder(), driver.Exact)

	// the engine always produces ten samples more than requested so the
	// overflow is carried and the request shrinks by the same amount
	for i := 0; i < 5; i++ {
		test.DemandSuccess(t, drv.Step(input.Neutral))
		test.ExpectEquality(t, drv.Overflow(), uint32(10))
	}
	test.ExpectEquality(t, drv.Clock(), 5*uint64(driver.SamplesPerFrame)+10)
}

func TestRecorderBase(t *testing.T) {
	eng := enginetest.New(20000)
	eng.Reads = []uint32{0, 100}
	rec := sampling.NewRecorder()
	drv := driver.New(eng, rec, driver.Exact)

	test.DemandSuccess(t, drv.Step(input.A))
	test.DemandSuccess(t, drv.Step(input.B))

	expected := []sampling.Sample{
		{Index: 0, Input: input.A},
		{Index: 100, Input: input.A},
		{Index: 20000, Input: input.A},
		{Index: 20100, Input: input.A},
		{Index: 35112, Input: input.B},
		{Index: 35212, Input: input.B},
		{Index: 55112, Input: input.B},
		{Index: 55212, Input: input.B},
	}

	s := rec.Samples()
	test.DemandEquality(t, len(s), len(expected))
	for i := range expected {
		test.ExpectEquality(t, s[i], expected[i], i)
	}
}

func TestRunFailure(t *testing.T) {
	eng := enginetest.New()
	eng.RunStatus = -2
	eng.FailAt = 3
	drv := driver.New(eng, sampling.NewRecorder(), driver.Legacy)

	for i := 0; i < 3; i++ {
		test.DemandSuccess(t, drv.Step(input.Neutral))
	}

	err := drv.Step(input.Neutral)
	test.ExpectSuccess(t, curated.Is(err, driver.RunError))
	test.ExpectEquality(t, drv.Frames(), 3)

	// the error is sticky and the engine is not touched again
	calls := eng.Calls
	err = drv.Step(input.Neutral)
	test.ExpectSuccess(t, curated.Is(err, driver.RunError))
	test.ExpectEquality(t, eng.Calls, calls)
	test.ExpectSuccess(t, curated.Is(drv.Err(), driver.RunError))
}

func TestNoProgress(t *testing.T) {
	eng := enginetest.New(0)
	drv := driver.New(eng, sampling.NewRecorder(), driver.Exact)
	err := drv.Step(input.Neutral)
	test.ExpectSuccess(t, curated.Is(err, driver.NoProgress))
}

func TestLegacyZeroSampleRun(t *testing.T) {
	eng := enginetest.New(35112, 0, 35112)
	drv := driver.New(eng, sampling.NewRecorder(), driver.Legacy)

	// the boundary reported by the engine is final even when nothing was
	// produced
	for i := 0; i < 3; i++ {
		test.DemandSuccess(t, drv.Step(input.Neutral), i)
	}
	test.ExpectEquality(t, drv.Clock(), uint64(2*driver.SamplesPerFrame))
	test.ExpectEquality(t, drv.Frames(), 3)
	test.ExpectEquality(t, drv.Runs(), 3)
	test.ExpectSuccess(t, drv.Err() == nil)
}

func TestNotifier(t *testing.T) {
	eng := enginetest.New(20000)
	drv := driver.New(eng, sampling.NewRecorder(), driver.Exact)

	var c counter
	drv.SetNotifier(&c)
	for i := 0; i < 4; i++ {
		test.DemandSuccess(t, drv.Step(input.Neutral))
	}
	test.ExpectEquality(t, int(c), 4)

	drv.SetNotifier(nil)
	test.DemandSuccess(t, drv.Step(input.Neutral))
	test.ExpectEquality(t, int(c), 4)
}

func TestDestroy(t *testing.T) {
	eng := enginetest.New()
	drv := driver.New(eng, sampling.NewRecorder(), driver.Legacy)
	drv.Destroy()
	test.ExpectSuccess(t, eng.Destroyed)
}
