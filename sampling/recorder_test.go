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

package sampling_test

import (
	"testing"

	"github.com/gbiconv/bk2gbi/engine"
	"github.com/gbiconv/bk2gbi/input"
	"github.com/gbiconv/bk2gbi/sampling"
	"github.com/gbiconv/bk2gbi/test"
)

// the Recorder must satisfy the engine.InputGetter interface
var _ engine.InputGetter = (*sampling.Recorder)(nil)

func TestRecorder(t *testing.T) {
	rec := sampling.NewRecorder()
	test.ExpectEquality(t, rec.Len(), 0)

	// reads before any input has been set return neutral
	test.ExpectEquality(t, rec.GetInput(10), input.Neutral)

	rec.SetInput(input.A)
	rec.SetBase(1000)
	test.ExpectEquality(t, rec.GetInput(5), input.A)
	test.ExpectEquality(t, rec.GetInput(5), input.A)

	rec.SetInput(input.B.With(input.Up))
	rec.SetBase(2000)
	test.ExpectEquality(t, rec.GetInput(0), input.B|input.Up)

	s := rec.Samples()
	test.DemandEquality(t, len(s), 4)
	test.ExpectEquality(t, s[0], sampling.Sample{Index: 10, Input: input.Neutral})
	test.ExpectEquality(t, s[1], sampling.Sample{Index: 1005, Input: input.A})
	test.ExpectEquality(t, s[2], sampling.Sample{Index: 1005, Input: input.A})
	test.ExpectEquality(t, s[3], sampling.Sample{Index: 2000, Input: input.B | input.Up})
	test.ExpectEquality(t, s[3].String(), "2000: Up+B")
}

func TestSamplesIsCopy(t *testing.T) {
	rec := sampling.NewRecorder()
	rec.SetInput(input.Start)
	rec.GetInput(1)

	s := rec.Samples()
	s[0].Input = input.Select

	test.ExpectEquality(t, rec.Samples()[0].Input, input.Start)
}
