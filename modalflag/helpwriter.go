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

package modalflag

import (
	"fmt"
	"io"
	"strings"
)

// helpWriter is used to amend the default output from the flag package.
type helpWriter struct {
	buffer []byte
}

// Clear contents of output buffer.
func (hw *helpWriter) Clear() {
	hw.buffer = []byte{}
}

func (hw *helpWriter) Help(output io.Writer, banner string, argNames []string, subModes []string, additionalHelp string) {
	s := string(hw.buffer)
	helpLines := strings.Split(s, "\n")

	// output "no help available" message if there is no flag information, no
	// arguments and no sub-modes
	if s == "Usage:\n" && len(subModes) == 0 && len(argNames) == 0 {
		io.WriteString(output, "No help available")
		if banner != "" {
			io.WriteString(output, fmt.Sprintf(" for %s", banner))
		}
		io.WriteString(output, "\n")
		return
	}

	// the first line of the flag package output is "Usage:"
	usage := helpLines[0]
	if banner != "" {
		usage = fmt.Sprintf("%s for %s mode", strings.TrimSuffix(usage, ":"), banner)
		if len(argNames) == 0 {
			usage = fmt.Sprintf("%s:", usage)
		}
	}
	if len(argNames) > 0 {
		usage = fmt.Sprintf("%s [flags] %s", strings.TrimSuffix(usage, ":"), strings.Join(argNames, " "))
	}
	io.WriteString(output, usage)
	io.WriteString(output, "\n")

	// add help message produced by flag package
	if len(helpLines) > 1 {
		io.WriteString(output, strings.Join(helpLines[1:], "\n"))
	}

	// add sub-mode information
	if len(subModes) > 0 {
		// add an additional new line if we've already printed flag information
		if len(helpLines) > 2 {
			io.WriteString(output, "\n")
		}

		io.WriteString(output, fmt.Sprintf("  available sub-modes: %s\n", strings.Join(subModes, ", ")))
		io.WriteString(output, fmt.Sprintf("    default: %s\n", subModes[0]))
	}

	if additionalHelp != "" {
		io.WriteString(output, "\n")
		io.WriteString(output, additionalHelp)
		io.WriteString(output, "\n")
	}
}

// Write buffers all output.
func (hw *helpWriter) Write(p []byte) (n int, err error) {
	hw.buffer = append(hw.buffer, p...)
	return len(p), nil
}
