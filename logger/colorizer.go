// This file is part of jems.
//
// jems is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// jems is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with jems.  If not, see <https://www.gnu.org/licenses/>.

package logger

import (
	"io"
	"strings"
)

const (
	penDimRed = "\033[2;31m"
	penBold   = "\033[1m"
	penNormal = "\033[0m"
)

// Colorizer applies basic coloring rules to logging output. The tag of each
// entry is emboldened. Entries tagged with one of the alert tags are written
// in dim red.
type Colorizer struct {
	out    io.Writer
	alerts []string
}

// NewColorizer is the preferred method of initialisation for the Colorizer
// type. Entries with a tag in the alerts list are highlighted.
func NewColorizer(out io.Writer, alerts ...string) Colorizer {
	return Colorizer{out: out, alerts: alerts}
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (n int, err error) {
	for _, s := range strings.SplitAfter(string(p), "\n") {
		if len(s) == 0 {
			continue
		}

		var m int
		m, err = io.WriteString(c.out, c.colorize(s))
		n += m
		if err != nil {
			return n, err
		}
	}

	// report the length of the uncolored input so that callers checking for
	// short writes are not confused
	return len(p), nil
}

func (c Colorizer) colorize(s string) string {
	tag, detail, ok := strings.Cut(s, ": ")
	if !ok {
		return s
	}

	for _, a := range c.alerts {
		if tag == a {
			return penBold + tag + penNormal + ": " + penDimRed + strings.TrimSuffix(detail, "\n") + penNormal + "\n"
		}
	}

	return penBold + tag + penNormal + ": " + detail
}
