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

package version

import (
	"strings"
	"testing"

	"github.com/nucco/jems/test"
)

func TestDescribe(t *testing.T) {
	v, r := describe("v0.1.0", buildInfo{vcs: true, revision: "abc"})
	test.ExpectEquality(t, v, "v0.1.0")
	test.ExpectEquality(t, r, "abc")

	v, r = describe("", buildInfo{vcs: true, revision: "abc", modified: true})
	test.ExpectEquality(t, v, "unreleased")
	test.ExpectEquality(t, r, "abc+dirty")

	v, r = describe("", buildInfo{})
	test.ExpectEquality(t, v, "local")
	test.ExpectEquality(t, r, "no revision information")
}

func TestString(t *testing.T) {
	test.ExpectEquality(t, strings.HasPrefix(String(), ApplicationName+" "), true)
}
