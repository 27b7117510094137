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

// Package test bundles functions that remove common boilerplate from tests
// written for the standard go test harness.
//
// The Expect and Demand functions differ only in what happens when the test
// fails. Expect functions report the failure and allow the test to continue.
// Demand functions stop the test immediately. Demand functions are useful when
// later parts of a test depend on the value being correct.
//
// ExpectSuccess() and ExpectFailure() interpret the value according to its
// type. A bool is successful when it is true and an error is successful when
// it is nil. It is worth noting that an untyped nil is considered a success.
// This is because of how errors usually work (nil to indicate no error).
//
// The writer types implement io.Writer and are used to capture output for
// comparison. CompareWriter keeps everything, RingWriter keeps only the most
// recent output and CappedWriter keeps only the earliest output.
package test
