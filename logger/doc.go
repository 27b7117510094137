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

// Package logger is the central log repository for jems. Entries are made
// with the Log() and Logf() functions and are tagged to indicate where in the
// emulation the entry came from. For example, the CPU logs illegal opcodes
// with the tag "CPU".
//
// Entries are collapsed if the same tag and detail is logged more than once in
// succession. The number of entries is capped and old entries are discarded as
// new ones are added.
//
// A Permission must be given with every log request. Use Allow if the entry
// should always be logged.
//
// Separate instances of Logger can be created with NewLogger(). This is
// useful in tests that need to inspect exactly what was logged.
package logger
