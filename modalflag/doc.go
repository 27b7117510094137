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

// Package modalflag wraps the flag package from the standard library. It adds
// program modes, each with its own set of flags.
//
// Arguments are given to the Modes type with NewArgs() and parsed one layer at
// a time with Parse(). Flags are added before each call to Parse() and are
// only valid for that layer:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("run", "version")
//
//	switch r, err := md.Parse(); r {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		limit := md.AddInt("limit", 0, "maximum number of instructions")
//		origin := md.AddAddress("origin", 0x0400, "load address of the image")
//		...
//	}
//
// Mode names are case insensitive and are reported in upper case. The first
// sub-mode in the list is the default and is selected when the next argument
// is not one of the sub-modes.
//
// The -help flag is handled automatically. It prints the flags and sub-modes
// for the current layer to the Output writer.
package modalflag
