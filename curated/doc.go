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

// Package curated is a helper package for the plain Go language error type.
// Curated errors are created with the Errorf() function, which looks like the
// Errorf() function in the fmt package. The pattern given to Errorf() is
// remembered and can be tested for with the Is() and Has() functions:
//
//	e := curated.Errorf("cpu: bad byte count (%d)", 3)
//
//	if curated.Is(e, "cpu: bad byte count (%d)") {
//		fmt.Println("true")
//	}
//
// Has() is similar but looks for the pattern anywhere in the chain of wrapped
// curated errors.
//
// The Error() function de-duplicates adjacent identical parts of the message.
// Parts are separated by the sub-string ": ", so wrapping an error with the
// same prefix more than once does not result in a message like:
//
//	cpu: cpu: bad byte count (3)
//
// Sentinal patterns should be stored as const strings, suitably named and
// commented, by the package that creates them.
package curated
