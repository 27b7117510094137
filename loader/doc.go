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

// Package loader reads program images and copies them into memory. An image
// can be a local file or a file served over HTTP. Local files can be named
// with a plain filename or with a file:// URL.
//
// Two image formats are supported and are selected by file extension. A file
// with the ".prg" extension begins with a two byte load address, low byte
// first, which overrides the Origin field of the Loader. Any other file is a
// raw image and is loaded at Origin.
package loader
