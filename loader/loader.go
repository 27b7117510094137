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

package loader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/pkg/errors"
)

// Memory is the interface to the memory an image is loaded into.
type Memory interface {
	Load(origin uint16, data []byte) error
}

// Loader specifies the image to load and where to load it.
type Loader struct {
	// filename or URL of the image
	Filename string

	// load address for raw images. after loading a prg image it will be the
	// address taken from the image
	Origin uint16

	// expected SHA1 hash of the image file. the empty string indicates that
	// the hash need not be validated. after loading it is the hash of the
	// loaded file
	Hash string

	// the loaded image, excluding any header
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string, origin uint16) Loader {
	return Loader{
		Filename: filename,
		Origin:   origin,
	}
}

// ShortName returns the filename without the path or extension.
func (ld Loader) ShortName() string {
	name := path.Base(ld.Filename)
	return strings.TrimSuffix(name, path.Ext(name))
}

// IsPRG returns true if the image has the ".prg" extension.
func (ld Loader) IsPRG() bool {
	return strings.EqualFold(path.Ext(ld.Filename), ".prg")
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

// Load reads the image and copies it into memory. The file is only read on
// the first call. Subsequent calls copy the previously read data.
func (ld *Loader) Load(mem Memory) error {
	if !ld.HasLoaded() {
		if err := ld.read(); err != nil {
			return err
		}
	}

	if err := mem.Load(ld.Origin, ld.Data); err != nil {
		return errors.Wrapf(err, "loader: %s", ld.ShortName())
	}

	return nil
}

func (ld *Loader) read() error {
	var data []byte
	var err error

	// anything that isn't an http or file URL is treated as a plain filename
	u, perr := url.Parse(ld.Filename)
	switch {
	case perr == nil && (u.Scheme == "http" || u.Scheme == "https"):
		data, err = fetch(ld.Filename)
	case perr == nil && u.Scheme == "file":
		data, err = os.ReadFile(u.Path)
	default:
		data, err = os.ReadFile(ld.Filename)
	}
	if err != nil {
		return errors.Wrapf(err, "loader")
	}

	hash := fmt.Sprintf("%x", sha1.Sum(data))
	if ld.Hash != "" && ld.Hash != hash {
		return errors.Errorf("loader: unexpected hash value for %s", ld.ShortName())
	}
	ld.Hash = hash

	if ld.IsPRG() {
		if len(data) < 2 {
			return errors.Errorf("loader: prg file %s has no load address", ld.ShortName())
		}
		ld.Origin = uint16(data[1])<<8 | uint16(data[0])
		data = data[2:]
	}

	if len(data) == 0 {
		return errors.Errorf("loader: %s is empty", ld.ShortName())
	}

	ld.Data = data

	return nil
}

func fetch(url string) ([]byte, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("%s: %s", url, resp.Status)
	}

	return io.ReadAll(resp.Body)
}
