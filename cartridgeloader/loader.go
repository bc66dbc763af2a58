// This file is part of GopherDMG.
//
// GopherDMG is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherDMG is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherDMG.  If not, see <https://www.gnu.org/licenses/>.

package cartridgeloader

import (
	"crypto/sha1"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gopherdmg/gopherdmg/curated"
	"github.com/gopherdmg/gopherdmg/logger"
)

// FileExtensions is the list of file extensions normally used for DMG
// cartridge files.
var FileExtensions = [...]string{".GB", ".DMG", ".BIN", ".ROM"}

// Error patterns returned by Load().
const (
	LoadError      = "cartridgeloader: %v"
	EmptyFile      = "cartridgeloader: %s is empty"
	UnexpectedHash = "cartridgeloader: unexpected hash value (%s)"
)

// Loader is used to load cartridge data from a file.
type Loader struct {
	// filename of cartridge to load
	Filename string

	// expected hash of the loaded cartridge. empty string indicates that the
	// hash is unknown and need not be validated. after a successful load the
	// value will be the hash of the loaded data
	Hash string

	// the loaded data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: filename,
	}
}

func (cl Loader) String() string {
	if cl.HasLoaded() {
		return fmt.Sprintf("%s (%d bytes, sha1 %s)", cl.ShortName(), len(cl.Data), cl.Hash)
	}
	return cl.ShortName()
}

// ShortName returns the filename without any path or extension.
func (cl Loader) ShortName() string {
	base := filepath.Base(cl.Filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// HasExtension returns true if the filename has one of the extensions in
// FileExtensions. The comparison is not case sensitive.
func (cl Loader) HasExtension() bool {
	ext := strings.ToUpper(filepath.Ext(cl.Filename))
	for _, e := range FileExtensions {
		if e == ext {
			return true
		}
	}
	return false
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

// Load the cartridge data. Calling Load() after a successful load does
// nothing.
func (cl *Loader) Load() error {
	if cl.HasLoaded() {
		return nil
	}

	data, err := os.ReadFile(cl.Filename)
	if err != nil {
		return curated.Errorf(LoadError, err)
	}
	if len(data) == 0 {
		return curated.Errorf(EmptyFile, cl.Filename)
	}

	hash := fmt.Sprintf("%x", sha1.Sum(data))
	if cl.Hash != "" && cl.Hash != hash {
		return curated.Errorf(UnexpectedHash, hash)
	}

	cl.Data = data
	cl.Hash = hash

	logger.Logf(logger.Allow, "cartridgeloader", "loaded %s", cl)

	return nil
}
