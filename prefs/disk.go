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

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/gopherdmg/gopherdmg/curated"
	"github.com/gopherdmg/gopherdmg/logger"
)

// DefaultPrefsFile is the name of the preferences file used by all packages.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is the first line of every preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// the separator between the key and the value in the preferences file
const separator = " :: "

// preference keys that are no longer used. they are removed from the file
// when it is saved
var defunct = []string{
	"monitor.history",
}

// Error patterns returned by the Disk type.
const (
	DuplicateKey  = "prefs: key already registered (%s)"
	InvalidFile   = "prefs: %s is not a preferences file"
	InvalidEntry  = "prefs: invalid entry on line %d"
	DiskIOError   = "prefs: %v"
	SetValueError = "prefs: %s: %v"
)

// Disk represents the preferences file and the values registered with it.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type. The
// file does not need to exist.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

func (dsk *Disk) String() string {
	keys := dsk.keys()
	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, separator, dsk.entries[k]))
	}
	return s.String()
}

func (dsk *Disk) keys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Add a preference value to the disk.
func (dsk *Disk) Add(key string, p pref) error {
	key = strings.TrimSpace(key)
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	dsk.entries[key] = p
	return nil
}

// read the preferences file. a missing file is the same as an empty file
func (dsk *Disk) read() (map[string]string, error) {
	entries := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return entries, nil
		}
		return nil, curated.Errorf(DiskIOError, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	if !scanner.Scan() {
		return entries, scanner.Err()
	}
	if scanner.Text() != WarningBoilerPlate {
		return nil, curated.Errorf(InvalidFile, dsk.path)
	}

	ln := 1
	for scanner.Scan() {
		ln++
		if strings.TrimSpace(scanner.Text()) == "" {
			continue
		}
		k, v, ok := strings.Cut(scanner.Text(), separator)
		if !ok {
			return nil, curated.Errorf(InvalidEntry, ln)
		}
		entries[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}

	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf(DiskIOError, err)
	}

	return entries, nil
}

// Save current preference values to disk. Entries already in the file that
// have not been added to this Disk instance are preserved.
func (dsk *Disk) Save() error {
	entries, err := dsk.read()
	if err != nil {
		return err
	}

	for k, p := range dsk.entries {
		entries[k] = p.String()
	}
	for _, k := range defunct {
		delete(entries, k)
	}

	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	s.WriteString(WarningBoilerPlate)
	s.WriteString("\n")
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, separator, entries[k]))
	}

	if err := os.WriteFile(dsk.path, []byte(s.String()), 0600); err != nil {
		return curated.Errorf(DiskIOError, err)
	}

	logger.Logf(logger.Allow, "prefs", "saved to %s", dsk.path)

	return nil
}

// Load preference values from disk. Values found on the command line stack
// take priority over values in the file.
func (dsk *Disk) Load() error {
	entries, err := dsk.read()
	if err != nil {
		return err
	}

	for _, k := range dsk.keys() {
		v, ok := entries[k]
		if clOk, clv := GetCommandLinePref(k); clOk {
			v, ok = clv, true
		}
		if !ok {
			continue
		}
		if err := dsk.entries[k].Set(v); err != nil {
			return curated.Errorf(SetValueError, k, err)
		}
	}

	return nil
}

// Reset all registered values to their zero value.
func (dsk *Disk) Reset() error {
	for _, k := range dsk.keys() {
		if err := dsk.entries[k].Reset(); err != nil {
			return curated.Errorf(SetValueError, k, err)
		}
	}
	return nil
}
