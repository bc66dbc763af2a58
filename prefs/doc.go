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

// Package prefs holds preference values that can be saved to and loaded from
// disk. The Bool, Int and String types are safe to use from more than one
// goroutine.
//
// Preference values are registered with a Disk instance, along with the key
// that identifies the value in the preferences file. For example:
//
//	var booted prefs.Bool
//	dsk, _ := prefs.NewDisk(pth)
//	dsk.Add("hardware.booted", &booted)
//	dsk.Load()
//
// The file is plain text with one "key :: value" entry per line. Entries in
// the file that are not registered with the Disk are preserved when the file
// is saved.
//
// Preferences can also be set on the command line with a string of the form
// "key::value; key::value". See PushCommandLineStack(). Values on the command
// line stack take priority over values loaded from disk.
package prefs
