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

// Package cartridgeloader reads cartridge data from a file. The SHA1 hash of
// the data is recorded and can be checked against an expected value.
//
// A loader is created with NewLoader() and then Load() is called:
//
//	cl := cartridgeloader.NewLoader("tetris.gb")
//	if err := cl.Load(); err != nil {
//		return err
//	}
//	mem, err := memory.NewMemory(cl.Data, true)
//
// Files are loaded regardless of their extension. The extensions in
// FileExtensions are used only by the monitor when listing files.
package cartridgeloader
