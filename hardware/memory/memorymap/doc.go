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

// Package memorymap describes the areas of the 16bit address space. The
// origin and memtop of each area are exported constants and can be used for
// range checks. MapAddress() identifies the area an address falls within and
// resolves echo addresses to the work RAM address they mirror.
//
//	0x0000 - 0x3fff    ROM bank 0          (cartridge)
//	0x4000 - 0x7fff    ROM bank N          (cartridge)
//	0x8000 - 0x9fff    VRAM
//	0xa000 - 0xbfff    cartridge RAM       (cartridge)
//	0xc000 - 0xdfff    work RAM
//	0xe000 - 0xfdff    echo of 0xc000 - 0xddff
//	0xfe00 - 0xfe9f    OAM
//	0xfea0 - 0xfeff    unusable
//	0xff00 - 0xff7f    I/O registers
//	0xff80 - 0xfffe    high RAM
//	0xffff             interrupt enable
package memorymap
