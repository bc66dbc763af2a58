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

package memory

import (
	"fmt"

	"github.com/gopherdmg/gopherdmg/hardware/memory/bus"
	"github.com/gopherdmg/gopherdmg/hardware/memory/memorymap"
)

// NumOAMEntries is the number of sprite entries in OAM.
const NumOAMEntries = 40

// OAMSearch implements the bus.DisplayBus interface. Panics if the index is
// not a valid OAM entry.
func (mem *Memory) OAMSearch(index uint8) [4]uint8 {
	if index >= NumOAMEntries {
		panic(fmt.Sprintf("memory: OAM entry out of range (%d)", index))
	}

	var e [4]uint8
	a := memorymap.OriginOAM + uint16(index)*4
	for i := range e {
		e[i] = mem.mem[a+uint16(i)]
	}
	return e
}

// ReadBGTile implements the bus.DisplayBus interface.
func (mem *Memory) ReadBGTile(mapAddress uint16, addressing bus.TileAddressing) [8]uint16 {
	idx := mem.mem[mapAddress]

	switch addressing {
	case bus.TileAddressingUnsigned:
		return mem.ReadTile(uint16(bus.TileAddressingUnsigned) + uint16(idx)*16)
	case bus.TileAddressingSigned:
		return mem.ReadTile(uint16(0x9000 + int(int8(idx))*16))
	}

	panic(fmt.Sprintf("memory: unknown tile addressing (%#04x)", uint16(addressing)))
}

// ReadTile implements the bus.DisplayBus interface.
func (mem *Memory) ReadTile(address uint16) [8]uint16 {
	var tile [8]uint16
	for i := range tile {
		lo := mem.mem[address+uint16(i*2)]
		hi := mem.mem[address+uint16(i*2+1)]
		tile[i] = decodeRow(lo, hi)
	}
	return tile
}

// decodeRow interleaves the bits of the low and high bytes of a tile row
func decodeRow(lo uint8, hi uint8) uint16 {
	var row uint16
	for j := 0; j < 8; j++ {
		px := uint16(lo>>j)&0x01 | uint16(hi>>j)&0x01<<1
		row |= px << (j * 2)
	}
	return row
}
