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
	"github.com/gopherdmg/gopherdmg/hardware/memory/memorymap"
	"github.com/gopherdmg/gopherdmg/logger"
)

// number of bytes copied by a DMA transfer
const dmaLength = uint16(memorymap.MemtopOAM - memorymap.OriginOAM + 1)

// dma copies a page of memory into OAM. the transfer completes immediately
func (mem *Memory) dma(page uint8) {
	src := uint16(page) << 8

	if src >= memorymap.OriginEcho {
		logger.Logf(logger.Allow, "dma", "transfer from %#04x", src)
	}

	for i := uint16(0); i < dmaLength; i++ {
		mem.mem[memorymap.OriginOAM+i] = mem.source(src + i)
	}
}

// source returns the byte at the address without any of the side effects of
// Read(). the cartridge windows are still served by the cartridge
func (mem *Memory) source(address uint16) uint8 {
	switch {
	case address <= memorymap.MemtopROM:
		return mem.cart.ReadROM(address)
	case isCartRAM(address):
		return mem.cart.ReadRAM(address)
	}
	return mem.mem[address]
}
