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
	"github.com/gopherdmg/gopherdmg/curated"
	"github.com/gopherdmg/gopherdmg/hardware/memory/addresses"
	"github.com/gopherdmg/gopherdmg/hardware/memory/memorymap"
)

// PokeROM is returned by Poke() for addresses in the cartridge ROM window.
const PokeROM = "memory: cannot poke cartridge rom (%#04x)"

// Peek implements the bus.DebuggerBus interface. The value returned is the
// value the CPU would see but without the side effects of a read and
// without access blocking.
func (mem *Memory) Peek(address uint16) (uint8, error) {
	switch address {
	case addresses.P1:
		return mem.readP1(), nil
	case addresses.DIV:
		return uint8(mem.div >> 8), nil
	}
	return mem.source(address), nil
}

// Poke implements the bus.DebuggerBus interface. The value is stored without
// any side effects. Cartridge RAM is written through the cartridge mapper
// and so a poke to disabled RAM has no effect.
func (mem *Memory) Poke(address uint16, value uint8) error {
	switch {
	case address <= memorymap.MemtopROM:
		return curated.Errorf(PokeROM, address)
	case isCartRAM(address):
		mem.cart.WriteRAM(address, value)
		return nil
	case address == addresses.DIV:
		mem.div = uint16(value) << 8
		return nil
	}
	mem.mem[address] = value
	return nil
}
