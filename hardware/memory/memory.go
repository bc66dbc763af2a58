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
	"github.com/gopherdmg/gopherdmg/hardware/memory/bus"
	"github.com/gopherdmg/gopherdmg/hardware/memory/cartridge"
	"github.com/gopherdmg/gopherdmg/hardware/memory/memorymap"
	"github.com/gopherdmg/gopherdmg/logger"
)

// InitialDivider is the value of the divider immediately after the boot
// sequence.
const InitialDivider = uint16(0x1800)

// register values immediately after the boot sequence. registers not listed
// are zero
var bootedRegisters = map[uint16]uint8{
	addresses.P1:   0xff,
	addresses.SC:   0x7e,
	addresses.TAC:  0xf8,
	addresses.IF:   0xe1,
	addresses.LCDC: 0x91,
	addresses.STAT: 0x81,
	addresses.LY:   0x00,
	addresses.DMA:  0xff,
}

// the last work RAM address that is mirrored in the echo area
const memtopMirrored = memorymap.MemtopEcho - memorymap.EchoOffset

// Memory is the address bus of the DMG. It implements the CPUBus, DisplayBus,
// TimerBus and DebuggerBus interfaces.
type Memory struct {
	cart cartridge.Mapper

	// the cartridge areas of the array are never read by the CPU
	mem [0x10000]uint8

	// the divider is 16bits but only the upper 8bits are visible in the DIV
	// register. the lower byte of DIV in the memory array is never used
	div uint16

	// the key state is composed into the P1 register on read. can be nil
	keys bus.KeyState
}

// NewMemory is the preferred method of initialisation for the Memory type.
//
// If booted is true the registers are initialised with the values left by
// the boot sequence. Otherwise, the logo is placed in the memory array where
// the boot sequence would expect to find it.
func NewMemory(rom []uint8, booted bool) (*Memory, error) {
	cart, err := cartridge.NewMapper(rom)
	if err != nil {
		return nil, curated.Errorf("memory: %v", err)
	}

	mem := &Memory{
		cart: cart,
		div:  InitialDivider,
	}

	if booted {
		for a, v := range bootedRegisters {
			mem.mem[a] = v
		}
		logger.Log(logger.Allow, "memory", "registers initialised to post-boot state")
	} else {
		copy(mem.mem[cartridge.LogoAddress:], cartridge.Logo[:])
		logger.Log(logger.Allow, "memory", "logo seeded for boot sequence")
	}

	return mem, nil
}

// Cartridge returns the cartridge mapper.
func (mem *Memory) Cartridge() cartridge.Mapper {
	return mem.cart
}

// AttachKeys connects the input device to the P1 register. A nil value
// disconnects the input device and all keys will read as released.
func (mem *Memory) AttachKeys(keys bus.KeyState) {
	mem.keys = keys
}

func isCartRAM(address uint16) bool {
	return address >= memorymap.OriginCartRAM && address <= memorymap.MemtopCartRAM
}

// Read implements the bus.CPUBus interface.
func (mem *Memory) Read(address uint16) uint8 {
	switch {
	case address <= memorymap.MemtopROM:
		return mem.cart.ReadROM(address)
	case isCartRAM(address):
		return mem.cart.ReadRAM(address)
	case address == addresses.P1:
		return mem.readP1()
	case address == addresses.DIV:
		return uint8(mem.div >> 8)
	}

	if mem.blocked(address) {
		return 0xff
	}

	return mem.mem[address]
}

// Write implements the bus.CPUBus interface.
func (mem *Memory) Write(address uint16, data uint8) {
	switch {
	case address <= memorymap.MemtopROM:
		mem.cart.WriteROM(address, data)
		return
	case isCartRAM(address):
		mem.cart.WriteRAM(address, data)
		return
	case address == addresses.P1:
		// only the selection bits are writable
		mem.mem[address] = mem.mem[address]&^0x30 | data&0x30
		return
	case address == addresses.DIV:
		mem.div = 0
		return
	case address == addresses.DMA:
		mem.dma(data)
		return
	case address == addresses.LCDC:
		if data&0x80 == 0x00 {
			mem.mem[addresses.STAT] &^= 0x03
		}
	}

	mem.mem[address] = data

	switch {
	case address >= memorymap.OriginWRAM && address <= memtopMirrored:
		mem.mem[address+memorymap.EchoOffset] = data
	case address >= memorymap.OriginEcho && address <= memorymap.MemtopEcho:
		mem.mem[address-memorymap.EchoOffset] = data
	}
}

// ReadWord implements the bus.CPUBus interface.
func (mem *Memory) ReadWord(address uint16) uint16 {
	lo := mem.Read(address)
	hi := mem.Read(address + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// WriteWord implements the bus.CPUBus interface.
func (mem *Memory) WriteWord(address uint16, data uint16) {
	mem.Write(address, uint8(data))
	mem.Write(address+1, uint8(data>>8))
}

// UncheckedRead implements the bus.DisplayBus interface.
func (mem *Memory) UncheckedRead(address uint16) uint8 {
	return mem.mem[address]
}

func (mem *Memory) readP1() uint8 {
	v := mem.mem[addresses.P1] & 0xf0

	// neither group selected
	if v&0x30 == 0x30 || mem.keys == nil {
		return v | 0x0f
	}

	if v&0x20 == 0x00 {
		return v | mem.keys.Buttons()&0x0f
	}
	return v | mem.keys.Directions()&0x0f
}

// whether the CPU can read the address in the current display mode
func (mem *Memory) blocked(address uint16) bool {
	switch mem.mem[addresses.STAT] & 0x03 {
	case 2:
		return memorymap.IsArea(address, memorymap.OAM)
	case 3:
		return memorymap.IsArea(address, memorymap.OAM) || memorymap.IsArea(address, memorymap.VRAM)
	}
	return false
}
