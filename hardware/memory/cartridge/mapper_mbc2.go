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

package cartridge

import "fmt"

// MBC2 has 512 half-bytes of RAM built into the controller. The RAM is
// mirrored throughout the RAM window and the upper nibble reads as ones.
//
// Both registers are in the range 0x0000 to 0x3fff and are distinguished by
// bit 8 of the address. When bit 8 is clear the write is to the RAM enable
// register. When it is set the write selects one of sixteen ROM banks.
type mbc2 struct {
	rom []uint8
	cartRAM

	bank uint8
}

const mbc2RAMSize = 512

func newMBC2(rom []uint8) *mbc2 {
	return &mbc2{
		rom:     rom,
		cartRAM: newCartRAM(mbc2RAMSize),
		bank:    1,
	}
}

// ID implements the Mapper interface.
func (m *mbc2) ID() string {
	return "MBC2"
}

// ReadROM implements the Mapper interface.
func (m *mbc2) ReadROM(address uint16) uint8 {
	if address < romBankSize {
		return romBank(m.rom, 0, address)
	}
	return romBank(m.rom, int(m.bank), address)
}

// WriteROM implements the Mapper interface.
func (m *mbc2) WriteROM(address uint16, data uint8) {
	if address >= 0x4000 {
		return
	}
	if address&0x0100 == 0 {
		m.enableRAM(data)
		return
	}
	m.bank = data & 0x0f
	if m.bank == 0 {
		m.bank = 1
	}
}

// ReadRAM implements the Mapper interface.
func (m *mbc2) ReadRAM(address uint16) uint8 {
	if !m.ramEnabled {
		return 0xff
	}
	return m.ram[address&(mbc2RAMSize-1)] | 0xf0
}

// WriteRAM implements the Mapper interface.
func (m *mbc2) WriteRAM(address uint16, data uint8) {
	if !m.ramEnabled {
		return
	}
	m.ram[address&(mbc2RAMSize-1)] = data & 0x0f
}

// MappedBanks implements the BankInfo interface.
func (m *mbc2) MappedBanks() string {
	return fmt.Sprintf("rom=%d", int(m.bank)%numBanks(m.rom, romBankSize))
}
