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

// MBC1 registers are selected by the upper bits of the address written to:
//
//	0x0000 - 0x1fff    RAM enable (0x0a in low nibble)
//	0x2000 - 0x3fff    ROM bank, low five bits (zero is treated as one)
//	0x4000 - 0x5fff    two bit secondary bank register
//	0x6000 - 0x7fff    banking mode
//
// In mode 0 the secondary register supplies bits 5 and 6 of the ROMX bank
// number only. In mode 1 it also selects the bank mapped to ROM0 and the RAM
// bank.
type mbc1 struct {
	rom []uint8
	cartRAM

	bank1 uint8
	bank2 uint8
	mode  uint8
}

func newMBC1(rom []uint8, ramSize int) *mbc1 {
	return &mbc1{
		rom:     rom,
		cartRAM: newCartRAM(ramSize),
		bank1:   1,
	}
}

// ID implements the Mapper interface.
func (m *mbc1) ID() string {
	return "MBC1"
}

func (m *mbc1) romBanks() (int, int) {
	b0 := 0
	if m.mode == 1 {
		b0 = int(m.bank2) << 5
	}
	return b0, int(m.bank2)<<5 | int(m.bank1)
}

func (m *mbc1) ramBank() int {
	if m.mode == 1 {
		return int(m.bank2)
	}
	return 0
}

// ReadROM implements the Mapper interface.
func (m *mbc1) ReadROM(address uint16) uint8 {
	b0, bx := m.romBanks()
	if address < romBankSize {
		return romBank(m.rom, b0, address)
	}
	return romBank(m.rom, bx, address)
}

// WriteROM implements the Mapper interface.
func (m *mbc1) WriteROM(address uint16, data uint8) {
	switch {
	case address < 0x2000:
		m.enableRAM(data)
	case address < 0x4000:
		m.bank1 = data & 0x1f
		if m.bank1 == 0 {
			m.bank1 = 1
		}
	case address < 0x6000:
		m.bank2 = data & 0x03
	default:
		m.mode = data & 0x01
	}
}

// ReadRAM implements the Mapper interface.
func (m *mbc1) ReadRAM(address uint16) uint8 {
	return m.readRAM(m.ramBank(), address)
}

// WriteRAM implements the Mapper interface.
func (m *mbc1) WriteRAM(address uint16, data uint8) {
	m.writeRAM(m.ramBank(), address, data)
}

// MappedBanks implements the BankInfo interface.
func (m *mbc1) MappedBanks() string {
	_, bx := m.romBanks()
	return bankString(bx%numBanks(m.rom, romBankSize), m.ramBank())
}
