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

// MBC5 registers:
//
//	0x0000 - 0x1fff    RAM enable
//	0x2000 - 0x2fff    ROM bank, low eight bits
//	0x3000 - 0x3fff    ROM bank, bit 8
//	0x4000 - 0x5fff    RAM bank (0x00 - 0x0f)
//
// Unlike the other controllers, ROM bank zero can be mapped into ROMX.
type mbc5 struct {
	rom []uint8
	cartRAM

	romBank uint16
	ramBank uint8
}

func newMBC5(rom []uint8, ramSize int) *mbc5 {
	return &mbc5{
		rom:     rom,
		cartRAM: newCartRAM(ramSize),
		romBank: 1,
	}
}

// ID implements the Mapper interface.
func (m *mbc5) ID() string {
	return "MBC5"
}

// ReadROM implements the Mapper interface.
func (m *mbc5) ReadROM(address uint16) uint8 {
	if address < romBankSize {
		return romBank(m.rom, 0, address)
	}
	return romBank(m.rom, int(m.romBank), address)
}

// WriteROM implements the Mapper interface.
func (m *mbc5) WriteROM(address uint16, data uint8) {
	switch {
	case address < 0x2000:
		m.enableRAM(data)
	case address < 0x3000:
		m.romBank = m.romBank&0x100 | uint16(data)
	case address < 0x4000:
		m.romBank = m.romBank&0x0ff | uint16(data&0x01)<<8
	case address < 0x6000:
		m.ramBank = data & 0x0f
	}
}

// ReadRAM implements the Mapper interface.
func (m *mbc5) ReadRAM(address uint16) uint8 {
	return m.readRAM(int(m.ramBank), address)
}

// WriteRAM implements the Mapper interface.
func (m *mbc5) WriteRAM(address uint16, data uint8) {
	m.writeRAM(int(m.ramBank), address, data)
}

// MappedBanks implements the BankInfo interface.
func (m *mbc5) MappedBanks() string {
	return bankString(int(m.romBank)%numBanks(m.rom, romBankSize), int(m.ramBank))
}
