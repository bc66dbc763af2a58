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

// romOnly is a cartridge with no bank controller. There are at most two
// banks of ROM, both permanently mapped. Some cartridges of this type have a
// single bank of RAM.
type romOnly struct {
	rom []uint8
	cartRAM
}

func newROMOnly(rom []uint8, ramSize int) Mapper {
	m := &romOnly{
		rom:     rom,
		cartRAM: newCartRAM(ramSize),
	}

	// there is no enable register
	m.ramEnabled = true

	return m
}

// ID implements the Mapper interface.
func (m *romOnly) ID() string {
	return "ROM"
}

// ReadROM implements the Mapper interface.
func (m *romOnly) ReadROM(address uint16) uint8 {
	if int(address) >= len(m.rom) {
		return 0xff
	}
	return m.rom[address]
}

// WriteROM implements the Mapper interface.
func (m *romOnly) WriteROM(_ uint16, _ uint8) {
}

// ReadRAM implements the Mapper interface.
func (m *romOnly) ReadRAM(address uint16) uint8 {
	return m.readRAM(0, address)
}

// WriteRAM implements the Mapper interface.
func (m *romOnly) WriteRAM(address uint16, data uint8) {
	m.writeRAM(0, address, data)
}

// MappedBanks implements the BankInfo interface.
func (m *romOnly) MappedBanks() string {
	return bankString(1, 0)
}
