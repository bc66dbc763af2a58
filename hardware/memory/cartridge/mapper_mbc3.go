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

// MBC3 registers:
//
//	0x0000 - 0x1fff    RAM and clock enable
//	0x2000 - 0x3fff    ROM bank, seven bits (zero is treated as one)
//	0x4000 - 0x5fff    RAM bank (0x00 - 0x03) or clock register (0x08 - 0x0c)
//	0x6000 - 0x7fff    latch clock data (write 0x00 then 0x01)
//
// The clock registers are storage only. Reading a clock register returns the
// value captured by the most recent latch.
type mbc3 struct {
	rom []uint8
	cartRAM

	romBank uint8

	// RAM bank or clock register number
	ramBank uint8

	hasRTC      bool
	rtc         [5]uint8
	latched     [5]uint8
	latchPrimed bool
}

// range of values written to the RAM bank register that select a clock
// register
const (
	rtcSeconds = 0x08
	rtcDayHigh = 0x0c
)

func newMBC3(rom []uint8, ramSize int, hasRTC bool) *mbc3 {
	return &mbc3{
		rom:     rom,
		cartRAM: newCartRAM(ramSize),
		romBank: 1,
		hasRTC:  hasRTC,
	}
}

// ID implements the Mapper interface.
func (m *mbc3) ID() string {
	return "MBC3"
}

// ReadROM implements the Mapper interface.
func (m *mbc3) ReadROM(address uint16) uint8 {
	if address < romBankSize {
		return romBank(m.rom, 0, address)
	}
	return romBank(m.rom, int(m.romBank), address)
}

// WriteROM implements the Mapper interface.
func (m *mbc3) WriteROM(address uint16, data uint8) {
	switch {
	case address < 0x2000:
		m.enableRAM(data)
	case address < 0x4000:
		m.romBank = data & 0x7f
		if m.romBank == 0 {
			m.romBank = 1
		}
	case address < 0x6000:
		if data <= 0x03 || (data >= rtcSeconds && data <= rtcDayHigh) {
			m.ramBank = data
		}
	default:
		if data == 0x01 && m.latchPrimed {
			m.latched = m.rtc
		}
		m.latchPrimed = data == 0x00
	}
}

func (m *mbc3) rtcSelected() bool {
	return m.ramBank >= rtcSeconds
}

// ReadRAM implements the Mapper interface.
func (m *mbc3) ReadRAM(address uint16) uint8 {
	if m.rtcSelected() {
		if !m.ramEnabled || !m.hasRTC {
			return 0xff
		}
		return m.latched[m.ramBank-rtcSeconds]
	}
	return m.readRAM(int(m.ramBank), address)
}

// WriteRAM implements the Mapper interface.
func (m *mbc3) WriteRAM(address uint16, data uint8) {
	if m.rtcSelected() {
		if m.ramEnabled && m.hasRTC {
			m.rtc[m.ramBank-rtcSeconds] = data
		}
		return
	}
	m.writeRAM(int(m.ramBank), address, data)
}

// MappedBanks implements the BankInfo interface.
func (m *mbc3) MappedBanks() string {
	if m.rtcSelected() {
		return fmt.Sprintf("rom=%d rtc=%#02x", int(m.romBank)%numBanks(m.rom, romBankSize), m.ramBank)
	}
	return bankString(int(m.romBank)%numBanks(m.rom, romBankSize), int(m.ramBank))
}
