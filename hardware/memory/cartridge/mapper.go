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

import (
	"fmt"

	"github.com/gopherdmg/gopherdmg/curated"
	"github.com/gopherdmg/gopherdmg/logger"
)

// Sentinel patterns for errors returned by NewMapper().
const (
	InvalidROM        = "cartridge: rom too short (%d bytes)"
	UnsupportedMapper = "cartridge: unsupported cartridge type (%#02x)"
)

// Mapper is implemented by all bank controllers. Addresses are not
// normalised. ReadROM() and WriteROM() take addresses in the range 0x0000 to
// 0x7fff. ReadRAM() and WriteRAM() take addresses in the range 0xa000 to
// 0xbfff.
type Mapper interface {
	ID() string
	ReadROM(address uint16) uint8
	WriteROM(address uint16, data uint8)
	ReadRAM(address uint16) uint8
	WriteRAM(address uint16, data uint8)
}

// RAMBus is implemented by controllers that have cartridge RAM. GetRAM()
// returns a copy of the RAM. PutRAM() writes to the RAM directly, regardless
// of whether RAM is enabled.
type RAMBus interface {
	GetRAM() []uint8
	PutRAM(idx int, data uint8)
}

// BankInfo is implemented by controllers to describe their current banking
// state.
type BankInfo interface {
	MappedBanks() string
}

const (
	romBankSize = 0x4000
	ramBankSize = 0x2000
)

// NewMapper creates the bank controller described by the ROM header. The rom
// slice is not copied and should not be modified after the call.
func NewMapper(rom []uint8) (Mapper, error) {
	if len(rom) <= int(addrCartType) {
		return nil, curated.Errorf(InvalidROM, len(rom))
	}

	cartType := rom[addrCartType]
	ramSize := headerRAMSize(rom)

	var m Mapper

	switch cartType {
	case 0x00:
		m = newROMOnly(rom, 0)
	case 0x08, 0x09:
		m = newROMOnly(rom, max(ramSize, ramBankSize))
	case 0x01:
		m = newMBC1(rom, 0)
	case 0x02, 0x03:
		m = newMBC1(rom, ramSize)
	case 0x05, 0x06:
		m = newMBC2(rom)
	case 0x0f:
		m = newMBC3(rom, 0, true)
	case 0x10:
		m = newMBC3(rom, ramSize, true)
	case 0x11:
		m = newMBC3(rom, 0, false)
	case 0x12, 0x13:
		m = newMBC3(rom, ramSize, false)
	case 0x19, 0x1c:
		m = newMBC5(rom, 0)
	case 0x1a, 0x1b, 0x1d, 0x1e:
		m = newMBC5(rom, ramSize)
	default:
		return nil, curated.Errorf(UnsupportedMapper, cartType)
	}

	logger.Logf(logger.Allow, "cartridge", "%s (%s) with %d rom banks", m.ID(), TypeName(cartType), numBanks(rom, romBankSize))
	if r, ok := m.(RAMBus); ok && r.GetRAM() != nil {
		logger.Logf(logger.Allow, "cartridge", "%d bytes of cartridge ram", len(r.GetRAM()))
	}

	return m, nil
}

// numBanks returns the number of banks of size in the data. A partial bank
// counts as a bank. Returns at least one.
func numBanks(data []uint8, size int) int {
	n := (len(data) + size - 1) / size
	if n == 0 {
		return 1
	}
	return n
}

// romBank returns the byte at the offset in the numbered bank. The bank
// number wraps around the number of banks in the ROM. Reads outside the ROM
// data return 0xff.
func romBank(rom []uint8, bank int, address uint16) uint8 {
	bank %= numBanks(rom, romBankSize)
	idx := bank*romBankSize + int(address&(romBankSize-1))
	if idx >= len(rom) {
		return 0xff
	}
	return rom[idx]
}

func bankString(rom int, ram int) string {
	return fmt.Sprintf("rom=%d ram=%d", rom, ram)
}
