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

package memorymap

// Area represents the different areas of memory.
type Area int

func (a Area) String() string {
	switch a {
	case ROM0:
		return "ROM0"
	case ROMX:
		return "ROMX"
	case VRAM:
		return "VRAM"
	case CartRAM:
		return "CartRAM"
	case WRAM:
		return "WRAM"
	case Echo:
		return "Echo"
	case OAM:
		return "OAM"
	case Unusable:
		return "Unusable"
	case IO:
		return "IO"
	case HRAM:
		return "HRAM"
	case IE:
		return "IE"
	}
	return "undefined"
}

// List of valid Area values.
const (
	Undefined Area = iota
	ROM0
	ROMX
	VRAM
	CartRAM
	WRAM
	Echo
	OAM
	Unusable
	IO
	HRAM
	IE
)

// The origin and memory top for each area of memory.
const (
	OriginROM0     = uint16(0x0000)
	MemtopROM0     = uint16(0x3fff)
	OriginROMX     = uint16(0x4000)
	MemtopROMX     = uint16(0x7fff)
	OriginVRAM     = uint16(0x8000)
	MemtopVRAM     = uint16(0x9fff)
	OriginCartRAM  = uint16(0xa000)
	MemtopCartRAM  = uint16(0xbfff)
	OriginWRAM     = uint16(0xc000)
	MemtopWRAM     = uint16(0xdfff)
	OriginEcho     = uint16(0xe000)
	MemtopEcho     = uint16(0xfdff)
	OriginOAM      = uint16(0xfe00)
	MemtopOAM      = uint16(0xfe9f)
	OriginUnusable = uint16(0xfea0)
	MemtopUnusable = uint16(0xfeff)
	OriginIO       = uint16(0xff00)
	MemtopIO       = uint16(0xff7f)
	OriginHRAM     = uint16(0xff80)
	MemtopHRAM     = uint16(0xfffe)
	AddressIE      = uint16(0xffff)
)

// MemtopROM is the top of the cartridge ROM window. The window is the
// combination of ROM0 and ROMX.
const MemtopROM = MemtopROMX

// EchoOffset is the distance between an echo address and the work RAM
// address it mirrors.
const EchoOffset = OriginEcho - OriginWRAM

// MapAddress returns the area the address falls within. For addresses in the
// echo area the returned address is the work RAM address being mirrored. For
// every other address the returned address is the same as the argument.
func MapAddress(address uint16) (uint16, Area) {
	switch {
	case address <= MemtopROM0:
		return address, ROM0
	case address <= MemtopROMX:
		return address, ROMX
	case address <= MemtopVRAM:
		return address, VRAM
	case address <= MemtopCartRAM:
		return address, CartRAM
	case address <= MemtopWRAM:
		return address, WRAM
	case address <= MemtopEcho:
		return address - EchoOffset, Echo
	case address <= MemtopOAM:
		return address, OAM
	case address <= MemtopUnusable:
		return address, Unusable
	case address <= MemtopIO:
		return address, IO
	case address <= MemtopHRAM:
		return address, HRAM
	}
	return address, IE
}

// IsArea returns true if the address is in the specified area.
func IsArea(address uint16, area Area) bool {
	_, a := MapAddress(address)
	return area == a
}

// IsCartridge returns true if the address is served by the cartridge rather
// than by internal memory.
func IsCartridge(address uint16) bool {
	_, a := MapAddress(address)
	return a == ROM0 || a == ROMX || a == CartRAM
}
