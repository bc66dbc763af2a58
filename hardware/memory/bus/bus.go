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

package bus

// CPUBus defines the operations for the memory system when accessed from the
// CPU. Every access goes through the full address decoding, including
// cartridge banking and register side effects.
type CPUBus interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)

	// 16bit values are little endian and are composed of two byte accesses,
	// low byte first. The address of the second byte wraps at 0xffff
	ReadWord(address uint16) uint16
	WriteWord(address uint16, data uint16)
}

// TileAddressing selects how a background tile index is converted into the
// address of the tile data.
type TileAddressing uint16

// List of valid TileAddressing values. The values are the same as the base
// addresses used by the display hardware.
const (
	// tile data at 0x8000 + index * 16
	TileAddressingUnsigned TileAddressing = 0x8000

	// tile data at 0x9000 + int8(index) * 16
	TileAddressingSigned TileAddressing = 0x8800
)

// DisplayBus defines the operations for the memory system when accessed by
// the display hardware. Reads through the DisplayBus are never blocked and
// have no side effects.
type DisplayBus interface {
	UncheckedRead(address uint16) uint8

	// OAMSearch returns the four bytes of the numbered OAM entry. There are
	// 40 entries
	OAMSearch(index uint8) [4]uint8

	// ReadBGTile uses the tile index stored at mapAddress to find and decode
	// a tile. An invalid addressing value will cause a panic
	ReadBGTile(mapAddress uint16, addressing TileAddressing) [8]uint16

	// ReadTile decodes the sixteen bytes at address into eight rows of
	// 2bpp pixels. Pixel j of a row occupies bits 2j and 2j+1
	ReadTile(address uint16) [8]uint16

	// SetDisplayMode changes bits 0 and 1 of the STAT register. The mode
	// affects whether VRAM and OAM can be read through the CPUBus
	SetDisplayMode(mode uint8)
}

// Interrupt is a bit in the interrupt flag register.
type Interrupt uint8

// List of valid Interrupt values.
const (
	InterruptVBlank Interrupt = 0x01
	InterruptSTAT   Interrupt = 0x02
	InterruptTimer  Interrupt = 0x04
	InterruptSerial Interrupt = 0x08
	InterruptJoypad Interrupt = 0x10
)

func (i Interrupt) String() string {
	switch i {
	case InterruptVBlank:
		return "vblank"
	case InterruptSTAT:
		return "stat"
	case InterruptTimer:
		return "timer"
	case InterruptSerial:
		return "serial"
	case InterruptJoypad:
		return "joypad"
	}
	return "unknown interrupt"
}

// InterruptBus allows a component to request an interrupt.
type InterruptBus interface {
	RaiseInterrupt(Interrupt)
}

// ChipBus defines the operations for components that own registers in the
// I/O area. Reads and writes are direct and have none of the side effects
// of the CPUBus.
type ChipBus interface {
	ChipRead(reg uint16) uint8
	ChipWrite(reg uint16, data uint8)
}

// TimerBus is the ChipBus with additional access to the 16bit divider. The
// divider is not stored in memory. Only the upper byte is visible to the CPU
// through the DIV register.
type TimerBus interface {
	ChipBus
	InterruptBus
	Divider() uint16
	SetDivider(uint16)
}

// KeyState is implemented by the input device. Both functions return the
// state of four keys in the low nibble. A bit is zero if the key is pressed.
type KeyState interface {
	// A, B, Select and Start in bits 0 to 3
	Buttons() uint8

	// Right, Left, Up and Down in bits 0 to 3
	Directions() uint8
}

// DebuggerBus defines the meta-operations for memory. Peek and Poke have no
// side effects and are not subject to access blocking.
type DebuggerBus interface {
	Peek(address uint16) (uint8, error)
	Poke(address uint16, value uint8) error
}
