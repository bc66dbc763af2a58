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

// Package cartridge implements the bank controllers found in DMG cartridges.
// The controller is selected once, from the cartridge type byte in the ROM
// header, by NewMapper(). Every controller implements the Mapper interface.
//
// The supported controllers are:
//
//	0x00                ROM only
//	0x08, 0x09          ROM with up to 8k of RAM
//	0x01 - 0x03         MBC1
//	0x05, 0x06          MBC2
//	0x0f - 0x13         MBC3
//	0x19 - 0x1e         MBC5
//
// Writes to the ROM window never change ROM contents. They are interpreted by
// the controller as changes to the banking state. When a controller has no
// RAM, or when RAM has not been enabled, reads from the RAM window return 0xff
// and writes are ignored.
//
// The MBC3 real time clock registers can be selected, latched, read and
// written but the clock does not advance.
//
// Controllers with cartridge RAM also implement the RAMBus interface. Every
// controller implements the BankInfo interface, which is useful for the
// monitor.
package cartridge
