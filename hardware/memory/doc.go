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

// Package memory implements the address bus of the DMG. All reads and writes
// by the CPU pass through the Memory type, which decodes the address and
// applies the side effects of the hardware registers.
//
// The relationship between the memory and the rest of the emulation is
// summarised by the diagram below. Each line is one of the interfaces
// defined in the bus package.
//
//	                         INPUT
//	                           |
//	                       key state
//	                           |
//	                          \/
//
//	    CPU ---- cpu bus ---- MEMORY ---- chip bus ---- TIMER
//	                          |     \
//	                          |      \---- chip bus ---- SERIAL
//	                          |
//	                          |---- display bus ---- DISPLAY
//	                          |
//	                          |---- debugger bus ---- MONITOR
//	                          |
//	                           -<-> Cartridge
//
// The cartridge windows, 0x0000 to 0x7fff and 0xa000 to 0xbfff, are never
// served by the internal memory. Access to those addresses is passed to the
// cartridge.Mapper chosen for the ROM when the Memory was created.
//
// The remaining addresses are handled in the following order:
//
//	P1 (0xff00)   reads compose the key state selected by bits 4 and 5
//	DIV (0xff04)  reads return the top byte of the divider. writes reset it
//	LCDC (0xff40) a write with bit 7 clear also clears the STAT mode bits
//	DMA (0xff46)  a write copies a page of memory into OAM
//
// Everything else is stored in the memory array. Writes to work RAM are
// mirrored into the echo area and vice versa. Reads of OAM and VRAM can be
// blocked by the current display mode.
//
// The DisplayBus, ChipBus and DebuggerBus implementations access the memory
// array directly and have none of the side effects listed above.
package memory
